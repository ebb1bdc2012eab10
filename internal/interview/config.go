package interview

import "time"

// Mode selects between a locally simulated candidate and a real one backed by
// the remote evaluation service.
type Mode string

const (
	ModeSimulation Mode = "ai-simulation"
	ModeLive       Mode = "live-interview"
)

// Status is the session lifecycle state.
type Status string

const (
	StatusIdle   Status = "idle"
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusEnded  Status = "ended"
)

// Config tunes one interview session.
type Config struct {
	Mode             Mode          `json:"mode"`
	Domain           string        `json:"domain"`
	FollowupCount    int           `json:"followupCount"`
	AlternativeCount int           `json:"alternativeCount"`
	SuggestionDelay  time.Duration `json:"suggestionDelay"`
}

// DefaultConfig mirrors the product defaults: two follow-ups, three
// alternatives, suggestions ten seconds after an answer.
func DefaultConfig() Config {
	return Config{
		Mode:             ModeSimulation,
		Domain:           "tech",
		FollowupCount:    2,
		AlternativeCount: 3,
		SuggestionDelay:  10 * time.Second,
	}
}

// Stats aggregates the running session counters.
type Stats struct {
	TotalQuestions  int     `json:"totalQuestions"`
	TotalFollowups  int     `json:"totalFollowups"`
	AverageScore    float64 `json:"averageScore"`
	DurationMinutes int     `json:"durationMinutes"`
}
