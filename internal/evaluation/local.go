package evaluation

import (
	"math/rand"
	"regexp"
	"time"
	"unicode/utf8"
)

var (
	specificityMarkers   = regexp.MustCompile(`项目|技术|实现|优化|提升|方案|架构`)
	overconfidenceMarker = regexp.MustCompile(`精通|轻松|简单|没问题|都会`)
	hedgingMarker        = regexp.MustCompile(`可能|也许|不太确定|大概`)
	numeral              = regexp.MustCompile(`\d`)
)

// Heuristic scores answers without any remote dependency. It keys off answer
// length, concreteness markers and confidence markers; randomness within each
// scoring band keeps repeated demo runs from looking canned.
type Heuristic struct {
	rand *rand.Rand
}

// NewHeuristic returns a heuristic scorer. A nil source gets a time-seeded one.
func NewHeuristic(src *rand.Rand) *Heuristic {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Heuristic{rand: src}
}

// Evaluate scores a single answer. The returned score is always in [0,100].
func (h *Heuristic) Evaluate(answer string) *Result {
	length := utf8.RuneCountInString(answer)

	score := 50.0
	confidence := Genuine

	switch {
	case length > 200 && specificityMarkers.MatchString(answer):
		score = 75 + h.rand.Float64()*20
	case length > 100 && length <= 200:
		score = 60 + h.rand.Float64()*15
	case length < 50:
		score = 30 + h.rand.Float64()*20
	}

	if numeral.MatchString(answer) {
		score += 5
	}

	if length < 100 && overconfidenceMarker.MatchString(answer) {
		confidence = Overconfident
		score -= 10
	}

	// Hedging wins when both markers are present.
	if hedgingMarker.MatchString(answer) {
		confidence = Uncertain
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	tier := Recommend(score)

	return &Result{
		Score:          score,
		Recommendation: tier,
		Confidence:     confidence,
		Feedback:       FeedbackFor(tier),
	}
}
