package interview

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/talentflow/interview-assist/internal/backend"
	"github.com/talentflow/interview-assist/internal/evaluation"
	"github.com/talentflow/interview-assist/internal/logger"
	"github.com/talentflow/interview-assist/internal/simulate"
	"github.com/talentflow/interview-assist/internal/suggestion"
	"github.com/talentflow/interview-assist/internal/util"
)

const defaultThinkDelay = 1500 * time.Millisecond

// Backend captures the remote session operations the controller relies on.
// *backend.Client satisfies it; tests substitute stubs. Answer evaluation
// goes through the evaluation engine instead.
type Backend interface {
	CreateSession(resumeRef string) (*backend.SessionInfo, error)
	GenerateQuestions(sessionID string, filters *backend.QuestionFilters) (*backend.QuestionPool, error)
	EndSession(sessionID string) error
	GenerateReport(sessionID string, opts *backend.ReportOptions) (*backend.Report, error)
}

// Deps aggregates the controller's collaborators.
type Deps struct {
	// Backend is optional; without it every session runs purely local.
	Backend Backend
	// Engine scores candidate answers. Required in practice; a nil engine is
	// replaced by a local-only one.
	Engine *evaluation.Engine
	// Suggestions derives ranked follow-up questions.
	Suggestions *suggestion.Generator
	Logger      *zap.Logger
	// Reveal is an optional presentation hook invoked with the final text of
	// interviewer and simulated candidate messages. Pacing is the caller's
	// concern.
	Reveal func(*Message)
	// ThinkDelay is the simulated candidate's thinking time before answering.
	// Zero selects the default; negative disables the wait.
	ThinkDelay time.Duration
	// SimRand seeds the candidate simulator. Nil gets a time-seeded source.
	SimRand *rand.Rand
}

// ReportResult is the outcome of a report request. A missing remote session
// yields Success == false, never an error.
type ReportResult struct {
	Success   bool
	Summary   string
	ReportURL string
}

// Controller owns one interview session: its lifecycle, append-only message
// log, stats and the suggestion timer. All state is guarded by one mutex; the
// evaluation engine and suggestion generator stay pure and never touch it.
type Controller struct {
	mu   sync.Mutex
	cfg  Config
	deps Deps

	status    Status
	remoteID  string
	startTime time.Time
	messages  []*Message
	stats     Stats

	pool       []*backend.Question
	highlights []string
	hints      []string

	sim *simulate.Simulator

	currentQuestion string
	currentMeta     *backend.Question

	suggestions     []*suggestion.Question
	showSuggestions bool
	timerHandle     *taskHandle
	timerGen        uint64
}

// NewController builds a controller in the idle state.
func NewController(cfg Config, deps Deps) *Controller {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Engine == nil {
		deps.Engine = evaluation.NewEngine(nil, nil, nil, deps.Logger)
	}
	if deps.Suggestions == nil {
		deps.Suggestions = suggestion.NewGenerator(nil)
	}
	if deps.ThinkDelay == 0 {
		deps.ThinkDelay = defaultThinkDelay
	}

	return &Controller{
		cfg:    cfg,
		deps:   deps,
		status: StatusIdle,
	}
}

// Start begins a fresh session, discarding any previous log and stats. In
// simulation mode the archetype selects the simulated candidate; in live mode
// with a remote session the initial question pool is fetched.
func (c *Controller) Start(ctx context.Context, mode Mode, archetype simulate.Archetype) {
	c.mu.Lock()
	c.cancelTimerLocked()

	if mode != "" {
		c.cfg.Mode = mode
	}

	c.status = StatusActive
	c.startTime = time.Now()
	c.messages = nil
	c.stats = Stats{}
	c.suggestions = nil
	c.showSuggestions = false
	c.hints = nil
	c.currentQuestion = ""
	c.currentMeta = nil
	c.sim = nil

	greeting := "面试已开始，请面试官提问。系统将在候选人回答后自动推荐追问和候选问题。"
	if c.cfg.Mode == ModeSimulation {
		profile := simulate.PresetFor(archetype)
		if profile == nil {
			c.deps.Logger.Warn("unknown candidate archetype, using ideal",
				zap.String("archetype", string(archetype)))
			profile = simulate.PresetFor(simulate.Ideal)
		}
		c.sim = simulate.New(profile, c.deps.SimRand)
		greeting = fmt.Sprintf("你好%s，欢迎参加今天的面试。我是您的面试官，我们现在开始吧。", profile.Name)
	}

	c.appendLocked(newMessage(RoleSystem, greeting))

	mode = c.cfg.Mode
	live := mode == ModeLive
	remoteID := c.remoteID
	c.mu.Unlock()

	c.deps.Logger.Info("interview started", logger.SessionFields(remoteID, string(mode))...)

	if live && remoteID != "" && c.deps.Backend != nil {
		c.fetchQuestionPool(ctx, remoteID)
	}
}

// StartLiveWithResume creates a remote session bound to the resume and starts
// a live interview on top of it.
func (c *Controller) StartLiveWithResume(ctx context.Context, resumeRef string) error {
	if c.deps.Backend == nil {
		return fmt.Errorf("remote backend is not configured")
	}

	info, err := c.deps.Backend.CreateSession(resumeRef)
	if err != nil {
		return fmt.Errorf("create remote session: %w", err)
	}

	c.mu.Lock()
	c.remoteID = info.SessionID
	c.highlights = info.ResumeHighlights
	c.mu.Unlock()

	c.Start(ctx, ModeLive, "")

	return nil
}

func (c *Controller) fetchQuestionPool(_ context.Context, remoteID string) {
	filters := &backend.QuestionFilters{
		Categories:       []string{"简历相关", "专业能力", "行为面试"},
		CandidateLevel:   "senior",
		CountPerCategory: 2,
		FocusOnResume:    true,
	}

	pool, err := c.deps.Backend.GenerateQuestions(remoteID, filters)
	if err != nil {
		c.deps.Logger.Warn("fetching question pool failed",
			zap.String(logger.FieldSession, remoteID),
			zap.Error(err),
		)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pool = pool.Pool
	if len(pool.ResumeHighlights) > 0 {
		c.highlights = pool.ResumeHighlights
	}

	if len(c.pool) > 0 {
		c.appendLocked(newMessage(RoleSystem,
			fmt.Sprintf("已根据简历生成 %d 个候选问题，可从问题池中选择或自由提问。", len(c.pool))))
	}
}

// Pause suspends the session. A pending suggestion timer is cancelled without
// discarding already-computed suggestions.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusActive {
		return
	}

	c.status = StatusPaused
	c.cancelTimerLocked()
	c.deps.Logger.Info("interview paused")
}

// Resume reactivates a paused session.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusPaused {
		return
	}

	c.status = StatusActive
	c.deps.Logger.Info("interview resumed")
}

// End terminates the session: the duration is finalized, a closing summary is
// appended and the remote session is torn down best-effort. The controller can
// host a new session afterwards via Start.
func (c *Controller) End(ctx context.Context) {
	c.mu.Lock()

	if c.status != StatusActive && c.status != StatusPaused {
		c.mu.Unlock()
		return
	}

	c.cancelTimerLocked()

	c.stats.DurationMinutes = int(math.Round(time.Since(c.startTime).Minutes()))
	c.appendLocked(newMessage(RoleSystem, fmt.Sprintf(
		"面试已结束。共进行了 %d 个问题，%d 次追问，用时 %d 分钟。",
		c.stats.TotalQuestions, c.stats.TotalFollowups, c.stats.DurationMinutes,
	)))

	c.status = StatusEnded
	remoteID := c.remoteID
	c.remoteID = ""
	c.pool = nil
	stats := c.stats
	c.mu.Unlock()

	if remoteID != "" && c.deps.Backend != nil {
		if err := c.deps.Backend.EndSession(remoteID); err != nil {
			c.deps.Logger.Warn("ending remote session failed",
				zap.String(logger.FieldSession, remoteID),
				zap.Error(err),
			)
		}
	}

	c.deps.Logger.Info("interview ended",
		zap.Int("total_questions", stats.TotalQuestions),
		zap.Int("total_followups", stats.TotalFollowups),
		zap.Int("duration_minutes", stats.DurationMinutes),
	)
}

// GenerateReport asks the remote service to compile the session report.
// Without a remote session it returns an unsuccessful result, never an error.
func (c *Controller) GenerateReport(_ context.Context, notes string) ReportResult {
	c.mu.Lock()
	remoteID := c.remoteID
	c.mu.Unlock()

	if remoteID == "" || c.deps.Backend == nil {
		return ReportResult{}
	}

	report, err := c.deps.Backend.GenerateReport(remoteID, &backend.ReportOptions{
		IncludeConversationLog: true,
		HRNotes:                notes,
	})
	if err != nil {
		c.deps.Logger.Warn("report generation failed",
			zap.String(logger.FieldSession, remoteID),
			zap.Error(err),
		)
		return ReportResult{}
	}

	return ReportResult{
		Success:   true,
		Summary:   report.Summary,
		ReportURL: report.ReportFileURL,
	}
}

// AskQuestion records a free-text interviewer question. In simulation mode the
// simulated candidate answers, is evaluated and the suggestion timer is armed.
func (c *Controller) AskQuestion(ctx context.Context, text string) {
	c.askQuestion(ctx, text, nil, false)
}

// AskFromPool asks a question selected from the fetched question pool,
// keeping its metadata for the remote evaluation call.
func (c *Controller) AskFromPool(ctx context.Context, q *backend.Question) {
	if q == nil {
		return
	}
	c.askQuestion(ctx, q.Content, q, false)
}

// UseSuggestion re-asks a suggested question. Follow-ups count towards the
// follow-up total.
func (c *Controller) UseSuggestion(ctx context.Context, s *suggestion.Question) {
	if s == nil {
		return
	}
	c.askQuestion(ctx, s.Text, nil, s.Type == suggestion.Followup)
}

func (c *Controller) askQuestion(ctx context.Context, text string, meta *backend.Question, followup bool) {
	c.mu.Lock()

	if c.status != StatusActive || strings.TrimSpace(text) == "" {
		c.mu.Unlock()
		return
	}

	c.currentQuestion = text
	c.currentMeta = meta
	c.showSuggestions = false
	c.stats.TotalQuestions++
	if followup {
		c.stats.TotalFollowups++
	}

	msg := newMessage(RoleInterviewer, text)
	msg.IsFollowup = followup
	c.appendLocked(msg)

	sim := c.sim
	simulated := c.cfg.Mode == ModeSimulation && sim != nil
	c.mu.Unlock()

	c.reveal(msg)

	if !simulated {
		return
	}

	// Simulated candidate thinking time; pausing or ending during the wait
	// drops the answer.
	_ = util.WaitFor(ctx, c.deps.ThinkDelay)

	c.submitSimulated(ctx, text, sim.Respond(text))
}

func (c *Controller) submitSimulated(ctx context.Context, question, answer string) {
	outcome := c.deps.Engine.Evaluate(ctx, "", question, answer, nil)

	c.mu.Lock()

	if c.status != StatusActive {
		c.mu.Unlock()
		return
	}

	msg := newMessage(RoleCandidate, answer)
	msg.Evaluation = outcome.Result
	c.appendLocked(msg)
	c.recalcAverageLocked()
	c.armSuggestionsLocked(answer)
	c.mu.Unlock()

	c.reveal(msg)
}

// SubmitAnswer records a candidate answer in live mode (typically finalized
// transcript text), evaluates it remote-first and schedules suggestions.
// Submitting while paused or idle is a no-op.
func (c *Controller) SubmitAnswer(ctx context.Context, answer string) {
	c.mu.Lock()

	if c.status != StatusActive || strings.TrimSpace(answer) == "" {
		c.mu.Unlock()
		return
	}

	question := c.currentQuestion
	meta := c.currentMeta
	remoteID := c.remoteID

	msg := newMessage(RoleCandidate, answer)
	c.appendLocked(msg)
	c.mu.Unlock()

	outcome := c.deps.Engine.Evaluate(ctx, remoteID, question, answer, meta)

	c.mu.Lock()
	defer c.mu.Unlock()

	msg.Evaluation = outcome.Result
	c.hints = outcome.HRHints
	c.recalcAverageLocked()
	c.currentMeta = nil

	if len(outcome.Followups) > 0 {
		// Remote suggestions surface immediately; they are not timer-gated.
		c.cancelTimerLocked()
		c.suggestions = suggestion.FromRemote(outcome.Followups)
		c.showSuggestions = true
		return
	}

	c.armSuggestionsLocked(answer)
}

// DismissSuggestions hides and clears the current suggestion list.
func (c *Controller) DismissSuggestions() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.showSuggestions = false
	c.suggestions = nil
}

// armSuggestionsLocked starts the single delayed suggestion task. Arming again
// before the delay elapses supersedes the previous task.
func (c *Controller) armSuggestionsLocked(answer string) {
	c.cancelTimerLocked()
	c.showSuggestions = false

	gen := c.timerGen
	c.timerHandle = schedule(c.cfg.SuggestionDelay, func() {
		c.fireSuggestions(gen, answer)
	})
}

func (c *Controller) fireSuggestions(gen uint64, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A cancelled or superseded timer must never change suggestion state.
	if gen != c.timerGen || c.status != StatusActive {
		return
	}

	c.suggestions = c.deps.Suggestions.Generate(answer, c.cfg.FollowupCount, c.cfg.AlternativeCount)
	c.showSuggestions = true
}

func (c *Controller) cancelTimerLocked() {
	c.timerGen++
	if c.timerHandle != nil {
		c.timerHandle.cancel()
		c.timerHandle = nil
	}
}

func (c *Controller) appendLocked(msg *Message) {
	c.messages = append(c.messages, msg)
}

func (c *Controller) recalcAverageLocked() {
	var sum float64
	var count int
	for _, msg := range c.messages {
		if msg.Evaluation != nil {
			sum += msg.Evaluation.Score
			count++
		}
	}

	if count == 0 {
		c.stats.AverageScore = 0
		return
	}
	c.stats.AverageScore = sum / float64(count)
}

func (c *Controller) reveal(msg *Message) {
	if c.deps.Reveal != nil {
		c.deps.Reveal(msg)
	}
}

// Status returns the current lifecycle state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// RemoteID returns the remote session identifier, empty for local sessions.
func (c *Controller) RemoteID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remoteID
}

// Messages returns a snapshot of the ordered message log.
func (c *Controller) Messages() []*Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Stats returns the current session counters.
func (c *Controller) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Suggestions returns the current suggestion list and whether it is visible.
func (c *Controller) Suggestions() ([]*suggestion.Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*suggestion.Question, len(c.suggestions))
	copy(out, c.suggestions)
	return out, c.showSuggestions
}

// Pool returns the fetched question pool.
func (c *Controller) Pool() []*backend.Question {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*backend.Question, len(c.pool))
	copy(out, c.pool)
	return out
}

// SetPool replaces the visible question pool, e.g. after filtering.
func (c *Controller) SetPool(pool []*backend.Question) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pool = pool
}

// Highlights returns the resume highlights delivered by the remote service.
func (c *Controller) Highlights() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.highlights...)
}

// Hints returns the HR action hints from the last evaluated answer.
func (c *Controller) Hints() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.hints...)
}

// Config returns the session configuration.
func (c *Controller) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// SetConfig replaces the session configuration.
func (c *Controller) SetConfig(cfg Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
}
