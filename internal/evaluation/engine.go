package evaluation

import (
	"context"

	"github.com/talentflow/interview-assist/internal/ai"
	"github.com/talentflow/interview-assist/internal/backend"
	"github.com/talentflow/interview-assist/internal/logger"

	"go.uber.org/zap"
)

// Recorder submits one question/answer pair to the remote interview service.
// *backend.Client satisfies it; tests substitute stubs.
type Recorder interface {
	RecordAnswer(sessionID string, question *backend.Question, answer string) (*backend.AnswerResult, error)
}

// Source names the path that produced an evaluation.
type Source string

const (
	SourceRemote Source = "remote"
	SourceAI     Source = "ai"
	SourceLocal  Source = "local"
)

// Outcome bundles the uniform evaluation with the extras only the remote
// paths can deliver for the turn.
type Outcome struct {
	Result    *Result
	Followups []string
	HRHints   []string
	Source    Source
}

// Engine scores answers remote-first, degrading through the optional AI
// provider down to the local heuristic. Failures along the chain are logged
// and never surface to the caller.
type Engine struct {
	recorder  Recorder
	assistant ai.Evaluator
	local     *Heuristic
	logger    *zap.Logger
}

// NewEngine builds an evaluation engine. recorder and assistant may be nil;
// the local heuristic is always available as the last tier.
func NewEngine(recorder Recorder, assistant ai.Evaluator, local *Heuristic, log *zap.Logger) *Engine {
	if local == nil {
		local = NewHeuristic(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{
		recorder:  recorder,
		assistant: assistant,
		local:     local,
		logger:    log,
	}
}

// Evaluate scores one answer. The remote path is used whenever a live session
// exists; any failure falls through to the next tier. The returned Outcome is
// never nil and its Result is always populated.
func (e *Engine) Evaluate(ctx context.Context, sessionID, question, answer string, meta *backend.Question) *Outcome {
	if e.recorder != nil && sessionID != "" {
		if outcome := e.evaluateRemote(sessionID, question, answer, meta); outcome != nil {
			return outcome
		}
	}

	if e.assistant != nil {
		if outcome := e.evaluateAI(ctx, question, answer); outcome != nil {
			return outcome
		}
	}

	return &Outcome{
		Result: e.local.Evaluate(answer),
		Source: SourceLocal,
	}
}

func (e *Engine) evaluateRemote(sessionID, question, answer string, meta *backend.Question) *Outcome {
	q := backend.Question{}
	if meta != nil {
		q = *meta
	}
	if q.Content == "" {
		q.Content = question
	}

	result, err := e.recorder.RecordAnswer(sessionID, &q, answer)
	if err != nil {
		e.logger.Warn("remote evaluation failed, falling back",
			zap.String(logger.FieldSession, sessionID),
			zap.Error(err),
		)
		return nil
	}

	score := clamp(result.Evaluation.NormalizedScore)
	tier := Recommend(score)

	followups := make([]string, 0, len(result.Followups()))
	for _, f := range result.Followups() {
		followups = append(followups, f.Question)
	}

	return &Outcome{
		Result: &Result{
			Score:          score,
			Recommendation: tier,
			Confidence:     ParseConfidence(result.Evaluation.ConfidenceLevel),
			Feedback:       result.Evaluation.Feedback,
		},
		Followups: followups,
		HRHints:   result.HRActionHints,
		Source:    SourceRemote,
	}
}

func (e *Engine) evaluateAI(ctx context.Context, question, answer string) *Outcome {
	assessment, err := e.assistant.EvaluateAnswer(ctx, question, answer)
	if err != nil {
		e.logger.Warn("ai evaluation failed, falling back", zap.Error(err))
		return nil
	}

	score := clamp(assessment.Score)
	tier := Recommend(score)

	feedback := assessment.Feedback
	if feedback == "" {
		feedback = FeedbackFor(tier)
	}

	return &Outcome{
		Result: &Result{
			Score:          score,
			Recommendation: tier,
			Confidence:     ParseConfidence(assessment.Confidence),
			Feedback:       feedback,
		},
		Followups: assessment.Followups,
		Source:    SourceAI,
	}
}

func clamp(score float64) float64 {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
