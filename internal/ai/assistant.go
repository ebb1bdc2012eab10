package ai

import "context"

// Assessment is an AI provider's judgement of a single answer. Score is
// normalized to [0,100] so it can flow through the same tier thresholds as
// every other evaluation source.
type Assessment struct {
	Score      float64
	Confidence string
	Feedback   string
	Followups  []string
	Raw        string
}

// Evaluator scores one question/answer exchange with an AI provider.
type Evaluator interface {
	EvaluateAnswer(ctx context.Context, question, answer string) (*Assessment, error)
}
