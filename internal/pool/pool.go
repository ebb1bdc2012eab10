package pool

import (
	"go.uber.org/zap"

	"github.com/talentflow/interview-assist/internal/backend"
)

// Filter represents a single filtering step applied to the question pool.
type Filter interface {
	Name() string
	Apply(pool []*backend.Question) ([]*backend.Question, Step)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied filters sequentially against the question pool.
func Run(logger *zap.Logger, steps []Filter, pool []*backend.Question) []*backend.Question {
	for _, step := range steps {
		next, info := step.Apply(pool)

		if logger != nil {
			logger.Info("pool filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		pool = next
	}

	return pool
}
