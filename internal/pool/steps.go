package pool

import "github.com/talentflow/interview-assist/internal/backend"

type categoryFilter struct {
	allowed map[string]bool
}

// ByCategory keeps only questions from the allowed categories. An empty list
// keeps everything.
func ByCategory(categories []string) Filter {
	allowed := make(map[string]bool, len(categories))
	for _, c := range categories {
		allowed[c] = true
	}
	return &categoryFilter{allowed: allowed}
}

func (f *categoryFilter) Name() string { return "category" }

func (f *categoryFilter) Apply(pool []*backend.Question) ([]*backend.Question, Step) {
	initial := len(pool)
	if len(f.allowed) == 0 {
		return pool, Step{Initial: initial, Left: initial}
	}

	kept := make([]*backend.Question, 0, len(pool))
	for _, q := range pool {
		if f.allowed[q.Category] {
			kept = append(kept, q)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}
}

type difficultyFilter struct {
	min int
	max int
}

// ByDifficulty keeps questions whose difficulty falls within [min, max].
func ByDifficulty(min, max int) Filter {
	return &difficultyFilter{min: min, max: max}
}

func (f *difficultyFilter) Name() string { return "difficulty" }

func (f *difficultyFilter) Apply(pool []*backend.Question) ([]*backend.Question, Step) {
	initial := len(pool)

	kept := make([]*backend.Question, 0, len(pool))
	for _, q := range pool {
		if q.Difficulty >= f.min && q.Difficulty <= f.max {
			kept = append(kept, q)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}
}

type askedFilter struct {
	asked map[string]bool
}

// ExcludeAsked drops questions already asked during the session, matched by
// content.
func ExcludeAsked(asked []string) Filter {
	seen := make(map[string]bool, len(asked))
	for _, content := range asked {
		seen[content] = true
	}
	return &askedFilter{asked: seen}
}

func (f *askedFilter) Name() string { return "exclude_asked" }

func (f *askedFilter) Apply(pool []*backend.Question) ([]*backend.Question, Step) {
	initial := len(pool)

	kept := make([]*backend.Question, 0, len(pool))
	for _, q := range pool {
		if !f.asked[q.Content] {
			kept = append(kept, q)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}
}
