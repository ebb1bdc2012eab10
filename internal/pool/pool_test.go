package pool

import (
	"testing"

	"go.uber.org/zap"

	"github.com/talentflow/interview-assist/internal/backend"
)

func testPool() []*backend.Question {
	return []*backend.Question{
		{ID: "q1", Content: "请介绍一个项目", Category: "简历相关", Difficulty: 4},
		{ID: "q2", Content: "请解释闭包", Category: "专业能力", Difficulty: 6},
		{ID: "q3", Content: "如何处理冲突", Category: "行为面试", Difficulty: 3},
		{ID: "q4", Content: "设计一个缓存", Category: "专业能力", Difficulty: 9},
	}
}

func TestByCategory(t *testing.T) {
	kept, step := ByCategory([]string{"专业能力"}).Apply(testPool())

	if len(kept) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(kept))
	}
	if step.Dropped != 2 || step.Left != 2 {
		t.Fatalf("unexpected step info: %+v", step)
	}
}

func TestByCategoryEmptyKeepsAll(t *testing.T) {
	kept, _ := ByCategory(nil).Apply(testPool())

	if len(kept) != 4 {
		t.Fatalf("expected all questions, got %d", len(kept))
	}
}

func TestByDifficulty(t *testing.T) {
	kept, _ := ByDifficulty(4, 7).Apply(testPool())

	if len(kept) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(kept))
	}
	for _, q := range kept {
		if q.Difficulty < 4 || q.Difficulty > 7 {
			t.Fatalf("question %s outside difficulty bounds", q.ID)
		}
	}
}

func TestExcludeAsked(t *testing.T) {
	kept, step := ExcludeAsked([]string{"请介绍一个项目"}).Apply(testPool())

	if len(kept) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(kept))
	}
	if step.Dropped != 1 {
		t.Fatalf("expected 1 dropped, got %d", step.Dropped)
	}
}

func TestRunAppliesSequentially(t *testing.T) {
	steps := []Filter{
		ByCategory([]string{"专业能力"}),
		ByDifficulty(1, 7),
	}

	kept := Run(zap.NewNop(), steps, testPool())

	if len(kept) != 1 || kept[0].ID != "q2" {
		t.Fatalf("expected only q2 to survive, got %+v", kept)
	}
}
