package suggestion

import (
	"math/rand"
	"strings"
	"testing"
)

func newTestGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewSource(1)))
}

func TestGenerateOrderingAndPriority(t *testing.T) {
	g := newTestGenerator()

	suggestions := g.Generate("我们用缓存优化了查询性能", 2, 3)
	if len(suggestions) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(suggestions))
	}

	for i, s := range suggestions {
		if s.Priority != i+1 {
			t.Fatalf("expected priority %d at position %d, got %d", i+1, i, s.Priority)
		}
		if i < 2 && s.Type != Followup {
			t.Fatalf("expected followup at position %d, got %q", i, s.Type)
		}
		if i >= 2 {
			if s.Type != Alternative {
				t.Fatalf("expected alternative at position %d, got %q", i, s.Type)
			}
			if s.Angle == "" {
				t.Fatalf("expected angle on alternative at position %d", i)
			}
		}
		if s.ID == "" {
			t.Fatalf("expected non-empty id at position %d", i)
		}
	}
}

func TestGenerateFillsKeywords(t *testing.T) {
	g := newTestGenerator()

	suggestions := g.Generate("缓存 是关键", 2, 0)
	if !strings.Contains(suggestions[0].Text, "缓存") {
		t.Fatalf("expected first keyword in first followup, got %q", suggestions[0].Text)
	}

	for _, s := range suggestions {
		if strings.Contains(s.Text, "{point}") || strings.Contains(s.Text, "{challenge}") {
			t.Fatalf("unfilled placeholder in %q", s.Text)
		}
	}
}

func TestGenerateCyclesKeywords(t *testing.T) {
	g := newTestGenerator()

	// Single keyword, four followups: the keyword must cycle.
	suggestions := g.Generate("微服务", 4, 0)
	for i, s := range suggestions {
		if !strings.Contains(s.Text, "微服务") {
			t.Fatalf("expected keyword to cycle into followup %d, got %q", i, s.Text)
		}
	}
}

func TestGenerateDefaultsKeyword(t *testing.T) {
	g := newTestGenerator()

	suggestions := g.Generate("", 1, 0)
	if !strings.Contains(suggestions[0].Text, defaultKeyword) {
		t.Fatalf("expected generic placeholder, got %q", suggestions[0].Text)
	}
}

func TestGenerateAlternativesAreUnique(t *testing.T) {
	g := newTestGenerator()

	suggestions := g.Generate("answer", 0, 5)
	seen := make(map[string]bool)
	for _, s := range suggestions {
		if seen[s.Angle] {
			t.Fatalf("duplicate angle %q", s.Angle)
		}
		seen[s.Angle] = true
	}
}

func TestGenerateCapsAlternativesAtBankSize(t *testing.T) {
	g := newTestGenerator()

	suggestions := g.Generate("answer", 0, 10)
	if len(suggestions) != len(alternativeTemplates) {
		t.Fatalf("expected %d alternatives, got %d", len(alternativeTemplates), len(suggestions))
	}
}

func TestFromRemote(t *testing.T) {
	suggestions := FromRemote([]string{"第一个追问", "", "第二个追问"})
	if len(suggestions) != 2 {
		t.Fatalf("expected blank entries to be dropped, got %d", len(suggestions))
	}

	if suggestions[0].Type != Followup || suggestions[0].Priority != 1 {
		t.Fatalf("unexpected first suggestion: %+v", suggestions[0])
	}
}
