package evaluation

import (
	"math/rand"
	"strings"
	"testing"
)

func fixedHeuristic() *Heuristic {
	return NewHeuristic(rand.New(rand.NewSource(1)))
}

func TestEvaluateLongSpecificAnswer(t *testing.T) {
	answer := strings.Repeat("我负责这个项目的整体架构设计与性能优化工作", 13)
	if len([]rune(answer)) <= 200 {
		t.Fatalf("test answer is too short: %d runes", len([]rune(answer)))
	}

	h := fixedHeuristic()
	for i := 0; i < 50; i++ {
		result := h.Evaluate(answer)
		if result.Score < 75 || result.Score > 95 {
			t.Fatalf("expected score in [75,95], got %v", result.Score)
		}
		if result.Recommendation != Excellent && result.Recommendation != Good {
			t.Fatalf("unexpected tier %q for score %v", result.Recommendation, result.Score)
		}
		if result.Confidence != Genuine {
			t.Fatalf("expected genuine confidence, got %q", result.Confidence)
		}
	}
}

func TestEvaluateMediumAnswer(t *testing.T) {
	answer := strings.Repeat("我在工作中积累了一些经验", 10) // 120 runes, no numerals
	h := fixedHeuristic()

	for i := 0; i < 50; i++ {
		result := h.Evaluate(answer)
		if result.Score < 60 || result.Score > 75 {
			t.Fatalf("expected score in [60,75], got %v", result.Score)
		}
	}
}

func TestEvaluateShortHedgingAnswer(t *testing.T) {
	h := fixedHeuristic()

	result := h.Evaluate("可能是这样吧")
	if result.Confidence != Uncertain {
		t.Fatalf("expected uncertain confidence, got %q", result.Confidence)
	}
	if result.Score < 30 || result.Score > 50 {
		t.Fatalf("expected score in [30,50], got %v", result.Score)
	}
	if result.Recommendation != NeedsImprovement {
		t.Fatalf("expected needsImprovement, got %q", result.Recommendation)
	}
}

func TestEvaluateOverconfidentShortAnswer(t *testing.T) {
	h := fixedHeuristic()

	result := h.Evaluate("这个我精通，没问题")
	if result.Confidence != Overconfident {
		t.Fatalf("expected overconfident confidence, got %q", result.Confidence)
	}
}

func TestHedgingWinsOverOverconfidence(t *testing.T) {
	h := fixedHeuristic()

	result := h.Evaluate("我精通这个，大概吧")
	if result.Confidence != Uncertain {
		t.Fatalf("expected uncertain to win, got %q", result.Confidence)
	}
}

func TestEvaluateNumeralBonus(t *testing.T) {
	base := strings.Repeat("我在工作中积累了一些经验", 10)
	withNumbers := base[:len(base)-len("经验")] + "3年经验"

	h := NewHeuristic(rand.New(rand.NewSource(7)))
	plain := h.Evaluate(base)

	h = NewHeuristic(rand.New(rand.NewSource(7)))
	boosted := h.Evaluate(withNumbers)

	if boosted.Score != plain.Score+5 {
		t.Fatalf("expected +5 numeral bonus, got %v vs %v", boosted.Score, plain.Score)
	}
}

func TestEvaluateScoreAlwaysInRange(t *testing.T) {
	answers := []string{
		"",
		"短",
		"可能吧",
		"我精通一切1234567890",
		strings.Repeat("技术实现方案架构优化提升 42 ", 30),
		strings.Repeat("平平无奇的回答共六十个字", 5),
	}

	h := fixedHeuristic()
	for _, answer := range answers {
		for i := 0; i < 20; i++ {
			result := h.Evaluate(answer)
			if result.Score < 0 || result.Score > 100 {
				t.Fatalf("score out of range for %q: %v", answer, result.Score)
			}
		}
	}
}

func TestRecommendThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  Recommendation
	}{
		{100, Excellent},
		{80, Excellent},
		{79.9, Good},
		{65, Good},
		{64.9, Average},
		{45, Average},
		{44.9, NeedsImprovement},
		{0, NeedsImprovement},
	}

	for _, tc := range cases {
		if got := Recommend(tc.score); got != tc.want {
			t.Fatalf("Recommend(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestFeedbackCoversAllTiers(t *testing.T) {
	for _, tier := range []Recommendation{Excellent, Good, Average, NeedsImprovement} {
		if FeedbackFor(tier) == "" {
			t.Fatalf("missing feedback for tier %q", tier)
		}
	}
}
