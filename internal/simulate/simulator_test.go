package simulate

import (
	"math/rand"
	"strings"
	"testing"
)

func newSeeded(archetype Archetype) *Simulator {
	return New(PresetFor(archetype), rand.New(rand.NewSource(1)))
}

func TestRespondFillsSkillPlaceholder(t *testing.T) {
	s := newSeeded(Ideal)

	for i := 0; i < 20; i++ {
		answer := s.Respond("请介绍一下您的技术栈")
		if answer == "" {
			t.Fatalf("expected non-empty answer")
		}
		if strings.Contains(answer, "{skill}") {
			t.Fatalf("unfilled skill placeholder in %q", answer)
		}
	}
}

func TestRespondClassifiesProjectQuestions(t *testing.T) {
	s := newSeeded(Nervous)

	answer := s.Respond("请介绍一个您最引以为傲的项目")

	// Project templates for the nervous archetype carry no skill placeholder,
	// so the answer must match one verbatim.
	found := false
	for _, template := range answerTemplates[Nervous][categoryProject] {
		if answer == template {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected a nervous project answer, got %q", answer)
	}
}

func TestRespondFallsBackToIdealBank(t *testing.T) {
	// The junior archetype has no template bank at all.
	s := New(PresetFor(Junior), rand.New(rand.NewSource(2)))

	answer := s.Respond("请讲讲技术")
	if answer == "" {
		t.Fatalf("expected fallback answer")
	}

	matched := false
	for _, template := range answerTemplates[Ideal][categoryTechnical] {
		prefix := strings.SplitN(template, "{skill}", 2)[0]
		if strings.HasPrefix(answer, prefix) {
			matched = true
			break
		}
	}
	if !matched {
		t.Fatalf("expected answer from the ideal technical bank, got %q", answer)
	}
}

func TestRespondUsesProfileSkills(t *testing.T) {
	profile := &Profile{
		Name:      "单一技能",
		Archetype: Ideal,
		Skills:    map[string]int{"Rust": 9},
	}
	s := New(profile, rand.New(rand.NewSource(3)))

	answer := s.Respond("谈谈您的技术")
	if !strings.Contains(answer, "Rust") {
		t.Fatalf("expected skill Rust in answer, got %q", answer)
	}
}

func TestRespondWithoutProfile(t *testing.T) {
	s := New(nil, rand.New(rand.NewSource(4)))

	if answer := s.Respond("任何问题"); answer != "" {
		t.Fatalf("expected empty answer without a profile, got %q", answer)
	}
}

func TestPresetsCoverAllArchetypes(t *testing.T) {
	for _, archetype := range []Archetype{Ideal, Junior, Nervous, Overconfident} {
		preset := PresetFor(archetype)
		if preset == nil {
			t.Fatalf("missing preset for %q", archetype)
		}
		if len(preset.Skills) == 0 {
			t.Fatalf("preset %q has no skills", archetype)
		}
	}

	if PresetFor("unknown") != nil {
		t.Fatalf("expected nil preset for unknown archetype")
	}
}
