package bank_test

import (
	"reflect"
	"testing"

	"quiz-game/internal/bank"
	"quiz-game/internal/domain"
)

func TestQuestionCounts(t *testing.T) {
	counts := map[domain.Difficulty]int{
		domain.DifficultyEasy:   8,
		domain.DifficultyMedium: 7,
		domain.DifficultyHard:   7,
	}
	for d, want := range counts {
		if got := len(bank.QuestionsFor(d)); got != want {
			t.Fatalf("%s: expected %d questions, got %d", d, want, got)
		}
	}
}

func TestAnswerIsAlwaysAnOption(t *testing.T) {
	for _, d := range domain.Difficulties {
		for _, q := range bank.QuestionsFor(d) {
			if len(q.Options) != 4 {
				t.Fatalf("%s %q: expected 4 options, got %d", d, q.Prompt, len(q.Options))
			}
			seen := map[string]bool{}
			found := false
			for _, opt := range q.Options {
				if seen[opt] {
					t.Fatalf("%s %q: duplicate option %q", d, q.Prompt, opt)
				}
				seen[opt] = true
				if opt == q.Answer {
					found = true
				}
			}
			if !found {
				t.Fatalf("%s %q: answer %q is not among options", d, q.Prompt, q.Answer)
			}
		}
	}
}

func TestQuestionsForIsPure(t *testing.T) {
	for _, d := range domain.Difficulties {
		first := bank.QuestionsFor(d)
		second := bank.QuestionsFor(d)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%s: repeated calls returned different questions", d)
		}

		// Mutating the returned slice must not leak into the catalog.
		first[0].Prompt = "tampered"
		if bank.QuestionsFor(d)[0].Prompt == "tampered" {
			t.Fatalf("%s: catalog mutated through returned slice", d)
		}
	}
}

func TestUnknownDifficultyFallsBackToEasy(t *testing.T) {
	got := bank.QuestionsFor(domain.Difficulty("Nightmare"))
	want := bank.QuestionsFor(domain.DifficultyEasy)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected fallback to the Easy set, got %d questions", len(got))
	}
}
