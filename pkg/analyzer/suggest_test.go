package analyzer

import (
	"strings"
	"testing"
)

func TestSuggestCommonPasswordFirst(t *testing.T) {
	a := New()
	s, err := a.Strength("password")
	if err != nil {
		t.Fatalf("Strength should not fail: %s", err)
	}

	suggestions := a.Suggest("password", s)
	if len(suggestions) == 0 {
		t.Fatalf("a common password should produce suggestions")
	}
	if !strings.HasPrefix(suggestions[0], "CRITICAL") {
		t.Errorf("first suggestion should be the critical common-password warning: %s", suggestions[0])
	}
}

func TestSuggestMissingClasses(t *testing.T) {
	a := New()
	s, err := a.Strength("kwmrpzvx")
	if err != nil {
		t.Fatalf("Strength should not fail: %s", err)
	}

	suggestions := strings.Join(a.Suggest("kwmrpzvx", s), "\n")
	for _, want := range []string{"uppercase", "numbers", "special"} {
		if !strings.Contains(suggestions, want) {
			t.Errorf("suggestions should mention missing %s class:\n%s", want, suggestions)
		}
	}
	if strings.Contains(suggestions, "Add lowercase") {
		t.Errorf("lowercase is present and should not be suggested:\n%s", suggestions)
	}
}

func TestSuggestRulesDoNotShortCircuit(t *testing.T) {
	a := New()
	// Common, single-class, short, patterned: every rule fires.
	s, err := a.Strength("qwerty")
	if err != nil {
		t.Fatalf("Strength should not fail: %s", err)
	}

	suggestions := a.Suggest("qwerty", s)
	joined := strings.Join(suggestions, "\n")
	for _, want := range []string{"CRITICAL", "uppercase", "numbers", "special", "length", "patterns", "Best practice"} {
		if !strings.Contains(joined, want) {
			t.Errorf("suggestion list should contain %q:\n%s", want, joined)
		}
	}
}

func TestSuggestPositiveAcknowledgment(t *testing.T) {
	a := New()
	pwd := "K9#mQz7!Wr2$Lp5&Tx8@"
	s, err := a.Strength(pwd)
	if err != nil {
		t.Fatalf("Strength should not fail: %s", err)
	}

	suggestions := a.Suggest(pwd, s)
	if len(suggestions) != 1 {
		t.Fatalf("a flawless password should get exactly one acknowledgment, got %d: %v", len(suggestions), suggestions)
	}
	if !strings.HasPrefix(suggestions[0], "Excellent") {
		t.Errorf("acknowledgment text: %s", suggestions[0])
	}
}
