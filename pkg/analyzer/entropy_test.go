package analyzer

import (
	"math"
	"strings"
	"testing"
)

func TestCalculateEntropy(t *testing.T) {
	cases := []struct {
		password string
		want     float64
	}{
		// length * log2(pool), no pattern discounts
		{"kwmrpzvx", 8 * math.Log2(26)},
		{"Kwmrpzvx", 8 * math.Log2(52)},
		{"Kwmrpzv7", 8 * math.Log2(62)},
		{"Kwmrpz7!", 8 * math.Log2(94)},
		// every repeat character past the second counts half
		{"aaaa", (2 + 2*patternCharWeight) * math.Log2(26)},
		{"", 0},
	}

	for _, tc := range cases {
		profile := classifyCharSets(tc.password)
		got := calculateEntropy(tc.password, profile)
		if math.Abs(got-tc.want) > 0.01 {
			t.Errorf("calculateEntropy(%q): %.2f, want: %.2f", tc.password, got, tc.want)
		}
	}
}

func TestEntropyMonotonicInLength(t *testing.T) {
	// Holding class composition constant, adding characters must never
	// reduce entropy, even when the addition creates a pattern run.
	bases := []string{
		"abcdefghijklmnopqrstuvwxyz",
		"aaaaaaaaaaaaaaaa",
		"qwertyuiopasdfgh",
		"kzmqwvrxpylnotub",
	}

	for _, base := range bases {
		prev := 0.0
		for i := 1; i <= len(base); i++ {
			pwd := base[:i]
			got := calculateEntropy(pwd, classifyCharSets(pwd))
			if got < prev-1e-9 {
				t.Errorf("entropy decreased at %q: %.4f < %.4f", pwd, got, prev)
			}
			prev = got
		}
	}
}

func TestHasSimplePatterns(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"aaa", true},
		{"xx11aa", false},
		{"abc", true},
		{"xyz123", true},
		{"135790", false},
		{"qwerty", true},
		{"asdfgh", true},
		{"zxcvbn", true},
		{"kwmrpzvx", false},
		{"PASSword", false},
		{"p4ssABCd", true},
	}

	for _, tc := range cases {
		if got := hasSimplePatterns(tc.password); got != tc.want {
			t.Errorf("hasSimplePatterns(%q): %v, want: %v", tc.password, got, tc.want)
		}
	}
}

func TestHasRepeatRun(t *testing.T) {
	if !hasRepeatRun("aaab") {
		t.Errorf("aaab should have a repeat run")
	}
	if hasRepeatRun("aabb") {
		t.Errorf("aabb should not have a repeat run")
	}
	if !hasRepeatRun(strings.Repeat("1", 3)) {
		t.Errorf("111 should have a repeat run")
	}
}

func TestAlphabetSize(t *testing.T) {
	cases := []struct {
		password string
		want     int
	}{
		{"abc", 26},
		{"ABC", 26},
		{"123", 10},
		{"!?.", 32},
		{"aB3!", 94},
		{"", 0},
	}

	for _, tc := range cases {
		if got := alphabetSize(classifyCharSets(tc.password)); got != tc.want {
			t.Errorf("alphabetSize(%q): %d, want: %d", tc.password, got, tc.want)
		}
	}
}
