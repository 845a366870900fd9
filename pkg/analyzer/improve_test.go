package analyzer

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestImproveNeverWeaker(t *testing.T) {
	a := New()
	passwords := []string{"password", "abc", "hello", "Pass123", "kwmrpzvx", "MyP@ssw0rd"}

	for _, pwd := range passwords {
		orig, err := a.Strength(pwd)
		if err != nil {
			t.Fatalf("Strength should not fail: %s", err)
		}

		improvements, err := a.Improve(pwd)
		if err != nil {
			t.Fatalf("Improve(%q) should not fail: %s", pwd, err)
		}
		if len(improvements) == 0 {
			t.Errorf("Improve(%q) should produce candidates", pwd)
		}

		for _, imp := range improvements {
			if imp.Score < orig.Score {
				t.Errorf("candidate %q (score %d) is weaker than original %q (score %d)",
					imp.Password, imp.Score, pwd, orig.Score)
			}
			if imp.Level != levelForScore(imp.Score) {
				t.Errorf("candidate level %s does not match score %d", imp.Level, imp.Score)
			}
		}
	}
}

func TestImproveOrderAndCap(t *testing.T) {
	a := New()
	improvements, err := a.Improve("hello")
	if err != nil {
		t.Fatalf("Improve should not fail: %s", err)
	}

	if len(improvements) > maxImprovements {
		t.Errorf("Improve returned %d candidates, cap is %d", len(improvements), maxImprovements)
	}
	for i := 1; i < len(improvements); i++ {
		if improvements[i].Score > improvements[i-1].Score {
			t.Errorf("candidates should be sorted best first: %d before %d",
				improvements[i-1].Score, improvements[i].Score)
		}
	}

	seen := make(map[string]struct{})
	for _, imp := range improvements {
		if _, dup := seen[imp.Password]; dup {
			t.Errorf("duplicate candidate %q", imp.Password)
		}
		seen[imp.Password] = struct{}{}
	}
}

func TestImproveEmptyPassword(t *testing.T) {
	a := New()
	if _, err := a.Improve(""); err != ErrEmptyPassword {
		t.Errorf("Improve(\"\") error: %v, want: %v", err, ErrEmptyPassword)
	}
}

func TestImproveMultibyteInput(t *testing.T) {
	a := New()
	improvements, err := a.Improve("ñabcdef")
	if err != nil {
		t.Fatalf("Improve should not fail: %s", err)
	}
	if len(improvements) == 0 {
		t.Fatalf("Improve should produce candidates")
	}

	for _, imp := range improvements {
		if !utf8.ValidString(imp.Password) {
			t.Errorf("candidate %q is not valid UTF-8", imp.Password)
		}
		if imp.Strategy == "Added uppercase" && !strings.HasPrefix(imp.Password, "Ñ") {
			t.Errorf("capitalization should upper-case the first rune, got %q", imp.Password)
		}
	}
}

func TestImproveCountsRunesNotBytes(t *testing.T) {
	a := New()
	// 15 runes, 16 bytes. Rune count is below the extension threshold.
	original := "ñ23456789012345"
	improvements, err := a.Improve(original)
	if err != nil {
		t.Fatalf("Improve should not fail: %s", err)
	}

	extended := false
	for _, imp := range improvements {
		if imp.Strategy == "Added characters" {
			extended = true
			if imp.Length != utf8.RuneCountInString(imp.Password) {
				t.Errorf("candidate length %d does not match rune count %d",
					imp.Length, utf8.RuneCountInString(imp.Password))
			}
		}
	}
	if !extended {
		t.Errorf("a %d-rune password should still be extended", utf8.RuneCountInString(original))
	}
}

func TestImproveRescoresThroughScorer(t *testing.T) {
	a := New()
	improvements, err := a.Improve("Pass123")
	if err != nil {
		t.Fatalf("Improve should not fail: %s", err)
	}

	for _, imp := range improvements {
		s, err := a.Strength(imp.Password)
		if err != nil {
			t.Fatalf("Strength should not fail: %s", err)
		}
		if imp.Score != s.Score {
			t.Errorf("candidate %q score %d does not match scorer output %d", imp.Password, imp.Score, s.Score)
		}
	}
}
