package analyzer

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateSatisfiesSpec(t *testing.T) {
	a := New()
	spec := GenerateSpec{Length: 16, Lowercase: true, Uppercase: true, Digits: true, Special: true}

	for i := 0; i < 50; i++ {
		pwd, err := a.Generate(spec)
		if err != nil {
			t.Fatalf("Generate should not fail: %s", err)
		}
		if len(pwd) != spec.Length {
			t.Fatalf("generated length: %d, want: %d", len(pwd), spec.Length)
		}

		profile := classifyCharSets(pwd)
		if !profile.Lowercase || !profile.Uppercase || !profile.Digits || !profile.Special {
			t.Errorf("every requested class should be present in %q: %+v", pwd, profile)
		}

		union := poolLowercase + poolUppercase + poolDigits + poolSpecial
		for _, r := range pwd {
			if !strings.ContainsRune(union, r) {
				t.Errorf("character %q outside requested pools in %q", r, pwd)
			}
		}
	}
}

func TestGenerateSingleClass(t *testing.T) {
	a := New()

	for i := 0; i < 20; i++ {
		pwd, err := a.Generate(GenerateSpec{Length: 8, Digits: true})
		if err != nil {
			t.Fatalf("Generate should not fail: %s", err)
		}
		for _, r := range pwd {
			if !strings.ContainsRune(poolDigits, r) {
				t.Errorf("digits-only spec produced %q", pwd)
			}
		}
	}
}

func TestGenerateInvalidSpec(t *testing.T) {
	a := New()
	cases := []struct {
		name string
		spec GenerateSpec
		want error
	}{
		{"too short", GenerateSpec{Length: 7, Lowercase: true}, ErrLengthOutOfRange},
		{"too long", GenerateSpec{Length: 129, Lowercase: true}, ErrLengthOutOfRange},
		{"no classes", GenerateSpec{Length: 16}, ErrNoClassSelected},
	}

	for _, tc := range cases {
		if _, err := a.Generate(tc.spec); !errors.Is(err, tc.want) {
			t.Errorf("%s: error %v, want: %v", tc.name, err, tc.want)
		}
	}
}

func TestGeneratedPasswordScoresWell(t *testing.T) {
	a := New()
	pwd, err := a.Generate(DefaultGenerateSpec())
	if err != nil {
		t.Fatalf("Generate should not fail: %s", err)
	}

	s, err := a.Strength(pwd)
	if err != nil {
		t.Fatalf("Strength should not fail: %s", err)
	}
	if s.Level != LevelStrong && s.Level != LevelVeryStrong {
		t.Errorf("a generated 16-char full-class password should be strong, got %s (score %d)", s.Level, s.Score)
	}
}
