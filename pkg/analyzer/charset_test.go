package analyzer

import "testing"

func TestClassifyCharSets(t *testing.T) {
	cases := []struct {
		password string
		want     CharSetProfile
	}{
		{"", CharSetProfile{}},
		{"abc", CharSetProfile{Lowercase: true}},
		{"ABC", CharSetProfile{Uppercase: true}},
		{"123", CharSetProfile{Digits: true}},
		{"!@#", CharSetProfile{Special: true}},
		{"aB3!", CharSetProfile{Lowercase: true, Uppercase: true, Digits: true, Special: true}},
		// Non-ASCII symbols land in the special bucket.
		{"añ", CharSetProfile{Lowercase: true}},
		{"a£", CharSetProfile{Lowercase: true, Special: true}},
	}

	for _, tc := range cases {
		if got := classifyCharSets(tc.password); got != tc.want {
			t.Errorf("classifyCharSets(%q): %+v, want: %+v", tc.password, got, tc.want)
		}
	}
}

func TestCharSetCount(t *testing.T) {
	if got := (CharSetProfile{}).Count(); got != 0 {
		t.Errorf("empty profile count: %d, want 0", got)
	}
	full := CharSetProfile{Lowercase: true, Uppercase: true, Digits: true, Special: true}
	if got := full.Count(); got != 4 {
		t.Errorf("full profile count: %d, want 4", got)
	}
}

func TestBlocklist(t *testing.T) {
	a := New()

	cases := []struct {
		password string
		want     bool
	}{
		{"password", true},
		{"PASSWORD", true},
		{"qwerty", true},
		{"letmein", true},
		{"password!", true},
		// Exact match only, no fuzzy or substring matching.
		{"passwordx", false},
		{"passwor", false},
		{"Tr0ub4dor&3xtra!", false},
	}

	for _, tc := range cases {
		if got := a.IsCommon(tc.password); got != tc.want {
			t.Errorf("IsCommon(%q): %v, want: %v", tc.password, got, tc.want)
		}
	}

	if a.BlocklistSize() < 100 {
		t.Errorf("embedded blocklist suspiciously small: %d entries", a.BlocklistSize())
	}
}

func TestBlocklistExtraWords(t *testing.T) {
	a := New(WithExtraWords([]string{"CompanyName2024"}))

	if !a.IsCommon("companyname2024") {
		t.Errorf("extra words should be matched case-insensitively")
	}
	if New().IsCommon("companyname2024") {
		t.Errorf("extra words must not leak into other instances")
	}
}
