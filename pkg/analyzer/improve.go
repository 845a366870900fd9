// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Improvement is one rewritten candidate, re-scored through the same
// scorer as every other password. The displayed score is never estimated.
type Improvement struct {
	Password    string `json:"password"`
	Score       int    `json:"score"`
	Level       Level  `json:"level"`
	Length      int    `json:"length"`
	Strategy    string `json:"strategy"`
	Description string `json:"description"`
}

const maxImprovements = 5

// leetReplacements substitutes each letter at most once, in this order.
var leetReplacements = []struct{ from, to string }{
	{"a", "@"}, {"e", "3"}, {"i", "!"}, {"o", "0"}, {"s", "$"}, {"t", "7"},
}

var (
	lengthSuffixes   = []string{"2024", "2025", "@123"}
	specialSuffixes  = []string{"!", "@", "#", "$", "%", "&", "*"}
	passphrasePrefix = []string{"Secure", "Strong", "Private", "Safe"}
)

// Improve builds a ranked set of stronger variants of the original
// password. Candidates are deduplicated (first occurrence wins), filtered
// so none scores below the original, sorted best first and capped at 5.
func (a *Analyzer) Improve(original string) ([]Improvement, error) {
	if original == "" {
		return nil, ErrEmptyPassword
	}

	origScore := a.strength(original).Score
	var candidates []Improvement

	add := func(password, strategy, description string) {
		if password == original {
			return
		}
		candidates = append(candidates, Improvement{
			Password:    password,
			Strategy:    strategy,
			Description: description,
		})
	}

	// Extend short passwords. Lengths count runes, matching Strength.Length.
	if utf8.RuneCountInString(original) < 16 {
		suffix, err := pick(lengthSuffixes)
		if err != nil {
			return nil, err
		}
		improved := original + suffix
		add(improved, "Added characters", fmt.Sprintf("Extended to %d characters", utf8.RuneCountInString(improved)))
	}

	profile := classifyCharSets(original)

	if !profile.Special {
		suffix, err := pick(specialSuffixes)
		if err != nil {
			return nil, err
		}
		add(original+suffix, "Added special character", "Increased complexity with symbols")
	}

	if !profile.Uppercase && original != "" {
		first, width := utf8.DecodeRuneInString(original)
		improved := string(unicode.ToUpper(first)) + original[width:]
		add(improved, "Added uppercase", "Capitalized first letter")
	}

	if !profile.Lowercase {
		c, err := randomChar(poolLowercase)
		if err != nil {
			return nil, err
		}
		add(original+string(c), "Added lowercase", "Appended a lowercase letter")
	}

	if !profile.Digits {
		n, err := randomInt(900)
		if err != nil {
			return nil, err
		}
		add(fmt.Sprintf("%s%d", original, 100+n), "Added numbers", "Appended numeric sequence")
	}

	// Leetspeak substitution, one replacement per letter.
	leet := original
	for _, r := range leetReplacements {
		leet = strings.Replace(leet, r.from, r.to, 1)
	}
	if leet != original {
		add(leet, "Character substitution", "Replaced letters with numbers/symbols")
	}

	// Passphrase wrap combines extension, casing, digits and symbols.
	if len(original) > 3 {
		word, err := pick(passphrasePrefix)
		if err != nil {
			return nil, err
		}
		n, err := randomInt(900)
		if err != nil {
			return nil, err
		}
		add(fmt.Sprintf("%s-%s-%d!", word, original, 100+n), "Passphrase creation", "Created memorable passphrase")
	}

	// Score, dedupe, drop anything not actually stronger than the input.
	seen := make(map[string]struct{}, len(candidates))
	kept := candidates[:0]
	for _, c := range candidates {
		if _, dup := seen[c.Password]; dup {
			continue
		}
		seen[c.Password] = struct{}{}

		s := a.strength(c.Password)
		if s.Score < origScore {
			continue
		}
		c.Score = s.Score
		c.Level = s.Level
		c.Length = s.Length
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})

	if len(kept) > maxImprovements {
		kept = kept[:maxImprovements]
	}
	return kept, nil
}

func pick(choices []string) (string, error) {
	i, err := randomInt(len(choices))
	if err != nil {
		return "", err
	}
	return choices[i], nil
}
