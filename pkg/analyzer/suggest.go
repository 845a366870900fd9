// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package analyzer

import (
	"fmt"
	"unicode"
)

// Advisory texts. Severity is carried by the textual marker, not by a
// separate field, so the list stays a plain ordered []string on the wire.
const (
	suggestCommon       = "CRITICAL: this is a commonly used password - change it immediately"
	suggestUppercase    = "Add uppercase letters (A-Z)"
	suggestLowercase    = "Add lowercase letters (a-z)"
	suggestDigits       = "Add numbers (0-9)"
	suggestSpecial      = "Add special characters (!@#$%^&*)"
	suggestPatterns     = "Avoid predictable patterns (abc, 123, aaa, keyboard rows)"
	suggestRepeats      = "Avoid repeating the same character multiple times"
	suggestDictionary   = "Avoid single dictionary words - use passphrases or random characters"
	suggestPassphrase   = "Best practice: use a passphrase (e.g. 'Correct-Horse-Battery-Staple-2024!')"
	suggestManager      = "Best practice: use a password manager to generate and store strong passwords"
	suggestNoReuse      = "Best practice: never reuse passwords across different accounts"
	suggestExcellent    = "Excellent password. Maintain this security level for all accounts"
	minRecommendedChars = 12
	goodLengthChars     = 16
)

// Suggest evaluates the advisory rules in fixed priority order. Rules are
// independent and never short-circuit each other; only the positive
// acknowledgment requires that no other rule fired.
func (a *Analyzer) Suggest(password string, strength Strength) []string {
	var suggestions []string

	if strength.IsCommon {
		suggestions = append(suggestions, suggestCommon)
	}

	if !strength.CharSets.Uppercase {
		suggestions = append(suggestions, suggestUppercase)
	}
	if !strength.CharSets.Lowercase {
		suggestions = append(suggestions, suggestLowercase)
	}
	if !strength.CharSets.Digits {
		suggestions = append(suggestions, suggestDigits)
	}
	if !strength.CharSets.Special {
		suggestions = append(suggestions, suggestSpecial)
	}

	if strength.Length < minRecommendedChars {
		suggestions = append(suggestions,
			fmt.Sprintf("Increase length to at least %d characters (current: %d)", minRecommendedChars, strength.Length))
	} else if strength.Length < goodLengthChars {
		suggestions = append(suggestions,
			fmt.Sprintf("Consider increasing length to %d+ characters for better security (current: %d)", goodLengthChars, strength.Length))
	}

	if hasSimplePatterns(password) {
		suggestions = append(suggestions, suggestPatterns)
	}
	if hasRepeatRun(password) {
		suggestions = append(suggestions, suggestRepeats)
	}
	if strength.Length >= 4 && isAllLetters(password) {
		suggestions = append(suggestions, suggestDictionary)
	}

	if len(suggestions) > 0 {
		suggestions = append(suggestions, suggestPassphrase, suggestManager, suggestNoReuse)
		return suggestions
	}

	return []string{suggestExcellent}
}

func isAllLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}
