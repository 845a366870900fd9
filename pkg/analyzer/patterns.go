// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package analyzer

import (
	"strings"
	"unicode"
)

// Keyboard rows used for run detection, checked forwards and backwards.
var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

const (
	alphabetRun = "abcdefghijklmnopqrstuvwxyz"
	digitRun    = "0123456789"
)

// hasSimplePatterns reports whether the password contains any trivially
// guessable fragment: a character repeated 3+ times, an ascending
// alphabetical or digit run of 3, or a well-known keyboard walk.
func hasSimplePatterns(password string) bool {
	lower := lowerRunes(password)
	if hasRepeatRun(lower) {
		return true
	}

	for i := 0; i+3 <= len(lower); i++ {
		triple := lower[i : i+3]
		if !isASCII(triple) {
			continue
		}
		if strings.Contains(alphabetRun, triple) || strings.Contains(digitRun, triple) {
			return true
		}
	}

	for _, walk := range []string{"qwert", "asdf", "zxcv"} {
		if strings.Contains(lower, walk) {
			return true
		}
	}
	return false
}

// hasRepeatRun reports 3 or more identical consecutive runes.
func hasRepeatRun(s string) bool {
	runes := []rune(s)
	for i := 2; i < len(runes); i++ {
		if runes[i] == runes[i-1] && runes[i-1] == runes[i-2] {
			return true
		}
	}
	return false
}

// onKeyboardRow reports whether the three runes appear adjacent on a
// keyboard row, in either direction.
func onKeyboardRow(a, b, c rune) bool {
	triple := string([]rune{a, b, c})
	reversed := string([]rune{c, b, a})
	for _, row := range keyboardRows {
		if strings.Contains(row, triple) || strings.Contains(row, reversed) {
			return true
		}
	}
	return false
}

func lowerRunes(s string) string {
	return strings.Map(unicode.ToLower, s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
