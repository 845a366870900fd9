// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package analyzer

import "math"

// Alphabet sizes per character class. The special size is an approximation
// of the printable ASCII symbols; anything exotic still counts as 32.
const (
	alphabetLowercase = 26
	alphabetUppercase = 26
	alphabetDigits    = 10
	alphabetSpecial   = 32
)

// patternCharWeight is the fixed discount for a character that merely
// extends a detected run (repeat, alphabetical, digit or keyboard-row
// sequence of 3+). A discounted character still contributes, so entropy
// stays monotonically non-decreasing in length.
const patternCharWeight = 0.5

func alphabetSize(p CharSetProfile) int {
	size := 0
	if p.Lowercase {
		size += alphabetLowercase
	}
	if p.Uppercase {
		size += alphabetUppercase
	}
	if p.Digits {
		size += alphabetDigits
	}
	if p.Special {
		size += alphabetSpecial
	}
	return size
}

// calculateEntropy returns the estimated brute-force entropy in bits:
// effectiveLength * log2(alphabetSize), where characters that extend a
// predictable run are discounted by patternCharWeight.
func calculateEntropy(password string, profile CharSetProfile) float64 {
	size := alphabetSize(profile)
	if size == 0 {
		return 0
	}
	return effectiveLength(password) * math.Log2(float64(size))
}

// effectiveLength weighs each rune of the password. The first two runes of
// any run are always full weight; from the third rune onward a repeated or
// sequential continuation is discounted.
func effectiveLength(password string) float64 {
	runes := []rune(lowerRunes(password))
	length := 0.0
	for i := range runes {
		if i >= 2 && extendsRun(runes[i-2], runes[i-1], runes[i]) {
			length += patternCharWeight
		} else {
			length++
		}
	}
	return length
}

// extendsRun reports whether c continues a predictable run started by a, b.
func extendsRun(a, b, c rune) bool {
	if a == b && b == c {
		return true
	}
	if isSequential(a, b, c) {
		return true
	}
	return onKeyboardRow(a, b, c)
}

// isSequential matches strictly ascending or descending runs within a
// single class, e.g. "abc", "cba", "123", "321".
func isSequential(a, b, c rune) bool {
	if b == a+1 && c == b+1 {
		return true
	}
	return b == a-1 && c == b-1
}
