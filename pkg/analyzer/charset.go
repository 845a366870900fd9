// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package analyzer

import "unicode"

// CharSetProfile records which character classes appear in a password.
type CharSetProfile struct {
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Digits    bool `json:"digits"`
	Special   bool `json:"special"`
}

// classifyCharSets scans the password once. Anything that is not a letter
// or a decimal digit counts as special, including non-ASCII symbols.
func classifyCharSets(password string) CharSetProfile {
	var p CharSetProfile
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			p.Lowercase = true
		case unicode.IsUpper(r):
			p.Uppercase = true
		case unicode.IsDigit(r):
			p.Digits = true
		default:
			p.Special = true
		}
	}
	return p
}

// Count returns the number of distinct character classes present.
func (p CharSetProfile) Count() int {
	n := 0
	for _, b := range []bool{p.Lowercase, p.Uppercase, p.Digits, p.Special} {
		if b {
			n++
		}
	}
	return n
}
