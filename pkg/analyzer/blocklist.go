// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package analyzer

import (
	_ "embed"
	"strings"
)

//go:embed common_passwords.txt
var embeddedBlocklist string

// blocklist is an immutable, lowercased set of known weak passwords. It is
// built once per Analyzer and never mutated, so concurrent lookups need no
// locking.
type blocklist map[string]struct{}

func newBlocklist(extra []string) blocklist {
	bl := make(blocklist, 512+len(extra))
	bl.addLines(embeddedBlocklist)
	for _, word := range extra {
		bl.add(word)
	}
	return bl
}

func (b blocklist) addLines(raw string) {
	for _, line := range strings.Split(raw, "\n") {
		b.add(line)
	}
}

func (b blocklist) add(word string) {
	word = strings.TrimSpace(word)
	if word == "" || strings.HasPrefix(word, "#") {
		return
	}
	b[strings.ToLower(word)] = struct{}{}
}

// contains is an exact, case-insensitive membership check. No fuzzy
// matching: "password1" does not match "password".
func (b blocklist) contains(password string) bool {
	_, ok := b[strings.ToLower(password)]
	return ok
}
