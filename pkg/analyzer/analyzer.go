// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package analyzer scores password strength, models brute-force crack
// times under several storage schemes, and generates suggestions,
// improvement candidates and random passwords. All operations are pure
// and stateless; the only shared state is the read-only blocklist built
// at construction, so a single Analyzer is safe for concurrent use.
//
// Passwords are never retained, logged or transmitted by this package.
package analyzer

import "math"

// Analyzer is the engine facade. The zero value is not usable; build one
// with New.
type Analyzer struct {
	blocklist blocklist
}

// Option configures an Analyzer.
type Option func(*options)

type options struct {
	extraWords []string
}

// WithExtraWords supplements the embedded common-password list with
// additional entries, e.g. loaded from a wordlist file at startup.
func WithExtraWords(words []string) Option {
	return func(o *options) {
		o.extraWords = append(o.extraWords, words...)
	}
}

// New builds an Analyzer. The embedded blocklist is parsed once here.
func New(opts ...Option) *Analyzer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Analyzer{blocklist: newBlocklist(o.extraWords)}
}

// Analysis bundles everything a single analyze call produces.
type Analysis struct {
	Strength    Strength          `json:"strength"`
	CrackTimes  []CrackTime       `json:"crack_times"`
	Suggestions []string          `json:"suggestions"`
	Hashes      map[string]string `json:"hashes"`
}

// Strength scores a single password. It is the authoritative scorer used
// by every other operation. Fails with ErrEmptyPassword on empty input.
func (a *Analyzer) Strength(password string) (Strength, error) {
	if password == "" {
		return Strength{}, ErrEmptyPassword
	}
	return a.strength(password), nil
}

func (a *Analyzer) strength(password string) Strength {
	length := len([]rune(password))
	profile := classifyCharSets(password)
	entropy := calculateEntropy(password, profile)
	isCommon := a.blocklist.contains(password)
	score := calculateScore(password, length, profile, entropy, isCommon)

	return Strength{
		Score:    score,
		Level:    levelForScore(score),
		Length:   length,
		Entropy:  round2(entropy),
		CharSets: profile,
		IsCommon: isCommon,
	}
}

// Analyze runs the full pipeline: scoring, crack times, suggestions and
// demonstration hashes.
func (a *Analyzer) Analyze(password string) (*Analysis, error) {
	strength, err := a.Strength(password)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Strength:    strength,
		CrackTimes:  CrackTimes(strength),
		Suggestions: a.Suggest(password, strength),
		Hashes:      Hashes(password),
	}, nil
}

// IsCommon is an exact, case-insensitive blocklist lookup.
func (a *Analyzer) IsCommon(password string) bool {
	return a.blocklist.contains(password)
}

// BlocklistSize reports how many entries the blocklist holds.
func (a *Analyzer) BlocklistSize() int {
	return len(a.blocklist)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
