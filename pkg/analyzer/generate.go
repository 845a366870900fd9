// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package analyzer

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Character pools for generation. The special pool mirrors the symbols the
// classifier and suggestion texts advertise.
const (
	poolLowercase = "abcdefghijklmnopqrstuvwxyz"
	poolUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	poolDigits    = "0123456789"
	poolSpecial   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Generation length bounds.
const (
	minGenerateLength = 8
	maxGenerateLength = 128
)

// GenerateSpec constrains the random password generator. At least one
// class must be enabled.
type GenerateSpec struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Digits    bool
	Special   bool
}

// DefaultGenerateSpec is a 16-character password drawing on all classes.
func DefaultGenerateSpec() GenerateSpec {
	return GenerateSpec{Length: 16, Lowercase: true, Uppercase: true, Digits: true, Special: true}
}

// Generate produces a password of exactly spec.Length characters from a
// cryptographically secure source. Every requested class is guaranteed to
// appear at least once; the result is shuffled so the guaranteed
// characters do not cluster at the front.
func (a *Analyzer) Generate(spec GenerateSpec) (string, error) {
	if spec.Length < minGenerateLength || spec.Length > maxGenerateLength {
		return "", fmt.Errorf("%w: got %d", ErrLengthOutOfRange, spec.Length)
	}

	var pools []string
	if spec.Lowercase {
		pools = append(pools, poolLowercase)
	}
	if spec.Uppercase {
		pools = append(pools, poolUppercase)
	}
	if spec.Digits {
		pools = append(pools, poolDigits)
	}
	if spec.Special {
		pools = append(pools, poolSpecial)
	}
	if len(pools) == 0 {
		return "", ErrNoClassSelected
	}

	union := ""
	for _, pool := range pools {
		union += pool
	}

	// One character from each requested class first, then fill from the
	// union of all requested pools.
	password := make([]byte, 0, spec.Length)
	for _, pool := range pools {
		c, err := randomChar(pool)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}
	for len(password) < spec.Length {
		c, err := randomChar(union)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

func randomChar(pool string) (byte, error) {
	i, err := randomInt(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[i], nil
}

// randomInt returns a uniform value in [0, n) from crypto/rand.
func randomInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}

// shuffle is a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
