// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package analyzer

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Attack throughputs in hashes per second, modeled on hashcat benchmarks
// for a modern GPU rig (RTX 3090 class). Policy constants: recalibrate
// here, not in the estimator.
const (
	speedPlaintext = 1e15 // comparison operation, effectively instant
	speedMD5       = 1.8e11
	speedSHA256    = 6.5e10
	speedBcrypt    = 8.5e4 // cost factor 12
	speedArgon2    = 1e3   // recommended parameters
)

// keyspaceBitsCap bounds the exponent fed to math.Pow so time_seconds
// stays a finite float64 even for very long passwords.
const keyspaceBitsCap = 1000

// CrackTime is the brute-force projection for one storage scheme.
type CrackTime struct {
	Algorithm   string  `json:"algorithm"`
	AttackSpeed float64 `json:"attack_speed"`
	TimeSeconds float64 `json:"time_seconds"`
	TimeHuman   string  `json:"time_human"`
}

// attackSpeeds fixes the output order: fastest storage scheme first.
var attackSpeeds = []struct {
	algorithm string
	speed     float64
}{
	{"plaintext", speedPlaintext},
	{"md5", speedMD5},
	{"sha256", speedSHA256},
	{"bcrypt", speedBcrypt},
	{"argon2", speedArgon2},
}

// CrackTimes projects average-case brute-force time for all five schemes.
// The keyspace is 2^entropyBits, the same effective keyspace the scorer
// uses; a blocklisted password collapses to a single guess. Average case
// models searching half the keyspace.
func CrackTimes(strength Strength) []CrackTime {
	keyspace := 1.0
	if !strength.IsCommon {
		keyspace = math.Pow(2, math.Min(strength.Entropy, keyspaceBitsCap))
	}
	avgAttempts := keyspace / 2

	times := make([]CrackTime, 0, len(attackSpeeds))
	for _, as := range attackSpeeds {
		seconds := avgAttempts / as.speed
		times = append(times, CrackTime{
			Algorithm:   as.algorithm,
			AttackSpeed: as.speed,
			TimeSeconds: seconds,
			TimeHuman:   FormatDuration(seconds),
		})
	}
	return times
}

const (
	secondsPerMinute  = 60
	secondsPerHour    = 3600
	secondsPerDay     = 86400
	secondsPerYear    = 31536000
	secondsPerCentury = secondsPerYear * 100

	// Saturation bound for the display label.
	maxDisplayCenturies = 1e12
)

var durationPrinter = message.NewPrinter(language.English)

// FormatDuration renders seconds with the largest unit that keeps the
// value at or above 1, saturating at a bounded label for astronomically
// large keyspaces.
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 1:
		return "instant"
	case seconds < secondsPerMinute:
		return durationPrinter.Sprintf("%.2f seconds", seconds)
	case seconds < secondsPerHour:
		return durationPrinter.Sprintf("%.2f minutes", seconds/secondsPerMinute)
	case seconds < secondsPerDay:
		return durationPrinter.Sprintf("%.2f hours", seconds/secondsPerHour)
	case seconds < secondsPerYear:
		return durationPrinter.Sprintf("%.2f days", seconds/secondsPerDay)
	case seconds < secondsPerCentury:
		return durationPrinter.Sprintf("%.2f years", seconds/secondsPerYear)
	case seconds < secondsPerCentury*maxDisplayCenturies:
		return durationPrinter.Sprintf("%.2f centuries", seconds/secondsPerCentury)
	default:
		return "more than a trillion centuries"
	}
}
