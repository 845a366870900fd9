// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package analyzer

// Level is the discrete strength classification derived from the score.
type Level string

const (
	LevelVeryWeak   Level = "Very Weak"
	LevelWeak       Level = "Weak"
	LevelModerate   Level = "Moderate"
	LevelStrong     Level = "Strong"
	LevelVeryStrong Level = "Very Strong"
)

// Scoring policy. These are calibration constants, not derived values;
// adjust them here without touching the algorithm below.
const (
	// Length component, up to 35 points.
	lengthPoints16 = 35
	lengthPoints12 = 25
	lengthPoints8  = 15
	lengthPoints6  = 5

	// Character diversity, up to 30 points (4 classes).
	pointsPerCharClass = 7.5

	// Entropy component, up to 20 points.
	entropyPoints80 = 20
	entropyPoints60 = 15
	entropyPoints40 = 10
	entropyPoints28 = 5

	// Best practice bonuses, up to 15 points.
	bonusLongAndDiverse = 10
	bonusNoRepeats      = 5

	// Penalties.
	penaltyCommonPassword = 50
	penaltySimplePattern  = 20
)

// Strength is the full scoring result for a single password.
type Strength struct {
	Score    int            `json:"score"`
	Level    Level          `json:"level"`
	Length   int            `json:"length"`
	Entropy  float64        `json:"entropy"`
	CharSets CharSetProfile `json:"char_sets"`
	IsCommon bool           `json:"is_common"`
}

// calculateScore combines length, diversity, entropy, penalties and best
// practice bonuses into a 0-100 score. The component order matters: the
// common-password and pattern penalties floor at zero before the best
// practice bonuses are applied, so a blocklisted password can still earn a
// few points for otherwise good habits.
func calculateScore(password string, length int, profile CharSetProfile, entropy float64, isCommon bool) int {
	score := 0.0

	switch {
	case length >= 16:
		score += lengthPoints16
	case length >= 12:
		score += lengthPoints12
	case length >= 8:
		score += lengthPoints8
	case length >= 6:
		score += lengthPoints6
	}

	score += float64(profile.Count()) * pointsPerCharClass

	switch {
	case entropy >= 80:
		score += entropyPoints80
	case entropy >= 60:
		score += entropyPoints60
	case entropy >= 40:
		score += entropyPoints40
	case entropy >= 28:
		score += entropyPoints28
	}

	if isCommon {
		score = max(0, score-penaltyCommonPassword)
	}
	if hasSimplePatterns(password) {
		score = max(0, score-penaltySimplePattern)
	}

	if length >= 12 && profile.Count() >= 3 {
		score += bonusLongAndDiverse
	}
	if !hasRepeatRun(password) {
		score += bonusNoRepeats
	}

	return clampScore(score)
}

func clampScore(score float64) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return int(score)
}

// levelForScore maps a clamped score to its level using fixed,
// non-overlapping thresholds.
func levelForScore(score int) Level {
	switch {
	case score >= 80:
		return LevelVeryStrong
	case score >= 60:
		return LevelStrong
	case score >= 40:
		return LevelModerate
	case score >= 20:
		return LevelWeak
	default:
		return LevelVeryWeak
	}
}
