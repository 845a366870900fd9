package api

import "passlab/pkg/analyzer"

// envelope is the uniform response wrapper for every route.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type analyzeRequest struct {
	Password string `json:"password" binding:"required"`
}

type analyzeResponse struct {
	Strength    analyzer.Strength    `json:"strength"`
	CrackTimes  []analyzer.CrackTime `json:"crack_times"`
	Suggestions []string             `json:"suggestions"`
	Hashes      map[string]string    `json:"hashes"`
	Zxcvbn      *zxcvbnStrength      `json:"zxcvbn,omitempty"`
}

// zxcvbnStrength is a supplementary estimate from a different model, shown
// next to the engine's own score for comparison.
type zxcvbnStrength struct {
	Score            int     `json:"score"`
	CrackTime        float64 `json:"crack_time"`
	CrackTimeDisplay string  `json:"crack_time_display"`
}

// generateRequest uses pointer bools so an omitted class defaults to true
// while an explicit false is honored.
type generateRequest struct {
	Length    *int  `json:"length"`
	Lowercase *bool `json:"include_lowercase"`
	Uppercase *bool `json:"include_uppercase"`
	Digits    *bool `json:"include_digits"`
	Special   *bool `json:"include_special"`
}

type generateResponse struct {
	Password string         `json:"password"`
	Score    int            `json:"score"`
	Level    analyzer.Level `json:"level"`
	Length   int            `json:"length"`
	Entropy  float64        `json:"entropy"`
}

type improveRequest struct {
	Password string `json:"password" binding:"required"`
}

type improveResponse struct {
	Original     string                 `json:"original"`
	Improvements []analyzer.Improvement `json:"improvements"`
}

type healthResponse struct {
	Status          string `json:"status"`
	Argon2Available bool   `json:"argon2_available"`
	BlocklistSize   int    `json:"blocklist_size"`
}
