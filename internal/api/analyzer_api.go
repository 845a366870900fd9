// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nbutton23/zxcvbn-go"

	"passlab/pkg/analyzer"
)

// hashDisplayLimit truncates long digests for UI display.
const hashDisplayLimit = 60

type analyzerApi struct {
	engine *analyzer.Analyzer
}

// RegisterAnalyzerApi mounts the engine routes on the given group.
func RegisterAnalyzerApi(group *gin.RouterGroup, engine *analyzer.Analyzer) {
	a := &analyzerApi{engine: engine}

	group.POST("/analyze", a.analyze)
	group.POST("/generate", a.generate)
	group.POST("/improve", a.improve)
	group.GET("/algorithms", a.algorithms)
	group.GET("/examples", a.examples)
	group.GET("/health", a.health)
}

func (a *analyzerApi) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Password is required")
		return
	}

	analysis, err := a.engine.Analyze(req.Password)
	if err != nil {
		failErr(c, err)
		return
	}

	// Second opinion from a pattern-matching model, for comparison with
	// the engine's own fixed scoring policy.
	entropy := zxcvbn.PasswordStrength(req.Password, nil)

	ok(c, analyzeResponse{
		Strength:    analysis.Strength,
		CrackTimes:  analysis.CrackTimes,
		Suggestions: analysis.Suggestions,
		Hashes:      truncateHashes(analysis.Hashes),
		Zxcvbn: &zxcvbnStrength{
			Score:            entropy.Score,
			CrackTime:        entropy.CrackTime,
			CrackTimeDisplay: entropy.CrackTimeDisplay,
		},
	})
}

func (a *analyzerApi) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	spec := analyzer.DefaultGenerateSpec()
	if req.Length != nil {
		spec.Length = *req.Length
	}
	if req.Lowercase != nil {
		spec.Lowercase = *req.Lowercase
	}
	if req.Uppercase != nil {
		spec.Uppercase = *req.Uppercase
	}
	if req.Digits != nil {
		spec.Digits = *req.Digits
	}
	if req.Special != nil {
		spec.Special = *req.Special
	}

	password, err := a.engine.Generate(spec)
	if err != nil {
		failErr(c, err)
		return
	}

	strength, err := a.engine.Strength(password)
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, generateResponse{
		Password: password,
		Score:    strength.Score,
		Level:    strength.Level,
		Length:   strength.Length,
		Entropy:  strength.Entropy,
	})
}

func (a *analyzerApi) improve(c *gin.Context) {
	var req improveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Password is required")
		return
	}

	improvements, err := a.engine.Improve(req.Password)
	if err != nil {
		failErr(c, err)
		return
	}

	ok(c, improveResponse{Original: req.Password, Improvements: improvements})
}

func (a *analyzerApi) algorithms(c *gin.Context) {
	ok(c, analyzer.Algorithms())
}

func (a *analyzerApi) examples(c *gin.Context) {
	ok(c, analyzer.Examples())
}

func (a *analyzerApi) health(c *gin.Context) {
	ok(c, healthResponse{
		Status:          "healthy",
		Argon2Available: analyzer.Argon2Available(),
		BlocklistSize:   a.engine.BlocklistSize(),
	})
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, envelope{Success: false, Error: msg})
}

// failErr maps engine errors to HTTP statuses.
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analyzer.ErrEmptyPassword),
		errors.Is(err, analyzer.ErrNoClassSelected),
		errors.Is(err, analyzer.ErrLengthOutOfRange):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, analyzer.ErrBackendUnavailable):
		fail(c, http.StatusServiceUnavailable, err.Error())
	default:
		fail(c, http.StatusInternalServerError, err.Error())
	}
}

func truncateHashes(hashes map[string]string) map[string]string {
	out := make(map[string]string, len(hashes))
	for k, v := range hashes {
		if len(v) > hashDisplayLimit {
			v = v[:hashDisplayLimit] + "..."
		}
		out[k] = v
	}
	return out
}
