// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package audit scores every password in a wordlist concurrently and
// aggregates a strength distribution. It is the batch consumer of the
// analyzer; individual passwords are only surfaced in the weakest-entries
// sample, never persisted.
package audit

import (
	"bufio"
	"io"
	"math"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/jfcg/sorty/v2"
	"github.com/rs/zerolog/log"
	"github.com/thinhdanggroup/executor"

	"passlab/pkg/analyzer"
)

// weakestSample caps the number of worst entries kept in the report.
const weakestSample = 10

// LevelOrder lists strength levels weakest first, for report rendering.
var LevelOrder = []analyzer.Level{
	analyzer.LevelVeryWeak,
	analyzer.LevelWeak,
	analyzer.LevelModerate,
	analyzer.LevelStrong,
	analyzer.LevelVeryStrong,
}

// WeakEntry is one of the lowest scoring passwords found during an audit.
type WeakEntry struct {
	Password string
	Score    int
	Level    analyzer.Level
	IsCommon bool
}

// Report is the aggregate outcome of one audit run.
type Report struct {
	Total        int
	LevelCounts  map[analyzer.Level]int
	CommonCount  int
	AverageScore float64
	MedianScore  float64
	P90Score     float64
	Weakest      []WeakEntry
}

// Auditor runs wordlist audits with a bounded worker pool.
type Auditor struct {
	analyzer    *analyzer.Analyzer
	parallelism int

	mu          sync.Mutex
	scores      []float64
	levelCounts map[analyzer.Level]int
	commonCount int
	weakest     []WeakEntry

	stat *status
}

// New builds an Auditor. parallelism <= 0 selects one worker per CPU.
func New(a *analyzer.Analyzer, parallelism int) *Auditor {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	return &Auditor{
		analyzer:    a,
		parallelism: parallelism,
	}
}

// Process scores every line of r and returns the aggregated report. Blank
// lines are skipped; anything else is treated as a candidate password.
func (a *Auditor) Process(r io.Reader) (*Report, error) {
	a.scores = a.scores[:0]
	a.levelCounts = make(map[analyzer.Level]int)
	a.commonCount = 0
	a.weakest = nil

	// Bounded thread pool, same as the wordlist download path.
	pool, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * a.parallelism,
		NumWorkers:    a.parallelism,
	})
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	a.stat = newStatus()
	a.stat.BeginProgress()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err = pool.Publish(a.auditOne, line); err != nil {
			log.Panic().Err(err).Msg("there is a programming error here.")
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}

	pool.Wait()
	a.stat.Done()

	return a.report(), nil
}

// auditOne scores a single password and folds it into the aggregates.
func (a *Auditor) auditOne(password string) {
	strength, err := a.analyzer.Strength(password)
	if err != nil {
		log.Debug().Err(err).Msg("skipping unanalyzable wordlist entry")
		return
	}

	a.mu.Lock()
	a.scores = append(a.scores, float64(strength.Score))
	a.levelCounts[strength.Level]++
	if strength.IsCommon {
		a.commonCount++
	}
	a.recordWeakest(password, strength)
	a.mu.Unlock()

	a.stat.PasswordScored()
}

// recordWeakest keeps a bounded list of the lowest scores. Caller holds
// the mutex.
func (a *Auditor) recordWeakest(password string, s analyzer.Strength) {
	entry := WeakEntry{Password: password, Score: s.Score, Level: s.Level, IsCommon: s.IsCommon}
	if len(a.weakest) < weakestSample {
		a.weakest = append(a.weakest, entry)
		sort.Slice(a.weakest, func(i, j int) bool { return a.weakest[i].Score < a.weakest[j].Score })
		return
	}
	if entry.Score >= a.weakest[len(a.weakest)-1].Score {
		return
	}
	a.weakest[len(a.weakest)-1] = entry
	sort.Slice(a.weakest, func(i, j int) bool { return a.weakest[i].Score < a.weakest[j].Score })
}

func (a *Auditor) report() *Report {
	report := &Report{
		Total:       len(a.scores),
		LevelCounts: a.levelCounts,
		CommonCount: a.commonCount,
		Weakest:     a.weakest,
	}
	if report.Total == 0 {
		return report
	}

	sum := 0.0
	for _, s := range a.scores {
		sum += s
	}
	report.AverageScore = sum / float64(report.Total)

	// Parallel sort pays off on large wordlists.
	sorty.SortSlice(a.scores)
	report.MedianScore = percentile(a.scores, 0.5)
	report.P90Score = percentile(a.scores, 0.9)

	return report
}

// percentile expects sorted input.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// EstimateFileLines extrapolates the line count of a file from a sample,
// so callers can sanity check memory before a large audit.
func EstimateFileLines(f *os.File) uint64 {
	// 16MiB
	const estimateLimit = 1024 * 1024 * 16

	info, err := f.Stat()
	if err != nil {
		log.Fatal().Err(err).Msg("Error estimating lines of file")
	}

	size := info.Size()
	if size == 0 {
		return 0
	}
	sampleSize := int64(math.Min(float64(size), estimateLimit))
	buffer := make([]byte, sampleSize)
	if _, err = f.Read(buffer); err != nil {
		log.Fatal().Err(err).Msg("Error estimating lines of file")
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		log.Fatal().Err(err).Msg("Error estimating lines of file")
	}

	sample := 0
	for _, b := range buffer {
		if b == '\n' {
			sample++
		}
	}

	return uint64(sample) * (uint64(size) / uint64(sampleSize))
}
