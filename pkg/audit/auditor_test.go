package audit

import (
	"strings"
	"testing"

	"passlab/pkg/analyzer"
)

func TestAuditorProcess(t *testing.T) {
	wordlist := strings.Join([]string{
		"password",
		"123456",
		"kwmrpzvx",
		"Tr0ub4dor&3xtra!",
		"",
		"K9#mQz7!Wr2$Lp5&Tx8@",
	}, "\n")

	auditor := New(analyzer.New(), 2)
	report, err := auditor.Process(strings.NewReader(wordlist))
	if err != nil {
		t.Fatalf("Process should not fail: %s", err)
	}

	if report.Total != 5 {
		t.Errorf("report total: %d, want: 5 (blank line skipped)", report.Total)
	}
	if report.CommonCount != 2 {
		t.Errorf("common count: %d, want: 2", report.CommonCount)
	}

	counted := 0
	for _, n := range report.LevelCounts {
		counted += n
	}
	if counted != report.Total {
		t.Errorf("level counts sum to %d, want: %d", counted, report.Total)
	}

	if report.AverageScore <= 0 || report.AverageScore > 100 {
		t.Errorf("average score out of range: %f", report.AverageScore)
	}
	if report.MedianScore > report.P90Score {
		t.Errorf("median (%f) should not exceed p90 (%f)", report.MedianScore, report.P90Score)
	}

	if len(report.Weakest) != 5 {
		t.Errorf("weakest sample: %d entries, want: 5", len(report.Weakest))
	}
	for i := 1; i < len(report.Weakest); i++ {
		if report.Weakest[i].Score < report.Weakest[i-1].Score {
			t.Errorf("weakest entries should be sorted ascending by score")
		}
	}
	if report.Weakest[0].Password != "password" && report.Weakest[0].Password != "123456" {
		t.Errorf("weakest entry should be a blocklisted password, got %q", report.Weakest[0].Password)
	}
}

func TestAuditorEmptyInput(t *testing.T) {
	auditor := New(analyzer.New(), 0)
	report, err := auditor.Process(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Process should not fail: %s", err)
	}
	if report.Total != 0 {
		t.Errorf("empty input should produce an empty report, got total %d", report.Total)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}

	if got := percentile(sorted, 0.5); got != 30 {
		t.Errorf("median: %f, want: 30", got)
	}
	if got := percentile(sorted, 0.9); got != 50 {
		t.Errorf("p90: %f, want: 50", got)
	}
	if got := percentile(nil, 0.5); got != 0 {
		t.Errorf("empty percentile: %f, want: 0", got)
	}
}
