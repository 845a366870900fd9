package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"passlab/internal/util"
	"passlab/pkg/audit"
)

var (
	auditCmd = &cobra.Command{
		Use:   "audit",
		Short: "Score every password in a wordlist and report the strength distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			return auditCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	auditCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "Wordlist input file, one password per line (required)")
	auditCmd.MarkFlagRequired("in-file")
	auditCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of threads to use for the audit. If omitted or less than 1, defaults to the number of logical processors of the machine.")
	auditCmd.Flags().StringVar(&blocklistFile, "blocklist", "", "Path to a wordlist that supplements the embedded common-password list")

	rootCmd.AddCommand(auditCmd)
}

func auditCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)
	defer util.Stats()()

	abs, err := filepath.Abs(inputFile)
	if err != nil {
		log.Fatal().Err(err).Msgf("could not get absolute path of file")
	}

	file, err := os.Open(abs)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing wordlist file")
		}
	}(file)

	estimated := audit.EstimateFileLines(file)
	log.Info().Msgf("auditing approximately %d passwords from %s", estimated, abs)
	util.CheckRam(estimated)

	engine, err := buildAnalyzer(blocklistFile, "")
	if err != nil {
		return err
	}

	auditor := audit.New(engine, threads)
	report, err := auditor.Process(file)
	if err != nil {
		return err
	}

	printReport(report)
	return nil
}

func printReport(report *audit.Report) {
	p := message.NewPrinter(language.English)

	p.Printf("Audited %d passwords\n", report.Total)
	if report.Total == 0 {
		return
	}

	p.Printf("Common (blocklisted): %d\n", report.CommonCount)
	p.Printf("Average score: %.1f, median: %.0f, p90: %.0f\n",
		report.AverageScore, report.MedianScore, report.P90Score)

	fmt.Println("\nDistribution:")
	for _, level := range audit.LevelOrder {
		if n, present := report.LevelCounts[level]; present {
			p.Printf("  %-12s %d\n", level, n)
		}
	}

	fmt.Println("\nWeakest entries:")
	for _, entry := range report.Weakest {
		marker := ""
		if entry.IsCommon {
			marker = " (common)"
		}
		fmt.Printf("  %3d %-12s %s%s\n", entry.Score, entry.Level, entry.Password, marker)
	}
}
