package cli

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/nbutton23/zxcvbn-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"passlab/internal/util"
	"passlab/pkg/analyzer"
)

var (
	analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Score a password and project its crack times",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				// Dummy string
				return analyzeCommand("")
			} else {
				return analyzeCommand(args[0])
			}
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	analyzeCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. Reads masked passwords from the terminal until ^C")
	analyzeCmd.Flags().StringVar(&blocklistFile, "blocklist", "", "Path to a wordlist that supplements the embedded common-password list")

	rootCmd.AddCommand(analyzeCmd)
}

func analyzeCommand(password string) (err error) {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	engine, err := buildAnalyzer(blocklistFile, "")
	if err != nil {
		return err
	}

	if interactive {
		prompt := promptui.Prompt{
			Label: "Password",
			Mask:  '*',
			Validate: func(input string) error {
				if len(input) == 0 {
					return errors.New("please enter a valid password")
				}
				return nil
			},
		}

		log.Info().Msgf("Running interactive session. ^C to exit")
		if err = runAnalyzeSession(prompt, engine); err != nil {
			if err.Error() == "^C" || err.Error() == "^D" {
				log.Info().Msgf("Goodbye")
			} else {
				log.Error().Err(err).Msgf("Error during interactive session")
			}
			// No return to avoid the default cobra error message
			return nil
		}

		return
	}

	return printAnalysis(password, engine)
}

func runAnalyzeSession(prompt promptui.Prompt, engine *analyzer.Analyzer) error {
	for {
		result, err := prompt.Run()
		if err != nil {
			return err
		}

		if err = printAnalysis(result, engine); err != nil {
			log.Error().Err(err).Msg("Error during analysis")
		}
	}
}

func printAnalysis(password string, engine *analyzer.Analyzer) error {
	analysis, err := engine.Analyze(password)
	if err != nil {
		return err
	}

	s := analysis.Strength
	fmt.Printf("Score:    %d/100 (%s)\n", s.Score, s.Level)
	fmt.Printf("Length:   %d\n", s.Length)
	fmt.Printf("Entropy:  %.2f bits\n", s.Entropy)
	fmt.Printf("Classes:  lowercase=%t uppercase=%t digits=%t special=%t\n",
		s.CharSets.Lowercase, s.CharSets.Uppercase, s.CharSets.Digits, s.CharSets.Special)
	if s.IsCommon {
		fmt.Println("WARNING:  password found in the common-password blocklist")
	}

	fmt.Println("\nEstimated crack times (average case):")
	for _, ct := range analysis.CrackTimes {
		fmt.Printf("  %-10s %s\n", ct.Algorithm, ct.TimeHuman)
	}

	fmt.Println("\nSuggestions:")
	for _, suggestion := range analysis.Suggestions {
		fmt.Printf("  - %s\n", suggestion)
	}

	// Second opinion from a pattern-matching model.
	entropy := zxcvbn.PasswordStrength(password, nil)
	fmt.Printf("\nzxcvbn score: %d/4, crack time %s\n", entropy.Score, entropy.CrackTimeDisplay)

	return nil
}
