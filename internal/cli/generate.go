package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"passlab/internal/util"
	"passlab/pkg/analyzer"
)

var (
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password satisfying character class constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	generateCmd.Flags().IntVarP(&genLength, "length", "l", 16, "Length of the generated password. Between 8 and 128")
	generateCmd.Flags().BoolVar(&genNoLower, "no-lowercase", false, "Exclude lowercase letters")
	generateCmd.Flags().BoolVar(&genNoUpper, "no-uppercase", false, "Exclude uppercase letters")
	generateCmd.Flags().BoolVar(&genNoDigit, "no-digits", false, "Exclude digits")
	generateCmd.Flags().BoolVar(&genNoSpec, "no-special", false, "Exclude special characters")

	rootCmd.AddCommand(generateCmd)
}

func generateCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	engine := analyzer.New()
	spec := analyzer.GenerateSpec{
		Length:    genLength,
		Lowercase: !genNoLower,
		Uppercase: !genNoUpper,
		Digits:    !genNoDigit,
		Special:   !genNoSpec,
	}

	password, err := engine.Generate(spec)
	if err != nil {
		return err
	}

	strength, err := engine.Strength(password)
	if err != nil {
		return err
	}

	fmt.Println(password)
	fmt.Printf("Score: %d/100 (%s), entropy %.2f bits\n", strength.Score, strength.Level, strength.Entropy)
	return nil
}
