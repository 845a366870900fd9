// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "passlab [COMMAND] [OPTIONS]",
		Short: "Analyze password strength and projected brute-force crack times",
		Long: "Password Security Lab. Scores passwords, projects crack times under plaintext, MD5, " +
			"SHA256, bcrypt and Argon2 storage, suggests improvements, generates random passwords " +
			"and audits whole wordlists. For education; never a substitute for a password manager.",
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	rootCmd.PersistentFlags().Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
}

func Execute() error {
	return rootCmd.Execute()
}
