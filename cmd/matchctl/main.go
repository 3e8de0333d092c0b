// Package main provides matchctl, an offline runner for the matching engine
// over a JSON export of user profiles.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "matchctl",
	Short:         "Run compatibility matching against a profile export",
	Long:          "matchctl scores profiles from a JSON export with the same engine and configuration as the matching API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var profilesPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&profilesPath, "profiles", "p", "", "Path to a JSON array of user profiles")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
