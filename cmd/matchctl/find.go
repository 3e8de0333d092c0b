package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imadgeboyega/kiekky-matcher/internal/common/utils"
	"github.com/imadgeboyega/kiekky-matcher/internal/dating"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Rank every profile against one user",
	RunE:  runFind,
}

var (
	findUserID    string
	findThreshold int
	findDetails   bool
	findLimit     int
)

func init() {
	findCmd.Flags().StringVarP(&findUserID, "user", "u", "", "Requesting user id (required)")
	findCmd.Flags().IntVar(&findThreshold, "min-threshold", -1, "Minimum score to keep (default: configured threshold)")
	findCmd.Flags().BoolVar(&findDetails, "details", false, "Include the per-factor breakdown")
	findCmd.Flags().IntVar(&findLimit, "limit", 0, "Maximum number of matches to print")

	if err := findCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, _ []string) error {
	params := &dating.FindMatchesParams{IncludeDetails: findDetails, Limit: findLimit}
	if cmd.Flags().Changed("min-threshold") {
		t := findThreshold
		params.MinThreshold = &t
	}
	if err := utils.ValidateStruct(params); err != nil {
		return err
	}

	svc, err := newService(profilesPath, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	summary, err := svc.FindMatches(cmd.Context(), findUserID, params)
	if err != nil {
		return fmt.Errorf("find matches for %s: %w", findUserID, err)
	}
	return writeJSON(cmd, summary)
}
