package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imadgeboyega/kiekky-matcher/internal/dating"
)

var detailsCmd = &cobra.Command{
	Use:   "details",
	Short: "Explain the compatibility of one pair of profiles",
	RunE:  runDetails,
}

var (
	detailsUserID      string
	detailsCandidateID string
)

func init() {
	detailsCmd.Flags().StringVarP(&detailsUserID, "user", "u", "", "Requesting user id (required)")
	detailsCmd.Flags().StringVarP(&detailsCandidateID, "candidate", "c", "", "Candidate user id (required)")

	for _, name := range []string{"user", "candidate"} {
		if err := detailsCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	rootCmd.AddCommand(detailsCmd)
}

func runDetails(cmd *cobra.Command, _ []string) error {
	svc, err := newService(profilesPath, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	result, err := svc.MatchDetails(cmd.Context(), detailsUserID, detailsCandidateID)
	if err != nil {
		return fmt.Errorf("details for %s -> %s: %w", detailsUserID, detailsCandidateID, err)
	}
	return writeJSON(cmd, dating.CompatibilityResponse{Compatibility: result})
}
