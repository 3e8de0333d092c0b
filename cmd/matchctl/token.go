package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/imadgeboyega/kiekky-matcher/internal/common/utils"
	"github.com/imadgeboyega/kiekky-matcher/internal/config"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an access token for local testing of the API",
	RunE:  runToken,
}

var (
	tokenUserID string
	tokenTTL    time.Duration
)

func init() {
	tokenCmd.Flags().StringVarP(&tokenUserID, "user", "u", "", "User id to embed (required)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime")

	if err := tokenCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if cfg.IsProduction() {
		return fmt.Errorf("refusing to mint tokens in production")
	}

	token, err := utils.GenerateJWT(tokenUserID, tokenTTL, cfg.JWTSecret)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
