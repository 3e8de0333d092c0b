package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/imadgeboyega/kiekky-matcher/internal/config"
	"github.com/imadgeboyega/kiekky-matcher/internal/dating"
	"github.com/imadgeboyega/kiekky-matcher/internal/matching"
)

func loadProfiles(path string) ([]*matching.UserProfile, error) {
	if path == "" {
		return nil, fmt.Errorf("--profiles is required")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file %s: %w", path, err)
	}

	var profiles []*matching.UserProfile
	if err := json.Unmarshal(content, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profiles JSON: %w", err)
	}
	return profiles, nil
}

// newService wires the profiles file into the same service the API uses.
// Skipped-candidate reports go to stderr.
func newService(path string, stderr io.Writer) (dating.Service, error) {
	profiles, err := loadProfiles(path)
	if err != nil {
		return nil, err
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	engineCfg := cfg.MatchingConfig()
	engineCfg.Logger = log.New(stderr, "", 0)
	engine, err := matching.NewEngine(engineCfg)
	if err != nil {
		return nil, err
	}

	return dating.NewService(dating.NewMemoryRepository(profiles), engine, nil, len(profiles)), nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
