package matching

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// refNow is the reference clock for every test in the package.
var refNow = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func bornYearsAgo(years int) Date {
	return NewDate(refNow.Year()-years, time.January, 1)
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Now = func() time.Time { return refNow }
	cfg.Logger = log.New(io.Discard, "", 0)
	e, err := NewEngine(cfg)
	require.NoError(t, err)
	return e
}

func mustNormalize(t *testing.T, p *UserProfile) *NormalizedProfile {
	t.Helper()
	n, err := Normalize(p, refNow)
	require.NoError(t, err)
	return n
}

// fullProfile is populated in every scored field.
func fullProfile(id string, age int) *UserProfile {
	return &UserProfile{
		ID:                id,
		FirstName:         "User " + id,
		DateOfBirth:       bornYearsAgo(age),
		PreferredAgeRange: RangeText("18-99"),
		Location:          "Lahore",
		Interests:         []string{"Music", "Travel", "Cooking"},
		Relationship:      "Long-term",
		Orientation:       "Straight",
		Smoking:           "Never",
		Alcohol:           "Socially",
	}
}
