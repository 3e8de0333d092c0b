// internal/matching/engine.go

// Package matching scores the compatibility of dating profiles.
//
// An Engine is immutable once built and holds no shared mutable state, so one
// instance can serve any number of concurrent requests.
package matching

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// DefaultMinThreshold is the lowest overall score kept by FindMatches.
const DefaultMinThreshold = 20

// Config tunes an Engine. Zero Weights, Workers, Now and Logger select
// their defaults; a zero MinThreshold keeps every match.
type Config struct {
	Weights           Weights
	MinThreshold      int
	Workers           int
	OrientationPolicy OrientationPolicy

	// Now supplies the reference time for age computation.
	Now func() time.Time
	// Logger receives reports about skipped candidates.
	Logger *log.Logger
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		Weights:           DefaultWeights(),
		MinThreshold:      DefaultMinThreshold,
		Workers:           runtime.GOMAXPROCS(0),
		OrientationPolicy: OrientationExact,
	}
}

// Engine runs the normalize, score, aggregate pipeline.
type Engine struct {
	weights      Weights
	minThreshold int
	workers      int
	orientation  OrientationPolicy
	now          func() time.Time
	logger       *log.Logger
}

// NewEngine validates cfg and builds an Engine.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Weights == (Weights{}) {
		cfg.Weights = DefaultWeights()
	}
	if err := cfg.Weights.Validate(); err != nil {
		return nil, err
	}
	if cfg.MinThreshold < 0 || cfg.MinThreshold > 100 {
		return nil, fmt.Errorf("minimum threshold must be between 0 and 100, got %d", cfg.MinThreshold)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	policy, err := ParseOrientationPolicy(string(cfg.OrientationPolicy))
	if err != nil {
		return nil, err
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	return &Engine{
		weights:      cfg.Weights,
		minThreshold: cfg.MinThreshold,
		workers:      cfg.Workers,
		orientation:  policy,
		now:          cfg.Now,
		logger:       cfg.Logger,
	}, nil
}

// Weights returns the factor weights in use.
func (e *Engine) Weights() Weights {
	return e.weights
}

// MinThreshold returns the default minimum score for FindMatches.
func (e *Engine) MinThreshold() int {
	return e.minThreshold
}

// Compare scores an already normalized pair. Evidence lists are only built
// when withEvidence is set; sub-scores are always computed.
func (e *Engine) Compare(requester, candidate *NormalizedProfile, withEvidence bool) CompatibilityResult {
	details := &Details{
		Interests:    scoreInterests(requester, candidate, withEvidence),
		Location:     scoreLocation(requester, candidate),
		Age:          scoreAge(requester, candidate),
		Relationship: scoreRelationship(requester, candidate),
		Orientation:  scoreOrientation(requester, candidate, e.orientation),
		Lifestyle:    scoreLifestyle(requester, candidate),
	}
	return Aggregate(details, e.weights)
}

// MatchDetails returns the full factor breakdown of requester against candidate.
func (e *Engine) MatchDetails(requester, candidate *UserProfile) (*CompatibilityResult, error) {
	asOf := e.now()
	a, err := Normalize(requester, asOf)
	if err != nil {
		return nil, fmt.Errorf("requester: %w", err)
	}
	b, err := Normalize(candidate, asOf)
	if err != nil {
		return nil, fmt.Errorf("candidate: %w", err)
	}

	result := e.Compare(a, b, true)
	return &result, nil
}
