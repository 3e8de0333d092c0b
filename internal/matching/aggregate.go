// internal/matching/aggregate.go

package matching

import (
	"fmt"
	"math"
)

// Tier cut points, inclusive on the lower bound.
const (
	HighTierMin   = 70
	MediumTierMin = 40
	LowTierMin    = 20
)

// Weights are the percentage contributions of each factor. They must sum to 100.
type Weights struct {
	Interests    int `json:"interests"`
	Location     int `json:"location"`
	Age          int `json:"age"`
	Relationship int `json:"relationship"`
	Orientation  int `json:"orientation"`
	Lifestyle    int `json:"lifestyle"`
}

// DefaultWeights returns the standard factor weighting.
func DefaultWeights() Weights {
	return Weights{
		Interests:    30,
		Location:     15,
		Age:          20,
		Relationship: 15,
		Orientation:  10,
		Lifestyle:    10,
	}
}

// Of returns the weight of one factor.
func (w Weights) Of(f Factor) int {
	switch f {
	case FactorInterests:
		return w.Interests
	case FactorLocation:
		return w.Location
	case FactorAge:
		return w.Age
	case FactorRelationship:
		return w.Relationship
	case FactorOrientation:
		return w.Orientation
	case FactorLifestyle:
		return w.Lifestyle
	}
	return 0
}

// Sum returns the total of all weights.
func (w Weights) Sum() int {
	total := 0
	for _, f := range Factors {
		total += w.Of(f)
	}
	return total
}

// Validate checks that every weight is non-negative and the total is 100.
func (w Weights) Validate() error {
	for _, f := range Factors {
		if w.Of(f) < 0 {
			return fmt.Errorf("weight for %s must be non-negative, got %d", f, w.Of(f))
		}
	}
	if sum := w.Sum(); sum != 100 {
		return fmt.Errorf("factor weights must sum to 100, got %d", sum)
	}
	return nil
}

// Aggregate combines factor sub-scores into an overall score and tier.
// Factors with no data still count with a zero score, so sparse profiles are
// never rescaled upward.
func Aggregate(details *Details, weights Weights) CompatibilityResult {
	weighted := 0
	for _, f := range Factors {
		weighted += weights.Of(f) * details.Score(f)
	}

	overall := int(math.Round(float64(weighted) / 100))
	overall = max(0, min(100, overall))

	return CompatibilityResult{
		OverallScore: overall,
		Tier:         ClassifyTier(overall),
		Details:      details,
	}
}

// ClassifyTier maps an overall score to its tier.
func ClassifyTier(score int) Tier {
	switch {
	case score >= HighTierMin:
		return TierHigh
	case score >= MediumTierMin:
		return TierMedium
	case score >= LowTierMin:
		return TierLow
	default:
		return TierMinimal
	}
}
