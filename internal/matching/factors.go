// internal/matching/factors.go

package matching

import (
	"fmt"
	"math"
)

// OrientationPolicy decides whether two stated orientations are compatible.
type OrientationPolicy string

const (
	// OrientationExact requires the same orientation label on both sides.
	OrientationExact OrientationPolicy = "exact"
	// OrientationInclusive also treats fluid orientations as compatible with any stated one.
	OrientationInclusive OrientationPolicy = "inclusive"
)

// fluidOrientations match any stated orientation under OrientationInclusive.
var fluidOrientations = map[string]bool{
	"bi":        true,
	"bisexual":  true,
	"pan":       true,
	"pansexual": true,
	"queer":     true,
	"fluid":     true,
	"open":      true,
}

// ParseOrientationPolicy validates a policy name. Empty means exact.
func ParseOrientationPolicy(s string) (OrientationPolicy, error) {
	switch OrientationPolicy(normalizeText(s)) {
	case "", OrientationExact:
		return OrientationExact, nil
	case OrientationInclusive:
		return OrientationInclusive, nil
	}
	return "", fmt.Errorf("unknown orientation policy %q", s)
}

func (p OrientationPolicy) compatible(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if p == OrientationInclusive {
		return fluidOrientations[a] || fluidOrientations[b]
	}
	return false
}

// scoreInterests is the Jaccard similarity of the two interest sets scaled to 0-100.
// Common labels follow the requester's order and casing. When withEvidence is
// false only the count is kept.
func scoreInterests(requester, candidate *NormalizedProfile, withEvidence bool) InterestsDetail {
	d := InterestsDetail{Common: []string{}}
	if !requester.HasInterests() || !candidate.HasInterests() {
		return d
	}

	theirs := make(map[string]struct{}, len(candidate.Interests))
	for _, in := range candidate.Interests {
		theirs[in.Key] = struct{}{}
	}

	common := 0
	for _, in := range requester.Interests {
		if _, ok := theirs[in.Key]; !ok {
			continue
		}
		common++
		if withEvidence {
			d.Common = append(d.Common, in.Label)
		}
	}

	union := len(requester.Interests) + len(candidate.Interests) - common
	d.Total = common
	d.Score = percent(common, union)
	return d
}

func scoreLocation(requester, candidate *NormalizedProfile) LocationDetail {
	if requester.Location == "" || candidate.Location == "" {
		return LocationDetail{}
	}
	if requester.Location != candidate.Location {
		return LocationDetail{}
	}
	return LocationDetail{Score: 100, Match: true}
}

// scoreAge requires the requester's range to contain the candidate's age and,
// when the candidate states a range, the candidate's range to contain the
// requester's age. A requester without a usable range scores 0; a malformed
// range counts as no range on either side.
func scoreAge(requester, candidate *NormalizedProfile) AgeDetail {
	d := AgeDetail{Age: candidate.Age}
	if requester.AgeRange == nil {
		return d
	}
	if !requester.AgeRange.Contains(candidate.Age) {
		return d
	}
	if candidate.AgeRange != nil && !candidate.AgeRange.Contains(requester.Age) {
		return d
	}
	d.Compatible = true
	d.Score = 100
	return d
}

func scoreRelationship(requester, candidate *NormalizedProfile) RelationshipDetail {
	if requester.Relationship == "" || requester.Relationship != candidate.Relationship {
		return RelationshipDetail{}
	}
	return RelationshipDetail{Score: 100, Match: true}
}

func scoreOrientation(requester, candidate *NormalizedProfile, policy OrientationPolicy) OrientationDetail {
	if !policy.compatible(requester.Orientation, candidate.Orientation) {
		return OrientationDetail{}
	}
	return OrientationDetail{Score: 100, Match: true}
}

// scoreLifestyle averages the comparable sub-checks. A sub-check is left out
// when either side did not fill it in.
func scoreLifestyle(requester, candidate *NormalizedProfile) LifestyleDetail {
	var d LifestyleDetail
	checks, total := 0, 0

	if requester.Smoking != "" && candidate.Smoking != "" {
		checks++
		if requester.Smoking == candidate.Smoking {
			d.Smoking = true
			total += 100
		}
	}
	if requester.Alcohol != "" && candidate.Alcohol != "" {
		checks++
		if requester.Alcohol == candidate.Alcohol {
			d.Alcohol = true
			total += 100
		}
	}

	if checks > 0 {
		d.Score = int(math.Round(float64(total) / float64(checks)))
	}
	return d
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}
