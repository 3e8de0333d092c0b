// internal/matching/finder.go

package matching

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// FindOptions controls a FindMatches call.
type FindOptions struct {
	// MinThreshold drops matches scoring below it. nil uses the engine default.
	MinThreshold *int
	// IncludeDetails attaches the per-factor breakdown to every match.
	IncludeDetails bool
	// Limit truncates the returned list after statistics are computed. 0 means no limit.
	Limit int
}

// Threshold returns a pointer suitable for FindOptions.MinThreshold.
func Threshold(v int) *int {
	return &v
}

// FindMatches looks up requesterID in pool and ranks every other profile against it.
func (e *Engine) FindMatches(requesterID string, pool []*UserProfile, opts FindOptions) (*MatchSummary, error) {
	for _, p := range pool {
		if p != nil && p.ID == requesterID {
			return e.FindMatchesFor(p, pool, opts)
		}
	}
	return nil, ErrRequesterNotFound
}

// FindMatchesFor ranks pool against requester. Candidates that cannot be
// normalized are logged and skipped; the requester never matches itself.
// Only an invalid requester produces an error.
func (e *Engine) FindMatchesFor(requester *UserProfile, pool []*UserProfile, opts FindOptions) (*MatchSummary, error) {
	asOf := e.now()
	me, err := Normalize(requester, asOf)
	if err != nil {
		return nil, err
	}
	if me.AgeRangeErr != nil {
		e.logger.Printf("matching: ignoring age range of requester %s: %v", me.ID, me.AgeRangeErr)
	}

	threshold := e.minThreshold
	if opts.MinThreshold != nil {
		threshold = *opts.MinThreshold
	}

	type slot struct {
		match   Match
		ok      bool
		skipped bool
	}
	slots := make([]slot, len(pool))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, candidate := range pool {
		if candidate == nil || candidate.ID == me.ID {
			continue
		}
		g.Go(func() error {
			them, err := Normalize(candidate, asOf)
			if err != nil {
				e.logger.Printf("matching: skipping candidate for %s: %v", me.ID, err)
				slots[i].skipped = true
				return nil
			}
			if them.ID == me.ID {
				return nil
			}
			if them.AgeRangeErr != nil {
				e.logger.Printf("matching: ignoring age range of %s: %v", them.ID, them.AgeRangeErr)
			}
			result := e.Compare(me, them, opts.IncludeDetails)
			if result.OverallScore < threshold {
				return nil
			}
			slots[i] = slot{match: newMatch(them, result, opts.IncludeDetails), ok: true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(pool))
	skipped := 0
	for _, s := range slots {
		if s.skipped {
			skipped++
		}
		if s.ok {
			matches = append(matches, s.match)
		}
	}

	sortMatches(matches)
	summary := Summarize(matches)
	summary.Skipped = skipped
	if opts.Limit > 0 && len(summary.Matches) > opts.Limit {
		summary.Matches = summary.Matches[:opts.Limit]
	}
	return summary, nil
}

func newMatch(n *NormalizedProfile, result CompatibilityResult, withDetails bool) Match {
	p := n.Profile()
	m := Match{
		CandidateID: n.ID,
		MatchScore:  result.OverallScore,
		Tier:        result.Tier,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		ProfilePic:  p.ProfilePic,
		Location:    p.Location,
		Bio:         p.Bio,
	}
	if withDetails {
		m.Details = result.Details
	}
	return m
}

// sortMatches orders by score descending, then candidate id ascending.
func sortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].CandidateID < matches[j].CandidateID
	})
}

// Summarize computes tier counts, the rounded mean and the best match over
// an already sorted list.
func Summarize(matches []Match) *MatchSummary {
	if matches == nil {
		matches = []Match{}
	}
	s := &MatchSummary{Matches: matches, Total: len(matches)}
	if len(matches) == 0 {
		return s
	}

	sum := 0
	for _, m := range matches {
		sum += m.MatchScore
		switch ClassifyTier(m.MatchScore) {
		case TierHigh:
			s.High++
		case TierMedium:
			s.Medium++
		case TierLow:
			s.Low++
		default:
			s.Minimal++
		}
	}
	s.Average = int(math.Round(float64(sum) / float64(len(matches))))

	best := matches[0]
	s.BestMatch = &best
	return s
}
