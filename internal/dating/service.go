// internal/dating/service.go

package dating

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/imadgeboyega/kiekky-matcher/internal/matching"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrSelfMatch         = errors.New("cannot compute compatibility with yourself")
	ErrIncompleteProfile = errors.New("profile is missing required fields")
)

// DefaultCandidateLimit bounds the pool loaded per find request
const DefaultCandidateLimit = 5000

type Service interface {
	FindMatches(ctx context.Context, userID string, params *FindMatchesParams) (*matching.MatchSummary, error)
	MatchDetails(ctx context.Context, userID, candidateID string) (*matching.CompatibilityResult, error)
}

type service struct {
	repo           Repository
	engine         *matching.Engine
	cache          MatchCache
	candidateLimit int
}

func NewService(repo Repository, engine *matching.Engine, cache MatchCache, candidateLimit int) Service {
	if cache == nil {
		cache = NoopCache{}
	}
	if candidateLimit <= 0 {
		candidateLimit = DefaultCandidateLimit
	}
	return &service{
		repo:           repo,
		engine:         engine,
		cache:          cache,
		candidateLimit: candidateLimit,
	}
}

func (s *service) FindMatches(ctx context.Context, userID string, params *FindMatchesParams) (*matching.MatchSummary, error) {
	if params == nil {
		params = &FindMatchesParams{}
	}
	opts := params.FindOptions()

	threshold := s.engine.MinThreshold()
	if opts.MinThreshold != nil {
		threshold = *opts.MinThreshold
	}
	key := SummaryKey{UserID: userID, Threshold: threshold, Details: opts.IncludeDetails, Limit: opts.Limit}

	if summary, ok := s.cache.GetSummary(ctx, key); ok {
		RecordFindRequest(outcomeCached)
		return summary, nil
	}

	requester, err := s.repo.GetUserProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			RecordFindRequest(outcomeNotFound)
			return nil, ErrUserNotFound
		}
		RecordFindRequest(outcomeError)
		return nil, err
	}

	pool, err := s.repo.ListCandidates(ctx, userID, s.candidateLimit)
	if err != nil {
		RecordFindRequest(outcomeError)
		return nil, err
	}
	if len(pool) >= s.candidateLimit {
		log.Printf("Candidate pool for %s reached the limit of %d; remaining profiles were not scored", userID, s.candidateLimit)
		RecordTruncatedPool()
	}

	started := time.Now()
	summary, err := s.engine.FindMatchesFor(requester, pool, opts)
	RecordFindDuration(time.Since(started))
	if err != nil {
		if matching.IsValidationError(err) {
			RecordFindRequest(outcomeInvalid)
			return nil, fmt.Errorf("%w: %v", ErrIncompleteProfile, err)
		}
		RecordFindRequest(outcomeError)
		return nil, err
	}

	RecordSkippedCandidates(summary.Skipped)
	for _, m := range summary.Matches {
		RecordCompatibilityScore(m.MatchScore)
	}
	RecordFindRequest(outcomeOK)

	s.cache.SetSummary(ctx, key, summary)
	return summary, nil
}

func (s *service) MatchDetails(ctx context.Context, userID, candidateID string) (*matching.CompatibilityResult, error) {
	if userID == candidateID {
		RecordDetailsRequest(outcomeInvalid)
		return nil, ErrSelfMatch
	}

	if result, ok := s.cache.GetDetails(ctx, userID, candidateID); ok {
		RecordDetailsRequest(outcomeCached)
		return result, nil
	}

	requester, err := s.repo.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, s.detailsLookupError(err, ErrUserNotFound)
	}
	candidate, err := s.repo.GetUserProfile(ctx, candidateID)
	if err != nil {
		return nil, s.detailsLookupError(err, ErrCandidateNotFound)
	}

	result, err := s.engine.MatchDetails(requester, candidate)
	if err != nil {
		if matching.IsValidationError(err) {
			RecordDetailsRequest(outcomeInvalid)
			return nil, fmt.Errorf("%w: %v", ErrIncompleteProfile, err)
		}
		RecordDetailsRequest(outcomeError)
		return nil, err
	}

	RecordCompatibilityScore(result.OverallScore)
	RecordDetailsRequest(outcomeOK)

	s.cache.SetDetails(ctx, userID, candidateID, result)
	return result, nil
}

func (s *service) detailsLookupError(err, notFound error) error {
	if errors.Is(err, ErrProfileNotFound) {
		RecordDetailsRequest(outcomeNotFound)
		return notFound
	}
	RecordDetailsRequest(outcomeError)
	return err
}
