package dating

import (
	"context"
	"sort"

	"github.com/imadgeboyega/kiekky-matcher/internal/matching"
)

// memoryRepository serves a fixed set of profiles, as loaded from a JSON export
type memoryRepository struct {
	byID    map[string]*matching.UserProfile
	ordered []*matching.UserProfile
}

// NewMemoryRepository indexes profiles by id. Later duplicates replace earlier ones.
func NewMemoryRepository(profiles []*matching.UserProfile) Repository {
	byID := make(map[string]*matching.UserProfile, len(profiles))
	for _, p := range profiles {
		if p != nil {
			byID[p.ID] = p
		}
	}

	ordered := make([]*matching.UserProfile, 0, len(byID))
	for _, p := range byID {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	return &memoryRepository{byID: byID, ordered: ordered}
}

func (r *memoryRepository) GetUserProfile(ctx context.Context, userID string) (*matching.UserProfile, error) {
	p, ok := r.byID[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (r *memoryRepository) ListCandidates(ctx context.Context, excludeID string, limit int) ([]*matching.UserProfile, error) {
	out := make([]*matching.UserProfile, 0, len(r.ordered))
	for _, p := range r.ordered {
		if p.ID == excludeID {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryRepository) CountActiveProfiles(ctx context.Context) (int, error) {
	return len(r.ordered), nil
}
