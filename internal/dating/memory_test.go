package dating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imadgeboyega/kiekky-matcher/internal/matching"
)

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository([]*matching.UserProfile{
		{ID: "c"}, {ID: "a"}, nil, {ID: "b"}, {ID: "a", FirstName: "second"},
	})
	ctx := context.Background()

	p, err := repo.GetUserProfile(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "second", p.FirstName)

	_, err = repo.GetUserProfile(ctx, "zzz")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	all, err := repo.ListCandidates(ctx, "b", 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "c", all[1].ID)

	limited, err := repo.ListCandidates(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	n, err := repo.CountActiveProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
