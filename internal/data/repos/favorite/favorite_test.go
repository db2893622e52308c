package favorite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animalloo/animalloo-backend/internal/data/repos/testutil"
)

func TestFavoriteRepoAddListRemove(t *testing.T) {
	db := testutil.DB(t)
	repo := NewFavoriteRepo(db, testutil.Logger(t))
	ctx := context.Background()

	const user = "user-1"
	require.NoError(t, repo.Add(ctx, nil, user, "http://knowledgemap.kr/koah/facility/1"))
	require.NoError(t, repo.Add(ctx, nil, user, "http://knowledgemap.kr/koah/facility/2"))
	require.NoError(t, repo.Add(ctx, nil, user, "http://knowledgemap.kr/koah/facility/1"))
	require.NoError(t, repo.Add(ctx, nil, "user-2", "http://knowledgemap.kr/koah/facility/3"))

	favs, err := repo.ListByUser(ctx, nil, user)
	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, "http://knowledgemap.kr/koah/facility/1", favs[0].FacilityID)
	assert.Equal(t, "http://knowledgemap.kr/koah/facility/2", favs[1].FacilityID)

	removed, err := repo.Remove(ctx, nil, user, "http://knowledgemap.kr/koah/facility/1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, nil, user, "http://knowledgemap.kr/koah/facility/1")
	require.NoError(t, err)
	assert.False(t, removed)

	favs, err = repo.ListByUser(ctx, nil, user)
	require.NoError(t, err)
	assert.Len(t, favs, 1)
}

func TestFavoriteRepoTransaction(t *testing.T) {
	db := testutil.DB(t)
	repo := NewFavoriteRepo(db, testutil.Logger(t))
	ctx := context.Background()

	tx := db.Begin()
	require.NoError(t, repo.Add(ctx, tx, "user-1", "http://knowledgemap.kr/koah/facility/9"))
	require.NoError(t, tx.Rollback().Error)

	favs, err := repo.ListByUser(ctx, nil, "user-1")
	require.NoError(t, err)
	assert.Empty(t, favs)
}
