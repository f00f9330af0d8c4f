package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voleisexta/roster-system/models"
)

func TestInMemoryInsertAssignsIDAndTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryConfirmationRepository()

	c := &models.Confirmation{Name: "Ana", Category: models.CategoryDropIn}
	require.NoError(t, repo.Insert(ctx, c))

	assert.Equal(t, 1, c.ID)
	assert.False(t, c.ConfirmedAt.IsZero())

	found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Name)
}

func TestInMemoryInsertRejectsDuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryConfirmationRepository()

	require.NoError(t, repo.Insert(ctx, &models.Confirmation{Name: "Bruno", Category: models.CategoryDropIn}))

	err := repo.Insert(ctx, &models.Confirmation{Name: "bruno", Category: models.CategoryMonthlyMember})
	assert.ErrorIs(t, err, ErrConfirmationNameConflict)
}

func TestInMemoryListActiveOrdersByConfirmationTime(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryConfirmationRepository()

	base := time.Date(2026, 8, 28, 19, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(ctx, &models.Confirmation{Name: "late", ConfirmedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Insert(ctx, &models.Confirmation{Name: "early", ConfirmedAt: base}))
	require.NoError(t, repo.Insert(ctx, &models.Confirmation{Name: "seed", ConfirmedAt: base.Add(time.Minute), IsTest: true}))

	all, err := repo.ListActive(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "early", all[0].Name)
	assert.Equal(t, "seed", all[1].Name)
	assert.Equal(t, "late", all[2].Name)

	public, err := repo.ListActive(ctx, true)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "early", public[0].Name)
	assert.Equal(t, "late", public[1].Name)
}

func TestInMemoryListActiveReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryConfirmationRepository()
	require.NoError(t, repo.Insert(ctx, &models.Confirmation{Name: "Carla"}))

	listed, err := repo.ListActive(ctx, false)
	require.NoError(t, err)
	listed[0].Name = "mutated"

	again, err := repo.ListActive(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "Carla", again[0].Name)
}

func TestInMemoryDeleteByID(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryConfirmationRepository()
	require.NoError(t, repo.Insert(ctx, &models.Confirmation{Name: "Diego"}))

	assert.NoError(t, repo.DeleteByID(ctx, 1))
	assert.ErrorIs(t, repo.DeleteByID(ctx, 1), ErrConfirmationNotFound)
	_, err := repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, ErrConfirmationNotFound)
}

func TestInMemoryDeleteByNameIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryConfirmationRepository()
	require.NoError(t, repo.Insert(ctx, &models.Confirmation{Name: "Elisa"}))
	require.NoError(t, repo.Insert(ctx, &models.Confirmation{Name: "Fabio"}))

	deleted, err := repo.DeleteByName(ctx, "ELISA")
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	deleted, err = repo.DeleteByName(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, deleted)

	remaining, err := repo.ListActive(ctx, false)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Fabio", remaining[0].Name)
}

func TestInMemoryDeleteAllAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryConfirmationRepository()
	require.NoError(t, repo.Insert(ctx, &models.Confirmation{Name: "Gabi"}))
	require.NoError(t, repo.Insert(ctx, &models.Confirmation{Name: "seed", IsTest: true}))

	count, err := repo.CountActive(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountActive(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	count, err = repo.CountActive(ctx, false)
	require.NoError(t, err)
	assert.Zero(t, count)
}
