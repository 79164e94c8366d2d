package stores

import (
	"context"
	"testing"
	"time"

	"cityvoice-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryIssueStoreCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryIssueStore()

	_, err := store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	issue := models.Issue{
		ID:       "IS-100",
		UserID:   "ananya",
		Category: models.Pothole,
		Location: "Koramangala, Bangalore",
		Text:     "A pothole big enough to hide a scooter.",
		Priority: 40,
	}
	require.NoError(t, store.Insert(ctx, &issue))

	got, err := store.GetByID(ctx, "IS-100")
	require.NoError(t, err)
	assert.Equal(t, issue, *got)

	got.Priority = 70
	require.NoError(t, store.Update(ctx, got))

	updated, err := store.GetByID(ctx, "IS-100")
	require.NoError(t, err)
	assert.Equal(t, 70, updated.Priority)

	require.NoError(t, store.Delete(ctx, "IS-100"))
	_, err = store.GetByID(ctx, "IS-100")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "IS-100"), ErrNotFound)
	assert.ErrorIs(t, store.Update(ctx, &issue), ErrNotFound)
}

func TestMemoryIssueStoreListsInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryIssueStore()
	require.NoError(t, SeedDemoData(ctx, store, NewMemoryUserStore()))

	issues, err := store.List(ctx)
	require.NoError(t, err)

	ids := make([]string, len(issues))
	for i, issue := range issues {
		ids[i] = issue.ID
	}
	assert.Equal(t, []string{"IS-001", "IS-002", "IS-003", "IS-004", "IS-005", "IS-006"}, ids)
}

func TestMemoryIssueStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryIssueStore()
	require.NoError(t, store.Insert(ctx, &models.Issue{ID: "IS-100", Priority: 40}))

	got, err := store.GetByID(ctx, "IS-100")
	require.NoError(t, err)
	got.Priority = 99

	again, err := store.GetByID(ctx, "IS-100")
	require.NoError(t, err)
	assert.Equal(t, 40, again.Priority)
}

func TestMemoryUserStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	user := models.User{
		ID:        "vikram",
		Name:      "Vikram Singh",
		Email:     "vikram@example.com",
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Insert(ctx, &user))

	byID, err := store.GetByID(ctx, "vikram")
	require.NoError(t, err)
	assert.Equal(t, "Vikram Singh", byID.Name)

	byEmail, err := store.GetByEmail(ctx, "vikram@example.com")
	require.NoError(t, err)
	assert.Equal(t, "vikram", byEmail.ID)

	_, err = store.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	byID.Tokens = 3
	require.NoError(t, store.Update(ctx, byID))
	again, err := store.GetByID(ctx, "vikram")
	require.NoError(t, err)
	assert.Equal(t, 3, again.Tokens)
}
