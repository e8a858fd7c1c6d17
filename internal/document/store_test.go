package document

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deluxetools/menued/internal/domain"
)

func newSettings(title string) *domain.MenuSettings {
	settings := domain.NewMenuSettings()
	settings.Title = title
	return settings
}

func TestStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	doc, err := store.Create(ctx, "shop", "1.21", newSettings("&6Shop"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, doc.ID)
	assert.Equal(t, "shop", doc.Name)
	assert.Equal(t, "1.21", doc.GameVersion)
	assert.Equal(t, doc.CreatedAt, doc.UpdatedAt)

	got, err := store.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, "&6Shop", got.Settings.Title)
}

func TestStore_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	doc, err := store.Create(ctx, "", "1.21", newSettings(""))
	require.NoError(t, err)
	assert.Equal(t, "untitled", doc.Name)

	_, err = store.Create(ctx, "broken", "1.21", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_GetMissing(t *testing.T) {
	store := NewStore()
	_, err := store.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestStore_ListOrdersByCreation(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := NewStore().(*memoryStore)

	// Deterministic clock so creation order is observable.
	tick := 0
	store.now = func() time.Time {
		tick++
		return now.Add(time.Duration(tick) * time.Second)
	}

	first, err := store.Create(ctx, "first", "1.21", newSettings(""))
	require.NoError(t, err)
	second, err := store.Create(ctx, "second", "1.21", newSettings(""))
	require.NoError(t, err)

	docs := store.List(ctx)
	require.Len(t, docs, 2)
	assert.Equal(t, first.ID, docs[0].ID)
	assert.Equal(t, second.ID, docs[1].ID)
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := NewStore().(*memoryStore)
	tick := 0
	store.now = func() time.Time {
		tick++
		return now.Add(time.Duration(tick) * time.Second)
	}

	doc, err := store.Create(ctx, "shop", "1.20.4", newSettings("&6Shop"))
	require.NoError(t, err)

	updated, err := store.Update(ctx, doc.ID, "warps", "1.21", newSettings("&bWarps"))
	require.NoError(t, err)
	assert.Equal(t, "warps", updated.Name)
	assert.Equal(t, "1.21", updated.GameVersion)
	assert.Equal(t, "&bWarps", updated.Settings.Title)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	t.Run("blank name and version keep previous values", func(t *testing.T) {
		kept, err := store.Update(ctx, doc.ID, "", "", newSettings("&bWarps 2"))
		require.NoError(t, err)
		assert.Equal(t, "warps", kept.Name)
		assert.Equal(t, "1.21", kept.GameVersion)
		assert.Equal(t, "&bWarps 2", kept.Settings.Title)
	})

	t.Run("missing document", func(t *testing.T) {
		_, err := store.Update(ctx, uuid.New(), "x", "", newSettings(""))
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("nil settings rejected", func(t *testing.T) {
		_, err := store.Update(ctx, doc.ID, "x", "", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	doc, err := store.Create(ctx, "shop", "1.21", newSettings(""))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, doc.ID))
	_, err = store.Get(ctx, doc.ID)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

	assert.ErrorIs(t, store.Delete(ctx, doc.ID), domain.ErrDocumentNotFound)
}

func TestStore_SnapshotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	doc, err := store.Create(ctx, "shop", "1.21", newSettings(""))
	require.NoError(t, err)

	doc.Name = "mutated"
	got, err := store.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "shop", got.Name)
}
