//go:build unit

package memstore_test

import (
	"context"
	"testing"

	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/memstore"
	"loyalty-ledger/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and indexes a new user", func(t *testing.T) {
		store := memstore.NewUserStore()
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, store.Create(ctx, u))

		byUsername, err := store.FindByIdentifier(ctx, "alice")
		require.NoError(t, err)
		byEmail, err := store.FindByIdentifier(ctx, "alice@example.com")
		require.NoError(t, err)

		assert.Equal(t, byUsername.ID, byEmail.ID)
		assert.Equal(t, 100, byUsername.Points)
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		store := memstore.NewUserStore()
		first, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Create(ctx, first))

		second, err := builder.NewUserBuilder().WithEmail("other@example.com").BuildDomain()
		require.NoError(t, err)

		err = store.Create(ctx, second)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

		// Existing record untouched
		view, err := store.FindByIdentifier(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, first.ID(), view.ID)
		assert.Equal(t, "alice@example.com", view.Email)

		views, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("rejects a duplicate email regardless of case", func(t *testing.T) {
		store := memstore.NewUserStore()
		first, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Create(ctx, first))

		second, err := builder.NewUserBuilder().
			WithUsername("bob").
			WithEmail("ALICE@Example.com").
			BuildDomain()
		require.NoError(t, err)

		err = store.Create(ctx, second)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestUserStore_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("email lookup folds case", func(t *testing.T) {
		store := memstore.NewUserStore()
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Create(ctx, u))

		view, err := store.FindByIdentifier(ctx, "Alice@EXAMPLE.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID(), view.ID)
	})

	t.Run("username lookup is exact", func(t *testing.T) {
		store := memstore.NewUserStore()
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Create(ctx, u))

		_, err = store.FindByIdentifier(ctx, "Alice")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown identifier", func(t *testing.T) {
		store := memstore.NewUserStore()

		_, err := store.FindByIdentifier(ctx, "nobody")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUserStore_Points(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrite and delta", func(t *testing.T) {
		store := memstore.NewUserStore()
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Create(ctx, u))

		applied, err := store.UpdatePoints(ctx, "alice", 40)
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = store.AddPoints(ctx, "alice@example.com", 10)
		require.NoError(t, err)
		assert.True(t, applied)

		view, err := store.FindByIdentifier(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 50, view.Points)
	})

	t.Run("no match is a silent no-op", func(t *testing.T) {
		store := memstore.NewUserStore()

		applied, err := store.UpdatePoints(ctx, "ghost", 10)
		require.NoError(t, err)
		assert.False(t, applied)

		applied, err = store.AddPoints(ctx, "ghost", 10)
		require.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestUserStore_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()

	store := memstore.NewUserStore()
	alice, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	bob, err := builder.NewUserBuilder().
		WithUsername("bob").
		WithEmail("bob@example.com").
		WithPoints(70).
		BuildDomain()
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, alice))
	require.NoError(t, store.Create(ctx, bob))

	restored := memstore.NewUserStore()
	restored.Restore(store.Snapshot())

	views, err := restored.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, alice.ID(), views[0].ID)
	assert.Equal(t, "bob", views[1].Username)
	assert.Equal(t, 70, views[1].Points)

	// Restored directory still enforces identity uniqueness
	dup, err := builder.NewUserBuilder().WithEmail("x@example.com").BuildDomain()
	require.NoError(t, err)
	err = restored.Create(ctx, dup)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}
