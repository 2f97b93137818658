//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loyalty-ledger/internal/domain/loyalty"
	"loyalty-ledger/internal/usecase/commands"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("new user starts with the signup grant", func(t *testing.T) {
		h := newHarness(loyalty.ModeDerived)

		view := h.registerUser(t, "alice", "a@x.com")
		assert.Equal(t, "alice", view.Username)
		assert.Equal(t, 100, view.Points)

		byUsername, err := h.userQueries.Find(ctx, "alice")
		require.NoError(t, err)
		byEmail, err := h.userQueries.Find(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, byUsername.ID, byEmail.ID)
	})

	t.Run("duplicate username is rejected and leaves the record alone", func(t *testing.T) {
		h := newHarness(loyalty.ModeDerived)
		h.registerUser(t, "bob", "b@x.com")

		_, err := h.userCommands.Register(ctx, commands.RegisterUserInput{
			Username:     "bob",
			Email:        "c@x.com",
			PasswordHash: "other_hash",
		})
		require.ErrorIs(t, err, commands.ErrDuplicateIdentity)

		users, err := h.userQueries.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "b@x.com", users[0].Email)
		assert.Equal(t, 100, users[0].Points)
	})

	t.Run("duplicate email is rejected case-insensitively", func(t *testing.T) {
		h := newHarness(loyalty.ModeDerived)
		h.registerUser(t, "bob", "b@x.com")

		_, err := h.userCommands.Register(ctx, commands.RegisterUserInput{
			Username:     "robert",
			Email:        "B@X.com",
			PasswordHash: "other_hash",
		})
		require.ErrorIs(t, err, commands.ErrDuplicateIdentity)
	})

	t.Run("invalid input fails registration", func(t *testing.T) {
		h := newHarness(loyalty.ModeDerived)

		_, err := h.userCommands.Register(ctx, commands.RegisterUserInput{
			Username:     "",
			Email:        "a@x.com",
			PasswordHash: "hash",
		})
		require.ErrorIs(t, err, commands.ErrRegistrationFailed)

		_, err = h.userCommands.Register(ctx, commands.RegisterUserInput{
			Username:     "alice",
			Email:        "not-an-email",
			PasswordHash: "hash",
		})
		require.ErrorIs(t, err, commands.ErrRegistrationFailed)
	})
}

func TestSetPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites the matched user's balance", func(t *testing.T) {
		h := newHarness(loyalty.ModeDerived)
		h.registerUser(t, "alice", "a@x.com")

		applied, err := h.userCommands.SetPoints(ctx, "alice", 250)
		require.NoError(t, err)
		assert.True(t, applied)

		view, err := h.userQueries.Find(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 250, view.Points)
	})

	t.Run("negative balances are accepted", func(t *testing.T) {
		h := newHarness(loyalty.ModeDerived)
		h.registerUser(t, "alice", "a@x.com")

		applied, err := h.userCommands.SetPoints(ctx, "a@x.com", -30)
		require.NoError(t, err)
		assert.True(t, applied)

		view, err := h.userQueries.Find(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, -30, view.Points)
	})

	t.Run("unknown identifier is a no-op", func(t *testing.T) {
		h := newHarness(loyalty.ModeDerived)

		applied, err := h.userCommands.SetPoints(ctx, "ghost", 10)
		require.NoError(t, err)
		assert.False(t, applied)
	})
}
