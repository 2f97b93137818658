//go:build unit

package loyalty_test

import (
	"testing"

	"loyalty-ledger/internal/domain/loyalty"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	t.Run("valid modes", func(t *testing.T) {
		for _, s := range []string{"derived", "stored"} {
			mode, err := loyalty.NewMode(s)
			require.NoError(t, err)
			assert.Equal(t, s, mode.String())
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := loyalty.NewMode("hybrid")
		require.ErrorIs(t, err, loyalty.ErrInvalidMode)
	})
}

func TestPolicy(t *testing.T) {
	t.Run("derived mode computes the bonus at read time", func(t *testing.T) {
		p := loyalty.NewPolicy(loyalty.ModeDerived, 100, 10)

		assert.Equal(t, 100, p.SignupGrant())
		assert.Equal(t, 0, p.AccrualOnCreate(), "derived mode never writes through the directory")
		assert.Equal(t, 100, p.EffectivePoints(100, 0))
		assert.Equal(t, 110, p.EffectivePoints(100, 1))
		assert.Equal(t, 150, p.EffectivePoints(100, 5))
	})

	t.Run("stored mode reads the balance verbatim", func(t *testing.T) {
		p := loyalty.NewPolicy(loyalty.ModeStored, 100, 10)

		assert.Equal(t, 10, p.AccrualOnCreate())
		// The stored balance already contains every accrual; adding a
		// derived bonus on top would double count.
		assert.Equal(t, 110, p.EffectivePoints(110, 1))
		assert.Equal(t, 110, p.EffectivePoints(110, 7))
	})

	t.Run("both modes agree on the observable balance", func(t *testing.T) {
		derived := loyalty.NewPolicy(loyalty.ModeDerived, 100, 10)
		stored := loyalty.NewPolicy(loyalty.ModeStored, 100, 10)

		// One signup followed by one reservation
		base := 100
		storedBase := base + stored.AccrualOnCreate()

		assert.Equal(t, derived.EffectivePoints(base, 1), stored.EffectivePoints(storedBase, 1))
	})
}
