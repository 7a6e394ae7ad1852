package likes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/repository/memory"
	"github.com/emberapp/ember-backend/internal/seed"
	"github.com/emberapp/ember-backend/internal/usecase/wallet"
)

func newTestUseCase(t *testing.T, balance int) (*LikesUseCase, *wallet.WalletUseCase) {
	t.Helper()
	walletUseCase := wallet.NewWalletUseCase(memory.NewWalletRepository(balance), zap.NewNop())
	uc := NewLikesUseCase(
		memory.NewProfileRepository(seed.Profiles()),
		memory.NewUnlockRepository(),
		walletUseCase,
		[]string{"1", "2", "3"},
		50,
		zap.NewNop(),
	)
	return uc, walletUseCase
}

func TestUnlockDebitsOnce(t *testing.T) {
	uc, w := newTestUseCase(t, 250)

	p, err := uc.Unlock("1")
	require.NoError(t, err)
	assert.Equal(t, "Jessica", p.FirstName)
	assert.Equal(t, 200, w.Balance())
	assert.True(t, uc.IsUnlocked("1"))

	// Second unlock is a no-op success, not a second debit.
	_, err = uc.Unlock("1")
	require.NoError(t, err)
	assert.Equal(t, 200, w.Balance())
	assert.True(t, uc.IsUnlocked("1"))
}

func TestUnlockInsufficientFunds(t *testing.T) {
	uc, w := newTestUseCase(t, 49)

	_, err := uc.Unlock("1")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 49, w.Balance())
	assert.False(t, uc.IsUnlocked("1"))
}

func TestUnlockUnknownProfile(t *testing.T) {
	uc, w := newTestUseCase(t, 250)

	_, err := uc.Unlock("nope")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Equal(t, 250, w.Balance())
}

func TestListAnonymisesLockedEntries(t *testing.T) {
	uc, _ := newTestUseCase(t, 250)

	entries, err := uc.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.False(t, e.Unlocked)
		assert.Nil(t, e.Profile)
		assert.Equal(t, 50, e.UnlockCost)
	}

	_, err = uc.Unlock("2")
	require.NoError(t, err)

	entries, err = uc.List()
	require.NoError(t, err)
	assert.False(t, entries[0].Unlocked)
	assert.True(t, entries[1].Unlocked)
	require.NotNil(t, entries[1].Profile)
	assert.Equal(t, "David", entries[1].Profile.FirstName)
	assert.False(t, entries[2].Unlocked)
}
