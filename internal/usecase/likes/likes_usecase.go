package likes

import (
	"sync"

	"go.uber.org/zap"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/repository"
	"github.com/emberapp/ember-backend/internal/usecase/wallet"
)

// LikesUseCase lists the profiles that liked the session user and runs the
// paywall in front of them. Unlocking is paid once per profile and the
// unlocked set never shrinks.
type LikesUseCase struct {
	profileRepo repository.ProfileRepository
	unlockRepo  repository.UnlockRepository
	wallet      *wallet.WalletUseCase
	logger      *zap.Logger

	unlockCost int
	likerIDs   []string

	// serialises debit-then-add so a concurrent double unlock cannot pay twice
	mu sync.Mutex
}

func NewLikesUseCase(
	profileRepo repository.ProfileRepository,
	unlockRepo repository.UnlockRepository,
	walletUseCase *wallet.WalletUseCase,
	likerIDs []string,
	unlockCost int,
	logger *zap.Logger,
) *LikesUseCase {
	return &LikesUseCase{
		profileRepo: profileRepo,
		unlockRepo:  unlockRepo,
		wallet:      walletUseCase,
		logger:      logger,
		unlockCost:  unlockCost,
		likerIDs:    likerIDs,
	}
}

// LikedYouEntry is one row of the liked-you list. Until unlocked, the profile
// stays hidden and only the id (the unlock handle) is exposed.
type LikedYouEntry struct {
	ProfileID  string          `json:"profile_id"`
	Unlocked   bool            `json:"unlocked"`
	UnlockCost int             `json:"unlock_cost"`
	Profile    *domain.Profile `json:"profile,omitempty"`
}

// List returns the likers, locked entries anonymised.
func (uc *LikesUseCase) List() ([]*LikedYouEntry, error) {
	entries := make([]*LikedYouEntry, 0, len(uc.likerIDs))
	for _, id := range uc.likerIDs {
		entry := &LikedYouEntry{
			ProfileID:  id,
			UnlockCost: uc.unlockCost,
		}
		if uc.unlockRepo.IsUnlocked(id) {
			p, err := uc.profileRepo.GetByID(id)
			if err != nil {
				return nil, err
			}
			entry.Unlocked = true
			entry.Profile = p
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// IsUnlocked reports whether the paywall has been cleared for the profile.
func (uc *LikesUseCase) IsUnlocked(profileID string) bool {
	return uc.unlockRepo.IsUnlocked(profileID)
}

// Unlock pays the unlock cost and reveals the profile. Unlocking an already
// unlocked profile is a no-op success: the ledger is never debited twice for
// the same id. On insufficient funds nothing changes.
func (uc *LikesUseCase) Unlock(profileID string) (*domain.Profile, error) {
	p, err := uc.profileRepo.GetByID(profileID)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.unlockRepo.IsUnlocked(profileID) {
		return p, nil
	}
	if err := uc.wallet.TryDebit(uc.unlockCost, "Unlocked a profile that liked you"); err != nil {
		return nil, err
	}
	uc.unlockRepo.Add(profileID)

	uc.logger.Info("profile unlocked",
		zap.String("profile_id", profileID),
		zap.Int("cost", uc.unlockCost),
	)
	return p, nil
}
