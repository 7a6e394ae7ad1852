package wallet

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/repository"
)

// WalletUseCase is the coin ledger for the session user. Every paid action in
// the app (profile unlocks, gifts) goes through TryDebit.
type WalletUseCase struct {
	walletRepo repository.WalletRepository
	logger     *zap.Logger
}

func NewWalletUseCase(walletRepo repository.WalletRepository, logger *zap.Logger) *WalletUseCase {
	return &WalletUseCase{
		walletRepo: walletRepo,
		logger:     logger,
	}
}

func (uc *WalletUseCase) Balance() int {
	return uc.walletRepo.Balance()
}

// TryDebit deducts amount or returns domain.ErrInsufficientFunds. The debit is
// atomic: on failure the balance is untouched.
func (uc *WalletUseCase) TryDebit(amount int, description string) error {
	if amount < 0 {
		return fmt.Errorf("debit amount must be non-negative, got %d", amount)
	}
	if err := uc.walletRepo.Debit(amount, description); err != nil {
		return err
	}
	uc.logger.Info("wallet debited",
		zap.Int("amount", amount),
		zap.String("description", description),
		zap.Int("balance", uc.walletRepo.Balance()),
	)
	return nil
}

// TopUp credits the wallet. Payment collection is not wired up; this is the
// entry point the payment provider integration would call.
func (uc *WalletUseCase) TopUp(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("top-up amount must be positive, got %d", amount)
	}
	if err := uc.walletRepo.Credit(amount, "Coin top-up"); err != nil {
		return err
	}
	uc.logger.Info("wallet topped up", zap.Int("amount", amount))
	return nil
}

// Transactions returns the wallet history, newest first.
func (uc *WalletUseCase) Transactions() []domain.WalletTransaction {
	return uc.walletRepo.Transactions()
}
