package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/repository"
)

type walletRepository struct {
	mu      sync.Mutex
	balance int
	history []domain.WalletTransaction
}

// NewWalletRepository creates a wallet seeded with the configured starting
// balance. The balance can never go negative.
func NewWalletRepository(startingBalance int) repository.WalletRepository {
	return &walletRepository{balance: startingBalance}
}

func (r *walletRepository) Balance() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balance
}

func (r *walletRepository) Debit(amount int, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if amount > r.balance {
		return domain.ErrInsufficientFunds
	}
	r.balance -= amount
	r.record(domain.TransactionDebit, amount, description)
	return nil
}

func (r *walletRepository) Credit(amount int, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balance += amount
	r.record(domain.TransactionCredit, amount, description)
	return nil
}

func (r *walletRepository) Transactions() []domain.WalletTransaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.WalletTransaction, len(r.history))
	// newest first
	for i, tx := range r.history {
		out[len(r.history)-1-i] = tx
	}
	return out
}

// record must be called with the lock held.
func (r *walletRepository) record(txType domain.TransactionType, amount int, description string) {
	r.history = append(r.history, domain.WalletTransaction{
		ID:          uuid.NewString(),
		Type:        txType,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now(),
	})
}
