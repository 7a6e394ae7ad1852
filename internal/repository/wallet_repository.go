package repository

import "github.com/emberapp/ember-backend/internal/domain"

// WalletRepository owns the session user's coin balance and its history.
type WalletRepository interface {
	Balance() int
	// Debit atomically deducts amount and records a transaction, or returns
	// domain.ErrInsufficientFunds leaving the balance unchanged.
	Debit(amount int, description string) error
	// Credit adds amount and records a transaction.
	Credit(amount int, description string) error
	// Transactions returns the history, newest first.
	Transactions() []domain.WalletTransaction
}
