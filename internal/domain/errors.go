package domain

import "errors"

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrGiftNotFound         = errors.New("gift not found")

	// ErrInsufficientFunds is returned by the wallet when a debit exceeds the
	// balance. The balance is never changed on failure.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDiscoveryLocked means the session profile's completion score is below
	// the discovery gate. Remediation is completing the profile, not retrying.
	ErrDiscoveryLocked = errors.New("discovery locked: complete your profile")

	// ErrFeedExhausted means the discovery cursor has passed the last
	// candidate. Reset re-enables traversal.
	ErrFeedExhausted = errors.New("no more profiles to show")

	ErrNoSession     = errors.New("no active session")
	ErrSessionExists = errors.New("session already exists")
)
