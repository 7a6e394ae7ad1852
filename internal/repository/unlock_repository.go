package repository

// UnlockRepository tracks which liked-you profiles have been paid for.
// The set only ever grows.
type UnlockRepository interface {
	IsUnlocked(profileID string) bool
	Add(profileID string)
}
