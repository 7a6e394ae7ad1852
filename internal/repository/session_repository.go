package repository

// SessionRepository tracks the single signed-in user. There is exactly one
// session per process; a second signup is rejected.
type SessionRepository interface {
	Create(profileID string) error
	// CurrentProfileID returns domain.ErrNoSession before signup.
	CurrentProfileID() (string, error)
}
