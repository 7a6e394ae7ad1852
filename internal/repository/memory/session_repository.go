package memory

import (
	"sync"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/repository"
)

type sessionRepository struct {
	mu        sync.RWMutex
	profileID string
}

func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{}
}

func (r *sessionRepository) Create(profileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.profileID != "" {
		return domain.ErrSessionExists
	}
	r.profileID = profileID
	return nil
}

func (r *sessionRepository) CurrentProfileID() (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.profileID == "" {
		return "", domain.ErrNoSession
	}
	return r.profileID, nil
}
