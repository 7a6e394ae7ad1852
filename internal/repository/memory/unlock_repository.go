package memory

import (
	"sync"

	"github.com/emberapp/ember-backend/internal/repository"
)

type unlockRepository struct {
	mu       sync.RWMutex
	unlocked map[string]struct{}
}

func NewUnlockRepository() repository.UnlockRepository {
	return &unlockRepository{unlocked: make(map[string]struct{})}
}

func (r *unlockRepository) IsUnlocked(profileID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.unlocked[profileID]
	return ok
}

func (r *unlockRepository) Add(profileID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unlocked[profileID] = struct{}{}
}
