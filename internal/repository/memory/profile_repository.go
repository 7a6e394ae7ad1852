package memory

import (
	"sync"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/repository"
)

type profileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile
	// candidateIDs preserves seed order; profiles created later (the session
	// user) are not candidates.
	candidateIDs []string
}

// NewProfileRepository creates an in-memory profile store pre-populated with
// the seeded discovery candidates. Profiles are cloned on every store and
// read so callers can mutate their copy without holding the lock.
func NewProfileRepository(candidates []*domain.Profile) repository.ProfileRepository {
	r := &profileRepository{
		profiles: make(map[string]*domain.Profile, len(candidates)),
	}
	for _, p := range candidates {
		r.profiles[p.ID] = p.Clone()
		r.candidateIDs = append(r.candidateIDs, p.ID)
	}
	return r
}

func (r *profileRepository) Create(profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.ID] = profile.Clone()
	return nil
}

func (r *profileRepository) GetByID(id string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p.Clone(), nil
}

func (r *profileRepository) Update(profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.ID]; !ok {
		return domain.ErrProfileNotFound
	}
	r.profiles[profile.ID] = profile.Clone()
	return nil
}

func (r *profileRepository) ListCandidates() []*domain.Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Profile, 0, len(r.candidateIDs))
	for _, id := range r.candidateIDs {
		out = append(out, r.profiles[id].Clone())
	}
	return out
}
