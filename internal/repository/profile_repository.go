package repository

import "github.com/emberapp/ember-backend/internal/domain"

// ProfileRepository stores every profile known to the session: the seeded
// candidates and the signed-up session user.
type ProfileRepository interface {
	Create(profile *domain.Profile) error
	GetByID(id string) (*domain.Profile, error)
	Update(profile *domain.Profile) error
	// ListCandidates returns the discovery candidates in seed order,
	// excluding the session user.
	ListCandidates() []*domain.Profile
}
