package memory

import (
	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/repository"
)

// Catalog is immutable after construction, so no locking is needed.
type giftRepository struct {
	gifts []domain.Gift
	byID  map[string]domain.Gift
}

func NewGiftRepository(catalog []domain.Gift) repository.GiftRepository {
	r := &giftRepository{
		gifts: catalog,
		byID:  make(map[string]domain.Gift, len(catalog)),
	}
	for _, g := range catalog {
		r.byID[g.ID] = g
	}
	return r
}

func (r *giftRepository) List() []domain.Gift {
	out := make([]domain.Gift, len(r.gifts))
	copy(out, r.gifts)
	return out
}

func (r *giftRepository) GetByID(id string) (*domain.Gift, error) {
	g, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrGiftNotFound
	}
	return &g, nil
}
