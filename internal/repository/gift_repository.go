package repository

import "github.com/emberapp/ember-backend/internal/domain"

// GiftRepository exposes the static gift catalog.
type GiftRepository interface {
	List() []domain.Gift
	GetByID(id string) (*domain.Gift, error)
}
