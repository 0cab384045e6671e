package ports

import (
	"context"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
)

// CreateAnimalInput carries all data needed to register an animal.
// Keeper must reference an existing user.
type CreateAnimalInput struct {
	Name        string
	Description string
	Age         int
	Type        string
	Keeper      string
}

// UpdateAnimalInput is the whitelist of mutable animal fields.
type UpdateAnimalInput struct {
	Name        *string
	Description *string
	Age         *int
	Keeper      *string
}

// AnimalService defines use-case operations for animals.
type AnimalService interface {
	List(ctx context.Context) ([]*domain.Animal, error)
	GetByID(ctx context.Context, id string) (*domain.Animal, error)
	Create(ctx context.Context, input CreateAnimalInput) (*domain.Animal, error)
	Update(ctx context.Context, id string, input UpdateAnimalInput) (*domain.Animal, error)
	Delete(ctx context.Context, id string) error
}
