package ports

import (
	"context"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
)

// AnimalPatch carries the mutable animal fields for a partial update.
// Type is immutable after creation.
type AnimalPatch struct {
	Name        *string
	Description *string
	Age         *int
	Keeper      *string
}

// Empty reports whether the patch would change nothing.
func (p AnimalPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Age == nil && p.Keeper == nil
}

// AnimalRepository defines persistence operations for animals.
type AnimalRepository interface {
	List(ctx context.Context) ([]*domain.Animal, error)
	FindByID(ctx context.Context, id string) (*domain.Animal, error)
	Create(ctx context.Context, animal *domain.Animal) (*domain.Animal, error)
	Update(ctx context.Context, id string, patch AnimalPatch) (*domain.Animal, error)
	Delete(ctx context.Context, id string) error
}
