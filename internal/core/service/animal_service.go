package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
	"github.com/adoptionsystem/adoption-api/internal/core/ports"
)

// AnimalService implements animal CRUD with keeper reference checks.
type AnimalService struct {
	animals ports.AnimalRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewAnimalService(animals ports.AnimalRepository, users ports.UserRepository, logger zerolog.Logger) *AnimalService {
	return &AnimalService{animals: animals, users: users, logger: logger}
}

func (s *AnimalService) List(ctx context.Context) ([]*domain.Animal, error) {
	return s.animals.List(ctx)
}

func (s *AnimalService) GetByID(ctx context.Context, id string) (*domain.Animal, error) {
	return s.animals.FindByID(ctx, id)
}

// Create registers an animal after confirming its keeper exists.
// Nothing is persisted when the keeper reference does not resolve.
func (s *AnimalService) Create(ctx context.Context, input ports.CreateAnimalInput) (*domain.Animal, error) {
	if !domain.ValidAnimalType(domain.AnimalType(input.Type)) {
		return nil, domain.ErrInvalidAnimalType
	}
	if err := s.keeperExists(ctx, input.Keeper); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	animal := &domain.Animal{
		Name:        input.Name,
		Description: input.Description,
		Age:         input.Age,
		Type:        domain.AnimalType(input.Type),
		Keeper:      input.Keeper,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.animals.Create(ctx, animal)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("animal_id", created.ID).Str("keeper", created.Keeper).Msg("animal created")
	return created, nil
}

// Update applies a whitelisted partial update. A new keeper reference
// is resolved before anything is written.
func (s *AnimalService) Update(ctx context.Context, id string, input ports.UpdateAnimalInput) (*domain.Animal, error) {
	patch := ports.AnimalPatch{
		Name:        input.Name,
		Description: input.Description,
		Age:         input.Age,
		Keeper:      input.Keeper,
	}
	if patch.Empty() {
		return nil, domain.ErrEmptyUpdate
	}
	if patch.Keeper != nil {
		if err := s.keeperExists(ctx, *patch.Keeper); err != nil {
			return nil, err
		}
	}
	return s.animals.Update(ctx, id, patch)
}

func (s *AnimalService) Delete(ctx context.Context, id string) error {
	return s.animals.Delete(ctx, id)
}

func (s *AnimalService) keeperExists(ctx context.Context, keeper string) error {
	if _, err := s.users.FindByID(ctx, keeper); err != nil {
		if err == domain.ErrUserNotFound {
			return domain.ErrKeeperNotFound
		}
		return err
	}
	return nil
}
