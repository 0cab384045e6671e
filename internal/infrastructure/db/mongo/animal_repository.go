package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
	"github.com/adoptionsystem/adoption-api/internal/core/ports"
)

const animalsCollection = "animals"

// AnimalRepository implements ports.AnimalRepository on MongoDB.
type AnimalRepository struct {
	coll *mongo.Collection
}

func NewAnimalRepository(db *mongo.Database) *AnimalRepository {
	return &AnimalRepository{coll: db.Collection(animalsCollection)}
}

type animalDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name,omitempty"`
	Description string             `bson:"description,omitempty"`
	Age         int                `bson:"age"`
	Type        string             `bson:"type"`
	Keeper      primitive.ObjectID `bson:"keeper"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *animalDoc) toDomain() *domain.Animal {
	return &domain.Animal{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Age:         d.Age,
		Type:        domain.AnimalType(d.Type),
		Keeper:      d.Keeper.Hex(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *AnimalRepository) List(ctx context.Context) ([]*domain.Animal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	defer cursor.Close(ctx)

	var animals []*domain.Animal
	for cursor.Next(ctx) {
		var d animalDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode animal: %w", err)
		}
		animals = append(animals, d.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	return animals, nil
}

func (r *AnimalRepository) FindByID(ctx context.Context, id string) (*domain.Animal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAnimalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d animalDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("find animal: %w", err)
	}
	return d.toDomain(), nil
}

func (r *AnimalRepository) Create(ctx context.Context, animal *domain.Animal) (*domain.Animal, error) {
	keeper, err := primitive.ObjectIDFromHex(animal.Keeper)
	if err != nil {
		return nil, domain.ErrKeeperNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := animalDoc{
		Name:        animal.Name,
		Description: animal.Description,
		Age:         animal.Age,
		Type:        string(animal.Type),
		Keeper:      keeper,
		CreatedAt:   animal.CreatedAt,
		UpdatedAt:   animal.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert animal: %w", err)
	}

	created := *animal
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AnimalRepository) Update(ctx context.Context, id string, patch ports.AnimalPatch) (*domain.Animal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAnimalNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Age != nil {
		set["age"] = *patch.Age
	}
	if patch.Keeper != nil {
		keeper, err := primitive.ObjectIDFromHex(*patch.Keeper)
		if err != nil {
			return nil, domain.ErrKeeperNotFound
		}
		set["keeper"] = keeper
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d animalDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("update animal: %w", err)
	}
	return d.toDomain(), nil
}

func (r *AnimalRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAnimalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete animal: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAnimalNotFound
	}
	return nil
}

// EnsureIndexes creates the keeper lookup index.
func (r *AnimalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "keeper", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
