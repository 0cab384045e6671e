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

const appointmentsCollection = "appointments"

// AppointmentRepository implements ports.AppointmentRepository on MongoDB.
type AppointmentRepository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{coll: db.Collection(appointmentsCollection)}
}

type appointmentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Date      time.Time          `bson:"date"`
	Status    string             `bson:"status"`
	Animal    primitive.ObjectID `bson:"animal"`
	Client    primitive.ObjectID `bson:"client"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *appointmentDoc) toDomain() *domain.Appointment {
	return &domain.Appointment{
		ID:        d.ID.Hex(),
		Date:      d.Date.UTC(),
		Status:    domain.AppointmentStatus(d.Status),
		Animal:    d.Animal.Hex(),
		Client:    d.Client.Hex(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *AppointmentRepository) List(ctx context.Context) ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []*domain.Appointment
	for cursor.Next(ctx) {
		var d appointmentDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode appointment: %w", err)
		}
		appointments = append(appointments, d.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppointmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d appointmentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return d.toDomain(), nil
}

func (r *AppointmentRepository) FindByDate(ctx context.Context, date time.Time) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d appointmentDoc
	if err := r.coll.FindOne(ctx, bson.M{"date": date}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment by date: %w", err)
	}
	return d.toDomain(), nil
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	animal, err := primitive.ObjectIDFromHex(appointment.Animal)
	if err != nil {
		return nil, domain.ErrAnimalNotFound
	}
	client, err := primitive.ObjectIDFromHex(appointment.Client)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := appointmentDoc{
		Date:      appointment.Date,
		Status:    string(appointment.Status),
		Animal:    animal,
		Client:    client,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		// The unique date index closes the check-then-book race: the
		// second concurrent insert for the same day lands here.
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDateTaken
		}
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	created := *appointment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id string, patch ports.AppointmentPatch) (*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppointmentNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.Animal != nil {
		animal, err := primitive.ObjectIDFromHex(*patch.Animal)
		if err != nil {
			return nil, domain.ErrAnimalNotFound
		}
		set["animal"] = animal
	}
	if patch.Client != nil {
		client, err := primitive.ObjectIDFromHex(*patch.Client)
		if err != nil {
			return nil, domain.ErrClientNotFound
		}
		set["client"] = client
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d appointmentDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDateTaken
		}
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return d.toDomain(), nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAppointmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

// EnsureIndexes creates the unique index enforcing one appointment per
// normalized date.
func (r *AppointmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "client", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
