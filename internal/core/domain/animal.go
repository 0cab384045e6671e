package domain

import (
	"errors"
	"time"
)

// AnimalType classifies an animal available for adoption.
type AnimalType string

const (
	TypeDog     AnimalType = "Dog"
	TypeCat     AnimalType = "Cat"
	TypeBird    AnimalType = "Bird"
	TypeReptile AnimalType = "Reptile"
	TypeOther   AnimalType = "Other"
)

var ErrAnimalNotFound = errors.New("animal not found")
var ErrKeeperNotFound = errors.New("keeper not found")
var ErrInvalidAnimalType = errors.New("invalid animal type")

// ValidAnimalType reports whether t is one of the known animal types.
func ValidAnimalType(t AnimalType) bool {
	switch t {
	case TypeDog, TypeCat, TypeBird, TypeReptile, TypeOther:
		return true
	}
	return false
}

// Animal is a shelter animal. Keeper references the User responsible
// for it and must exist whenever the animal is written.
type Animal struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Age         int        `json:"age"`
	Type        AnimalType `json:"type"`
	Keeper      string     `json:"keeper"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
