package handler

type createAnimalRequest struct {
	Name        string `json:"name"        validate:"omitempty,max=25"`
	Description string `json:"description" validate:"omitempty,max=256"`
	Age         int    `json:"age"         validate:"gte=0"`
	Type        string `json:"type"        validate:"required,oneof=Dog Cat Bird Reptile Other"`
	Keeper      string `json:"keeper"      validate:"required"`
}

// updateAnimalRequest carries the mutable animal fields. Type is fixed
// at creation.
type updateAnimalRequest struct {
	Name        *string `json:"name"        validate:"omitempty,max=25"`
	Description *string `json:"description" validate:"omitempty,max=256"`
	Age         *int    `json:"age"         validate:"omitempty,gte=0"`
	Keeper      *string `json:"keeper"`
}
