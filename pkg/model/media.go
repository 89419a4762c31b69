package model

import "time"

// MediaResource is a bookable piece of equipment not tied to a venue,
// e.g. a projector or an audio rig.
type MediaResource struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name      string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Category  string    `json:"category" bson:"category" validate:"omitempty,max=50"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

type MediaResourceUpdate struct {
	Name     string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=50"`
}
