package model

import "time"

// Facility is a bookable physical venue.
type Facility struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name      string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Capacity  int       `json:"capacity" bson:"capacity" validate:"omitempty,min=0,max=100000"`
	Location  string    `json:"location" bson:"location" validate:"omitempty,max=200"`
	Resources []string  `json:"resources" bson:"resources" validate:"omitempty,max=20,dive,max=50"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

type FacilityUpdate struct {
	Name      string    `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Capacity  *int      `json:"capacity,omitempty" validate:"omitempty,min=0,max=100000"`
	Location  *string   `json:"location,omitempty" validate:"omitempty,max=200"`
	Resources *[]string `json:"resources,omitempty" validate:"omitempty,max=20,dive,max=50"`
}
