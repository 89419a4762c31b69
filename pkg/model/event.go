package model

import "time"

// Event is a booking of campus resources over a half-open time interval
// [start_time, end_time). Events are never deleted; terminal states keep
// the record around as an audit trail.
type Event struct {
	ID              string       `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Title           string       `json:"title" bson:"title" validate:"required,min=2,max=200"`
	Description     string       `json:"description" bson:"description" validate:"omitempty,max=2000"`
	Organizer       string       `json:"organizer" bson:"organizer" validate:"required,min=2,max=100"`
	FacultyInCharge string       `json:"faculty_in_charge" bson:"faculty_in_charge" validate:"required,min=2,max=100"`
	Club            string       `json:"club" bson:"club" validate:"omitempty,max=100"`
	StartTime       time.Time    `json:"start_time" bson:"start_time" validate:"required"`
	EndTime         time.Time    `json:"end_time" bson:"end_time" validate:"required,gtfield=StartTime"`
	Allocation      Allocation   `json:"allocation" bson:"allocation"`
	Requirements    Requirements `json:"requirements" bson:"requirements"`
	Status          EventStatus  `json:"status" bson:"status" validate:"required,oneof=pending approved rejected cancelled completed"`
	CreatedAt       time.Time    `json:"created_at" bson:"created_at" validate:"omitempty"`
	Proofs          []Proof      `json:"proofs" bson:"proofs"`
}

// Allocation is the set of resources an event claims. FacilityName is a
// denormalized snapshot taken at creation time; deleting a facility later
// leaves the snapshot intact.
type Allocation struct {
	FacilityID   string   `json:"facility_id" bson:"facility_id" validate:"omitempty,mongodb"`
	FacilityName string   `json:"facility_name" bson:"facility_name" validate:"omitempty,max=100"`
	MediaIDs     []string `json:"media_ids" bson:"media_ids" validate:"omitempty,max=20,dive,mongodb"`
}

// Requirements carries the logistics sub-structures of a booking request.
// The booking core stores and returns them verbatim and never validates
// their contents.
type Requirements struct {
	Catering  map[string]any `json:"catering,omitempty" bson:"catering,omitempty"`
	Stay      map[string]any `json:"stay,omitempty" bson:"stay,omitempty"`
	Transport map[string]any `json:"transport,omitempty" bson:"transport,omitempty"`
}

// Proof is a completion attachment stored outside the database; Locator
// points at the stored blob.
type Proof struct {
	Name       string    `json:"name" bson:"name"`
	Locator    string    `json:"locator" bson:"locator"`
	UploadedAt time.Time `json:"uploaded_at" bson:"uploaded_at"`
}

type EventUpdate struct {
	Title           string        `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Description     *string       `json:"description,omitempty" validate:"omitempty,max=2000"`
	Organizer       string        `json:"organizer,omitempty" validate:"omitempty,min=2,max=100"`
	FacultyInCharge string        `json:"faculty_in_charge,omitempty" validate:"omitempty,min=2,max=100"`
	Club            *string       `json:"club,omitempty" validate:"omitempty,max=100"`
	StartTime       *time.Time    `json:"start_time,omitempty" validate:"omitempty"`
	EndTime         *time.Time    `json:"end_time,omitempty" validate:"omitempty"`
	Allocation      *Allocation   `json:"allocation,omitempty"`
	Requirements    *Requirements `json:"requirements,omitempty"`
	Status          EventStatus   `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected cancelled completed"`
}

// TouchesSchedule reports whether the patch changes the booked interval or
// the claimed resources. Such patches always trigger conflict
// re-validation, even when the new values equal the stored ones;
// status-only patches never do.
func (u *EventUpdate) TouchesSchedule() bool {
	return u.StartTime != nil || u.EndTime != nil || u.Allocation != nil
}

// Availability is the read-only preview of free resources for an interval.
// It is advisory: the authoritative conflict check happens inside
// create/update.
type Availability struct {
	AvailableFacilities []*Facility      `json:"available_facilities"`
	AvailableMedia      []*MediaResource `json:"available_media"`
	TakenFacilityIDs    []string         `json:"taken_facility_ids"`
	TakenMediaIDs       []string         `json:"taken_media_ids"`
}
