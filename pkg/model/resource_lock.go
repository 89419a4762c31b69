package model

import "time"

// ResourceLock is an advisory lock preventing two concurrent booking
// requests from racing through the read-validate-write sequence for the
// same resource. The lock id is derived from the resource id, so a unique
// index on _id gives mutual exclusion per resource.
type ResourceLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
