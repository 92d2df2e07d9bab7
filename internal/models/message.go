package models

import "time"

// Message belongs to a User and is removed with it (ON DELETE CASCADE).
// No route serves messages yet; the entity exists as part of the schema
// contract only.
type Message struct {
	ID        int64
	Title     string // at most 100 characters, enforced by the schema
	Content   string
	Timestamp time.Time
	UserID    int64
}
