package models

import "time"

// User represents a registered account. HashedPassword is the bcrypt digest,
// never the plaintext.
type User struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	HashedPassword string
	CreatedAt      time.Time
}

// FullName is used by templates when greeting the user.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
