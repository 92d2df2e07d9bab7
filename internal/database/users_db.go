package database

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/member-portal/app/internal/models"
)

// ErrDuplicateEmail is returned by CreateUser when the email is already
// registered. The unique index on users.email is the source of truth; the
// handler-level existence check only exists for a friendlier error message.
var ErrDuplicateEmail = errors.New("email already in use")

// CreateUser inserts a new user. The password must already be hashed by the
// caller; this store never sees plaintext.
func CreateUser(db *sql.DB, firstName, lastName, email, hashedPassword string) (*models.User, error) {
	stmt, err := db.Prepare("INSERT INTO users(first_name, last_name, email, hashed_password) VALUES(?, ?, ?, ?)")
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(firstName, lastName, email, hashedPassword)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	// Re-read the row so DB defaults (created_at) are populated.
	return GetUserByID(db, id)
}

// GetUserByEmail retrieves a user by email address. Returns sql.ErrNoRows
// when no user holds that email.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	row := db.QueryRow("SELECT id, first_name, last_name, email, hashed_password, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by id. Returns sql.ErrNoRows when absent.
func GetUserByID(db *sql.DB, id int64) (*models.User, error) {
	user := &models.User{}
	row := db.QueryRow("SELECT id, first_name, last_name, email, hashed_password, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user row. No route exposes this; it exists for
// administrative use and the cascade contract: all of the user's messages
// go with it.
func DeleteUser(db *sql.DB, id int64) error {
	res, err := db.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
