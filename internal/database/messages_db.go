package database

import (
	"database/sql"

	"github.com/member-portal/app/internal/models"
)

// CreateMessage inserts a new message for a user. The schema rejects titles
// over 100 characters and unknown user ids.
func CreateMessage(db *sql.DB, message *models.Message) (*models.Message, error) {
	stmt, err := db.Prepare("INSERT INTO messages(title, content, user_id) VALUES(?, ?, ?)")
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(message.Title, message.Content, message.UserID)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	created := &models.Message{}
	row := db.QueryRow("SELECT id, title, content, timestamp, user_id FROM messages WHERE id = ?", id)
	err = row.Scan(&created.ID, &created.Title, &created.Content, &created.Timestamp, &created.UserID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetMessagesForUser retrieves all messages belonging to a user, oldest
// first.
func GetMessagesForUser(db *sql.DB, userID int64) ([]*models.Message, error) {
	rows, err := db.Query("SELECT id, title, content, timestamp, user_id FROM messages WHERE user_id = ? ORDER BY timestamp ASC, id ASC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		msg := &models.Message{}
		if err := rows.Scan(&msg.ID, &msg.Title, &msg.Content, &msg.Timestamp, &msg.UserID); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
