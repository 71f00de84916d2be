package session

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type MySQLRepo struct {
	DB *sql.DB
}

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{DB: db}
}

func (r *MySQLRepo) Create(sess *Session) error {
	_, err := r.DB.Exec(`
		INSERT INTO sessions (token, user_id, username, email, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sess.Token, sess.UserID, sess.Username, sess.Email, sess.CreatedAt, sess.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *MySQLRepo) FindByToken(token string) (*Session, error) {
	var s Session
	err := r.DB.QueryRow(`
		SELECT token, user_id, username, email, created_at, expires_at
		FROM sessions
		WHERE token = ? AND expires_at > ?
	`, token, time.Now().UTC()).Scan(&s.Token, &s.UserID, &s.Username, &s.Email, &s.CreatedAt, &s.ExpiresAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select session: %w", err)
	}

	return &s, nil
}

func (r *MySQLRepo) Delete(token string) error {
	if _, err := r.DB.Exec(`DELETE FROM sessions WHERE token = ?`, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
