package user

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// MySQL ER_DUP_ENTRY: the UNIQUE(email) constraint rejected the insert.
const dupEntryErrNo = 1062

type MySQLRepo struct {
	DB *sql.DB
}

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{DB: db}
}

func (r *MySQLRepo) Create(acc *Account) error {
	_, err := r.DB.Exec(
		"INSERT INTO users (id, username, email, password) VALUES (?, ?, ?, ?)",
		acc.ID, acc.Username, acc.Email, acc.Password,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == dupEntryErrNo {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *MySQLRepo) FindByEmail(email string) (*Account, error) {
	var a Account
	err := r.DB.QueryRow(
		"SELECT id, username, email, password FROM users WHERE email = ?",
		email,
	).Scan(&a.ID, &a.Username, &a.Email, &a.Password)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select account: %w", err)
	}

	return &a, nil
}
