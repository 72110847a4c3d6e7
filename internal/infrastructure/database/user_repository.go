package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
)

type SQLUserRepository struct {
	db *sql.DB
}

func NewSQLUserRepository(db *sql.DB) *SQLUserRepository {
	return &SQLUserRepository{db: db}
}

func (r *SQLUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
        INSERT INTO users (
            first_name, last_name, street_no, street_name,
            city, state, zipcode, country,
            email, phone, password
        )
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	res, err := r.db.ExecContext(ctx, query,
		user.FirstName, user.LastName, user.StreetNo, user.StreetName,
		user.City, user.State, user.Zipcode, user.Country,
		user.Email, user.Phone, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("insert user %s: %w", user.Email, classifyCredentialInsert(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert user %s: %w", user.Email, classify(err))
	}
	user.ID = id
	return nil
}

func (r *SQLUserRepository) FindUserByCredentials(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	query := `
        SELECT user_id, first_name, last_name, street_no, street_name,
               city, state, zipcode, country, email, phone, password
        FROM users WHERE email = ? AND password = ?
    `

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, email, passwordHash).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.StreetNo, &user.StreetName,
		&user.City, &user.State, &user.Zipcode, &user.Country,
		&user.Email, &user.Phone, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", classify(err))
	}
	return &user, nil
}
