package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
)

type SQLAdministratorRepository struct {
	db *sql.DB
}

func NewSQLAdministratorRepository(db *sql.DB) *SQLAdministratorRepository {
	return &SQLAdministratorRepository{db: db}
}

func (r *SQLAdministratorRepository) CreateAdministrator(ctx context.Context, admin *domain.Administrator) error {
	query := `
        INSERT INTO administrator (first_name, last_name, email, password)
        VALUES (?, ?, ?, ?)
    `
	res, err := r.db.ExecContext(ctx, query,
		admin.FirstName, admin.LastName, admin.Email, admin.PasswordHash)
	if err != nil {
		return fmt.Errorf("insert administrator %s: %w", admin.Email, classifyCredentialInsert(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert administrator %s: %w", admin.Email, classify(err))
	}
	admin.ID = id
	return nil
}

func (r *SQLAdministratorRepository) FindAdministratorByCredentials(ctx context.Context, email, passwordHash string) (*domain.Administrator, error) {
	query := `
        SELECT admin_id, first_name, last_name, email, password
        FROM administrator WHERE email = ? AND password = ?
    `

	var admin domain.Administrator
	err := r.db.QueryRowContext(ctx, query, email, passwordHash).Scan(
		&admin.ID, &admin.FirstName, &admin.LastName, &admin.Email, &admin.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find administrator: %w", classify(err))
	}
	return &admin, nil
}
