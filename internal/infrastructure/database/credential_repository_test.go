package database

import (
	"context"
	"testing"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
	"github.com/stretchr/testify/require"
)

func newUser(email, hash string) *domain.User {
	return &domain.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		StreetNo:     "12",
		StreetName:   "St James's Square",
		City:         "London",
		State:        "Greater London",
		Zipcode:      "SW1Y",
		Country:      "UK",
		Email:        email,
		Phone:        "555-0100",
		PasswordHash: hash,
	}
}

func TestSQLUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLUserRepository(db)
	ctx := context.Background()

	user := newUser("ada@example.com", "hash-1")
	require.NoError(t, repo.CreateUser(ctx, user))
	require.NotZero(t, user.ID)

	found, err := repo.FindUserByCredentials(ctx, "ada@example.com", "hash-1")
	require.NoError(t, err)
	require.Equal(t, user, found)
}

func TestSQLUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLUserRepository(db)
	ctx := context.Background()

	first := newUser("dup@example.com", "hash-1")
	require.NoError(t, repo.CreateUser(ctx, first))

	second := newUser("dup@example.com", "hash-2")
	second.FirstName = "Mallory"
	err := repo.CreateUser(ctx, second)
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	require.Zero(t, second.ID)

	require.Equal(t, 1, countRows(t, db, "users"))
	found, err := repo.FindUserByCredentials(ctx, "dup@example.com", "hash-1")
	require.NoError(t, err)
	require.Equal(t, "Ada", found.FirstName)
}

func TestSQLUserRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, newUser("ada@example.com", "hash-1")))

	tests := []struct {
		name  string
		email string
		hash  string
	}{
		{name: "wrong_password", email: "ada@example.com", hash: "hash-2"},
		{name: "unknown_email", email: "eve@example.com", hash: "hash-1"},
		{name: "both_wrong", email: "eve@example.com", hash: "hash-2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user, err := repo.FindUserByCredentials(ctx, tc.email, tc.hash)
			require.ErrorIs(t, err, domain.ErrNotFound)
			require.Nil(t, user)
		})
	}
}

func TestSQLAdministratorRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLAdministratorRepository(db)
	ctx := context.Background()

	admin := &domain.Administrator{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.CreateAdministrator(ctx, admin))
	require.NotZero(t, admin.ID)

	found, err := repo.FindAdministratorByCredentials(ctx, "grace@example.com", "hash")
	require.NoError(t, err)
	require.Equal(t, admin, found)

	dup := &domain.Administrator{FirstName: "Other", Email: "grace@example.com", PasswordHash: "x"}
	require.ErrorIs(t, repo.CreateAdministrator(ctx, dup), domain.ErrDuplicateEmail)

	_, err = repo.FindAdministratorByCredentials(ctx, "grace@example.com", "wrong")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCredentialTablesAreIndependent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, NewSQLUserRepository(db).CreateUser(ctx, newUser("same@example.com", "hash")))
	admin := &domain.Administrator{FirstName: "Same", Email: "same@example.com", PasswordHash: "hash"}
	require.NoError(t, NewSQLAdministratorRepository(db).CreateAdministrator(ctx, admin))
}
