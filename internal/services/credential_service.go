package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/logger"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/utils"
)

// CredentialService registers and authenticates users and administrators.
type CredentialService struct {
	users  domain.UserRepository
	admins domain.AdministratorRepository
	log    logger.Logger
}

func NewCredentialService(users domain.UserRepository, admins domain.AdministratorRepository, log logger.Logger) *CredentialService {
	return &CredentialService{
		users:  users,
		admins: admins,
		log:    log,
	}
}

// Register stores a new principal with a hashed password. A second
// registration with the same email fails with domain.ErrDuplicateEmail and
// leaves the first row untouched.
func (s *CredentialService) Register(ctx context.Context, kind domain.PrincipalKind, reg domain.Registration) (*domain.Principal, error) {
	hash := utils.HashPassword(reg.Password)

	var principal *domain.Principal
	switch kind {
	case domain.PrincipalUser:
		user := &domain.User{
			FirstName:    reg.FirstName,
			LastName:     reg.LastName,
			StreetNo:     reg.StreetNo,
			StreetName:   reg.StreetName,
			City:         reg.City,
			State:        reg.State,
			Zipcode:      reg.Zipcode,
			Country:      reg.Country,
			Email:        reg.Email,
			Phone:        reg.Phone,
			PasswordHash: hash,
		}
		if err := s.users.CreateUser(ctx, user); err != nil {
			return nil, s.registrationFailed(kind, reg.Email, err)
		}
		principal = userPrincipal(user)
	case domain.PrincipalAdministrator:
		admin := &domain.Administrator{
			FirstName:    reg.FirstName,
			LastName:     reg.LastName,
			Email:        reg.Email,
			PasswordHash: hash,
		}
		if err := s.admins.CreateAdministrator(ctx, admin); err != nil {
			return nil, s.registrationFailed(kind, reg.Email, err)
		}
		principal = adminPrincipal(admin)
	default:
		return nil, fmt.Errorf("register: unknown principal kind %d", kind)
	}

	s.log.Info("Principal registered", "kind", kind.String(), "id", principal.ID)
	return principal, nil
}

func (s *CredentialService) registrationFailed(kind domain.PrincipalKind, email string, err error) error {
	if errors.Is(err, domain.ErrDuplicateEmail) {
		s.log.Warn("Registration rejected, email in use", "kind", kind.String(), "email", email)
	} else {
		s.log.Error("Failed to register principal", "kind", kind.String(), "error", err)
	}
	return fmt.Errorf("register %s: %w", kind, err)
}

// Login returns the principal whose email and password both match. An
// unknown email and a wrong password both yield domain.ErrNotFound.
func (s *CredentialService) Login(ctx context.Context, kind domain.PrincipalKind, email, password string) (*domain.Principal, error) {
	hash := utils.HashPassword(password)

	switch kind {
	case domain.PrincipalUser:
		user, err := s.users.FindUserByCredentials(ctx, email, hash)
		if err != nil {
			return nil, s.loginFailed(kind, err)
		}
		return userPrincipal(user), nil
	case domain.PrincipalAdministrator:
		admin, err := s.admins.FindAdministratorByCredentials(ctx, email, hash)
		if err != nil {
			return nil, s.loginFailed(kind, err)
		}
		return adminPrincipal(admin), nil
	default:
		return nil, fmt.Errorf("login: unknown principal kind %d", kind)
	}
}

func (s *CredentialService) loginFailed(kind domain.PrincipalKind, err error) error {
	if !errors.Is(err, domain.ErrNotFound) {
		s.log.Error("Login lookup failed", "kind", kind.String(), "error", err)
	}
	return fmt.Errorf("login %s: %w", kind, err)
}

func userPrincipal(u *domain.User) *domain.Principal {
	return &domain.Principal{
		Kind:      domain.PrincipalUser,
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func adminPrincipal(a *domain.Administrator) *domain.Principal {
	return &domain.Principal{
		Kind:      domain.PrincipalAdministrator,
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
	}
}
