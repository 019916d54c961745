// Package users implements the user management service: input validation
// and error classification on top of the persistence layer.
package users

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/userdesk/internal/server/models"
	"github.com/dmitrijs2005/userdesk/internal/server/repositories/users"
	"github.com/dmitrijs2005/userdesk/internal/shared"
)

// emailPattern accepts anything shaped like local@domain.tld. The client
// applies the same check before submitting; this is the server-side recheck.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	ErrNameEmailRequired = fmt.Errorf("%w: name and email are required", shared.ErrorValidation)
	ErrInvalidEmail      = fmt.Errorf("%w: invalid email", shared.ErrorValidation)
)

type Service struct {
	repo users.Repository
}

func NewService(repo users.Repository) *Service {
	return &Service{repo: repo}
}

// validate normalizes and checks the editable fields. The returned phone is
// nil when empty so the column stores NULL rather than an empty string.
func validate(name, email string, phone *string) (string, string, *string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" {
		return "", "", nil, ErrNameEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return "", "", nil, ErrInvalidEmail
	}

	if phone != nil {
		p := strings.TrimSpace(*phone)
		if p == "" {
			phone = nil
		} else {
			phone = &p
		}
	}

	return name, email, phone, nil
}

func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return user, nil
}

func (s *Service) Create(ctx context.Context, name, email string, phone *string) (*models.User, error) {
	name, email, phone, err := validate(name, email, phone)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, &models.User{Name: name, Email: email, Phone: phone})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

func (s *Service) Update(ctx context.Context, id int64, name, email string, phone *string) (*models.User, error) {
	name, email, phone, err := validate(name, email, phone)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Update(ctx, &models.User{ID: id, Name: name, Email: email, Phone: phone})
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return user, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
