package users

import (
	"context"

	"github.com/dmitrijs2005/userdesk/internal/server/models"
)

// Repository is the persistence contract for user rows.
//
// Implementations must return shared.ErrorNotFound when an id matches no
// row and shared.ErrorAlreadyExists when the unique email constraint is
// violated, so upper layers can classify failures without knowing the
// storage engine.
type Repository interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
