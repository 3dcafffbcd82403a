package repository

import (
	"context"

	"github.com/rdvpro/backend/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Point reads return (nil, nil) when no record matches: absence is a normal
// outcome, not an error. Updates report how many rows matched so callers can
// surface not-found themselves.

type ServiceRepo interface {
	CreateService(ctx context.Context, s *models.Service) (string, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
}

type RequestRepo interface {
	CreateRequest(ctx context.Context, r *models.Request) (string, error)
	GetRequest(ctx context.Context, id string) (*models.Request, error)
	// ListRequests filters on the exact status literal when status is
	// non-empty. Results are ordered by creation time descending; rows with
	// an empty creation timestamp come last.
	ListRequests(ctx context.Context, status string) ([]models.Request, error)
	// SetStatus updates status and updated_at and appends the matching
	// history row in one transaction. It returns the number of matched
	// request rows (0 means not found).
	SetStatus(ctx context.Context, id, status string) (int64, error)
	ListLogs(ctx context.Context, requestID string) ([]models.RequestLog, error)
}

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type BusinessRepo interface {
	// CreateBusiness inserts b and makes it the active profile, deactivating
	// any previous one in the same transaction.
	CreateBusiness(ctx context.Context, b *models.Business) (string, error)
	// ActiveBusiness returns the currently active profile, or (nil, nil)
	// when nothing has been onboarded yet.
	ActiveBusiness(ctx context.Context) (*models.Business, error)
}
