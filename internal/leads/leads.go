// Package leads owns the appointment-request lifecycle: creation, status
// transitions with their history records, and the notification hooks.
package leads

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/rdvpro/backend/internal/notify"
	"github.com/rdvpro/backend/pkg/models"
	"github.com/rdvpro/backend/pkg/repository"
)

var (
	// ErrNotFound means no request matches the given id.
	ErrNotFound = errors.New("demande introuvable")
	// ErrInvalidStatus means the target status is not one of the three
	// legal literals.
	ErrInvalidStatus = errors.New("statut invalide")
)

type Service struct {
	requests repository.RequestRepo
	notifier notify.Notifier
	logger   *slog.Logger
}

func NewService(rr repository.RequestRepo, n notify.Notifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return &Service{requests: rr, notifier: n, logger: logger}
}

type CreateInput struct {
	Name      string
	Email     string
	Phone     string
	ServiceID string
	Message   string
}

// Create stores a new request with status "Nouveau" and a server-side UTC
// creation timestamp, then fires the best-effort new-lead notification.
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	req := &models.Request{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		ServiceID: in.ServiceID,
		Message:   in.Message,
		Status:    models.StatusNew,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	id, err := s.requests.CreateRequest(ctx, req)
	if err != nil {
		return "", err
	}

	if s.notifier != nil {
		s.notifier.LeadCreated(ctx, in.Name, in.Email)
	}

	return id, nil
}

// List returns requests filtered on the exact status literal when status is
// non-empty, most recent first.
func (s *Service) List(ctx context.Context, status string) ([]models.Request, error) {
	return s.requests.ListRequests(ctx, status)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Request, error) {
	req, err := s.requests.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrNotFound
	}
	return req, nil
}

// SetStatus applies a status transition. The status update and its history
// record are written in one transaction by the repository. Only the target
// status is validated; re-transitioning a terminal request is allowed.
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}

	matched, err := s.requests.SetStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}

	if status == models.StatusConfirmed && s.notifier != nil {
		// best effort: a failed lookup only costs the notification
		req, err := s.requests.GetRequest(ctx, id)
		if err != nil || req == nil {
			s.logger.WarnContext(ctx, "confirmation notification skipped",
				slog.String("request_id", id))
			return nil
		}
		s.notifier.LeadConfirmed(ctx, req.Email)
	}

	return nil
}

// History returns all transition records for a request in insertion order.
func (s *Service) History(ctx context.Context, id string) ([]models.RequestLog, error) {
	return s.requests.ListLogs(ctx, id)
}
