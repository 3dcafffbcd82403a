package mock

import (
	"context"
	"sort"
	"strconv"

	"github.com/rdvpro/backend/pkg/models"
)

// Test helpers and mocks: small in-memory repositories with error injection.
type Mocks struct {
	Services   *ServiceRepoMock
	Requests   *RequestRepoMock
	Users      *UserRepoMock
	Businesses *BusinessRepoMock
}

func NewMocks() *Mocks {
	return &Mocks{
		Services:   &ServiceRepoMock{},
		Requests:   &RequestRepoMock{},
		Users:      &UserRepoMock{},
		Businesses: &BusinessRepoMock{},
	}
}

type ServiceRepoMock struct {
	Stored    []models.Service
	CreateErr error
	ListErr   error
}

func (m *ServiceRepoMock) CreateService(ctx context.Context, s *models.Service) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	id := "svc-" + strconv.Itoa(len(m.Stored)+1)
	stored := *s
	stored.ID = id
	m.Stored = append(m.Stored, stored)
	return id, nil
}

func (m *ServiceRepoMock) ListServices(ctx context.Context) ([]models.Service, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Stored, nil
}

func (m *ServiceRepoMock) GetService(ctx context.Context, id string) (*models.Service, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			return &m.Stored[i], nil
		}
	}
	return nil, nil
}

type RequestRepoMock struct {
	Stored    []models.Request
	Logs      []models.RequestLog
	CreateErr error
	StatusErr error
}

func (m *RequestRepoMock) CreateRequest(ctx context.Context, r *models.Request) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	id := "req-" + strconv.Itoa(len(m.Stored)+1)
	stored := *r
	stored.ID = id
	if stored.Status == "" {
		stored.Status = models.StatusNew
	}
	m.Stored = append(m.Stored, stored)
	return id, nil
}

func (m *RequestRepoMock) GetRequest(ctx context.Context, id string) (*models.Request, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			return &m.Stored[i], nil
		}
	}
	return nil, nil
}

func (m *RequestRepoMock) ListRequests(ctx context.Context, status string) ([]models.Request, error) {
	var out []models.Request
	for _, r := range m.Stored {
		if status == "" || r.Status == status {
			out = append(out, r)
		}
	}
	// descending by creation time; empty timestamps last
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

func (m *RequestRepoMock) SetStatus(ctx context.Context, id, status string) (int64, error) {
	if m.StatusErr != nil {
		return 0, m.StatusErr
	}
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			m.Stored[i].Status = status
			m.Logs = append(m.Logs, models.RequestLog{
				ID:        "log-" + strconv.Itoa(len(m.Logs)+1),
				RequestID: id,
				Status:    status,
			})
			return 1, nil
		}
	}
	return 0, nil
}

func (m *RequestRepoMock) ListLogs(ctx context.Context, requestID string) ([]models.RequestLog, error) {
	var out []models.RequestLog
	for _, l := range m.Logs {
		if l.RequestID == requestID {
			out = append(out, l)
		}
	}
	return out, nil
}

type UserRepoMock struct {
	Stored    *models.User
	CreateErr error
	GetErr    error
}

func (m *UserRepoMock) CreateUser(ctx context.Context, u *models.User) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	stored := *u
	stored.ID = "user-1"
	m.Stored = &stored
	return stored.ID, nil
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

type BusinessRepoMock struct {
	Stored    []models.Business
	CreateErr error
	GetErr    error
}

func (m *BusinessRepoMock) CreateBusiness(ctx context.Context, b *models.Business) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	for i := range m.Stored {
		m.Stored[i].Active = false
	}
	stored := *b
	stored.ID = "biz-" + strconv.Itoa(len(m.Stored)+1)
	stored.Active = true
	m.Stored = append(m.Stored, stored)
	return stored.ID, nil
}

func (m *BusinessRepoMock) ActiveBusiness(ctx context.Context) (*models.Business, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Stored {
		if m.Stored[i].Active {
			return &m.Stored[i], nil
		}
	}
	return nil, nil
}
