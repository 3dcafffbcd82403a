package leads_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rdvpro/backend/internal/leads"
	"github.com/rdvpro/backend/pkg/models"
	"github.com/rdvpro/backend/pkg/repository/mock"
)

type recordingNotifier struct {
	created   []string
	confirmed []string
}

func (n *recordingNotifier) LeadCreated(ctx context.Context, name, email string) {
	n.created = append(n.created, email)
}

func (n *recordingNotifier) LeadConfirmed(ctx context.Context, email string) {
	n.confirmed = append(n.confirmed, email)
}

func setup() (*leads.Service, *mock.Mocks, *recordingNotifier) {
	m := mock.NewMocks()
	n := &recordingNotifier{}
	return leads.NewService(m.Requests, n, nil), m, n
}

func TestCreateStampsDefaults(t *testing.T) {
	svc, m, n := setup()
	ctx := context.Background()

	id, err := svc.Create(ctx, leads.CreateInput{
		Name:  "Tom",
		Email: "tom@x.com",
		Phone: "0600000000",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatalf("expected non-empty id")
	}

	stored, err := m.Requests.GetRequest(ctx, id)
	if err != nil || stored == nil {
		t.Fatalf("stored request missing: %v", err)
	}
	if stored.Status != models.StatusNew {
		t.Errorf("status = %q, want %q", stored.Status, models.StatusNew)
	}
	if stored.CreatedAt == "" {
		t.Errorf("creation timestamp not stamped")
	}

	if len(n.created) != 1 || n.created[0] != "tom@x.com" {
		t.Errorf("new-lead notification not sent: %+v", n.created)
	}
}

func TestCreatePropagatesStoreError(t *testing.T) {
	svc, m, n := setup()
	m.Requests.CreateErr = errors.New("disk full")

	if _, err := svc.Create(context.Background(), leads.CreateInput{
		Name: "Tom", Email: "tom@x.com", Phone: "06",
	}); err == nil {
		t.Fatalf("expected store error")
	}
	if len(n.created) != 0 {
		t.Errorf("notification sent despite store failure")
	}
}

func TestSetStatusValidation(t *testing.T) {
	svc, m, _ := setup()
	ctx := context.Background()

	id, err := svc.Create(ctx, leads.CreateInput{Name: "Tom", Email: "tom@x.com", Phone: "06"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, bad := range []string{"", "nouveau", "Confirmed", "Autre"} {
		if err := svc.SetStatus(ctx, id, bad); !errors.Is(err, leads.ErrInvalidStatus) {
			t.Errorf("SetStatus(%q) = %v, want ErrInvalidStatus", bad, err)
		}
	}
	if got, _ := m.Requests.GetRequest(ctx, id); got.Status != models.StatusNew {
		t.Errorf("status changed by rejected transition: %q", got.Status)
	}

	if err := svc.SetStatus(ctx, "ghost", models.StatusConfirmed); !errors.Is(err, leads.ErrNotFound) {
		t.Errorf("SetStatus(unknown id) = %v, want ErrNotFound", err)
	}
}

func TestSetStatusAppendsHistoryAndNotifies(t *testing.T) {
	svc, m, n := setup()
	ctx := context.Background()

	id, err := svc.Create(ctx, leads.CreateInput{Name: "Tom", Email: "tom@x.com", Phone: "06"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.SetStatus(ctx, id, models.StatusConfirmed); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	history, err := svc.History(ctx, id)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 || history[0].Status != models.StatusConfirmed {
		t.Fatalf("unexpected history: %+v", history)
	}

	if len(n.confirmed) != 1 || n.confirmed[0] != "tom@x.com" {
		t.Errorf("confirmation notification not sent: %+v", n.confirmed)
	}

	// cancelling does not notify, but still logs
	if err := svc.SetStatus(ctx, id, models.StatusCancelled); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	history, _ = svc.History(ctx, id)
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	if len(n.confirmed) != 1 {
		t.Errorf("cancellation should not notify")
	}

	// terminal states are not enforced: re-transition is allowed
	if err := svc.SetStatus(ctx, id, models.StatusConfirmed); err != nil {
		t.Fatalf("re-transition: %v", err)
	}
	if got, _ := m.Requests.GetRequest(ctx, id); got.Status != models.StatusConfirmed {
		t.Errorf("re-transition not applied")
	}
}

func TestGet(t *testing.T) {
	svc, _, _ := setup()
	ctx := context.Background()

	if _, err := svc.Get(ctx, "nope"); !errors.Is(err, leads.ErrNotFound) {
		t.Fatalf("Get(unknown) = %v, want ErrNotFound", err)
	}

	id, _ := svc.Create(ctx, leads.CreateInput{Name: "Tom", Email: "tom@x.com", Phone: "06"})
	got, err := svc.Get(ctx, id)
	if err != nil || got == nil || got.Name != "Tom" {
		t.Fatalf("Get: %+v, %v", got, err)
	}
}
