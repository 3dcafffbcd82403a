package models

// Domain models matching the database schema in db/migrations/0001_init.sql

// Request statuses. The French literals are both the storage and the wire
// representation.
const (
	StatusNew       = "Nouveau"
	StatusConfirmed = "Confirmé"
	StatusCancelled = "Annulé"
)

// ValidStatus reports whether s is one of the three legal status literals.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

type Service struct {
	ID          string   `json:"id" db:"id"`
	Title       string   `json:"title" db:"title" validate:"required"`
	Description string   `json:"description,omitempty" db:"description"`
	Price       *float64 `json:"price,omitempty" db:"price"`
	Duration    *int64   `json:"duration,omitempty" db:"duration"`
}

// Request is an appointment inquiry (lead). CreatedAt and UpdatedAt are
// RFC3339 UTC strings; an empty CreatedAt sorts last in descending lists.
type Request struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name" validate:"required"`
	Email     string `json:"email" db:"email" validate:"required,email"`
	Phone     string `json:"phone" db:"phone" validate:"required"`
	ServiceID string `json:"service_id,omitempty" db:"service_id"`
	Message   string `json:"message,omitempty" db:"message"`
	Status    string `json:"status" db:"status"`
	CreatedAt string `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty" db:"updated_at"`
}

// RequestLog is one immutable status-transition record. Rows are append-only.
type RequestLog struct {
	ID        string `json:"id" db:"id"`
	RequestID string `json:"request_id" db:"request_id"`
	Status    string `json:"status" db:"status"`
	Timestamp string `json:"timestamp" db:"timestamp"`
}

type User struct {
	ID           string `json:"id" db:"id"`
	Name         string `json:"name" db:"name" validate:"required"`
	Email        string `json:"email" db:"email" validate:"required,email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type FAQEntry struct {
	Q string `json:"q"`
	A string `json:"a"`
}

type ServiceDescription struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Business is an onboarded profile together with its generated content.
// At most one profile is active at a time; onboarding activates the new one.
type Business struct {
	ID                  string               `json:"id" db:"id"`
	OwnerName           string               `json:"owner_name" db:"owner_name"`
	Trade               string               `json:"metier" db:"trade"`
	Location            string               `json:"localisation" db:"location"`
	Services            []string             `json:"services" db:"services"`
	Hours               string               `json:"horaires" db:"hours"`
	Intro               string               `json:"intro_paragraph" db:"intro"`
	FAQ                 []FAQEntry           `json:"faq" db:"faq"`
	ServiceDescriptions []ServiceDescription `json:"service_descriptions" db:"service_descriptions"`
	AssistantGreetings  []string             `json:"assistant_responses" db:"assistant_greetings"`
	Active              bool                 `json:"active" db:"active"`
	CreatedAt           string               `json:"created_at,omitempty" db:"created_at"`
}
