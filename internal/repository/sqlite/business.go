package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rdvpro/backend/pkg/models"
)

// CreateBusiness stores a profile and makes it the active one. Deactivating
// the previous profile and inserting the new one happen in one transaction,
// so there is always exactly one active profile after the first onboarding.
func (r *SQLiteRepo) CreateBusiness(ctx context.Context, b *models.Business) (string, error) {
	if b == nil {
		return "", fmt.Errorf("business is nil")
	}

	services, err := json.Marshal(b.Services)
	if err != nil {
		return "", err
	}
	faq, err := json.Marshal(b.FAQ)
	if err != nil {
		return "", err
	}
	descs, err := json.Marshal(b.ServiceDescriptions)
	if err != nil {
		return "", err
	}
	greetings, err := json.Marshal(b.AssistantGreetings)
	if err != nil {
		return "", err
	}

	tx, err := r.conn.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE businesses SET active = 0 WHERE active = 1`); err != nil {
		return "", err
	}

	id := uuid.NewString()
	if _, err := tx.ExecContext(ctx, `INSERT INTO businesses (id, owner_name, trade, location, services, hours, intro, faq, service_descriptions, assistant_greetings, active, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?)`,
		id, b.OwnerName, b.Trade, b.Location, string(services), b.Hours, b.Intro, string(faq), string(descs), string(greetings), now()); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

func (r *SQLiteRepo) ActiveBusiness(ctx context.Context) (*models.Business, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, owner_name, trade, location, services, hours, intro, faq, service_descriptions, assistant_greetings, active, created_at FROM businesses WHERE active = 1`)

	var b models.Business
	var services, faq, descs, greetings string
	var active int64
	if err := row.Scan(&b.ID, &b.OwnerName, &b.Trade, &b.Location, &services, &b.Hours, &b.Intro, &faq, &descs, &greetings, &active, &b.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	b.Active = active != 0

	if err := json.Unmarshal([]byte(services), &b.Services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	if err := json.Unmarshal([]byte(faq), &b.FAQ); err != nil {
		return nil, fmt.Errorf("decode faq: %w", err)
	}
	if err := json.Unmarshal([]byte(descs), &b.ServiceDescriptions); err != nil {
		return nil, fmt.Errorf("decode service descriptions: %w", err)
	}
	if err := json.Unmarshal([]byte(greetings), &b.AssistantGreetings); err != nil {
		return nil, fmt.Errorf("decode greetings: %w", err)
	}

	return &b, nil
}
