package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rdvpro/backend/pkg/models"
)

func (r *SQLiteRepo) CreateService(ctx context.Context, s *models.Service) (string, error) {
	if s == nil {
		return "", fmt.Errorf("service is nil")
	}

	id := uuid.NewString()
	_, err := r.conn.Exec(ctx, `INSERT INTO services (id, title, description, price, duration) VALUES (?, ?, ?, ?, ?)`,
		id, s.Title, s.Description, s.Price, s.Duration)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (r *SQLiteRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, title, description, price, duration FROM services ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, title, description, price, duration FROM services WHERE id = ?`, id)
	s, err := scanService(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanService(sc scanner) (*models.Service, error) {
	var s models.Service
	var price sql.NullFloat64
	var duration sql.NullInt64
	if err := sc.Scan(&s.ID, &s.Title, &s.Description, &price, &duration); err != nil {
		return nil, err
	}
	if price.Valid {
		s.Price = &price.Float64
	}
	if duration.Valid {
		s.Duration = &duration.Int64
	}
	return &s, nil
}
