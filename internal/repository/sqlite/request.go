package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rdvpro/backend/pkg/models"
)

func (r *SQLiteRepo) CreateRequest(ctx context.Context, req *models.Request) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request is nil")
	}

	id := uuid.NewString()
	status := req.Status
	if status == "" {
		status = models.StatusNew
	}
	_, err := r.conn.Exec(ctx, `INSERT INTO requests (id, name, email, phone, service_id, message, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.Name, req.Email, req.Phone, req.ServiceID, req.Message, status, req.CreatedAt, req.UpdatedAt)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (r *SQLiteRepo) GetRequest(ctx context.Context, id string) (*models.Request, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, email, phone, service_id, message, status, created_at, updated_at FROM requests WHERE id = ?`, id)
	var req models.Request
	if err := row.Scan(&req.ID, &req.Name, &req.Email, &req.Phone, &req.ServiceID, &req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

// ListRequests returns requests most recent first. created_at is RFC3339
// TEXT, so descending lexical order is chronological and rows with an empty
// timestamp land at the end.
func (r *SQLiteRepo) ListRequests(ctx context.Context, status string) ([]models.Request, error) {
	query := `SELECT id, name, email, phone, service_id, message, status, created_at, updated_at FROM requests`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Request
	for rows.Next() {
		var req models.Request
		if err := rows.Scan(&req.ID, &req.Name, &req.Email, &req.Phone, &req.ServiceID, &req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// SetStatus updates the request and appends its history row in one
// transaction, so a transition never lands without its log entry.
func (r *SQLiteRepo) SetStatus(ctx context.Context, id, status string) (int64, error) {
	tx, err := r.conn.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	ts := now()
	res, err := tx.ExecContext(ctx, `UPDATE requests SET status = ?, updated_at = ? WHERE id = ?`, status, ts, id)
	if err != nil {
		return 0, err
	}
	matched, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if matched == 0 {
		return 0, nil
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO request_logs (id, request_id, status, timestamp) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), id, status, ts); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return matched, nil
}

// ListLogs returns history entries in insertion order.
func (r *SQLiteRepo) ListLogs(ctx context.Context, requestID string) ([]models.RequestLog, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, request_id, status, timestamp FROM request_logs WHERE request_id = ? ORDER BY rowid`, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.RequestLog
	for rows.Next() {
		var l models.RequestLog
		if err := rows.Scan(&l.ID, &l.RequestID, &l.Status, &l.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
