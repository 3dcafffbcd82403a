package sqlite

import (
	"log/slog"
	"os"
	"time"

	"github.com/rdvpro/backend/internal/db"
	"github.com/rdvpro/backend/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.ServiceRepo = (*SQLiteRepo)(nil)
var _ repository.RequestRepo = (*SQLiteRepo)(nil)
var _ repository.UserRepo = (*SQLiteRepo)(nil)
var _ repository.BusinessRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

// now returns the RFC3339 UTC timestamp used for all datetime columns.
// Stored as TEXT, it is ISO-8601 on the wire and sorts lexically.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
