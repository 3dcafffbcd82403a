package api

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/rdvpro/backend/internal/db"
)

type SystemHandler struct {
	db     *db.DB
	dbPath string
}

func NewSystemHandler(d *db.DB, dbPath string) *SystemHandler {
	return &SystemHandler{db: d, dbPath: dbPath}
}

func (h *SystemHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"message": "Backend up"}, http.StatusOK)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":"%s","buildTime":"%s"}`, version, buildTime)
	}
}

// TestHandler is the store connectivity diagnostic: connection flag, database
// name and the list of tables. It never fails the request; problems show up
// in the payload.
func (h *SystemHandler) TestHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.dbPath != "" {
		resp["database_url"] = "✅ Set"
	}

	if h.db != nil {
		if err := h.db.GetConn().PingContext(r.Context()); err != nil {
			resp["database"] = "❌ Error: " + truncate(err.Error(), 80)
			writeJSON(w, resp, http.StatusOK)
			return
		}

		tables := []string{}
		rows, err := h.db.QueryRows(r.Context(), `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
		if err == nil {
			defer rows.Close()
			for rows.Next() {
				var name string
				if err := rows.Scan(&name); err == nil {
					tables = append(tables, name)
				}
			}
		}

		resp["database"] = "✅ Connected & Working"
		resp["database_name"] = filepath.Base(h.dbPath)
		resp["connection_status"] = "Connected"
		resp["collections"] = tables
	}

	writeJSON(w, resp, http.StatusOK)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
