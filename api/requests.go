package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rdvpro/backend/internal/leads"
	"github.com/rdvpro/backend/pkg/models"
)

type RequestsHandler struct {
	leads *leads.Service
}

func NewRequestsHandler(ls *leads.Service) *RequestsHandler {
	return &RequestsHandler{leads: ls}
}

type postRequestRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ServiceID string `json:"service_id"`
	Message   string `json:"message"`
}

func (h *RequestsHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req postRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		http.Error(w, "name, email and phone are required", http.StatusBadRequest)
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		http.Error(w, "invalid email", http.StatusBadRequest)
		return
	}

	id, err := h.leads.Create(r.Context(), leads.CreateInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		ServiceID: req.ServiceID,
		Message:   req.Message,
	})
	if err != nil {
		http.Error(w, "failed to store request", http.StatusInternalServerError)
		return
	}

	writeJSON(w, idResponse{ID: id}, http.StatusCreated)
}

func (h *RequestsHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	requests, err := h.leads.List(r.Context(), status)
	if err != nil {
		http.Error(w, "failed to list requests", http.StatusInternalServerError)
		return
	}
	if requests == nil {
		requests = []models.Request{}
	}

	writeJSON(w, requests, http.StatusOK)
}

func (h *RequestsHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	req, err := h.leads.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, leads.ErrNotFound) {
			http.Error(w, "Demande introuvable", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to get request", http.StatusInternalServerError)
		return
	}

	writeJSON(w, req, http.StatusOK)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *RequestsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.leads.SetStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, leads.ErrInvalidStatus):
			http.Error(w, "Statut invalide", http.StatusBadRequest)
		case errors.Is(err, leads.ErrNotFound):
			http.Error(w, "Demande introuvable", http.StatusNotFound)
		default:
			http.Error(w, "failed to update status", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, map[string]bool{"ok": true}, http.StatusOK)
}

func (h *RequestsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	logs, err := h.leads.History(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to list history", http.StatusInternalServerError)
		return
	}
	if logs == nil {
		logs = []models.RequestLog{}
	}

	writeJSON(w, logs, http.StatusOK)
}
