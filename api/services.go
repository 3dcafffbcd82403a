package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rdvpro/backend/pkg/models"
	"github.com/rdvpro/backend/pkg/repository"
)

type ServicesHandler struct {
	serviceRepo repository.ServiceRepo
}

func NewServicesHandler(sr repository.ServiceRepo) *ServicesHandler {
	return &ServicesHandler{serviceRepo: sr}
}

type postServiceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int64   `json:"duration"`
}

type idResponse struct {
	ID string `json:"id"`
}

func (h *ServicesHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req postServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	if req.Price != nil && *req.Price < 0 {
		http.Error(w, "price must be >= 0", http.StatusBadRequest)
		return
	}
	if req.Duration != nil && *req.Duration < 0 {
		http.Error(w, "duration must be >= 0", http.StatusBadRequest)
		return
	}

	s := &models.Service{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	}
	id, err := h.serviceRepo.CreateService(r.Context(), s)
	if err != nil {
		http.Error(w, "failed to store service", http.StatusInternalServerError)
		return
	}

	writeJSON(w, idResponse{ID: id}, http.StatusCreated)
}

func (h *ServicesHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceRepo.ListServices(r.Context())
	if err != nil {
		http.Error(w, "failed to list services", http.StatusInternalServerError)
		return
	}
	if services == nil {
		services = []models.Service{}
	}

	writeJSON(w, services, http.StatusOK)
}
