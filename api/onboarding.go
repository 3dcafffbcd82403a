package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rdvpro/backend/internal/content"
	"github.com/rdvpro/backend/pkg/models"
	"github.com/rdvpro/backend/pkg/repository"
)

type OnboardingHandler struct {
	businessRepo repository.BusinessRepo
	provider     *content.Provider
}

func NewOnboardingHandler(br repository.BusinessRepo, p *content.Provider) *OnboardingHandler {
	return &OnboardingHandler{businessRepo: br, provider: p}
}

type onboardingPayload struct {
	Nom          string   `json:"nom"`
	Metier       string   `json:"metier"`
	Localisation string   `json:"localisation"`
	Services     []string `json:"services"`
	Horaires     string   `json:"horaires"`
}

type onboardingResponse struct {
	ID        string                      `json:"id"`
	Intro     string                      `json:"intro"`
	FAQ       []models.FAQEntry           `json:"faq"`
	Services  []models.ServiceDescription `json:"services"`
	Assistant []string                    `json:"assistant"`
}

// Onboard generates the content bundle for the submitted profile, persists
// the profile as the active one and returns everything that was generated.
func (h *OnboardingHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := validatePayload(r.Context(), onboardingSchema, body); err != nil {
		http.Error(w, fmt.Sprintf("invalid payload: %v", err), http.StatusBadRequest)
		return
	}

	var p onboardingPayload
	if err := json.Unmarshal(body, &p); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	intro := content.Intro(p.Nom, p.Metier, p.Localisation)
	descs := content.ServiceDescriptions(p.Services)
	faq := content.FAQ(p.Nom, p.Metier, p.Localisation, p.Horaires)
	greetings := content.AssistantGreetings(p.Metier)

	biz := &models.Business{
		OwnerName:           p.Nom,
		Trade:               p.Metier,
		Location:            p.Localisation,
		Services:            p.Services,
		Hours:               p.Horaires,
		Intro:               intro,
		FAQ:                 faq,
		ServiceDescriptions: descs,
		AssistantGreetings:  greetings,
	}
	id, err := h.businessRepo.CreateBusiness(r.Context(), biz)
	if err != nil {
		http.Error(w, "failed to store business profile", http.StatusInternalServerError)
		return
	}

	writeJSON(w, onboardingResponse{
		ID:        id,
		Intro:     intro,
		FAQ:       faq,
		Services:  descs,
		Assistant: greetings,
	}, http.StatusOK)
}

type contentResponse struct {
	Intro    string                      `json:"intro"`
	FAQ      []models.FAQEntry           `json:"faq"`
	Services []models.ServiceDescription `json:"services"`
	Hours    string                      `json:"horaires,omitempty"`
	Location string                      `json:"localisation,omitempty"`
	Trade    string                      `json:"metier,omitempty"`
	Owner    string                      `json:"owner,omitempty"`
}

// GetContent serves the active profile's generated content, or the
// placeholder bundle when nothing was onboarded yet.
func (h *OnboardingHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.provider.Current(r.Context())
	if err != nil {
		http.Error(w, "failed to load content", http.StatusInternalServerError)
		return
	}

	writeJSON(w, contentResponse{
		Intro:    bundle.Intro,
		FAQ:      bundle.FAQ,
		Services: bundle.Services,
		Hours:    bundle.Hours,
		Location: bundle.Location,
		Trade:    bundle.Trade,
		Owner:    bundle.Owner,
	}, http.StatusOK)
}
