package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rdvpro/backend/internal/assistant"
)

type AssistantHandler struct {
	responder *assistant.Responder
}

func NewAssistantHandler(r *assistant.Responder) *AssistantHandler {
	return &AssistantHandler{responder: r}
}

type chatPayload struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
}

type chatResponse struct {
	Reply            string `json:"reply"`
	CreatedRequestID string `json:"created_request_id,omitempty"`
}

func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := validatePayload(r.Context(), assistantSchema, body); err != nil {
		http.Error(w, fmt.Sprintf("invalid payload: %v", err), http.StatusBadRequest)
		return
	}

	var p chatPayload
	if err := json.Unmarshal(body, &p); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	reply, err := h.responder.Respond(r.Context(), assistant.Message{
		Message: p.Message,
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Service: p.Service,
	})
	if err != nil {
		http.Error(w, "assistant unavailable", http.StatusInternalServerError)
		return
	}

	writeJSON(w, chatResponse{
		Reply:            reply.Reply,
		CreatedRequestID: reply.CreatedRequestID,
	}, http.StatusOK)
}
