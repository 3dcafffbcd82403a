// Package assistant implements the rule-based chat responder. Replies are
// picked by a case-insensitive keyword scan over the message, in fixed
// priority order: hours, pricing, location, services, greeting. A keyword
// hit whose FAQ lookup comes up empty falls through to the next priority.
package assistant

import (
	"context"
	"net/mail"
	"strings"

	"github.com/rdvpro/backend/internal/content"
	"github.com/rdvpro/backend/internal/leads"
	"github.com/rdvpro/backend/pkg/models"
)

// FallbackReply is used when no rule matches and the current content has no
// greeting lines.
const FallbackReply = "Je suis là pour vous aider !"

// PricingReply deflects price questions towards a specific service.
const PricingReply = "Nos tarifs varient selon le service. Dites-moi le service souhaité et je vous oriente."

var (
	hoursKeywords    = []string{"horaire", "heures", "ouvert"}
	pricingKeywords  = []string{"prix", "tarif"}
	locationKeywords = []string{"où", "adresse", "localisation", "lieu"}
	serviceKeywords  = []string{"service", "choisir", "conseil"}
)

// ContentSource yields the current generated content bundle.
type ContentSource interface {
	Current(ctx context.Context) (content.Bundle, error)
}

// LeadCreator creates an appointment request from chat-provided contact info.
type LeadCreator interface {
	Create(ctx context.Context, in leads.CreateInput) (string, error)
}

type Responder struct {
	content ContentSource
	leads   LeadCreator
}

func NewResponder(cs ContentSource, lc LeadCreator) *Responder {
	return &Responder{content: cs, leads: lc}
}

type Message struct {
	Message string
	Name    string
	Email   string
	Phone   string
	Service string
}

type Reply struct {
	Reply            string
	CreatedRequestID string
}

// Respond picks a reply for msg and, when the message carries a full set of
// contact details, creates a lead. Repeated messages create repeated leads.
func (r *Responder) Respond(ctx context.Context, msg Message) (Reply, error) {
	bundle, err := r.content.Current(ctx)
	if err != nil {
		return Reply{}, err
	}

	text := strings.ToLower(msg.Message)
	var reply string

	if containsAny(text, hoursKeywords) {
		reply = findAnswer(bundle.FAQ, func(f models.FAQEntry) bool {
			return strings.Contains(strings.ToLower(f.Q), "horaire")
		})
	}
	if reply == "" && containsAny(text, pricingKeywords) {
		reply = PricingReply
	}
	if reply == "" && containsAny(text, locationKeywords) {
		reply = findAnswer(bundle.FAQ, func(f models.FAQEntry) bool {
			return strings.Contains(strings.ToLower(f.Q), "où") ||
				strings.Contains(strings.ToLower(f.A), "situ")
		})
	}
	if reply == "" && containsAny(text, serviceKeywords) {
		titles := make([]string, 0, len(bundle.Services))
		for _, s := range bundle.Services {
			titles = append(titles, s.Title)
		}
		reply = "Voici nos services: " + strings.Join(titles, ", ") + ". Quel vous intéresse ?"
	}
	if reply == "" {
		if len(bundle.Greetings) > 0 {
			reply = bundle.Greetings[0]
		} else {
			reply = FallbackReply
		}
	}

	out := Reply{Reply: reply}

	if hasContact(msg) {
		id, err := r.leads.Create(ctx, leads.CreateInput{
			Name:      msg.Name,
			Email:     msg.Email,
			Phone:     msg.Phone,
			ServiceID: msg.Service,
			Message:   msg.Message,
		})
		if err != nil {
			return Reply{}, err
		}
		out.CreatedRequestID = id
	}

	return out, nil
}

func hasContact(msg Message) bool {
	return msg.Name != "" && msg.Phone != "" && validEmail(msg.Email)
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func findAnswer(faq []models.FAQEntry, match func(models.FAQEntry) bool) string {
	for _, f := range faq {
		if match(f) {
			return f.A
		}
	}
	return ""
}
