package assistant_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rdvpro/backend/internal/assistant"
	"github.com/rdvpro/backend/internal/content"
	"github.com/rdvpro/backend/internal/leads"
	"github.com/rdvpro/backend/pkg/models"
)

type staticContent struct {
	bundle content.Bundle
	err    error
}

func (s *staticContent) Current(ctx context.Context) (content.Bundle, error) {
	return s.bundle, s.err
}

type recordingCreator struct {
	inputs []leads.CreateInput
	err    error
}

func (r *recordingCreator) Create(ctx context.Context, in leads.CreateInput) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.inputs = append(r.inputs, in)
	return "req-1", nil
}

func onboardedBundle() content.Bundle {
	return content.Bundle{
		Intro:     content.Intro("Claire", "coiffeuse", "Lyon"),
		FAQ:       content.FAQ("Claire", "coiffeuse", "Lyon", "Lun-Ven 9h-18h"),
		Services:  content.ServiceDescriptions([]string{"Coupe", "Couleur"}),
		Greetings: content.AssistantGreetings("coiffeuse"),
	}
}

func newResponder(bundle content.Bundle) (*assistant.Responder, *recordingCreator) {
	creator := &recordingCreator{}
	return assistant.NewResponder(&staticContent{bundle: bundle}, creator), creator
}

func TestRespondHours(t *testing.T) {
	r, _ := newResponder(onboardedBundle())

	got, err := r.Respond(context.Background(), assistant.Message{Message: "quels sont vos horaires?"})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	want := onboardedBundle().FAQ[0].A
	if got.Reply != want {
		t.Fatalf("reply = %q, want FAQ hours answer %q", got.Reply, want)
	}
}

func TestRespondPricing(t *testing.T) {
	r, _ := newResponder(onboardedBundle())

	got, err := r.Respond(context.Background(), assistant.Message{Message: "Quel est le prix ?"})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if got.Reply != assistant.PricingReply {
		t.Fatalf("reply = %q, want pricing deflection", got.Reply)
	}
}

func TestRespondLocation(t *testing.T) {
	r, _ := newResponder(onboardedBundle())

	got, err := r.Respond(context.Background(), assistant.Message{Message: "quelle est votre adresse"})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(got.Reply, "Lyon") {
		t.Fatalf("reply = %q, want location answer", got.Reply)
	}
}

func TestRespondServices(t *testing.T) {
	r, _ := newResponder(onboardedBundle())

	got, err := r.Respond(context.Background(), assistant.Message{Message: "je ne sais pas quoi choisir"})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(got.Reply, "Coupe, Couleur") {
		t.Fatalf("reply = %q, want comma-joined service titles", got.Reply)
	}
}

func TestRespondGreetingFallback(t *testing.T) {
	r, _ := newResponder(onboardedBundle())

	got, err := r.Respond(context.Background(), assistant.Message{Message: "bonjour"})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if got.Reply != onboardedBundle().Greetings[0] {
		t.Fatalf("reply = %q, want first greeting", got.Reply)
	}
}

func TestRespondLiteralFallbackWithoutGreetings(t *testing.T) {
	// placeholder content carries no greeting lines
	r, _ := newResponder(content.Placeholder())

	got, err := r.Respond(context.Background(), assistant.Message{Message: "bonjour"})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if got.Reply != assistant.FallbackReply {
		t.Fatalf("reply = %q, want literal fallback", got.Reply)
	}
}

func TestRespondFallsThroughOnFAQMiss(t *testing.T) {
	// an hours keyword with no matching FAQ entry must not swallow the reply
	bundle := onboardedBundle()
	bundle.FAQ = []models.FAQEntry{{Q: "Autre question ?", A: "Autre réponse."}}
	r, _ := newResponder(bundle)

	got, err := r.Respond(context.Background(), assistant.Message{Message: "à quelle heures ouvrez-vous, et quel tarif ?"})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if got.Reply != assistant.PricingReply {
		t.Fatalf("reply = %q, want fall-through to pricing", got.Reply)
	}
}

func TestRespondCreatesLeadWithContact(t *testing.T) {
	r, creator := newResponder(onboardedBundle())

	got, err := r.Respond(context.Background(), assistant.Message{
		Message: "bonjour",
		Name:    "Tom",
		Email:   "tom@x.com",
		Phone:   "0600000000",
	})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if got.CreatedRequestID == "" {
		t.Fatalf("expected created request id")
	}
	if len(creator.inputs) != 1 {
		t.Fatalf("expected one lead, got %d", len(creator.inputs))
	}
	in := creator.inputs[0]
	if in.Name != "Tom" || in.Email != "tom@x.com" || in.Message != "bonjour" {
		t.Fatalf("lead input wrong: %+v", in)
	}

	// repeated messages create repeated leads
	if _, err := r.Respond(context.Background(), assistant.Message{
		Message: "bonjour", Name: "Tom", Email: "tom@x.com", Phone: "0600000000",
	}); err != nil {
		t.Fatalf("Respond again: %v", err)
	}
	if len(creator.inputs) != 2 {
		t.Fatalf("expected duplicate lead, got %d", len(creator.inputs))
	}
}

func TestRespondSkipsLeadOnPartialContact(t *testing.T) {
	tests := []struct {
		name string
		msg  assistant.Message
	}{
		{"no contact", assistant.Message{Message: "bonjour"}},
		{"missing phone", assistant.Message{Message: "bonjour", Name: "Tom", Email: "tom@x.com"}},
		{"missing name", assistant.Message{Message: "bonjour", Email: "tom@x.com", Phone: "06"}},
		{"invalid email", assistant.Message{Message: "bonjour", Name: "Tom", Email: "not-an-email", Phone: "06"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, creator := newResponder(onboardedBundle())
			got, err := r.Respond(context.Background(), tc.msg)
			if err != nil {
				t.Fatalf("Respond: %v", err)
			}
			if got.CreatedRequestID != "" {
				t.Fatalf("lead created from partial contact")
			}
			if len(creator.inputs) != 0 {
				t.Fatalf("creator called: %+v", creator.inputs)
			}
		})
	}
}

func TestRespondPropagatesLeadError(t *testing.T) {
	creator := &recordingCreator{err: errors.New("store down")}
	r := assistant.NewResponder(&staticContent{bundle: onboardedBundle()}, creator)

	if _, err := r.Respond(context.Background(), assistant.Message{
		Message: "bonjour", Name: "Tom", Email: "tom@x.com", Phone: "06",
	}); err == nil {
		t.Fatalf("expected error from lead creation")
	}
}

func TestRespondContentError(t *testing.T) {
	r := assistant.NewResponder(&staticContent{err: errors.New("db down")}, &recordingCreator{})

	if _, err := r.Respond(context.Background(), assistant.Message{Message: "bonjour"}); err == nil {
		t.Fatalf("expected content error")
	}
}
