package content_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rdvpro/backend/internal/content"
	"github.com/rdvpro/backend/pkg/models"
	"github.com/rdvpro/backend/pkg/repository/mock"
)

func TestIntro(t *testing.T) {
	got := content.Intro("Claire", "coiffeuse", "Lyon")

	for _, want := range []string{"Claire", "coiffeuse", "Lyon"} {
		if !strings.Contains(got, want) {
			t.Fatalf("intro %q does not contain %q", got, want)
		}
	}
	if !strings.HasPrefix(got, "Claire, coiffeuse à Lyon.") {
		t.Fatalf("unexpected intro prefix: %q", got)
	}
}

func TestIntroDeterministic(t *testing.T) {
	a := content.Intro("A", "b", "C")
	b := content.Intro("A", "b", "C")
	if a != b {
		t.Fatalf("intro is not deterministic: %q vs %q", a, b)
	}
}

func TestServiceDescriptions(t *testing.T) {
	got := content.ServiceDescriptions([]string{"Coupe", "Couleur"})

	if len(got) != 2 {
		t.Fatalf("expected 2 descriptions, got %d", len(got))
	}
	if got[0].Title != "Coupe" || got[1].Title != "Couleur" {
		t.Fatalf("titles not preserved in order: %+v", got)
	}
	if !strings.Contains(got[0].Description, "Prestations coupe ") {
		t.Fatalf("name not lower-cased in description: %q", got[0].Description)
	}
}

func TestServiceDescriptionsEmpty(t *testing.T) {
	if got := content.ServiceDescriptions(nil); len(got) != 0 {
		t.Fatalf("expected no descriptions, got %+v", got)
	}
}

func TestFAQ(t *testing.T) {
	got := content.FAQ("Claire", "coiffeuse", "Lyon", "Lun-Ven 9h-18h")

	if len(got) != 4 {
		t.Fatalf("expected 4 FAQ entries, got %d", len(got))
	}
	// fixed order: hours, location, services, pricing
	if got[0].Q != "Quels sont vos horaires ?" {
		t.Fatalf("entry 0 is not the hours question: %q", got[0].Q)
	}
	if !strings.HasPrefix(got[0].A, "Lun-Ven 9h-18h.") {
		t.Fatalf("hours not embedded: %q", got[0].A)
	}
	if got[1].Q != "Où êtes-vous situé ?" || !strings.Contains(got[1].A, "Lyon") {
		t.Fatalf("location entry wrong: %+v", got[1])
	}
	if !strings.Contains(got[2].A, "coiffeuse") {
		t.Fatalf("trade not embedded in services entry: %+v", got[2])
	}
	if got[3].Q != "Quels sont les tarifs ?" {
		t.Fatalf("entry 3 is not the pricing question: %q", got[3].Q)
	}
}

func TestAssistantGreetings(t *testing.T) {
	got := content.AssistantGreetings("plombier")

	if len(got) != 3 {
		t.Fatalf("expected 3 greetings, got %d", len(got))
	}
	if got[0] != "Bonjour ! Comment puis-je vous aider aujourd'hui ?" {
		t.Fatalf("unexpected first greeting: %q", got[0])
	}
	if !strings.Contains(got[1], "plombier") {
		t.Fatalf("trade not embedded: %q", got[1])
	}
}

func TestPlaceholder(t *testing.T) {
	got := content.Placeholder()

	if !strings.Contains(got.Intro, "Votre Nom") {
		t.Fatalf("placeholder intro wrong: %q", got.Intro)
	}
	if len(got.FAQ) != 4 {
		t.Fatalf("placeholder FAQ length %d", len(got.FAQ))
	}
	if len(got.Services) != 3 {
		t.Fatalf("placeholder services length %d", len(got.Services))
	}
	if len(got.Greetings) != 0 {
		t.Fatalf("placeholder should carry no greetings, got %v", got.Greetings)
	}
}

func TestProviderCurrent(t *testing.T) {
	ctx := context.Background()
	m := mock.NewMocks()
	p := content.NewProvider(m.Businesses)

	// no profile onboarded: placeholder
	got, err := p.Current(ctx)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if !strings.Contains(got.Intro, "Votre Nom") {
		t.Fatalf("expected placeholder, got intro %q", got.Intro)
	}

	// onboarded profile wins
	if _, err := m.Businesses.CreateBusiness(ctx, &models.Business{
		OwnerName:          "Claire",
		Trade:              "coiffeuse",
		Location:           "Lyon",
		Hours:              "Lun-Ven 9h-18h",
		Intro:              content.Intro("Claire", "coiffeuse", "Lyon"),
		FAQ:                content.FAQ("Claire", "coiffeuse", "Lyon", "Lun-Ven 9h-18h"),
		AssistantGreetings: content.AssistantGreetings("coiffeuse"),
	}); err != nil {
		t.Fatalf("CreateBusiness: %v", err)
	}

	got, err = p.Current(ctx)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if !strings.Contains(got.Intro, "Claire") {
		t.Fatalf("expected onboarded content, got intro %q", got.Intro)
	}
	if len(got.Greetings) != 3 {
		t.Fatalf("expected greetings from profile, got %v", got.Greetings)
	}
}
