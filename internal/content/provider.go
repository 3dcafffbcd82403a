package content

import (
	"context"

	"github.com/rdvpro/backend/pkg/models"
	"github.com/rdvpro/backend/pkg/repository"
)

// Bundle is the generated content of the current business profile. The
// public content endpoint and the assistant both read through it.
type Bundle struct {
	Intro     string
	FAQ       []models.FAQEntry
	Services  []models.ServiceDescription
	Greetings []string
	Hours     string
	Location  string
	Trade     string
	Owner     string
}

// Placeholder is the bundle served before any onboarding happened. It
// carries no greetings; the assistant then falls back to its literal one.
func Placeholder() Bundle {
	return Bundle{
		Intro:    Intro("Votre Nom", "Votre métier", "Votre ville"),
		FAQ:      FAQ("", "", "", "Lun-Ven 9h-18h"),
		Services: ServiceDescriptions([]string{"Consultation", "Accompagnement", "Séance"}),
	}
}

// FromBusiness maps a stored profile to its content bundle.
func FromBusiness(b *models.Business) Bundle {
	return Bundle{
		Intro:     b.Intro,
		FAQ:       b.FAQ,
		Services:  b.ServiceDescriptions,
		Greetings: b.AssistantGreetings,
		Hours:     b.Hours,
		Location:  b.Location,
		Trade:     b.Trade,
		Owner:     b.OwnerName,
	}
}

// Provider resolves the current content bundle: the active business profile
// when one exists, the placeholder otherwise.
type Provider struct {
	businesses repository.BusinessRepo
}

func NewProvider(br repository.BusinessRepo) *Provider {
	return &Provider{businesses: br}
}

func (p *Provider) Current(ctx context.Context) (Bundle, error) {
	b, err := p.businesses.ActiveBusiness(ctx)
	if err != nil {
		return Bundle{}, err
	}
	if b == nil {
		return Placeholder(), nil
	}
	return FromBusiness(b), nil
}
