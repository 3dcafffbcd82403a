// Package content generates the French marketing copy for an onboarded
// business: intro paragraph, per-service descriptions, FAQ and assistant
// greetings. Everything here is deterministic templating; there is no store
// access and no external call.
package content

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/rdvpro/backend/pkg/models"
)

var (
	introTmpl = template.Must(template.New("intro").Parse(
		"{{.Nom}}, {{.Metier}} à {{.Localisation}}. Prenez rendez-vous facilement : nous répondons vite et organisons tout pour vous. Des prestations de qualité avec un accueil soigné."))

	serviceTmpl = template.Must(template.New("service").Parse(
		"Prestations {{.}} réalisées avec soin. Conseils personnalisés, durée adaptée, et devis transparent."))

	greetingTmpl = template.Must(template.New("greeting").Parse(
		"Vous cherchez un {{.}}? Je peux vous guider et réserver un créneau."))
)

func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	// templates are compile-time constants; execution over strings cannot fail
	_ = t.Execute(&buf, data)
	return buf.String()
}

// Intro returns the fixed intro paragraph with the inputs embedded verbatim.
func Intro(nom, metier, localisation string) string {
	return render(introTmpl, map[string]string{
		"Nom":          nom,
		"Metier":       metier,
		"Localisation": localisation,
	})
}

// ServiceDescriptions returns one description per service name, in input
// order. Names are lower-cased inside the sentence, not in the title.
func ServiceDescriptions(services []string) []models.ServiceDescription {
	out := make([]models.ServiceDescription, 0, len(services))
	for _, s := range services {
		out = append(out, models.ServiceDescription{
			Title:       s,
			Description: render(serviceTmpl, strings.ToLower(s)),
		})
	}
	return out
}

// FAQ returns exactly four Q/A pairs in fixed order: hours, location,
// services, pricing.
func FAQ(nom, metier, localisation, horaires string) []models.FAQEntry {
	return []models.FAQEntry{
		{Q: "Quels sont vos horaires ?", A: horaires + ". N'hésitez pas à nous écrire pour un créneau spécifique."},
		{Q: "Où êtes-vous situé ?", A: "Nous sommes à " + localisation + ". L'adresse exacte sera confirmée lors de la prise de rendez-vous."},
		{Q: "Quels services proposez-vous ?", A: metier + " — nous proposons des formules adaptées et des prestations sur mesure."},
		{Q: "Quels sont les tarifs ?", A: "Nos tarifs sont indiqués pour chaque service et confirmés par email."},
	}
}

// AssistantGreetings returns the three assistant opening lines; the second
// one is parameterized by the trade.
func AssistantGreetings(metier string) []string {
	return []string{
		"Bonjour ! Comment puis-je vous aider aujourd'hui ?",
		render(greetingTmpl, metier),
		"Pour confirmer une demande, partagez votre nom, email et téléphone.",
	}
}
