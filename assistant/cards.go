package assistant

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/guddy2005/real-estate-app/core"
	"github.com/guddy2005/real-estate-app/match"
)

// Card rendering limits.
const (
	cardDescriptionLimit = 120
	cardFeatureLimit     = 4
	cardReasonLimit      = 3
)

var cardTemplate = template.Must(template.New("property-card").Parse(`<div class="property-card">
    <h4>{{.StatusEmoji}} {{.Name}} - {{.Region}}</h4>
    <p><strong>{{.Type}}</strong> | {{if .Bedrooms}}{{.Bedrooms}} BR | {{end}}{{.AreaSqft}} sqft | <span class="price">{{.Price}}</span></p>
    <p>{{.Description}}...</p>
    <p><strong>Features:</strong> {{.Features}}</p>
    {{if .Reasons}}<p><strong>Why this matches:</strong> {{.Reasons}}</p>
    {{end}}</div>
`))

// cardData is the template payload for a single property card.
type cardData struct {
	StatusEmoji string
	Name        string
	Region      string
	Type        core.PropertyType
	Bedrooms    string
	AreaSqft    int
	Price       string
	Description string
	Features    string
	Reasons     string
}

// RenderCards renders up to CardMatches results as HTML property cards.
// Match reasons are included only when includeReasons is set; guest
// sweeps carry no profile reasons to show.
func RenderCards(results []match.Result, includeReasons bool) (string, error) {
	var b strings.Builder
	for _, result := range match.Take(results, CardMatches) {
		data := newCardData(result, includeReasons)
		if err := cardTemplate.Execute(&b, data); err != nil {
			return "", fmt.Errorf("render property card %q: %w", result.Property.Name, err)
		}
	}
	return b.String(), nil
}

func newCardData(result match.Result, includeReasons bool) cardData {
	prop := result.Property

	data := cardData{
		StatusEmoji: statusEmoji(prop.Status),
		Name:        prop.Name,
		Region:      result.Region,
		Type:        prop.Type,
		AreaSqft:    prop.AreaSqft,
		Price:       priceDisplay(prop),
		Description: truncate(prop.Description, cardDescriptionLimit),
		Features:    joinLimited(prop.Features, cardFeatureLimit),
	}
	if prop.Bedrooms != nil {
		data.Bedrooms = fmt.Sprintf("%d", *prop.Bedrooms)
	}
	if includeReasons {
		data.Reasons = joinReasons(result.Reasons, cardReasonLimit)
	}
	return data
}

func statusEmoji(status core.Status) string {
	if status == core.StatusReady {
		return "✅"
	}
	return "🏗️"
}

// priceDisplay renders whichever price fields the listing carries.
func priceDisplay(prop *core.Property) string {
	var b strings.Builder
	if prop.PriceAED != nil {
		fmt.Fprintf(&b, "AED %s", formatAED(*prop.PriceAED))
	}
	if prop.RentAnnualAED != nil {
		fmt.Fprintf(&b, " | Rent: AED %s/year", formatAED(*prop.RentAnnualAED))
	}
	if prop.LeaseAnnualAED != nil {
		fmt.Fprintf(&b, " | Lease: AED %s/year", formatAED(*prop.LeaseAnnualAED))
	}
	return strings.TrimPrefix(b.String(), " | ")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func joinLimited(items []string, max int) string {
	if max > len(items) {
		max = len(items)
	}
	return strings.Join(items[:max], ", ")
}
