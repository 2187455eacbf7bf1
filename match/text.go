package match

import "strings"

// Keywords is the vocabulary used by the keyword pass. Every keyword
// present in both the query and the property record adds KeywordWeight
// to the score, once per keyword.
var Keywords = []string{
	"villa", "penthouse", "duplex", "apartment", "office",
	"luxury", "sea view", "pool", "beach",
}

// recordText flattens a property into a single lower-cased string for
// keyword matching.
func recordText(p *propertyRecord) string {
	parts := make([]string, 0, 6+len(p.Property.Features))
	parts = append(parts,
		p.Property.Name,
		string(p.Property.Type),
		string(p.Property.Status),
		p.Property.Description,
		string(p.Property.ListingType),
	)
	parts = append(parts, p.Property.Features...)
	return strings.ToLower(strings.Join(parts, " "))
}

// keywordScore counts vocabulary keywords present in both the query and
// the property text. Both inputs must already be lower-cased.
func keywordScore(propText, query string) int {
	score := 0
	for _, keyword := range Keywords {
		if strings.Contains(query, keyword) && strings.Contains(propText, keyword) {
			score += KeywordWeight
		}
	}
	return score
}
