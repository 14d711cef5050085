package types

import "strings"

// Address is stored as a jsonb column via the GORM json serializer.
type Address struct {
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
	Lat        float64 `json:"lat,omitempty"`
	Lng        float64 `json:"lng,omitempty"`
}

// Oneline renders the address the way the order message and outlet cards
// display it: comma-joined, skipping empty segments.
func (a Address) Oneline() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Line1, valueOrEmpty(a.Line2), a.City, a.State, a.PostalCode} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func valueOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
