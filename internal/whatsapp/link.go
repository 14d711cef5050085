// Package whatsapp builds wa.me deep links for handing an order message to
// the customer's WhatsApp client.
package whatsapp

import (
	"errors"
	"net/url"
	"strings"
)

const waHost = "wa.me"

// NormalizePhone strips everything but digits from a phone number; wa.me
// expects the international number without '+' or separators.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildLink returns a https://wa.me/<number>?text=<message> URL.
func BuildLink(phone string, message string) (string, error) {
	digits := NormalizePhone(phone)
	if digits == "" {
		return "", errors.New("phone number has no digits")
	}
	if message == "" {
		return "", errors.New("message is required")
	}

	q := url.Values{}
	q.Set("text", message)

	u := url.URL{
		Scheme:   "https",
		Host:     waHost,
		Path:     "/" + digits,
		RawQuery: q.Encode(),
	}
	return u.String(), nil
}
