package whatsapp

import (
	"net/url"
	"strings"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+91 98765 00017": "919876500017",
		"(0172) 270-1234": "01722701234",
		"no digits":       "",
	}
	for input, want := range cases {
		if got := NormalizePhone(input); got != want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestBuildLink(t *testing.T) {
	link, err := BuildLink("+91 98765 00017", "Total: Rs.430")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/919876500017?") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if got := parsed.Query().Get("text"); got != "Total: Rs.430" {
		t.Fatalf("text round-trip mismatch: %q", got)
	}
}

func TestBuildLinkValidation(t *testing.T) {
	if _, err := BuildLink("abc", "hi"); err == nil {
		t.Fatal("expected digitless phone to fail")
	}
	if _, err := BuildLink("+919876500017", ""); err == nil {
		t.Fatal("expected empty message to fail")
	}
}
