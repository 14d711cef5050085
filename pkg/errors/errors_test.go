package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeNotFound, http.StatusNotFound},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeDependency, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("code %s: expected status %d, got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("root cause")
	err := Wrap(CodeDependency, cause, "loading menu")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to satisfy errors.Is")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestAsUnwrapsThroughFmtErrorf(t *testing.T) {
	inner := New(CodeNotFound, "outlet not found")
	outer := fmt.Errorf("handler: %w", inner)

	typed := As(outer)
	if typed == nil || typed.Code() != CodeNotFound {
		t.Fatalf("expected typed error through wrap chain, got %v", typed)
	}
}

func TestDumpCollectsChain(t *testing.T) {
	err := Wrap(CodeInternal, stdErrors.New("disk on fire"), "saving cart")
	dump := Dump(err)

	if dump.Code != CodeInternal {
		t.Fatalf("unexpected code %s", dump.Code)
	}
	if len(dump.Chain) < 2 {
		t.Fatalf("expected full chain, got %v", dump.Chain)
	}
	if dump.PGCode != "" {
		t.Fatalf("expected no pg fields on a non-driver error, got %q", dump.PGCode)
	}
}

func TestDumpExtractsPostgresFields(t *testing.T) {
	cause := &pq.Error{
		Code:       "23505",
		Constraint: "categories_slug_key",
		Table:      "categories",
		Detail:     "Key (slug)=(classic-pizzas) already exists.",
	}
	err := Wrap(CodeConflict, fmt.Errorf("creating category: %w", cause), "category insert")
	dump := Dump(err)

	if dump.PGCode != "23505" {
		t.Fatalf("unexpected pg code %q", dump.PGCode)
	}
	if dump.PGConstraint != "categories_slug_key" || dump.PGTable != "categories" {
		t.Fatalf("unexpected pg fields %q/%q", dump.PGConstraint, dump.PGTable)
	}
	if dump.PGDetail == "" {
		t.Fatal("expected pg detail to carry through")
	}
}

func TestDumpExtractsPgxFields(t *testing.T) {
	cause := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "outlets_key_key",
		TableName:      "outlets",
		Detail:         "Key (key)=(sector17) already exists.",
	}
	dump := Dump(Wrap(CodeConflict, cause, "outlet insert"))

	if dump.PGCode != "23505" || dump.PGConstraint != "outlets_key_key" {
		t.Fatalf("unexpected pg fields %q/%q", dump.PGCode, dump.PGConstraint)
	}
	if dump.PGTable != "outlets" {
		t.Fatalf("unexpected pg table %q", dump.PGTable)
	}
}
