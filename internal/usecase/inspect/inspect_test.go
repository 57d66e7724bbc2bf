package inspect

import (
	"strings"
	"testing"

	"github.com/aalvaropc/mallctl/internal/domain"
	"github.com/aalvaropc/mallctl/internal/domain/domaintest"
)

func TestEval_Scalar(t *testing.T) {
	m := domaintest.LaVieFunchal()

	val, err := Eval(m, `$.floors["Ground Floor"].stores.Footzo.square_meters`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Format(val); got != "50" {
		t.Fatalf("expected 50, got %q", got)
	}
}

func TestEval_Name(t *testing.T) {
	val, err := Eval(domaintest.LaVieFunchal(), "$.name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != "La Vie Funchal" {
		t.Fatalf("expected mall name, got %v", val)
	}
}

func TestEval_Wildcard(t *testing.T) {
	val, err := Eval(domaintest.LaVieFunchal(), "$.floors.*.size_limit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	arr, ok := val.([]any)
	if !ok {
		t.Fatalf("expected array, got %T", val)
	}
	if len(arr) != 2 {
		t.Fatalf("expected two floors, got %d", len(arr))
	}

	var total float64
	for _, v := range arr {
		total += v.(float64)
	}
	if total != 1300 {
		t.Fatalf("expected total area 1300, got %v", total)
	}
}

func TestEval_Structure(t *testing.T) {
	val, err := Eval(domaintest.LaVieFunchal(), `$.guards["John Oliver"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Format(val)
	if !strings.Contains(out, `"years_experience": 7`) {
		t.Fatalf("expected guard JSON, got:\n%s", out)
	}
}

func TestEval_Empty(t *testing.T) {
	_, err := Eval(domaintest.LaVieFunchal(), "  ")
	if !domain.IsKind(err, domain.KindInvalidQuery) {
		t.Fatalf("expected invalid query, got %v", err)
	}
}

func TestEval_UnknownKey(t *testing.T) {
	_, err := Eval(domaintest.LaVieFunchal(), "$.floors.Rooftop")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEval_Malformed(t *testing.T) {
	_, err := Eval(domaintest.LaVieFunchal(), "$.floors[")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidQuery) {
		t.Fatalf("expected invalid query, got %v", err)
	}
}
