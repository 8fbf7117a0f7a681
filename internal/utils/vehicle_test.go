package utils

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
)

func TestFormatVehicleID(t *testing.T) {
	tests := map[string]string{
		"abc4e2f0-0000-4000-8000-000000000000": "V748",
		"123":                                  "V291",
		"fff":                                  "V095",
		"FFF":                                  "V095",
		"a":                                    "V010",
		"zz9":                                  "V000",
		"":                                     "V000",
		"0a-":                                  "V010",
	}
	for in, want := range tests {
		if got := FormatVehicleID(in); got != want {
			t.Fatalf("FormatVehicleID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatVehicleID_DeterministicShape(t *testing.T) {
	shape := regexp.MustCompile(`^V\d{3}$`)
	for i := 0; i < 200; i++ {
		id := uuid.NewString()
		first := FormatVehicleID(id)
		if !shape.MatchString(first) {
			t.Fatalf("unexpected code %q for %s", first, id)
		}
		if second := FormatVehicleID(id); second != first {
			t.Fatalf("non-deterministic code for %s: %q vs %q", id, first, second)
		}
	}
}
