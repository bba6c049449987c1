package domain_test

import (
	"strings"
	"testing"
	"time"

	"contracts/pkg/domain"
	"contracts/pkg/vehicle"
)

// FuzzVehicleIDIntoVehicle checks that any accepted vehicle ID builds a Vehicle
// whose ID is the canonical lower-case form and parses back to the same value.
func FuzzVehicleIDIntoVehicle(f *testing.F) {
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("urn:uuid:550E8400-E29B-41D4-A716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("")
	f.Add("{550e8400-e29b-41d4-a716-446655440000")

	readAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.Fuzz(func(t *testing.T, input string) {
		id, err := domain.ParseVehicleID(input)
		if err != nil {
			if !strings.Contains(err.Error(), "vehicle ID") {
				t.Errorf("error does not name the ID type: %v", err)
			}
			return
		}
		v, err := vehicle.New(id, readAt)
		if err != nil {
			t.Fatalf("accepted ID rejected by vehicle.New: %v", err)
		}
		if v.ID() != strings.ToLower(v.ID()) || len(v.ID()) != 36 {
			t.Errorf("non-canonical vehicle id %q", v.ID())
		}
		back, err := domain.ParseVehicleID(v.ID())
		if err != nil || back != id {
			t.Errorf("vehicle id %q did not parse back: %v", v.ID(), err)
		}
		if _, err := domain.ParseEntityID(input); err != nil {
			t.Errorf("entity and vehicle IDs disagree on %q: %v", input, err)
		}
	})
}
