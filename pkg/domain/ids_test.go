package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"contracts/pkg/domain"
	dErrors "contracts/pkg/domain-errors"
	"contracts/pkg/vehicle"
)

const canonical = "550e8400-e29b-41d4-a716-446655440000"

type IDsSuite struct {
	suite.Suite
}

func TestIDsSuite(t *testing.T) {
	suite.Run(t, new(IDsSuite))
}

func (s *IDsSuite) TestParseErrorsNameTheIDType() {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "cannot be empty"},
		{"malformed", "truck-7", "invalid "},
		{"nil uuid", uuid.Nil.String(), "cannot be nil"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := domain.ParseVehicleID(tt.input)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
			s.Contains(err.Error(), "vehicle ID")
			s.Contains(err.Error(), tt.want)

			_, err = domain.ParseEntityID(tt.input)
			s.Require().Error(err)
			s.Contains(err.Error(), "entity ID")
		})
	}
}

func (s *IDsSuite) TestParseNormalisesAcceptedForms() {
	for _, input := range []string{
		canonical,
		strings.ToUpper(canonical),
		"urn:uuid:" + canonical,
		"{" + canonical + "}",
		strings.ReplaceAll(canonical, "-", ""),
	} {
		s.Run(input, func() {
			id, err := domain.ParseVehicleID(input)
			s.Require().NoError(err)
			s.Equal(canonical, id.String())
		})
	}
}

func (s *IDsSuite) TestParseRejectsHostileInput() {
	for _, input := range []string{
		"'; DROP TABLE vehicles;--",
		"../../../etc/passwd",
		"550e8400\x00-e29b-41d4-a716-446655440000",
		strings.Repeat("a", 1000),
		"   ",
		" " + canonical,
	} {
		_, err := domain.ParseVehicleID(input)
		s.Error(err, "%q", input)
	}
}

func (s *IDsSuite) TestVehicleIDFlowsIntoVehicle() {
	id, err := domain.ParseVehicleID(strings.ToUpper(canonical))
	s.Require().NoError(err)

	v, err := vehicle.New(id, time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Equal(id, v.VehicleID())
	s.Equal(canonical, v.ID())
	s.Equal(canonical, v.DisplayName(), "display name falls back to the id")
}

func (s *IDsSuite) TestZeroVehicleIDIsRejectedByVehicle() {
	var id domain.VehicleID
	s.True(id.IsNil())

	_, err := vehicle.New(id, time.Now())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *IDsSuite) TestGeneratedIDsAreDistinctAndSet() {
	seen := make(map[string]struct{})
	for range 50 {
		e := domain.NewEntityID()
		v := domain.NewVehicleID()
		s.False(e.IsNil())
		s.False(v.IsNil())
		for _, id := range []string{e.String(), v.String()} {
			_, dup := seen[id]
			s.False(dup)
			seen[id] = struct{}{}
		}
	}
}
