package normalizer_test

import (
	"testing"

	"dealer-site/internal/normalizer"

	"github.com/stretchr/testify/assert"
)

func TestUnitFormatPrice(t *testing.T) {
	tests := map[string]struct {
		raw         any
		wantDisplay string
		wantValue   float64
	}{
		"absent": {
			raw:         nil,
			wantDisplay: "POA",
			wantValue:   0,
		},
		"blank": {
			raw:         "",
			wantDisplay: "POA",
			wantValue:   0,
		},
		"whitespace only": {
			raw:         "   ",
			wantDisplay: "POA",
			wantValue:   0,
		},
		"poa token": {
			raw:         "POA",
			wantDisplay: "POA",
			wantValue:   0,
		},
		"on request lowercase": {
			raw:         "on request",
			wantDisplay: "POA",
			wantValue:   0,
		},
		"price on application": {
			raw:         "Price On Application",
			wantDisplay: "POA",
			wantValue:   0,
		},
		"decimal comma": {
			raw:         "18499000,00",
			wantDisplay: "R18 499 000",
			wantValue:   18499000.0,
		},
		"decimal comma with currency noise": {
			raw:         "R1 234 567,89",
			wantDisplay: "R1 234 567",
			wantValue:   1234567.89,
		},
		"decimal comma long fraction": {
			raw:         "1000,999",
			wantDisplay: "R1 000",
			wantValue:   1000.99,
		},
		"decimal comma empty major": {
			raw:         "R,50",
			wantDisplay: "R0",
			wantValue:   0.5,
		},
		"decimal comma garbage fraction": {
			raw:         "1234,ab",
			wantDisplay: "POA",
			wantValue:   0,
		},
		"plain digits": {
			raw:         "449900",
			wantDisplay: "R449 900",
			wantValue:   449900,
		},
		"digits with noise": {
			raw:         "R449 900",
			wantDisplay: "R449 900",
			wantValue:   449900,
		},
		"multiple commas": {
			raw:         "1,234,567",
			wantDisplay: "R1 234 567",
			wantValue:   1234567,
		},
		"no digits at all": {
			raw:         "call us",
			wantDisplay: "POA",
			wantValue:   0,
		},
		"number": {
			raw:         float64(525000),
			wantDisplay: "R525 000",
			wantValue:   525000,
		},
		"number with fraction": {
			raw:         449900.75,
			wantDisplay: "R449 900",
			wantValue:   449900.75,
		},
		"small number": {
			raw:         float64(900),
			wantDisplay: "R900",
			wantValue:   900,
		},
		"unsupported type": {
			raw:         []string{"449900"},
			wantDisplay: "POA",
			wantValue:   0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			display, value := normalizer.FormatPrice(tt.raw)

			assert.Equal(t, tt.wantDisplay, display, "should return correct display price")
			assert.InDelta(t, tt.wantValue, value, 1e-6, "should return correct sort value")
		})
	}
}
