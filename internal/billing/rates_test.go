package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func TestResolveRates(t *testing.T) {
	tests := []struct {
		name   string
		hourly *float64
		line   *float64
		want   Rates
	}{
		{"defaults", nil, nil, Rates{Hourly: 10, Line: 0.05}},
		{"hourly derives line rate", ptr(20), nil, Rates{Hourly: 20, Line: 0.1}},
		{"line only", nil, ptr(0.2), Rates{Hourly: 10, Line: 0.2}},
		{"explicit line wins", ptr(20), ptr(0.3), Rates{Hourly: 20, Line: 0.3}},
		{"zero hourly", ptr(0), nil, Rates{Hourly: 0, Line: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRates(tt.hourly, tt.line)
			assert.InDelta(t, tt.want.Hourly, got.Hourly, 1e-12)
			assert.InDelta(t, tt.want.Line, got.Line, 1e-12)
		})
	}
}
