package deltat

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *memory.Handler {
	t.Helper()
	h := memory.New()
	log.SetHandler(h)
	t.Cleanup(func() { log.SetHandler(discard.New()) })
	return h
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name  string
		year  float64
		want  float64
		delta float64
	}{
		{name: "segment boundary", year: 1980, want: 50.5, delta: 1e-9},
		{name: "inside segment", year: 1987, want: 55.3337, delta: 1e-3},
		{name: "segment end", year: 2000, want: 64.5, delta: 1e-9},
		{name: "early segment", year: -3000, want: 74323.7, delta: 1e-4},
		{name: "table end", year: MaxYear, want: 279.4 + 7329.5 + 42957.9 + 15.8, delta: 1e-6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Estimate(tt.year), tt.delta)
		})
	}
}

func TestEstimate_OutOfRange(t *testing.T) {
	for _, year := range []float64{MinYear, -4712, MaxYear + 0.5, 12000} {
		h := captureLog(t)
		assert.Zero(t, Estimate(year))
		require.Len(t, h.Entries, 1)
		assert.Equal(t, log.WarnLevel, h.Entries[0].Level)
		assert.Equal(t, year, h.Entries[0].Fields["year"])
	}
}

func TestEstimate_InRangeDoesNotLog(t *testing.T) {
	h := captureLog(t)
	Estimate(2024.5)
	assert.Empty(t, h.Entries)
}

func TestEstimate_Continuous(t *testing.T) {
	//segment boundaries of the table join up within a few seconds
	for i := 1; i < len(table)-2; i++ {
		y := table[i].year
		assert.InDelta(t, Estimate(y), Estimate(y+1e-6), 5, "year %v", y)
	}
}

func TestYear(t *testing.T) {
	assert.Equal(t, 2000.0, Year(2451545))
	assert.InDelta(t, 1987.27, Year(2446896.30625), 0.01)
}
