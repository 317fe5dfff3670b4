package suite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeLatencyStats_Empty(t *testing.T) {
	stats := ComputeLatencyStats(nil)
	assert.Zero(t, stats.Min)
	assert.Zero(t, stats.Max)
	assert.Zero(t, stats.Mean)
	assert.True(t, stats.IsZero())
}

func TestComputeLatencyStats_Unsorted(t *testing.T) {
	durations := []time.Duration{
		50 * time.Millisecond,
		10 * time.Millisecond,
		30 * time.Millisecond,
		20 * time.Millisecond,
		40 * time.Millisecond,
	}
	stats := ComputeLatencyStats(durations)

	assert.Equal(t, 10*time.Millisecond, stats.Min)
	assert.Equal(t, 50*time.Millisecond, stats.Max)
	assert.Equal(t, 30*time.Millisecond, stats.Mean)
	assert.Equal(t, 30*time.Millisecond, stats.P50)
	assert.Equal(t, 5, stats.SampleCount)
	assert.Equal(t, 50*time.Millisecond, durations[0], "input must not be reordered")
}

func TestComputeLatencyStats_Percentiles(t *testing.T) {
	durations := make([]time.Duration, 100)
	for i := range durations {
		durations[i] = time.Duration(i+1) * time.Millisecond
	}
	stats := ComputeLatencyStats(durations)

	assert.InDelta(t, float64(50*time.Millisecond), float64(stats.P50), float64(time.Millisecond))
	assert.InDelta(t, float64(95*time.Millisecond), float64(stats.P95), float64(time.Millisecond))
}

func TestPercentile_EdgeCases(t *testing.T) {
	single := []time.Duration{10 * time.Millisecond}
	assert.Equal(t, 10*time.Millisecond, percentile(single, 0))
	assert.Equal(t, 10*time.Millisecond, percentile(single, 100))
	assert.Zero(t, percentile(nil, 50))
}
