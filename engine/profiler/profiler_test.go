package profiler

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestEmptySummary(t *testing.T) {
	s := NewFrameTimes(4).Summary()
	assert.Equal(t, Summary{}, s)
}

func TestSummaryOverPartialRing(t *testing.T) {
	f := NewFrameTimes(8)
	for _, ms := range []int{4, 2, 6} {
		f.Add(time.Duration(ms) * time.Millisecond)
	}

	s := f.Summary()
	assert.Equal(t, uint64(3), s.Frames)
	assert.Equal(t, 3, s.Window)
	assert.Equal(t, 4*time.Millisecond, s.Mean)
	assert.Equal(t, 6*time.Millisecond, s.Max)
	assert.Equal(t, 6*time.Millisecond, s.P95)
}

func TestRingKeepsNewestFrames(t *testing.T) {
	f := NewFrameTimes(2)
	f.Add(100 * time.Millisecond)
	f.Add(time.Millisecond)
	f.Add(3 * time.Millisecond)

	s := f.Summary()
	assert.Equal(t, uint64(3), s.Frames)
	assert.Equal(t, 2, s.Window)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Mean)
}

func TestP95(t *testing.T) {
	f := NewFrameTimes(100)
	for i := 1; i <= 100; i++ {
		f.Add(time.Duration(i) * time.Millisecond)
	}
	assert.Equal(t, 95*time.Millisecond, f.Summary().P95)
}

func TestLogObjects(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	f := NewFrameTimes(1)
	f.Add(time.Millisecond)

	log.Info().Object("frames", f.Summary()).Object("runtime", ReadRuntime()).Msg("exit")

	assert.Contains(t, buf.String(), `"frames":{"count":1`)
	assert.Contains(t, buf.String(), `"goroutines":`)
}
