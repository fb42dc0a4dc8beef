package profiler

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTickLogsOncePerInterval(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(zerolog.New(&buf), WithClock(clock.now), WithInterval(time.Second))

	for i := 0; i < 49; i++ {
		clock.advance(20 * time.Millisecond)
		assert.False(t, p.Tick())
	}
	assert.Zero(t, buf.Len())

	clock.advance(20 * time.Millisecond)
	require.True(t, p.Tick())

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "profiler", event["component"])
	assert.Equal(t, "frame stats", event["message"])
	assert.InDelta(t, 50, event["fps"], 1e-9)
	assert.Contains(t, event, "heap_mb")
	assert.Contains(t, event, "gc_count")
}

func TestTickResetsFrameCount(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(zerolog.New(&buf), WithClock(clock.now), WithInterval(time.Second))

	clock.advance(2 * time.Second)
	require.True(t, p.Tick())
	assert.Equal(t, 0, p.frameCount)

	clock.advance(time.Millisecond)
	assert.False(t, p.Tick())
	assert.Equal(t, 1, p.frameCount)
}

func TestTickIgnoresStalledClock(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(zerolog.Nop(), WithClock(clock.now), WithInterval(0))

	assert.False(t, p.Tick())
	clock.advance(time.Millisecond)
	assert.True(t, p.Tick())
}
