package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestSystem(t *testing.T, opts ...SystemOption) *System {
	t.Helper()
	sys, err := NewSystem(opts...)
	require.NoError(t, err)
	return sys
}

// ticker drives a System with a manual clock, one frame per call.
type ticker struct {
	sys *System
	now time.Time
}

func newTicker(sys *System) *ticker {
	return &ticker{sys: sys, now: epoch}
}

func (tk *ticker) tick() {
	tk.now = tk.now.Add(tk.sys.FrameDuration())
	tk.sys.Tick(tk.now)
}

func (tk *ticker) advance(d time.Duration) {
	tk.now = tk.now.Add(d)
	tk.sys.Tick(tk.now)
}

// settle ticks until nothing is queued anywhere and returns the tick count.
func (tk *ticker) settle(t *testing.T, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		tk.tick()
		if tk.sys.Registry().Pending() == 0 {
			return i
		}
	}
	t.Fatalf("not settled after %d ticks, %d items pending", limit, tk.sys.Registry().Pending())
	return limit
}

func mount(t *testing.T, sys *System, root *Node, w, h float64) *Base {
	t.Helper()
	b, err := sys.NewBase(root, FixedViewport{Width: w, Height: h})
	require.NoError(t, err)
	return b
}

// fakeContent is a Content that records its calls.
type fakeContent struct {
	size      Size
	calls     int
	err       error
	panicWith any
	onMeasure func()
	lastMax   Size
}

func (c *fakeContent) Measure(maxWidth, maxHeight float64) Size {
	c.calls++
	c.lastMax = Size{Width: maxWidth, Height: maxHeight}
	if c.onMeasure != nil {
		c.onMeasure()
	}
	if c.panicWith != nil {
		panic(c.panicWith)
	}
	return c.size
}

func (c *fakeContent) Prepare() error {
	return c.err
}
