package scene

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystemOptions(t *testing.T) {
	tests := map[string]struct {
		opt     SystemOption
		wantErr bool
	}{
		"frame rate ok":       {opt: WithFrameRate(30)},
		"frame rate zero":     {opt: WithFrameRate(0), wantErr: true},
		"frame rate too high": {opt: WithFrameRate(500), wantErr: true},
		"measure rate zero":   {opt: WithMeasureRate(0), wantErr: true},
		"settle passes zero":  {opt: WithMaxSettlePasses(0), wantErr: true},
		"queue size zero":     {opt: WithUpdateQueueSize(0), wantErr: true},
		"nil logger":          {opt: WithLogger(nil), wantErr: true},
		"nil frame source":    {opt: WithFrameSource(nil), wantErr: true},
		"nil clock":           {opt: WithClock(nil), wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewSystem(tt.opt)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVisualQueueIsMostRecentFirst(t *testing.T) {
	sys := newTestSystem(t)
	var order []string
	nodes := map[string]*Node{}
	for _, name := range []string{"a", "b", "c"} {
		content := &fakeContent{size: Size{Width: 1, Height: 1}}
		content.onMeasure = func() { order = append(order, name) }
		n := NewSprite(WithName(name), WithContent(content))
		nodes[name] = n
		require.NoError(t, sys.Adopt(n))
	}
	tk := newTicker(sys)

	tk.tick()
	assert.Equal(t, []string{"c", "b", "a"}, order)

	order = nil
	nodes["b"].Invalidate()
	nodes["a"].Invalidate()
	nodes["c"].Invalidate()
	nodes["a"].Invalidate()
	tk.tick()
	assert.Equal(t, []string{"c", "a", "b"}, order)
}

func TestBasesAreIsolated(t *testing.T) {
	var failures []*NodeError
	sys := newTestSystem(t, WithErrorHandler(func(ne *NodeError) { failures = append(failures, ne) }))

	broken := NewSprite(WithName("broken"), WithContent(&fakeContent{panicWith: "boom"}))
	rootA := NewContainer(Vertical, WithChildren(broken))
	baseA := mount(t, sys, rootA, 100, 100)

	healthy := NewSprite(WithName("healthy"), WithSize(10, 10))
	rootB := NewContainer(Vertical, WithChildren(healthy))
	baseB := mount(t, sys, rootB, 100, 100)

	slow := NewDataset(sys, WithDataBase[int](baseA.ID()), WithChunkSize[int](1))
	slow.SetData([]int{1, 2, 3, 4, 5})
	fast := NewDataset(sys, WithDataBase[int](baseB.ID()), WithChunkSize[int](1))
	fast.SetData([]int{1})

	tk := newTicker(sys)
	tk.tick()

	assert.Equal(t, 1, slow.Loaded())
	assert.Equal(t, 1, fast.Loaded())
	assert.False(t, fast.DataInvalid())
	assert.True(t, baseB.Settled(), "base B must not wait on base A")
	assert.False(t, baseA.Settled())

	assert.True(t, healthy.IsValid())
	assert.True(t, rootB.IsValid())
	require.Len(t, failures, 1)
	assert.Same(t, broken, failures[0].Target)
	assert.Equal(t, StageVisual, failures[0].Stage)
}

func TestDataFailureInOneBaseLeavesOthersLoading(t *testing.T) {
	var failures []*NodeError
	sys := newTestSystem(t, WithErrorHandler(func(ne *NodeError) { failures = append(failures, ne) }))
	baseA := mount(t, sys, NewContainer(Vertical), 100, 100)
	healthy := NewSprite(WithName("healthy"), WithSize(10, 10))
	baseB := mount(t, sys, NewContainer(Vertical, WithChildren(healthy)), 100, 100)

	var log []string
	broken := newScripted("broken", 1, &log)
	broken.base = baseA.ID()
	broken.err = errors.New("feed offline")
	broken.queue(sys)
	loaded := NewDataset(sys, WithTarget[int](healthy))
	loaded.SetData([]int{1, 2, 3})

	tk := newTicker(sys)
	tk.tick()
	assert.Equal(t, 3, loaded.Loaded())
	assert.True(t, baseB.Settled())
	require.Len(t, failures, 1)
	assert.Same(t, broken, failures[0].Target)
	assert.Equal(t, StageData, failures[0].Stage)

	tk.tick()
	tk.tick()
	assert.Len(t, failures, 1)
	assert.Equal(t, []string{"broken:data"}, log)
	assert.True(t, baseA.Settled())
}

func TestFailureIsScopedToNode(t *testing.T) {
	content := &fakeContent{size: Size{Width: 5, Height: 5}, err: errors.New("no font")}
	var handled []*NodeError
	sys := newTestSystem(t, WithErrorHandler(func(ne *NodeError) { handled = append(handled, ne) }))
	bad := NewSprite(WithName("bad"), WithContent(content))
	good := NewSprite(WithName("good"), WithSize(3, 3))
	require.NoError(t, sys.Adopt(bad))
	require.NoError(t, sys.Adopt(good))

	var errorEvents int
	bad.On(EventError, func(*Node) { errorEvents++ })
	tk := newTicker(sys)
	tk.tick()

	assert.True(t, good.IsValid())
	assert.True(t, bad.IsInvalid(), "failed node keeps its invalid flag")
	assert.False(t, sys.Registry().ContainsNode(QueueVisual, bad), "failed node is dequeued")
	assert.ErrorIs(t, bad.Err(), content.err)
	assert.Equal(t, 1, errorEvents)
	require.Len(t, handled, 1)
	assert.Contains(t, handled[0].Error(), "visual validation of sprite")
	assert.Equal(t, uint64(1), sys.Stats().Errors)

	// Not retried until invalidated again.
	tk.tick()
	assert.Len(t, handled, 1)

	content.err = nil
	bad.Invalidate()
	tk.tick()
	assert.True(t, bad.IsValid())
	assert.NoError(t, bad.Err())
	assert.Equal(t, Size{Width: 5, Height: 5}, bad.MeasuredSize())
}

func TestPanicIsRecovered(t *testing.T) {
	var got *NodeError
	sys := newTestSystem(t, WithErrorHandler(func(ne *NodeError) { got = ne }))
	n := NewSprite(WithContent(&fakeContent{panicWith: errors.New("bad glyph")}))
	require.NoError(t, sys.Adopt(n))

	require.NotPanics(t, func() { newTicker(sys).tick() })
	require.NotNil(t, got)
	var pe *PanicError
	require.ErrorAs(t, got, &pe)
	assert.NotEmpty(t, pe.Stack)
	assert.EqualError(t, errors.Unwrap(pe), "bad glyph")
}

func TestForcedChildFailureIsReportedAgainstChild(t *testing.T) {
	var got *NodeError
	sys := newTestSystem(t, WithErrorHandler(func(ne *NodeError) { got = ne }))
	child := NewSprite(WithName("child"), WithWidth(Percent(50)), WithContent(&fakeContent{err: errors.New("nope")}))
	root := NewContainer(Horizontal, WithSize(100, 20), WithChildren(child))
	mount(t, sys, root, 200, 200)

	newTicker(sys).tick()

	require.NotNil(t, got)
	assert.Same(t, child, got.Target)
	assert.Equal(t, LayoutInvalid, root.LayoutState())
	assert.Nil(t, root.Err())
	assert.Error(t, child.Err())
}

func TestDisposeDuringValidation(t *testing.T) {
	sys := newTestSystem(t)
	victimContent := &fakeContent{}
	victim := NewSprite(WithName("victim"), WithContent(victimContent))
	killer := NewSprite(WithName("killer"), WithSize(4, 4))
	require.NoError(t, sys.Adopt(victim))
	require.NoError(t, sys.Adopt(killer))
	killer.On(EventTransformed, func(*Node) { victim.Dispose() })

	require.NotPanics(t, func() { newTicker(sys).tick() })

	assert.Zero(t, victimContent.calls)
	assert.True(t, victim.IsDisposed())
	assert.Equal(t, 0, sys.Registry().Pending())
}

func TestDisposeContainerMidLayout(t *testing.T) {
	sys := newTestSystem(t)
	child := NewSprite(WithSize(10, 10))
	root := NewContainer(Vertical, WithChildren(child))
	b := mount(t, sys, root, 100, 100)
	child.On(EventMaxSizeChanged, func(*Node) { b.Dispose() })

	require.NotPanics(t, func() { newTicker(sys).tick() })

	assert.True(t, root.IsDisposed())
	assert.True(t, child.IsDisposed())
	assert.Nil(t, child.Parent())
	assert.Equal(t, uint64(0), sys.Stats().Errors)
	assert.Equal(t, 0, sys.Registry().Pending())
	assert.Empty(t, sys.Bases())
}

func TestRenderingFrequencyThrottles(t *testing.T) {
	sys := newTestSystem(t)
	content := &fakeContent{size: Size{Width: 1, Height: 1}}
	n := NewSprite(WithContent(content), WithRenderingFrequency(3))
	require.NoError(t, sys.Adopt(n))
	tk := newTicker(sys)

	tk.tick()
	tk.tick()
	assert.Zero(t, content.calls)
	assert.False(t, sys.Settled(NoBase), "throttled nodes are still pending")

	tk.tick()
	assert.Equal(t, 1, content.calls)
	assert.True(t, sys.Settled(NoBase))
}

func TestTickIsNotReentrant(t *testing.T) {
	sys := newTestSystem(t)
	calls := 0
	sys.On(EventEnterFrame, func(s *System) {
		calls++
		s.Tick(epoch)
	})
	newTicker(sys).tick()

	assert.Equal(t, 1, calls)
	assert.Equal(t, uint64(1), sys.Frame())
}

func TestFrameEventsAndIdleCallbacks(t *testing.T) {
	sys := newTestSystem(t)
	var seen []string
	sys.On(EventEnterFrame, func(*System) { seen = append(seen, "enter") })
	sys.On(EventExitFrame, func(*System) { seen = append(seen, "exit") })
	sys.CallLater(func() { seen = append(seen, "idle") })
	sys.CallLater(func() { panic("ignored") })

	tk := newTicker(sys)
	tk.tick()
	assert.Equal(t, []string{"enter", "idle", "exit"}, seen)
	assert.Equal(t, uint64(1), sys.Stats().Errors)

	tk.tick()
	assert.Equal(t, []string{"enter", "idle", "exit", "enter", "exit"}, seen)
}

func TestQueueUpdate(t *testing.T) {
	sys := newTestSystem(t, WithUpdateQueueSize(1))
	n := NewSprite(WithSize(1, 1))
	require.NoError(t, sys.Adopt(n))

	sys.QueueUpdate(func() { n.SetSize(7, 7) })
	sys.QueueUpdate(func() { n.SetSize(9, 9) })
	newTicker(sys).tick()

	assert.Equal(t, Size{Width: 7, Height: 7}, n.MeasuredSize())
	assert.Equal(t, uint64(1), sys.Stats().Dropped)
}

func TestRunStopsOnStopAndContext(t *testing.T) {
	frames := make(chan time.Time)
	sys := newTestSystem(t, WithFrameSource(func(context.Context, time.Duration) <-chan time.Time {
		return frames
	}))
	ticked := make(chan struct{}, 8)
	sys.On(EventExitFrame, func(*System) { ticked <- struct{}{} })

	var wg sync.WaitGroup
	var runErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = sys.Run(context.Background())
	}()

	frames <- epoch
	<-ticked
	sys.Stop()
	sys.Stop()
	wg.Wait()

	assert.NoError(t, runErr)
	assert.True(t, sys.Stopped())
	assert.Equal(t, uint64(1), sys.Stats().Frame)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	other := newTestSystem(t)
	assert.NoError(t, other.Run(ctx))
}

func TestDefaultFrameSourceTicks(t *testing.T) {
	sys := newTestSystem(t, WithFrameRate(240))
	done := make(chan struct{})
	sys.On(EventExitFrame, func(s *System) {
		if s.Frame() == 3 {
			s.Stop()
			close(done)
		}
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, sys.Run(ctx))
	select {
	case <-done:
	default:
		t.Fatal("Run returned before three frames")
	}
}

func TestSettlePassBudgetLeavesWorkQueued(t *testing.T) {
	sys := newTestSystem(t, WithMaxSettlePasses(1))
	n := NewSprite(WithSize(1, 1))
	require.NoError(t, sys.Adopt(n))
	// Each position validation queues another one.
	n.On(EventPositionChanged, func(n *Node) { n.SetPosition(n.X()+1, 0) })
	n.SetPosition(1, 0)

	newTicker(sys).tick()
	assert.True(t, sys.Registry().ContainsNode(QueuePositions, n))
	assert.Equal(t, 2.0, n.PixelX())
}

func TestNewBaseRejectsAttachedRoot(t *testing.T) {
	sys := newTestSystem(t)
	child := NewSprite()
	NewContainer(Vertical, WithChildren(child))

	_, err := sys.NewBase(child, FixedViewport{Width: 10, Height: 10})
	assert.ErrorIs(t, err, ErrAttached)

	disposed := NewSprite()
	disposed.Dispose()
	assert.ErrorIs(t, sys.Adopt(disposed), ErrDisposed)

	root := NewContainer(Vertical)
	b := mount(t, sys, root, 10, 10)
	assert.NotEqual(t, NoBase, b.ID())
	assert.Equal(t, b.ID(), root.Base())
	assert.ErrorIs(t, sys.Adopt(root), ErrAttached)
}
