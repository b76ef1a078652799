package scene

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidateIsIdempotent(t *testing.T) {
	sys := newTestSystem(t)
	n := NewSprite(WithSize(10, 10))
	require.NoError(t, sys.Adopt(n))

	for range 3 {
		n.Invalidate()
		n.InvalidatePosition()
	}

	assert.Equal(t, 1, sys.Registry().Len(QueueVisual, NoBase))
	assert.Equal(t, 1, sys.Registry().Len(QueuePositions, NoBase))
}

func TestInvalidateLayoutRouting(t *testing.T) {
	tests := map[string]struct {
		node        *Node
		wantVisual  int
		wantLayouts int
	}{
		"vertical container": {
			node:        NewContainer(Vertical),
			wantVisual:  1,
			wantLayouts: 1,
		},
		"none container": {
			node:        NewContainer(NoLayout),
			wantVisual:  1,
			wantLayouts: 0,
		},
		"sprite": {
			node:        NewSprite(),
			wantVisual:  1,
			wantLayouts: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sys := newTestSystem(t)
			require.NoError(t, sys.Adopt(tt.node))
			tt.node.InvalidateLayout()
			tt.node.InvalidateLayout()

			assert.Equal(t, tt.wantVisual, sys.Registry().Len(QueueVisual, NoBase))
			assert.Equal(t, tt.wantLayouts, sys.Registry().Len(QueueLayouts, NoBase))
			assert.Equal(t, tt.wantLayouts == 1, tt.node.IsLayoutInvalid())
		})
	}
}

func TestDetachedNodeQueuesOnAttach(t *testing.T) {
	sys := newTestSystem(t)
	n := NewSprite()
	n.InvalidatePosition()
	assert.True(t, n.IsPositionInvalid())

	require.NoError(t, sys.Adopt(n))
	assert.True(t, sys.Registry().ContainsNode(QueueVisual, n))
	assert.True(t, sys.Registry().ContainsNode(QueuePositions, n))
}

func TestRegistryPartitionsByBase(t *testing.T) {
	r := newRegistry()
	a, b := uuid.New(), uuid.New()
	r.registerBase(a)

	na, nb := NewSprite(), NewSprite()
	na.base, nb.base = a, b
	r.AddNode(QueueVisual, na)
	r.AddNode(QueueVisual, nb)

	assert.Equal(t, []BaseID{NoBase, a, b}, r.Bases())
	assert.Equal(t, 1, r.Len(QueueVisual, a))
	assert.Equal(t, 1, r.Len(QueueVisual, b))
	assert.False(t, r.Settled(a))
	assert.True(t, r.Settled(NoBase))

	r.PurgeNode(na)
	assert.True(t, r.Settled(a))
	assert.Equal(t, 1, r.Pending())

	r.unregisterBase(b)
	assert.Equal(t, []BaseID{NoBase, a}, r.Bases())
	assert.Equal(t, 0, r.Pending())
}

func TestRegistryRejectsWrongQueueKind(t *testing.T) {
	r := newRegistry()
	assert.Panics(t, func() { r.AddNode(QueueData, NewSprite()) })
}

func TestOrderedSet(t *testing.T) {
	s := newOrderedSet[string]()
	assert.True(t, s.Add("a"))
	assert.True(t, s.Add("b"))
	assert.False(t, s.Add("a"))
	s.Add("c")
	assert.Equal(t, []string{"a", "b", "c"}, s.Items())

	s.PushFront("c")
	assert.Equal(t, []string{"c", "a", "b"}, s.Items())

	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	front, ok := s.Front()
	assert.True(t, ok)
	assert.Equal(t, "c", front)
	assert.Equal(t, 2, s.Len())

	s.Clear()
	_, ok = s.Front()
	assert.False(t, ok)

	var missing *orderedSet[string]
	assert.False(t, missing.Contains("a"))
	assert.False(t, missing.Remove("a"))
	assert.Zero(t, missing.Len())
}

func TestRegistryLookupsDoNotRegisterBases(t *testing.T) {
	r := newRegistry()
	unknown := uuid.New()
	n := NewSprite()
	n.base = unknown
	c := &scriptedConsumer{name: "c", base: unknown}

	assert.False(t, r.ContainsNode(QueueVisual, n))
	assert.False(t, r.RemoveNode(QueueLayouts, n))
	assert.False(t, r.ContainsData(QueueData, c))
	assert.False(t, r.RemoveData(QueueDataRange, c))
	assert.Nil(t, r.dataQueue(QueueData, unknown))
	assert.Equal(t, 0, r.Len(QueueVisual, unknown))
	assert.Equal(t, []BaseID{NoBase}, r.Bases())
}

func TestRegistryIgnoresRetiredBase(t *testing.T) {
	r := newRegistry()
	gone := uuid.New()
	r.registerBase(gone)
	r.unregisterBase(gone)

	n := NewSprite()
	n.base = gone
	c := &scriptedConsumer{name: "c", base: gone}
	assert.False(t, r.AddNode(QueueVisual, n))
	assert.False(t, r.AddData(QueueDataRange, c))
	assert.False(t, r.PushFrontData(QueueData, c))
	assert.Equal(t, []BaseID{NoBase}, r.Bases())
	assert.Equal(t, 0, r.Pending())
}

func TestRegistryKeepsConsumerInQueuedBase(t *testing.T) {
	r := newRegistry()
	a, b := uuid.New(), uuid.New()
	c := &scriptedConsumer{name: "c", base: a}
	require.True(t, r.AddData(QueueData, c))

	c.base = b
	assert.False(t, r.AddData(QueueData, c))
	home, ok := r.QueuedBase(QueueData, c)
	require.True(t, ok)
	assert.Equal(t, a, home)
	assert.Equal(t, 1, r.Len(QueueData, a))
	assert.Zero(t, r.Len(QueueData, b))

	assert.True(t, r.RemoveData(QueueData, c))
	assert.Equal(t, 0, r.Pending())
}
