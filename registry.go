package scene

import (
	"fmt"
	"slices"
)

// Queue names one of the per-base work queues.
type Queue uint8

const (
	QueueData Queue = iota
	QueueRawData
	QueueDataItems
	QueueDataRange
	QueueVisual
	QueuePositions
	QueueLayouts

	numQueues
)

func (q Queue) String() string {
	switch q {
	case QueueData:
		return "data"
	case QueueRawData:
		return "raw-data"
	case QueueDataItems:
		return "data-items"
	case QueueDataRange:
		return "data-range"
	case QueueVisual:
		return "visual"
	case QueuePositions:
		return "positions"
	case QueueLayouts:
		return "layouts"
	default:
		return "unknown"
	}
}

// isNodeQueue reports whether q holds nodes rather than data consumers.
func (q Queue) isNodeQueue() bool {
	return q >= QueueVisual && q < numQueues
}

// partition maps each base to its own ordered queue.
type partition[T comparable] map[BaseID]*orderedSet[T]

func (p partition[T]) set(base BaseID) *orderedSet[T] {
	s, ok := p[base]
	if !ok {
		s = newOrderedSet[T]()
		p[base] = s
	}
	return s
}

// Registry holds the invalidation queues, partitioned by base. Each item is
// queued at most once per queue. Bases are iterated in registration order,
// with NoBase first.
//
// A data consumer stays in the partition it was queued under even if its
// BaseID changes while it waits, so it can always be found and removed.
type Registry struct {
	bases   []BaseID
	retired map[BaseID]struct{}
	nodes   [numQueues - QueueVisual]partition[*Node]
	data    [QueueVisual]partition[DataConsumer]
	homes   [QueueVisual]map[DataConsumer]BaseID
}

func newRegistry() *Registry {
	r := &Registry{
		bases:   []BaseID{NoBase},
		retired: make(map[BaseID]struct{}),
	}
	for i := range r.nodes {
		r.nodes[i] = make(partition[*Node])
	}
	for i := range r.data {
		r.data[i] = make(partition[DataConsumer])
		r.homes[i] = make(map[DataConsumer]BaseID)
	}
	return r
}

func (r *Registry) registerBase(base BaseID) {
	delete(r.retired, base)
	if !slices.Contains(r.bases, base) {
		r.bases = append(r.bases, base)
	}
}

// unregisterBase drops a base and everything still queued for it. Later adds
// for the base are ignored.
func (r *Registry) unregisterBase(base BaseID) {
	if base == NoBase {
		return
	}
	if i := slices.Index(r.bases, base); i >= 0 {
		r.bases = slices.Delete(r.bases, i, i+1)
	}
	r.retired[base] = struct{}{}
	for _, p := range r.nodes {
		delete(p, base)
	}
	for q, p := range r.data {
		delete(p, base)
		for c, home := range r.homes[q] {
			if home == base {
				delete(r.homes[q], c)
			}
		}
	}
}

// Bases returns the known bases in iteration order.
func (r *Registry) Bases() []BaseID {
	return slices.Clone(r.bases)
}

// accepts reports whether work may be queued under base, registering it on
// first use.
func (r *Registry) accepts(base BaseID) bool {
	if _, ok := r.retired[base]; ok {
		return false
	}
	r.registerBase(base)
	return true
}

func mustNodeQueue(q Queue) int {
	if !q.isNodeQueue() {
		panic(fmt.Sprintf("scene: %s is not a node queue", q))
	}
	return int(q - QueueVisual)
}

func mustDataQueue(q Queue) int {
	if q.isNodeQueue() || q >= numQueues {
		panic(fmt.Sprintf("scene: %s is not a data queue", q))
	}
	return int(q)
}

// nodeQueue returns the existing queue for base, or nil. It never registers.
func (r *Registry) nodeQueue(q Queue, base BaseID) *orderedSet[*Node] {
	return r.nodes[mustNodeQueue(q)][base]
}

// dataQueue returns the existing queue for base, or nil. It never registers.
func (r *Registry) dataQueue(q Queue, base BaseID) *orderedSet[DataConsumer] {
	return r.data[mustDataQueue(q)][base]
}

// AddNode queues n on q under the node's base. It reports whether n was not
// already queued.
func (r *Registry) AddNode(q Queue, n *Node) bool {
	i := mustNodeQueue(q)
	if !r.accepts(n.base) {
		return false
	}
	return r.nodes[i].set(n.base).Add(n)
}

// RemoveNode removes n from q.
func (r *Registry) RemoveNode(q Queue, n *Node) bool {
	return r.nodeQueue(q, n.base).Remove(n)
}

// AddData queues c on q under the consumer's current base. A consumer that
// is already queued keeps its place.
func (r *Registry) AddData(q Queue, c DataConsumer) bool {
	i := mustDataQueue(q)
	if _, ok := r.homes[i][c]; ok {
		return false
	}
	base := c.BaseID()
	if !r.accepts(base) {
		return false
	}
	r.homes[i][c] = base
	return r.data[i].set(base).Add(c)
}

// PushFrontData queues c at the head of q, keeping its current partition if
// it is already queued.
func (r *Registry) PushFrontData(q Queue, c DataConsumer) bool {
	i := mustDataQueue(q)
	base, ok := r.homes[i][c]
	if !ok {
		base = c.BaseID()
		if !r.accepts(base) {
			return false
		}
		r.homes[i][c] = base
	}
	r.data[i].set(base).PushFront(c)
	return true
}

// RemoveData removes c from q, wherever it was queued.
func (r *Registry) RemoveData(q Queue, c DataConsumer) bool {
	i := mustDataQueue(q)
	base, ok := r.homes[i][c]
	if !ok {
		return false
	}
	delete(r.homes[i], c)
	return r.data[i][base].Remove(c)
}

// ContainsNode reports whether n is queued on q.
func (r *Registry) ContainsNode(q Queue, n *Node) bool {
	return r.nodeQueue(q, n.base).Contains(n)
}

// ContainsData reports whether c is queued on q.
func (r *Registry) ContainsData(q Queue, c DataConsumer) bool {
	_, ok := r.homes[mustDataQueue(q)][c]
	return ok
}

// QueuedBase returns the base c is queued under on q.
func (r *Registry) QueuedBase(q Queue, c DataConsumer) (BaseID, bool) {
	base, ok := r.homes[mustDataQueue(q)][c]
	return base, ok
}

// PurgeNode removes n from every node queue.
func (r *Registry) PurgeNode(n *Node) {
	for q := QueueVisual; q < numQueues; q++ {
		r.RemoveNode(q, n)
	}
}

// PurgeData removes c from every data queue.
func (r *Registry) PurgeData(c DataConsumer) {
	for q := QueueData; q < QueueVisual; q++ {
		r.RemoveData(q, c)
	}
}

// Len returns the number of items queued on q for base.
func (r *Registry) Len(q Queue, base BaseID) int {
	if q.isNodeQueue() {
		return r.nodes[q-QueueVisual][base].Len()
	}
	if q < QueueVisual {
		return r.data[q][base].Len()
	}
	return 0
}

// Pending returns the number of items queued across every queue and base.
func (r *Registry) Pending() int {
	total := 0
	for _, base := range r.bases {
		for q := range numQueues {
			total += r.Len(q, base)
		}
	}
	return total
}

// Settled reports whether every queue of base is empty.
func (r *Registry) Settled(base BaseID) bool {
	for q := range numQueues {
		if r.Len(q, base) > 0 {
			return false
		}
	}
	return true
}

// snapshot returns the nodes queued on q for base, oldest first.
func (r *Registry) snapshot(q Queue, base BaseID) []*Node {
	return r.nodes[q-QueueVisual][base].Items()
}

func (r *Registry) dataSnapshot(q Queue, base BaseID) []DataConsumer {
	return r.data[q][base].Items()
}
