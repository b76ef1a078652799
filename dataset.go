package scene

import (
	"fmt"
	"math"
	"slices"
)

// Dataset is a DataConsumer that loads a slice of T through the data stages:
// ValidateData copies the source in chunks, ValidateRawData applies an
// optional transform, ValidateDataItems runs an optional hook and
// ValidateDataRange slices out the visible window.
//
// A Dataset with a provider takes its source from the provider's loaded data
// and reloads whenever the provider finishes loading.
type Dataset[T any] struct {
	sys    *System
	name   string
	base   BaseID
	target *Node

	provider   *Dataset[T]
	dependents []*Dataset[T]

	chunkSize int
	transform func([]T) ([]T, error)
	onItems   func([]T) error

	source []T
	raw    []T
	items  []T
	loaded int

	start, end float64
	visible    []T
	skipRange  bool

	dataInvalid bool
	disposed    bool
	lastErr     error
	events      Dispatcher[*Dataset[T]]
}

// DatasetOption configures a Dataset.
type DatasetOption[T any] func(*Dataset[T])

// WithChunkSize limits how many items ValidateData loads per tick.
// Zero loads everything at once.
func WithChunkSize[T any](size int) DatasetOption[T] {
	return func(d *Dataset[T]) {
		d.chunkSize = max(0, size)
	}
}

// WithDatasetName labels the dataset in logs and errors.
func WithDatasetName[T any](name string) DatasetOption[T] {
	return func(d *Dataset[T]) {
		d.name = name
	}
}

// WithDataBase queues the dataset under base.
func WithDataBase[T any](base BaseID) DatasetOption[T] {
	return func(d *Dataset[T]) {
		d.base = base
	}
}

// WithTarget invalidates n whenever the items or visible range change. The
// dataset is queued under n's base.
func WithTarget[T any](n *Node) DatasetOption[T] {
	return func(d *Dataset[T]) {
		d.target = n
	}
}

// WithProvider derives the dataset's source from p.
func WithProvider[T any](p *Dataset[T]) DatasetOption[T] {
	return func(d *Dataset[T]) {
		d.provider = p
		p.dependents = append(p.dependents, d)
	}
}

// WithTransform sets the raw data transform. It is applied to all loaded
// items at once; on error the items are left untouched.
func WithTransform[T any](fn func([]T) ([]T, error)) DatasetOption[T] {
	return func(d *Dataset[T]) {
		d.transform = fn
	}
}

// WithItemsHook is called with the loaded items at the data items stage.
func WithItemsHook[T any](fn func([]T) error) DatasetOption[T] {
	return func(d *Dataset[T]) {
		d.onItems = fn
	}
}

// NewDataset creates an empty dataset scheduled on sys with the full range
// visible.
func NewDataset[T any](sys *System, opts ...DatasetOption[T]) *Dataset[T] {
	d := &Dataset[T]{sys: sys, base: NoBase, end: 1}
	for _, opt := range opts {
		opt(d)
	}
	if d.provider != nil {
		d.invalidateData()
	}
	return d
}

func (d *Dataset[T]) String() string {
	if d.name != "" {
		return fmt.Sprintf("dataset(%s)", d.name)
	}
	return "dataset"
}

// SetData replaces the source and restarts loading.
func (d *Dataset[T]) SetData(data []T) {
	if d.disposed {
		return
	}
	d.source = slices.Clone(data)
	d.reset()
	d.invalidateData()
}

// Append adds items to the source. Loading continues where it left off.
func (d *Dataset[T]) Append(items ...T) {
	if d.disposed || len(items) == 0 {
		return
	}
	d.source = append(d.source, items...)
	d.invalidateData()
}

// SetRange sets the visible window as fractions of the items, in [0, 1].
// With skipEvent the next EventDataRangeChanged is suppressed.
func (d *Dataset[T]) SetRange(start, end float64, skipEvent bool) {
	start = min(max(start, 0), 1)
	end = min(max(end, 0), 1)
	if start > end {
		start, end = end, start
	}
	d.start, d.end = start, end
	d.skipRange = skipEvent
	d.sys.InvalidateDataRange(d)
}

// Range returns the visible window.
func (d *Dataset[T]) Range() (start, end float64) {
	return d.start, d.end
}

// Items returns the loaded items after the transform.
func (d *Dataset[T]) Items() []T {
	return slices.Clone(d.items)
}

// Visible returns the items inside the visible window as of the last range
// validation.
func (d *Dataset[T]) Visible() []T {
	return slices.Clone(d.visible)
}

// Loaded returns how many source items have been loaded.
func (d *Dataset[T]) Loaded() int {
	return d.loaded
}

// Err returns the last error raised against the dataset.
func (d *Dataset[T]) Err() error {
	return d.lastErr
}

// On registers fn for notifications about this dataset.
func (d *Dataset[T]) On(t EventType, fn func(*Dataset[T])) Unbind {
	return d.events.On(t, fn)
}

// Dispose removes the dataset from every queue.
func (d *Dataset[T]) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	d.sys.DisposeData(d)
	if p := d.provider; p != nil {
		if i := slices.Index(p.dependents, d); i >= 0 {
			p.dependents = slices.Delete(p.dependents, i, i+1)
		}
	}
	d.events.Clear()
}

func (d *Dataset[T]) reset() {
	d.raw = d.raw[:0]
	d.loaded = 0
}

func (d *Dataset[T]) invalidateData() {
	d.dataInvalid = true
	d.sys.InvalidateData(d)
}

// --- DataConsumer ---

func (d *Dataset[T]) BaseID() BaseID {
	if d.target != nil {
		return d.target.Base()
	}
	return d.base
}

func (d *Dataset[T]) DataInvalid() bool { return d.dataInvalid }

func (d *Dataset[T]) IsDisposed() bool { return d.disposed }

func (d *Dataset[T]) DataValidationProgress() float64 {
	if !d.dataInvalid || len(d.source) == 0 {
		return 1
	}
	return float64(d.loaded) / float64(len(d.source))
}

func (d *Dataset[T]) DataProvider() DataConsumer {
	if d.provider == nil {
		return nil
	}
	return d.provider
}

// ValidateData loads the next chunk. Once everything is loaded the later
// data stages and any dependents are queued.
func (d *Dataset[T]) ValidateData() error {
	if d.disposed {
		return ErrDisposed
	}
	if d.provider != nil && d.loaded == 0 {
		d.source = slices.Clone(d.provider.raw)
	}

	n := len(d.source) - d.loaded
	if d.chunkSize > 0 {
		n = min(n, d.chunkSize)
	}
	d.raw = append(d.raw, d.source[d.loaded:d.loaded+n]...)
	d.loaded += n
	if d.loaded < len(d.source) {
		return nil
	}

	d.dataInvalid = false
	d.sys.InvalidateRawData(d)
	for _, dep := range d.dependents {
		dep.reset()
		dep.invalidateData()
	}
	return nil
}

// ValidateRawData rebuilds the items from everything loaded. On a transform
// error the previous items are kept.
func (d *Dataset[T]) ValidateRawData() error {
	items := slices.Clone(d.raw)
	if d.transform != nil {
		out, err := d.transform(items)
		if err != nil {
			return fmt.Errorf("transform: %w", err)
		}
		items = out
	}
	d.items = items
	d.sys.InvalidateDataItems(d)
	return nil
}

func (d *Dataset[T]) ValidateDataItems() error {
	if d.onItems != nil {
		if err := d.onItems(slices.Clone(d.items)); err != nil {
			return fmt.Errorf("items hook: %w", err)
		}
	}
	d.sys.InvalidateDataRange(d)
	if d.target != nil {
		d.target.Invalidate()
	}
	return nil
}

// ValidateDataRange slices the visible window out of the items.
func (d *Dataset[T]) ValidateDataRange() error {
	count := float64(len(d.items))
	lo := int(math.Floor(d.start * count))
	hi := int(math.Ceil(d.end * count))
	lo = min(max(lo, 0), len(d.items))
	hi = min(max(hi, lo), len(d.items))
	d.visible = slices.Clone(d.items[lo:hi])
	if d.target != nil {
		d.target.Invalidate()
	}
	return nil
}

// SkipRangeEvent reports, once, whether the last SetRange asked to suppress
// its event.
func (d *Dataset[T]) SkipRangeEvent() bool {
	skip := d.skipRange
	d.skipRange = false
	return skip
}

func (d *Dataset[T]) RaiseCriticalError(err error) {
	d.lastErr = err
	d.events.Emit(EventError, d)
}

func (d *Dataset[T]) DispatchEvent(t EventType) {
	d.events.Emit(t, d)
}

var (
	_ DataConsumer        = (*Dataset[int])(nil)
	_ RangeEventSkipper   = (*Dataset[int])(nil)
	_ CriticalErrorRaiser = (*Dataset[int])(nil)
	_ EventDispatcher     = (*Dataset[int])(nil)
)
