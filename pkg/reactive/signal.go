package reactive

import (
	"sync"
	"sync/atomic"

	"github.com/loomui/loom/pkg/scheduler"
)

// Scheduler is the subset of the fiber scheduler the reactive layer needs.
type Scheduler interface {
	MarkDirty(fiber *scheduler.Fiber)
}

// currentFiber is dynamically scoped by the scheduler around each render so
// that Get calls can record which fiber depends on which signal.
var currentFiber atomic.Pointer[scheduler.Fiber]

// SetCurrentFiber installs the fiber whose render is about to run.
func SetCurrentFiber(fiber *scheduler.Fiber) {
	currentFiber.Store(fiber)
}

// GetCurrentFiber returns the fiber currently rendering, or nil.
func GetCurrentFiber() *scheduler.Fiber {
	return currentFiber.Load()
}

// Signal is a readable, writable reactive value.
type Signal[T any] interface {
	Get() T
	Set(T)
	Subscribe(fiber *scheduler.Fiber)
	Unsubscribe(fiber *scheduler.Fiber)
}

// State holds a reactive value and the fibers that read it.
type State[T any] struct {
	mu    sync.RWMutex
	value T

	depsMu sync.RWMutex
	deps   map[uint32]*scheduler.Fiber

	sched Scheduler
}

// NewState creates a reactive state bound to a scheduler.
func NewState[T any](initial T, sched Scheduler) *State[T] {
	return &State[T]{
		value: initial,
		deps:  make(map[uint32]*scheduler.Fiber),
		sched: sched,
	}
}

// CreateState creates a state without a scheduler. Components use this for
// local interaction state that is read and written inside their own
// callbacks rather than across fibers.
func CreateState[T any](initial T) *State[T] {
	return NewState[T](initial, nil)
}

// Get returns the value and records the reading fiber as a dependency.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if fiber := GetCurrentFiber(); fiber != nil {
		s.Subscribe(fiber)
	}
	return s.value
}

// Set stores a new value and wakes every dependent fiber.
func (s *State[T]) Set(value T) {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()

	s.notify()
}

// Update applies fn to the value atomically, then wakes dependents.
func (s *State[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	s.mu.Unlock()

	s.notify()
}

func (s *State[T]) notify() {
	s.depsMu.RLock()
	deps := make([]*scheduler.Fiber, 0, len(s.deps))
	for _, f := range s.deps {
		deps = append(deps, f)
	}
	s.depsMu.RUnlock()

	// Dirty marking happens outside the lock so Set never deadlocks with a
	// render that reads this state.
	for _, f := range deps {
		markDirtyOrBatch(s.sched, f)
	}
}

// Subscribe records a fiber as depending on this state.
func (s *State[T]) Subscribe(fiber *scheduler.Fiber) {
	if fiber == nil {
		return
	}
	s.depsMu.Lock()
	s.deps[fiber.ID()] = fiber
	s.depsMu.Unlock()
}

// Unsubscribe drops a fiber dependency.
func (s *State[T]) Unsubscribe(fiber *scheduler.Fiber) {
	if fiber == nil {
		return
	}
	s.depsMu.Lock()
	delete(s.deps, fiber.ID())
	s.depsMu.Unlock()
}

// Computed is a lazily recomputed, memoized derived value.
type Computed[T any] struct {
	mu      sync.Mutex
	compute func() T
	value   T
	valid   bool

	depsMu sync.RWMutex
	deps   map[uint32]*scheduler.Fiber

	sched Scheduler
}

// NewComputed creates a computed value bound to a scheduler.
func NewComputed[T any](compute func() T, sched Scheduler) *Computed[T] {
	return &Computed[T]{
		compute: compute,
		deps:    make(map[uint32]*scheduler.Fiber),
		sched:   sched,
	}
}

// CreateComputed creates a computed value without a scheduler.
func CreateComputed[T any](compute func() T) *Computed[T] {
	return NewComputed(compute, nil)
}

// Get returns the memoized value, recomputing it when invalidated.
func (c *Computed[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if fiber := GetCurrentFiber(); fiber != nil {
		c.Subscribe(fiber)
	}
	if !c.valid {
		c.value = c.compute()
		c.valid = true
	}
	return c.value
}

// Invalidate forces the next Get to recompute and wakes dependents.
func (c *Computed[T]) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()

	c.depsMu.RLock()
	deps := make([]*scheduler.Fiber, 0, len(c.deps))
	for _, f := range c.deps {
		deps = append(deps, f)
	}
	c.depsMu.RUnlock()

	for _, f := range deps {
		markDirtyOrBatch(c.sched, f)
	}
}

// Subscribe records a fiber as depending on this computed value.
func (c *Computed[T]) Subscribe(fiber *scheduler.Fiber) {
	if fiber == nil {
		return
	}
	c.depsMu.Lock()
	c.deps[fiber.ID()] = fiber
	c.depsMu.Unlock()
}

// Unsubscribe drops a fiber dependency.
func (c *Computed[T]) Unsubscribe(fiber *scheduler.Fiber) {
	if fiber == nil {
		return
	}
	c.depsMu.Lock()
	delete(c.deps, fiber.ID())
	c.depsMu.Unlock()
}

// batchContext holds the batch currently collecting dirty fibers, if any.
var batchContext atomic.Pointer[Batch]

// Batch coalesces dirty marking so a burst of Sets re-renders once.
type Batch struct {
	mu     sync.Mutex
	sched  Scheduler
	dirty  map[uint32]*scheduler.Fiber
	active bool
}

// NewBatch creates an active batch bound to a scheduler.
func NewBatch(sched Scheduler) *Batch {
	return &Batch{
		sched:  sched,
		dirty:  make(map[uint32]*scheduler.Fiber),
		active: true,
	}
}

// Add records a fiber to be marked dirty when the batch commits.
func (b *Batch) Add(fiber *scheduler.Fiber) {
	if fiber == nil {
		return
	}
	b.mu.Lock()
	if b.active {
		b.dirty[fiber.ID()] = fiber
	}
	b.mu.Unlock()
}

// Commit deactivates the batch and marks every collected fiber dirty.
func (b *Batch) Commit() {
	b.mu.Lock()
	b.active = false
	fibers := make([]*scheduler.Fiber, 0, len(b.dirty))
	for _, f := range b.dirty {
		fibers = append(fibers, f)
	}
	b.dirty = nil
	b.mu.Unlock()

	if b.sched == nil {
		return
	}
	for _, f := range fibers {
		b.sched.MarkDirty(f)
	}
}

// RunBatch runs fn with all state updates coalesced into one commit.
func RunBatch(sched Scheduler, fn func()) {
	batch := NewBatch(sched)
	prev := batchContext.Swap(batch)
	defer func() {
		batchContext.Store(prev)
		batch.Commit()
	}()
	fn()
}

func markDirtyOrBatch(sched Scheduler, fiber *scheduler.Fiber) {
	if b := batchContext.Load(); b != nil {
		b.Add(fiber)
		return
	}
	if sched != nil {
		sched.MarkDirty(fiber)
	}
}
