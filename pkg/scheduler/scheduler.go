package scheduler

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/loomui/loom/pkg/vdom"
)

// RenderFunc produces a component's virtual tree.
type RenderFunc func() *vdom.VNode

// ErrorHandler handles a panic raised while rendering a fiber. Returning
// true keeps the fiber scheduled; returning false unmounts it.
type ErrorHandler func(fiber *Fiber, err any) bool

// Fiber is a lightweight execution context for one component instance.
type Fiber struct {
	id     uint32
	parent *Fiber
	vnode  *vdom.VNode // last rendered tree

	render RenderFunc
	dirty  atomic.Bool

	onError ErrorHandler

	userData any
}

// ID returns the fiber's unique id.
func (f *Fiber) ID() uint32 { return f.id }

// Parent returns the fiber's parent, or nil for roots.
func (f *Fiber) Parent() *Fiber { return f.parent }

// VNode returns the last rendered tree.
func (f *Fiber) VNode() *vdom.VNode { return f.vnode }

// SetVNode seeds the fiber's tree, used during hydration.
func (f *Fiber) SetVNode(v *vdom.VNode) { f.vnode = v }

// SetErrorHandler overrides the fiber's panic handler.
func (f *Fiber) SetErrorHandler(h ErrorHandler) { f.onError = h }

// SetUserData attaches arbitrary caller data to the fiber.
func (f *Fiber) SetUserData(data any) { f.userData = data }

// UserData returns data attached with SetUserData.
func (f *Fiber) UserData() any { return f.userData }

// Scheduler renders dirty fibers, diffs their trees and hands the patches
// to an applier. One scheduler drives one mounted application.
type Scheduler struct {
	mu     sync.Mutex
	fibers map[uint32]*Fiber
	nextID uint32

	wake    chan *Fiber
	running atomic.Bool

	applyPatches func(patches []vdom.Patch)
	defaultError ErrorHandler
}

// New creates a scheduler.
func New() *Scheduler {
	return &Scheduler{
		fibers: make(map[uint32]*Fiber),
		nextID: 1,
		wake:   make(chan *Fiber, 1024),
	}
}

// SetPatchApplier installs the function that applies diff output.
func (s *Scheduler) SetPatchApplier(apply func(patches []vdom.Patch)) {
	s.applyPatches = apply
}

// SetDefaultErrorHandler installs the panic handler new fibers inherit.
func (s *Scheduler) SetDefaultErrorHandler(h ErrorHandler) {
	s.defaultError = h
}

// CreateFiber registers a component render function and returns its fiber.
func (s *Scheduler) CreateFiber(render RenderFunc, parent *Fiber) *Fiber {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := &Fiber{
		id:      s.nextID,
		parent:  parent,
		render:  render,
		onError: s.defaultError,
	}
	s.nextID++
	s.fibers[f.id] = f
	return f
}

// RemoveFiber unregisters a fiber.
func (s *Scheduler) RemoveFiber(fiber *Fiber) {
	if fiber == nil {
		return
	}
	s.mu.Lock()
	delete(s.fibers, fiber.id)
	s.mu.Unlock()
}

// GetFiber looks a fiber up by id.
func (s *Scheduler) GetFiber(id uint32) *Fiber {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fibers[id]
}

// FiberCount returns the number of registered fibers.
func (s *Scheduler) FiberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fibers)
}

// MarkDirty queues a fiber for re-render. Marking an already dirty fiber
// is a no-op, so redundant signal writes cost one atomic check.
func (s *Scheduler) MarkDirty(fiber *Fiber) {
	if fiber == nil {
		return
	}
	if !fiber.dirty.CompareAndSwap(false, true) {
		return
	}
	if !s.running.Load() {
		return
	}
	select {
	case s.wake <- fiber:
	default:
		// Channel full; the fiber stays dirty and is drained next batch.
	}
}

// Start launches the render loop.
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		go s.loop()
	}
}

// Stop halts the render loop.
func (s *Scheduler) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	// Unblock the loop if it is parked on the wake channel.
	select {
	case s.wake <- nil:
	default:
	}
}

// IsRunning reports whether the render loop is active.
func (s *Scheduler) IsRunning() bool {
	return s.running.Load()
}

func (s *Scheduler) loop() {
	for s.running.Load() {
		fiber := <-s.wake
		if fiber == nil {
			continue
		}

		batch := []*Fiber{fiber}
	drain:
		for {
			select {
			case f := <-s.wake:
				if f != nil {
					batch = append(batch, f)
				}
			default:
				break drain
			}
		}

		for _, f := range batch {
			s.process(f)
		}
	}
}

func (s *Scheduler) process(fiber *Fiber) {
	// A fiber can appear twice in one batch; only the first render runs.
	if !fiber.dirty.CompareAndSwap(true, false) {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.handlePanic(fiber, r)
		}
	}()

	next := fiber.render()
	patches := vdom.Diff(fiber.vnode, next)
	if s.applyPatches != nil && len(patches) > 0 {
		s.applyPatches(patches)
	}
	fiber.vnode = next
}

func (s *Scheduler) handlePanic(fiber *Fiber, err any) {
	msg := fmt.Sprintf("fiber %d panic: %v\n%s", fiber.id, err, debug.Stack())

	keep := false
	if fiber.onError != nil {
		keep = fiber.onError(fiber, msg)
	}
	if !keep {
		s.RemoveFiber(fiber)
	}
}
