package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/loomui/loom/pkg/vdom"
)

func TestScheduler_CreateFiber(t *testing.T) {
	sched := New()

	renderCalled := false
	fiber := sched.CreateFiber(func() *vdom.VNode {
		renderCalled = true
		return vdom.Text("test")
	}, nil)

	if fiber == nil {
		t.Fatal("CreateFiber returned nil")
	}
	if fiber.ID() == 0 {
		t.Error("fiber id should not be 0")
	}
	if fiber.Parent() != nil {
		t.Error("parent should be nil")
	}
	if renderCalled {
		t.Error("render must not run during creation")
	}
	if sched.FiberCount() != 1 {
		t.Errorf("fiber count = %d, want 1", sched.FiberCount())
	}
}

func TestScheduler_MarkDirtyTriggersRender(t *testing.T) {
	sched := New()

	var renders atomic.Int32
	fiber := sched.CreateFiber(func() *vdom.VNode {
		renders.Add(1)
		return vdom.Element("div", nil, vdom.Text("test"))
	}, nil)

	sched.Start()
	defer sched.Stop()

	sched.MarkDirty(fiber)
	time.Sleep(50 * time.Millisecond)
	if renders.Load() != 1 {
		t.Fatalf("renders = %d, want 1", renders.Load())
	}

	sched.MarkDirty(fiber)
	time.Sleep(50 * time.Millisecond)
	if renders.Load() != 2 {
		t.Errorf("renders = %d, want 2", renders.Load())
	}
}

func TestScheduler_MarkDirtyIsIdempotent(t *testing.T) {
	sched := New()

	fiber := sched.CreateFiber(func() *vdom.VNode {
		return vdom.Text("x")
	}, nil)

	// Not running: marking twice leaves the fiber dirty exactly once.
	sched.MarkDirty(fiber)
	sched.MarkDirty(fiber)
	if !fiber.dirty.Load() {
		t.Error("fiber should be dirty")
	}
}

func TestScheduler_BatchProcessing(t *testing.T) {
	sched := New()

	var renders atomic.Int32
	fibers := make([]*Fiber, 10)
	for i := range fibers {
		fibers[i] = sched.CreateFiber(func() *vdom.VNode {
			renders.Add(1)
			return vdom.Text("n")
		}, nil)
	}

	sched.Start()
	defer sched.Stop()

	for _, f := range fibers {
		sched.MarkDirty(f)
	}
	time.Sleep(100 * time.Millisecond)

	if renders.Load() != 10 {
		t.Errorf("renders = %d, want 10", renders.Load())
	}
}

func TestScheduler_PatchesApplied(t *testing.T) {
	sched := New()

	texts := []string{"first", "second"}
	var renderIdx atomic.Int32
	var patchCount atomic.Int32

	sched.SetPatchApplier(func(patches []vdom.Patch) {
		patchCount.Add(int32(len(patches)))
	})

	fiber := sched.CreateFiber(func() *vdom.VNode {
		i := renderIdx.Add(1) - 1
		if int(i) >= len(texts) {
			i = int32(len(texts) - 1)
		}
		return vdom.Text(texts[i])
	}, nil)

	sched.Start()
	defer sched.Stop()

	sched.MarkDirty(fiber)
	time.Sleep(50 * time.Millisecond)
	first := patchCount.Load()
	if first == 0 {
		t.Fatal("first render should produce an insert patch")
	}

	sched.MarkDirty(fiber)
	time.Sleep(50 * time.Millisecond)
	if patchCount.Load() == first {
		t.Error("text change should produce a patch")
	}
}

func TestScheduler_ErrorHandlerKeepsFiber(t *testing.T) {
	sched := New()

	var handled atomic.Bool
	sched.SetDefaultErrorHandler(func(f *Fiber, err any) bool {
		handled.Store(true)
		return true
	})

	fiber := sched.CreateFiber(func() *vdom.VNode {
		panic("render failure")
	}, nil)

	sched.Start()
	defer sched.Stop()

	sched.MarkDirty(fiber)
	time.Sleep(50 * time.Millisecond)

	if !handled.Load() {
		t.Error("error handler was not called")
	}
	if sched.GetFiber(fiber.ID()) == nil {
		t.Error("fiber removed although handler returned true")
	}
}

func TestScheduler_ErrorHandlerUnmountsFiber(t *testing.T) {
	sched := New()
	sched.SetDefaultErrorHandler(func(f *Fiber, err any) bool {
		return false
	})

	fiber := sched.CreateFiber(func() *vdom.VNode {
		panic("render failure")
	}, nil)

	sched.Start()
	defer sched.Stop()

	sched.MarkDirty(fiber)
	time.Sleep(50 * time.Millisecond)

	if sched.GetFiber(fiber.ID()) != nil {
		t.Error("fiber should be removed when handler returns false")
	}
}

func TestScheduler_RemoveFiber(t *testing.T) {
	sched := New()
	fiber := sched.CreateFiber(func() *vdom.VNode { return vdom.Text("x") }, nil)

	sched.RemoveFiber(fiber)
	if sched.FiberCount() != 0 {
		t.Errorf("fiber count = %d, want 0", sched.FiberCount())
	}

	// Removing twice or removing nil must not panic.
	sched.RemoveFiber(fiber)
	sched.RemoveFiber(nil)
}

func TestScheduler_StartStop(t *testing.T) {
	sched := New()
	if sched.IsRunning() {
		t.Error("new scheduler should not be running")
	}

	sched.Start()
	if !sched.IsRunning() {
		t.Error("scheduler should be running after Start")
	}
	sched.Start() // second Start is a no-op

	sched.Stop()
	if sched.IsRunning() {
		t.Error("scheduler should be stopped after Stop")
	}
}
