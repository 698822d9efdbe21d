package behavior

import "testing"

type countingLeaf struct {
	results []Result
	i       int
	ticks   int
}

func (c *countingLeaf) Tick(*Context) Result {
	c.ticks++
	if c.i >= len(c.results) {
		return Success
	}
	r := c.results[c.i]
	c.i++
	return r
}

func (c *countingLeaf) Reset() { c.i = 0 }

func TestSequenceAllSuccess(t *testing.T) {
	a := &countingLeaf{results: []Result{Success}}
	b := &countingLeaf{results: []Result{Success}}
	seq := NewSequence(a, b)
	if got := seq.Tick(nil); got != Success {
		t.Fatalf("expected Success, got %v", got)
	}
	if a.ticks != 1 || b.ticks != 1 {
		t.Fatalf("expected both children ticked once, got a=%d b=%d", a.ticks, b.ticks)
	}
}

func TestSequenceShortCircuitsOnFailure(t *testing.T) {
	a := &countingLeaf{results: []Result{Failure}}
	b := &countingLeaf{results: []Result{Success}}
	seq := NewSequence(a, b)
	if got := seq.Tick(nil); got != Failure {
		t.Fatalf("expected Failure, got %v", got)
	}
	if b.ticks != 0 {
		t.Fatalf("expected second child never ticked, got %d", b.ticks)
	}
}

func TestSequenceResumesFromRunningCursor(t *testing.T) {
	a := &countingLeaf{results: []Result{Success}}
	b := &countingLeaf{results: []Result{Running, Success}}
	seq := NewSequence(a, b)

	if got := seq.Tick(nil); got != Running {
		t.Fatalf("expected Running on first tick, got %v", got)
	}
	if a.ticks != 1 {
		t.Fatalf("expected first child ticked once on the first call, got %d", a.ticks)
	}
	if got := seq.Tick(nil); got != Success {
		t.Fatalf("expected Success on resumed tick, got %v", got)
	}
	if a.ticks != 1 {
		t.Fatalf("expected resumed sequence not to re-run the already-succeeded child, got %d", a.ticks)
	}
}

func TestSelectorReturnsFirstNonFailure(t *testing.T) {
	a := &countingLeaf{results: []Result{Failure}}
	b := &countingLeaf{results: []Result{Success}}
	c := &countingLeaf{results: []Result{Success}}
	sel := NewSelector(a, b, c)
	if got := sel.Tick(nil); got != Success {
		t.Fatalf("expected Success, got %v", got)
	}
	if c.ticks != 0 {
		t.Fatalf("expected third child never ticked once the second succeeded, got %d", c.ticks)
	}
}

func TestSelectorAllFailure(t *testing.T) {
	a := &countingLeaf{results: []Result{Failure}}
	b := &countingLeaf{results: []Result{Failure}}
	sel := NewSelector(a, b)
	if got := sel.Tick(nil); got != Failure {
		t.Fatalf("expected Failure, got %v", got)
	}
}

func TestParallelSuccessIfAnySucceeds(t *testing.T) {
	a := &countingLeaf{results: []Result{Failure}}
	b := &countingLeaf{results: []Result{Success}}
	par := NewParallel(a, b)
	if got := par.Tick(nil); got != Success {
		t.Fatalf("expected Success, got %v", got)
	}
	if a.ticks != 1 {
		t.Fatalf("expected every child to run unconditionally, got a.ticks=%d", a.ticks)
	}
}

func TestParallelFailureIfNoneSucceed(t *testing.T) {
	a := &countingLeaf{results: []Result{Failure}}
	b := &countingLeaf{results: []Result{Failure}}
	par := NewParallel(a, b)
	if got := par.Tick(nil); got != Failure {
		t.Fatalf("expected Failure, got %v", got)
	}
}

func TestParallelEmptyIsSuccess(t *testing.T) {
	par := NewParallel()
	if got := par.Tick(nil); got != Success {
		t.Fatalf("expected Success for an empty parallel, got %v", got)
	}
}

func TestInvertSwapsResult(t *testing.T) {
	inv := NewInvert(NewConstant(Success))
	if got := inv.Tick(nil); got != Failure {
		t.Fatalf("expected Failure, got %v", got)
	}
	inv2 := NewInvert(NewConstant(Failure))
	if got := inv2.Tick(nil); got != Success {
		t.Fatalf("expected Success, got %v", got)
	}
}

func TestInvertPassesRunningThrough(t *testing.T) {
	inv := NewInvert(NewConstant(Running))
	if got := inv.Tick(nil); got != Running {
		t.Fatalf("expected Running, got %v", got)
	}
}

func TestInvertNoChildIsFailure(t *testing.T) {
	inv := NewInvert(nil)
	if got := inv.Tick(nil); got != Failure {
		t.Fatalf("expected Failure, got %v", got)
	}
}

func TestForceSuccessAlwaysSucceeds(t *testing.T) {
	fs := NewForceSuccess(NewConstant(Failure))
	if got := fs.Tick(nil); got != Success {
		t.Fatalf("expected Success, got %v", got)
	}
}

func TestForceSuccessNoChildIsFailure(t *testing.T) {
	fs := NewForceSuccess(nil)
	if got := fs.Tick(nil); got != Failure {
		t.Fatalf("expected Failure, got %v", got)
	}
}

func TestRepositoryRegisterAndGet(t *testing.T) {
	repo := NewRepository()
	repo.Register("turret", BehaviorFunc{
		Create: func(ctx *Context) Node { return NewConstant(Success) },
	})
	b, ok := repo.Get("turret")
	if !ok {
		t.Fatalf("expected to find registered behavior")
	}
	if tree := b.CreateTree(nil); tree.Tick(nil) != Success {
		t.Fatalf("expected the created tree to succeed")
	}
}

func TestRevisionStableAcrossRegistrationOrder(t *testing.T) {
	a := NewRepository()
	a.Register("turret", BehaviorFunc{})
	a.Register("patrol", BehaviorFunc{})

	b := NewRepository()
	b.Register("patrol", BehaviorFunc{})
	b.Register("turret", BehaviorFunc{})

	if a.Revision() != b.Revision() {
		t.Fatalf("expected revision to be independent of registration order")
	}
}

func TestRevisionChangesWithContents(t *testing.T) {
	a := NewRepository()
	a.Register("turret", BehaviorFunc{})

	b := NewRepository()
	b.Register("turret", BehaviorFunc{})
	b.Register("patrol", BehaviorFunc{})

	if a.Revision() == b.Revision() {
		t.Fatalf("expected a different revision after adding a behavior")
	}
}

func TestBuilderComposesTree(t *testing.T) {
	b := NewBuilder()
	tree := b.Selector(
		b.Sequence(NewConstant(Failure), NewConstant(Success)),
		NewConstant(Success),
	)
	if got := tree.Tick(nil); got != Success {
		t.Fatalf("expected Success, got %v", got)
	}
}
