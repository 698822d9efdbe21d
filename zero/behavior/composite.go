package behavior

// Sequence runs children in order, short-circuiting on the first Failure.
// A child returning Running suspends the sequence at that index; the next
// Tick call resumes from there rather than restarting. The cursor resets to
// 0 after any terminal (Failure or all-Success) result.
type Sequence struct {
	children []Node
	cursor   int
}

// NewSequence builds a Sequence owning children.
func NewSequence(children ...Node) *Sequence {
	return &Sequence{children: children}
}

func (s *Sequence) Tick(ctx *Context) Result {
	for s.cursor < len(s.children) {
		switch res := s.children[s.cursor].Tick(ctx); res {
		case Running:
			return Running
		case Failure:
			s.cursor = 0
			return Failure
		default: // Success
			s.cursor++
		}
	}
	s.cursor = 0
	return Success
}

func (s *Sequence) Reset() {
	s.cursor = 0
	for _, c := range s.children {
		c.Reset()
	}
}

// Selector runs children in order and returns the first non-Failure result.
// Like Sequence it resumes a Running child from its index next tick.
type Selector struct {
	children []Node
	cursor   int
}

// NewSelector builds a Selector owning children.
func NewSelector(children ...Node) *Selector {
	return &Selector{children: children}
}

func (s *Selector) Tick(ctx *Context) Result {
	for s.cursor < len(s.children) {
		switch res := s.children[s.cursor].Tick(ctx); res {
		case Running:
			return Running
		case Success:
			s.cursor = 0
			return Success
		default: // Failure: try the next child
			s.cursor++
		}
	}
	s.cursor = 0
	return Failure
}

func (s *Selector) Reset() {
	s.cursor = 0
	for _, c := range s.children {
		c.Reset()
	}
}

// Parallel runs every child unconditionally each tick, regardless of
// whether an earlier child failed; children must therefore be safe to run
// with side effects independent of their siblings. Its result policy
// (documented per spec §4.8's open question) is: Success if at least one
// child returned Success (or if there are no children), otherwise Running if
// any child returned Running, otherwise Failure.
type Parallel struct {
	children []Node
}

// NewParallel builds a Parallel owning children.
func NewParallel(children ...Node) *Parallel {
	return &Parallel{children: children}
}

func (p *Parallel) Tick(ctx *Context) Result {
	if len(p.children) == 0 {
		return Success
	}
	anySuccess := false
	anyRunning := false
	for _, c := range p.children {
		switch c.Tick(ctx) {
		case Success:
			anySuccess = true
		case Running:
			anyRunning = true
		}
	}
	if anySuccess {
		return Success
	}
	if anyRunning {
		return Running
	}
	return Failure
}

func (p *Parallel) Reset() {
	for _, c := range p.children {
		c.Reset()
	}
}
