package behavior

// Builder assembles a tree via nested composite/decorator calls rather than
// a chained mutable cursor: Go's composite literals already give us the
// fluent "children of a node are declared where the node is declared" shape
// spec §4.8 asks for, without a stateful cursor that could be misused after
// the tree is handed to a Controller. A tree built this way is immutable
// from the moment CreateTree returns it.
type Builder struct{}

// NewBuilder returns a Builder. It carries no state; its methods are thin
// wrappers over the package-level New* constructors, named to read as a
// fluent sentence at the call site: b.Sequence(a, b.Selector(c, d)).
func NewBuilder() Builder { return Builder{} }

func (Builder) Sequence(children ...Node) Node { return NewSequence(children...) }
func (Builder) Selector(children ...Node) Node { return NewSelector(children...) }
func (Builder) Parallel(children ...Node) Node { return NewParallel(children...) }
func (Builder) Invert(child Node) Node         { return NewInvert(child) }
func (Builder) ForceSuccess(child Node) Node   { return NewForceSuccess(child) }
func (Builder) Constant(result Result) Node    { return NewConstant(result) }
