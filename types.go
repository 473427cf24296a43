package reducer

// Reducer is the capability required from state. Reduce must be pure: it returns the next state
// without modifying the receiver or producing side effects.
type Reducer[S, A any] interface {
	Reduce(action A) S
}

// State is the constraint on state kept by Store. Clone must return a value sharing no mutable
// memory with the receiver. Methods declared on *S do not satisfy State[S, A].
type State[S, A any] interface {
	Reducer[S, A]
	Clone() S
}

// Defaulter is implemented by states whose default value differs from the zero value. Default must be
// declared on the value receiver.
type Defaulter[S any] interface {
	Default() S
}

// MiddlewareContext is passed to middleware on each dispatch.
type MiddlewareContext[S, A any] struct {
	// Action is the action being dispatched.
	Action A

	// GetState returns a copy of the state the dispatch started from.
	GetState func() S
}

// Middleware observes dispatched actions before they are reduced.
type Middleware[S, A any] func(ctx MiddlewareContext[S, A])
