package reducer

// Store owns the state and advances it by reducing dispatched actions.
// Store is not safe for concurrent use.
type Store[S State[S, A], A any] struct {
	state      S
	middleware *list[Middleware[S, A]]
}

// New returns store holding the initial state.
func New[S State[S, A], A any](state S) *Store[S, A] {
	return &Store[S, A]{
		state:      state,
		middleware: newList[Middleware[S, A]](),
	}
}

// NewDefault returns store holding the default state. It is the zero value of S unless S implements
// Defaulter.
func NewDefault[S State[S, A], A any]() *Store[S, A] {
	var state S
	if d, ok := any(state).(Defaulter[S]); ok {
		state = d.Default()
	}
	return New[S, A](state)
}

// AddMiddleware appends middleware to the chain. It affects dispatches started after the call.
func (s *Store[S, A]) AddMiddleware(middleware Middleware[S, A]) *Store[S, A] {
	s.middleware.Append(middleware)
	return s
}

// Dispatch runs the middleware chain in registration order and then installs the reduced state.
// Dispatch must not be called from middleware: the outer dispatch overwrites the state installed by
// the inner one.
func (s *Store[S, A]) Dispatch(action A) {
	state := s.state
	getState := func() S {
		return state.Clone()
	}

	s.middleware.Iterate(s.middleware.Count, func(middleware Middleware[S, A]) {
		middleware(MiddlewareContext[S, A]{
			Action:   action,
			GetState: getState,
		})
	})

	// state is replaced only once reduction returns, so a panic leaves the previous one in place
	s.state = state.Reduce(action)
}

// GetState returns a copy of the current state.
func (s *Store[S, A]) GetState() S {
	return s.state.Clone()
}
