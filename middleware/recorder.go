package middleware

import "github.com/outofforest/reducer"

// Entry is a dispatch observed by Recorder.
type Entry[S, A any] struct {
	Action A
	State  S
}

// Recorder keeps the log of dispatched actions with the states they were applied to.
type Recorder[S, A any] struct {
	entries []Entry[S, A]
}

// NewRecorder creates recorder.
func NewRecorder[S, A any]() *Recorder[S, A] {
	return &Recorder[S, A]{}
}

// Middleware returns middleware appending to the log.
func (r *Recorder[S, A]) Middleware() reducer.Middleware[S, A] {
	return func(ctx reducer.MiddlewareContext[S, A]) {
		r.entries = append(r.entries, Entry[S, A]{
			Action: ctx.Action,
			State:  ctx.GetState(),
		})
	}
}

// Entries returns recorded entries in dispatch order.
func (r *Recorder[S, A]) Entries() []Entry[S, A] {
	return append([]Entry[S, A](nil), r.entries...)
}

// Reset clears the log.
func (r *Recorder[S, A]) Reset() {
	r.entries = nil
}
