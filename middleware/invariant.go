package middleware

import (
	"github.com/pkg/errors"

	"github.com/outofforest/reducer"
)

// Invariant returns middleware verifying the state before each dispatch. If check fails, it panics
// with the returned error annotated by the action name.
func Invariant[S, A any](check func(state S) error) reducer.Middleware[S, A] {
	return func(ctx reducer.MiddlewareContext[S, A]) {
		if err := check(ctx.GetState()); err != nil {
			panic(errors.Wrapf(err, "state invariant violated before dispatching %s", ActionName(ctx.Action)))
		}
	}
}
