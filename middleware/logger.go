package middleware

import (
	"go.uber.org/zap"

	"github.com/outofforest/reducer"
)

// Logger returns middleware logging every dispatched action together with the state it is applied to.
func Logger[S, A any](log *zap.Logger) reducer.Middleware[S, A] {
	return func(ctx reducer.MiddlewareContext[S, A]) {
		// GetState clones, so skip it when debug is disabled
		if ce := log.Check(zap.DebugLevel, "Dispatching action"); ce != nil {
			ce.Write(
				zap.String("actionName", ActionName(ctx.Action)),
				zap.Any("action", ctx.Action),
				zap.Any("state", ctx.GetState()),
			)
		}
	}
}
