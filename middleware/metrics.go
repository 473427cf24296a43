package middleware

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/outofforest/reducer"
)

const actionLabel = "action"

// DispatchCounter counts dispatched actions per action label.
type DispatchCounter struct {
	vec *prometheus.CounterVec
}

// NewDispatchCounter creates counter of dispatched actions and registers it.
func NewDispatchCounter(registerer prometheus.Registerer, namespace string) (*DispatchCounter, error) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispatched_actions_total",
		Help:      "Number of actions dispatched to the store.",
	}, []string{actionLabel})
	if err := registerer.Register(vec); err != nil {
		return nil, errors.Wrap(err, "registering dispatch counter failed")
	}
	return &DispatchCounter{vec: vec}, nil
}

// With returns counter of actions having the label.
func (c *DispatchCounter) With(label string) prometheus.Counter {
	return c.vec.With(prometheus.Labels{actionLabel: label})
}

// Metrics returns middleware incrementing counter for every dispatched action. If label is nil,
// ActionName is used.
func Metrics[S, A any](counter *DispatchCounter, label func(action A) string) reducer.Middleware[S, A] {
	if label == nil {
		label = ActionName[A]
	}
	return func(ctx reducer.MiddlewareContext[S, A]) {
		counter.With(label(ctx.Action)).Inc()
	}
}
