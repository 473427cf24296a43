package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/outofforest/reducer"
	"github.com/outofforest/reducer/middleware"
)

type lampAction int

const (
	switchAction lampAction = iota
)

func (a lampAction) String() string {
	if a == switchAction {
		return "switch"
	}
	return "unknown"
}

type lampState struct {
	Power bool
}

func (s lampState) Reduce(action lampAction) lampState {
	if action == switchAction {
		return lampState{Power: !s.Power}
	}
	return s
}

func (s lampState) Clone() lampState {
	return s
}

func main() {
	switches := pflag.Int("switches", 2, "Number of times the lamp is switched")
	verbose := pflag.BoolP("verbose", "v", false, "Log every dispatched action")
	pflag.Parse()

	if err := run(*switches, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run(switches int, verbose bool) error {
	config := zap.NewDevelopmentConfig()
	if !verbose {
		config.Level.SetLevel(zap.InfoLevel)
	}
	log, err := config.Build()
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	registry := prometheus.NewRegistry()
	counter, err := middleware.NewDispatchCounter(registry, "lamp")
	if err != nil {
		return err
	}

	s := reducer.NewDefault[lampState, lampAction]().
		AddMiddleware(middleware.Logger[lampState, lampAction](log)).
		AddMiddleware(middleware.Metrics[lampState, lampAction](counter, nil))

	for i := 0; i < switches; i++ {
		s.Dispatch(switchAction)
		log.Info("Lamp switched", zap.Bool("power", s.GetState().Power))
	}

	families, err := registry.Gather()
	if err != nil {
		return errors.WithStack(err)
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			log.Info("Metric", zap.String("name", family.GetName()), zap.Float64("value", metric.GetCounter().GetValue()))
		}
	}

	return nil
}
