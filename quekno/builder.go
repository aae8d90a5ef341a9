package quekno

import (
	"context"
	"fmt"
	"time"

	"github.com/dnngky/quekno-rx/assembler"
	"github.com/dnngky/quekno-rx/chainbuilder"
	"github.com/dnngky/quekno-rx/config"
	"github.com/dnngky/quekno-rx/gate"
	"github.com/dnngky/quekno-rx/glink"
	"github.com/dnngky/quekno-rx/metrics"
	"github.com/dnngky/quekno-rx/router"
)

// Result is the (circuit, routed-circuit, metrics) triple spec §1 calls
// the core's entire exposed contract.
type Result struct {
	Chain   *glink.Chain
	Circuit *gate.Circuit
	Routed  *router.Result
	Metrics *metrics.Metrics
}

// Builder runs one complete build — ChainBuilder, CircuitAssembler, and
// SelfRouter in sequence — against a fixed configuration, the equivalent
// of the original's QUEKNO class and the teacher's BuildGraph entry point.
type Builder struct {
	cfg *config.Config
}

// New constructs a Builder over the given configuration. cfg must not be
// nil; cfg.ArchGraph and cfg.Rand are validated by config.New itself.
func New(cfg *config.Config) (*Builder, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	return &Builder{cfg: cfg}, nil
}

// Run grows a chain to the configured target cost, assembles its gate
// stream, routes it, and returns the full (circuit, routed, metrics)
// triple. The context is threaded through chain growth only (§5: "a
// natural cancellation point is between candidate-subgraph draws").
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	chain, cost, err := chainbuilder.New(b.cfg).Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("quekno: chain build: %w", err)
	}

	circuit, err := assembler.Assemble(b.cfg, chain)
	if err != nil {
		return nil, fmt.Errorf("quekno: assemble: %w", err)
	}

	routed, err := router.Route(b.cfg, circuit, chain, cost)
	if err != nil {
		return nil, fmt.Errorf("quekno: route: %w", err)
	}

	elapsed := time.Since(start)
	m, err := metrics.Build(b.cfg, chain, circuit, routed, elapsed)
	if err != nil {
		return nil, fmt.Errorf("quekno: metrics: %w", err)
	}

	return &Result{
		Chain:   chain,
		Circuit: circuit,
		Routed:  routed,
		Metrics: m,
	}, nil
}
