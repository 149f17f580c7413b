// Package engine turns ingredient and incantation selections into spell results.
// It is a pure calculation apart from one injected random source, and an Engine
// may be shared between goroutines.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/mandarini/astra-arcana/internal/data"
	"github.com/mandarini/astra-arcana/internal/rules"
)

// RollFunc returns a uniform value in [0, 1). It is injected to allow
// deterministic testing.
type RollFunc func() float64

// Engine computes spell results from the element and modifier tables and the
// special effect rules.
type Engine struct {
	tables   *data.Tables
	specials *rules.RuleSet
	roll     RollFunc
	log      *slog.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRoll replaces the random source used for the success draw and effect picks.
func WithRoll(roll RollFunc) Option {
	return func(e *Engine) {
		if roll != nil {
			e.roll = roll
		}
	}
}

// WithTables replaces the embedded element and modifier tables.
func WithTables(t *data.Tables) Option {
	return func(e *Engine) {
		if t != nil {
			e.tables = t
		}
	}
}

// WithRuleSet replaces the embedded special effect rules.
func WithRuleSet(rs *rules.RuleSet) Option {
	return func(e *Engine) {
		if rs != nil {
			e.specials = rs
		}
	}
}

// WithLogger sets the logger calculations are traced to.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New builds an Engine with the embedded tables and rules unless overridden.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		tables: data.DefaultTables(),
		roll:   rand.Float64,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.specials == nil {
		rs, err := rules.DefaultRuleSet()
		if err != nil {
			return nil, fmt.Errorf("failed to load special effects: %w", err)
		}
		e.specials = rs
	}
	return e, nil
}

// Tables exposes the lookup tables the engine was built with.
func (e *Engine) Tables() *data.Tables {
	return e.tables
}

// withRoll returns a shallow copy of e drawing from another random source.
func (e *Engine) withRoll(roll RollFunc) *Engine {
	clone := *e
	clone.roll = roll
	return &clone
}

// pick returns a uniform index in [0, n).
func (e *Engine) pick(n int) int {
	if n <= 1 {
		return 0
	}
	i := int(e.roll() * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
