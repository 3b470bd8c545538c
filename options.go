package chk

import "time"

// DefaultInterval is the pause between poll evaluations when no
// [WithInterval] or [WithStrategy] option is given.
const DefaultInterval = 25 * time.Millisecond

// waitConfig holds the optional configuration shared by the temporal,
// polling and background combinators.
type waitConfig struct {
	interval time.Duration
	strategy IntervalStrategy
	clock    Clock
	hooks    *Hooks
}

// Option configures temporal, polling and background combinators.
type Option func(*waitConfig)

// WithInterval sets a fixed pause between poll evaluations.
func WithInterval(d time.Duration) Option {
	return func(cfg *waitConfig) {
		cfg.interval = d
	}
}

// WithStrategy sets the interval strategy governing poll spacing. It
// takes precedence over [WithInterval].
func WithStrategy(s IntervalStrategy) Option {
	return func(cfg *waitConfig) {
		cfg.strategy = s
	}
}

// WithClock sets the clock used by the combinator. Tests substitute a
// fake clock for deterministic timing.
func WithClock(c Clock) Option {
	return func(cfg *waitConfig) {
		cfg.clock = c
	}
}

// WithHooks sets lifecycle hooks for the combinator.
func WithHooks(h *Hooks) Option {
	return func(cfg *waitConfig) {
		cfg.hooks = h
	}
}

// newWaitConfig resolves options against defaults.
func newWaitConfig(opts ...Option) waitConfig {
	cfg := waitConfig{interval: DefaultInterval}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.clock == nil {
		cfg.clock = RealClock{}
	}

	if cfg.hooks == nil {
		cfg.hooks = &Hooks{}
	}

	if cfg.strategy == nil {
		cfg.strategy = ConstantInterval(cfg.interval)
	}

	return cfg
}
