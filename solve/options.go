// SPDX-License-Identifier: MIT

// Package solve: functional options.
//   - WithMaxDepth bounds the normal-equation recursion of inconsistent systems.
//   - WithLogger receives classification steps (and is forwarded to the
//     reduction engine).
package solve

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/linalg/matrix"
)

// DefaultMaxDepth is the default recursion cap for inconsistent systems.
// AᵗA·x = Aᵗb is always consistent, so one level suffices in exact arithmetic.
const DefaultMaxDepth = 4

const (
	panicMaxDepthInvalid = "solve: WithMaxDepth: depth must be >= 1"
	panicLoggerNil       = "solve: WithLogger: logger must be non-nil"
)

// Option configures Solve and friends.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	maxDepth int
	logger   *slog.Logger
}

// WithMaxDepth sets the recursion cap. Panics when d < 1.
func WithMaxDepth(d int) Option {
	if d < 1 {
		panic(panicMaxDepthInvalid)
	}

	return func(o *Options) { o.maxDepth = d }
}

// WithLogger routes classification and reduction steps to l at Debug level.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		maxDepth: DefaultMaxDepth,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// matrixOptions forwards the logger to the reduction engine.
func (o Options) matrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithLogger(o.logger)}
}
