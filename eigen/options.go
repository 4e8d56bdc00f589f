// SPDX-License-Identifier: MIT

// Package eigen: functional options.
package eigen

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/poly"
	"github.com/katalvlaran/linalg/solve"
)

const panicLoggerNil = "eigen: WithLogger: logger must be non-nil"

// Option configures the eigen operations.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	logger   *slog.Logger
	rootOpts []poly.Option
}

// WithLogger routes layer, root and reduction steps to l at Debug level.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithRootOptions forwards options to poly.Roots when eigenvalues are solved.
func WithRootOptions(opts ...poly.Option) Option {
	return func(o *Options) { o.rootOpts = append(o.rootOpts, opts...) }
}

func gatherOptions(user ...Option) Options {
	o := Options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func (o Options) matrixOptions(extra ...matrix.Option) []matrix.Option {
	return append([]matrix.Option{matrix.WithLogger(o.logger)}, extra...)
}

func (o Options) solveOptions() []solve.Option {
	return []solve.Option{solve.WithLogger(o.logger)}
}

// rootOptions puts the shared logger first so an explicit poly.WithLogger wins.
func (o Options) rootOptions() []poly.Option {
	return append([]poly.Option{poly.WithLogger(o.logger)}, o.rootOpts...)
}
