// SPDX-License-Identifier: MIT

package space

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/linalg/solve"
)

// Option configures the space helpers.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	logger *slog.Logger
}

// WithLogger forwards l to the underlying solver. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("space: WithLogger: logger must be non-nil")
	}

	return func(o *Options) { o.logger = l }
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

func (o Options) solveOptions() []solve.Option {
	return []solve.Option{solve.WithLogger(o.logger)}
}
