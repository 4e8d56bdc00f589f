// SPDX-License-Identifier: MIT

// Package poly: functional options for Roots.
package poly

import (
	"io"
	"log/slog"
)

const (
	// DefaultScanStep is the grid step of the sign-change scan.
	DefaultScanStep = 1e-4

	// DefaultMultiplicityTolerance bounds |p⁽ᵏ⁾(r)| for a derivative to count
	// as vanishing at a scanned root.
	DefaultMultiplicityTolerance = 1e-4
)

// RootPrecision is the minimum number of decimals scanned roots are rounded to.
const RootPrecision = 4

// mergeTolerance: roots closer than this are one root.
const mergeTolerance = 1e-3

const (
	panicScanStepInvalid = "poly: WithScanStep: step must be in (0, 1)"
	panicMultTolInvalid  = "poly: WithMultiplicityTolerance: tolerance must be >= 0"
	panicLoggerNil       = "poly: WithLogger: logger must be non-nil"
)

// Option configures Roots.
type Option func(*Options)

// Options is the resolved Roots configuration.
type Options struct {
	scanStep float64
	multTol  float64
	logger   *slog.Logger
}

// WithScanStep sets the scan grid step. Panics unless 0 < step < 1.
func WithScanStep(step float64) Option {
	if !(step > 0 && step < 1) {
		panic(panicScanStepInvalid)
	}

	return func(o *Options) { o.scanStep = step }
}

// WithMultiplicityTolerance sets the derivative tolerance used for scanned
// roots. Panics when tol < 0.
func WithMultiplicityTolerance(tol float64) Option {
	if tol < 0 {
		panic(panicMultTolInvalid)
	}

	return func(o *Options) { o.multTol = tol }
}

// WithLogger routes root discovery to l at Debug level.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		scanStep: DefaultScanStep,
		multTol:  DefaultMultiplicityTolerance,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
