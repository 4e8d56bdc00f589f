// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the row-reduction engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Active block: reduction searches pivots only in the rightmost w columns;
//     the remaining ("passive") columns ride along through the same row
//     operations. w == 0 means the full width.
//   - Chain-preserving mode runs a single elimination pass without reordering
//     rows. Jordan-chain tables rely on row order staying fixed.
package matrix

import (
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultActiveBlock selects the whole width as the active block.
	DefaultActiveBlock = 0

	// DefaultChainPreserving keeps the regular sort-and-repeat reduction.
	DefaultChainPreserving = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicActiveBlockInvalid = "matrix: WithActiveBlock: width must be >= 0"
	panicLoggerNil          = "matrix: WithLogger: logger must be non-nil"
)

// discardLogger is the silent default step sink.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	activeBlock     int          // >= 0; 0 = full width
	chainPreserving bool         // single pass, no row sorting
	logger          *slog.Logger // step sink; never nil after gatherOptions
}

// WithActiveBlock restricts pivot search to the rightmost w columns.
// Panics when w < 0. A width larger than the matrix is clamped at use.
func WithActiveBlock(w int) Option {
	if w < 0 {
		panic(panicActiveBlockInvalid)
	}

	return func(o *Options) { o.activeBlock = w }
}

// WithChainPreserving enables the jordan-table mode: exactly one
// elimination pass and no row reordering.
func WithChainPreserving() Option {
	return func(o *Options) { o.chainPreserving = true }
}

// WithLogger routes per-pass reduction steps to l at Debug level.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
func gatherOptions(user ...Option) Options {
	o := Options{
		activeBlock:     DefaultActiveBlock,
		chainPreserving: DefaultChainPreserving,
		logger:          discardLogger,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
