// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported helpers and an options snapshot to
// matrix_test only (compiled exclusively by `go test`).

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	ActiveBlock     int
	ChainPreserving bool
	HasLogger       bool
}

// GatherOptionsSnapshot resolves opts the way public entry points do.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		ActiveBlock:     o.activeBlock,
		ChainPreserving: o.chainPreserving,
		HasLogger:       o.logger != nil,
	}
}

// PermutationOdd exposes permutationOdd.
var PermutationOdd = permutationOdd
