// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package operation defines the composable read-only catalog pass.
package operation

import (
	"github.com/pdiddy/carver/pkg/types"
)

// Operation is a single side-effecting pass over a catalog. Implementations
// receive the same read-only catalog and must not retain it past Read.
type Operation interface {
	Read(c types.Catalog) error
}

// Compound runs an ordered sequence of operations against the same catalog.
// It stops at the first failure and returns it; output already produced by
// earlier operations is left in place.
type Compound struct {
	ops []Operation
}

// NewCompound builds a compound operation from ops, run in the given order.
func NewCompound(ops ...Operation) *Compound {
	return &Compound{ops: ops}
}

// Read executes each operation in order, fail-fast.
func (co *Compound) Read(c types.Catalog) error {
	for _, op := range co.ops {
		if err := op.Read(c); err != nil {
			return err
		}
	}
	return nil
}
