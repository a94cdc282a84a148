// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package gpu registers the operators implemented by the AKG kernel generator for CUDA devices.
//
// Each operator is declared in its own file by a registration function, and Register runs them all.
package gpu

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/opregistry/pkg/core/opinfo"
)

// registrations of this backend, in registration order.
var registrations = []func(r *opinfo.Registry){
	registerEqual,
	registerNotEqual,
	registerGreater,
	registerGreaterEqual,
	registerLess,
	registerLessEqual,
}

// Register all the AKG GPU operators in r.
//
// It stops at the first failure and returns it: the registration functions panic on invalid
// declarations, and the panic is converted to the returned error.
func Register(r *opinfo.Registry) error {
	return exceptions.TryCatch[error](func() {
		for _, register := range registrations {
			register(r)
		}
	})
}

// comparison returns the builder shared by the binary comparison operators: inputs "x" and "y"
// of the same type, and a boolean "output".
func comparison(name string) *opinfo.Builder {
	return opinfo.New(name, opinfo.BackendGPU).
		FusionType(opinfo.FusionOpaque).
		Input(0, "x").
		Input(1, "y").
		Output(0, "output")
}
