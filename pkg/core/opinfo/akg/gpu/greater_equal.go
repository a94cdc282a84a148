// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package gpu

import (
	"github.com/gomlx/opregistry/pkg/core/dtypes"
	"github.com/gomlx/opregistry/pkg/core/opinfo"
)

func registerGreaterEqual(r *opinfo.Registry) {
	var (
		f16  = opinfo.T(dtypes.F16)
		f32  = opinfo.T(dtypes.F32)
		i32  = opinfo.T(dtypes.I32)
		pred = opinfo.T(dtypes.BOOL)
	)
	r.MustRegister(opinfo.New("GreaterEqual", opinfo.BackendGPU).
		FusionType(opinfo.FusionOpaque).
		Input(0, "x").
		Input(1, "y").
		Output(0, "output").
		DTypeFormat(f16, f16, pred).
		DTypeFormat(f32, f32, pred).
		DTypeFormat(i32, i32, pred).
		MustFinalize())
}
