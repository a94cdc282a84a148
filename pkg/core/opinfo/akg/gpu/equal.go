package gpu

import (
	"github.com/gomlx/opregistry/pkg/core/dtypes"
	"github.com/gomlx/opregistry/pkg/core/opinfo"
)

func registerEqual(r *opinfo.Registry) {
	r.MustRegister(comparison("Equal").
		DTypes(dtypes.F16, dtypes.F16, dtypes.BOOL).
		DTypes(dtypes.F32, dtypes.F32, dtypes.BOOL).
		DTypes(dtypes.I32, dtypes.I32, dtypes.BOOL).
		MustFinalize())
}
