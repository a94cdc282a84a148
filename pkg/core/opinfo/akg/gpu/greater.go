package gpu

import (
	"github.com/gomlx/opregistry/pkg/core/dtypes"
	"github.com/gomlx/opregistry/pkg/core/opinfo"
)

func registerGreater(r *opinfo.Registry) {
	r.MustRegister(comparison("Greater").
		DTypes(dtypes.F16, dtypes.F16, dtypes.BOOL).
		DTypes(dtypes.F32, dtypes.F32, dtypes.BOOL).
		MustFinalize())
}
