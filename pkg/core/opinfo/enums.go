package opinfo

// Backend is the target code generation/execution family an operator is registered for.
type Backend int

//go:generate go tool enumer -type=Backend -trimprefix=Backend -transform=lower -output=gen_backend_enumer.go enums.go

const (
	BackendInvalid Backend = iota

	// BackendGPU is the AKG kernel generator for CUDA devices.
	BackendGPU

	// BackendAscend is the AKG kernel generator for Ascend AI Core devices.
	BackendAscend

	// BackendTBE is the tensor boost engine for Ascend AI Core devices.
	BackendTBE

	// BackendAICPU runs kernels on the Ascend AI CPU.
	BackendAICPU

	// BackendCPU is the host CPU kernel library.
	BackendCPU
)

// FusionClass describes how the compiler may fuse an operator with its neighbors.
//
// The zero value is FusionOpaque, the operator is never fused.
type FusionClass int

//go:generate go tool enumer -type=FusionClass -trimprefix=Fusion -transform=upper -output=gen_fusionclass_enumer.go enums.go

const (
	FusionOpaque FusionClass = iota
	FusionElemWise
	FusionBroadcast
	FusionCommReduce
	FusionSegment
	FusionConvolution
	FusionDynamic
)

// Format is the memory layout a kernel expects for one of its inputs or outputs.
//
// The zero value is FormatDefault, meaning whatever layout the graph produced.
type Format int

//go:generate go tool enumer -type=Format -trimprefix=Format -output=gen_format_enumer.go enums.go

const (
	FormatDefault Format = iota
	FormatNCHW
	FormatNHWC
	FormatNC1HWC0
	FormatFracZ
	FormatFracNZ
	FormatC1HWNCoC0
)
