package opinfo

import "github.com/gomlx/opregistry/pkg/core/dtypes"

// defaultRegistry is the process-wide registry used by the package level functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide Registry.
func Default() *Registry {
	return defaultRegistry
}

// Register the descriptor in the process-wide Registry. See Registry.Register.
func Register(d *Descriptor) error {
	return defaultRegistry.Register(d)
}

// MustRegister the descriptor in the process-wide Registry, panicking on errors.
func MustRegister(d *Descriptor) {
	defaultRegistry.MustRegister(d)
}

// Lookup the descriptor in the process-wide Registry. See Registry.Lookup.
func Lookup(name string, backend Backend) (*Descriptor, error) {
	return defaultRegistry.Lookup(name, backend)
}

// Supports queries the process-wide Registry. See Registry.Supports.
func Supports(name string, backend Backend, signature ...TensorType) bool {
	return defaultRegistry.Supports(name, backend, signature...)
}

// SupportsDTypes queries the process-wide Registry. See Registry.SupportsDTypes.
func SupportsDTypes(name string, backend Backend, dts ...dtypes.DType) bool {
	return defaultRegistry.SupportsDTypes(name, backend, dts...)
}

// Seal the process-wide Registry. The host runtime calls it once all registrations have run.
func Seal() {
	defaultRegistry.Seal()
}
