package opinfo

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gomlx/opregistry/pkg/core/dtypes"
)

// TensorType is the data type and layout of one operator input or output.
type TensorType struct {
	DType  dtypes.DType
	Format Format
}

// T returns the TensorType for dtype with the default format.
func T(dtype dtypes.DType) TensorType {
	return TensorType{DType: dtype}
}

// IsValid returns whether both the dtype and the format are known values.
func (t TensorType) IsValid() bool {
	return t.DType.IsSupported() && t.Format.IsAFormat()
}

// String returns the registration table name of the type, e.g.: "F16_Default".
func (t TensorType) String() string {
	return t.DType.ShortName() + "_" + t.Format.String()
}

// Size returns the number of bytes of one element of the type, e.g.: 2 for F16.
func (t TensorType) Size() int {
	return t.DType.Size()
}

// Signature is one supported combination of tensor types: input types first, then output types.
type Signature []TensorType

// DTypes returns a signature of the given dtypes, all with the default format.
func DTypes(dts ...dtypes.DType) Signature {
	sig := make(Signature, len(dts))
	for ii, dtype := range dts {
		sig[ii] = T(dtype)
	}
	return sig
}

// String implements fmt.Stringer.
func (sig Signature) String() string {
	parts := make([]string, len(sig))
	for ii, t := range sig {
		parts[ii] = t.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ElementBytes returns the sum of the element sizes of all operands of the signature: the bytes
// read and written per element of an elementwise kernel.
func (sig Signature) ElementBytes() int {
	var total int
	for _, t := range sig {
		total += t.Size()
	}
	return total
}

// key used to index signatures: two signatures have the same key iff they are exactly equal.
func (sig Signature) key() string {
	var sb strings.Builder
	for ii, t := range sig {
		if ii > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(t.DType)))
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(int(t.Format)))
	}
	return sb.String()
}

// Slot is a named input or output position of an operator.
type Slot struct {
	Index int
	Label string
}

// Key identifies a Descriptor in a Registry.
type Key struct {
	Name    string
	Backend Backend
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return fmt.Sprintf("%s@%s", k.Name, k.Backend)
}

// Descriptor is the immutable registration record of one operator for one backend.
//
// It is created with a Builder, and all accessors return copies, so a Descriptor can be shared
// freely after it is finalized.
type Descriptor struct {
	name            string
	backend         Backend
	fusion          FusionClass
	inputs, outputs []Slot
	signatures      []Signature
	signatureKeys   map[string]struct{}

	// finalized is only set by Builder.Finalize: the zero Descriptor can't be registered.
	finalized bool
}

// Name of the operator, e.g.: "GreaterEqual".
func (d *Descriptor) Name() string { return d.name }

// Backend the operator is registered for.
func (d *Descriptor) Backend() Backend { return d.backend }

// Key returns the (Name, Backend) pair.
func (d *Descriptor) Key() Key { return Key{Name: d.name, Backend: d.backend} }

// FusionClass of the operator.
func (d *Descriptor) FusionClass() FusionClass { return d.fusion }

// Inputs returns the input slots, ordered by index.
func (d *Descriptor) Inputs() []Slot { return slices.Clone(d.inputs) }

// Outputs returns the output slots, ordered by index.
func (d *Descriptor) Outputs() []Slot { return slices.Clone(d.outputs) }

// NumInputs returns the number of input slots.
func (d *Descriptor) NumInputs() int { return len(d.inputs) }

// NumOutputs returns the number of output slots.
func (d *Descriptor) NumOutputs() int { return len(d.outputs) }

// Signatures returns the supported signatures, in the order they were declared.
func (d *Descriptor) Signatures() []Signature {
	sigs := make([]Signature, len(d.signatures))
	for ii, sig := range d.signatures {
		sigs[ii] = slices.Clone(sig)
	}
	return sigs
}

// Supports returns whether the exact signature (inputs followed by outputs) was declared.
// There is no implicit conversion: both dtypes and formats must match.
func (d *Descriptor) Supports(signature ...TensorType) bool {
	if len(signature) != len(d.inputs)+len(d.outputs) {
		return false
	}
	_, found := d.signatureKeys[Signature(signature).key()]
	return found
}

// String returns a multi-line description of the descriptor, meant for logging.
func (d *Descriptor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (fusion=%s)\n", d.Key(), d.fusion)
	writeSlots := func(kind string, slots []Slot) {
		labels := make([]string, len(slots))
		for ii, slot := range slots {
			labels[ii] = fmt.Sprintf("%d:%s", slot.Index, slot.Label)
		}
		fmt.Fprintf(&sb, "  %s: [%s]\n", kind, strings.Join(labels, ", "))
	}
	writeSlots("inputs", d.inputs)
	writeSlots("outputs", d.outputs)
	for _, sig := range d.signatures {
		fmt.Fprintf(&sb, "  %s -> %s [%d bytes/element]\n", sig[:len(d.inputs)], sig[len(d.inputs):], sig.ElementBytes())
	}
	return sb.String()
}
