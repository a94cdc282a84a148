// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package opinfo

import (
	"slices"

	"github.com/gomlx/opregistry/pkg/core/dtypes"
	"github.com/pkg/errors"
)

// Builder accumulates the fields of a Descriptor. Create it with New, chain the declarations,
// and call Finalize:
//
//	d, err := opinfo.New("GreaterEqual", opinfo.BackendGPU).
//		FusionType(opinfo.FusionOpaque).
//		Input(0, "x").
//		Input(1, "y").
//		Output(0, "output").
//		DTypeFormat(opinfo.T(dtypes.F16), opinfo.T(dtypes.F16), opinfo.T(dtypes.BOOL)).
//		Finalize()
//
// The first failing declaration is recorded and every later one is ignored; Finalize reports it.
type Builder struct {
	desc Descriptor
	err  error
}

// New starts the declaration of the operator name for the given backend.
// The fusion class defaults to FusionOpaque.
func New(name string, backend Backend) *Builder {
	b := &Builder{desc: Descriptor{name: name, backend: backend, fusion: FusionOpaque}}
	if name == "" {
		b.err = errors.WithStack(ErrEmptyName)
	} else if backend == BackendInvalid || !backend.IsABackend() {
		b.err = errors.Wrapf(ErrInvalidBackend, "backend %s", backend)
	}
	return b
}

// Err returns the first error recorded by the declarations so far, or nil.
func (b *Builder) Err() error {
	return b.err
}

// FusionType sets the fusion class of the operator.
func (b *Builder) FusionType(fusion FusionClass) *Builder {
	if b.err != nil {
		return b
	}
	if !fusion.IsAFusionClass() {
		b.err = errors.Wrapf(ErrInvalidFusionClass, "fusion class %s", fusion)
		return b
	}
	b.desc.fusion = fusion
	return b
}

// FusionTypeByName sets the fusion class from its name, e.g.: "OPAQUE" or "ELEMWISE".
func (b *Builder) FusionTypeByName(name string) *Builder {
	if b.err != nil {
		return b
	}
	fusion, err := FusionClassString(name)
	if err != nil {
		b.err = errors.Wrapf(ErrInvalidFusionClass, "fusion class name %q", name)
		return b
	}
	return b.FusionType(fusion)
}

// Input declares the input slot index with the given label.
// Indices must be declared in order, starting from 0.
func (b *Builder) Input(index int, label string) *Builder {
	if b.err != nil {
		return b
	}
	b.desc.inputs, b.err = addSlot("input", b.desc.inputs, index, label)
	return b
}

// Output declares the output slot index with the given label.
// Indices must be declared in order, starting from 0.
func (b *Builder) Output(index int, label string) *Builder {
	if b.err != nil {
		return b
	}
	b.desc.outputs, b.err = addSlot("output", b.desc.outputs, index, label)
	return b
}

// addSlot appends the slot to group, enforcing contiguous indices and unique labels.
func addSlot(kind string, group []Slot, index int, label string) ([]Slot, error) {
	if index >= 0 && index < len(group) {
		return group, errors.Wrapf(ErrDuplicateSlot, "%s index %d already declared as %q", kind, index, group[index].Label)
	}
	if index != len(group) {
		return group, errors.Wrapf(ErrOutOfOrder, "%s index %d declared, expected %d", kind, index, len(group))
	}
	if label == "" {
		return group, errors.Wrapf(ErrEmptyLabel, "%s %d", kind, index)
	}
	for _, slot := range group {
		if slot.Label == label {
			return group, errors.Wrapf(ErrDuplicateSlot, "%s label %q used by indices %d and %d", kind, label, slot.Index, index)
		}
	}
	return append(group, Slot{Index: index, Label: label}), nil
}

// DTypeFormat declares one supported signature: the types of all inputs followed by the types of
// all outputs. Its arity is only checked by Finalize, so inputs and outputs can be declared after it.
func (b *Builder) DTypeFormat(types ...TensorType) *Builder {
	if b.err != nil {
		return b
	}
	b.desc.signatures = append(b.desc.signatures, slices.Clone(Signature(types)))
	return b
}

// DTypes declares one supported signature with all types in the default format.
func (b *Builder) DTypes(dts ...dtypes.DType) *Builder {
	return b.DTypeFormat(DTypes(dts...)...)
}

// Finalize validates the declarations and returns the immutable Descriptor.
// Repeated signatures are collapsed, keeping the first declaration order.
//
// Any error is a *ValidationError, which matches ErrValidation and the specific violation with
// errors.Is.
func (b *Builder) Finalize() (*Descriptor, error) {
	if err := b.validate(); err != nil {
		return nil, &ValidationError{Name: b.desc.name, Backend: b.desc.backend, Err: err}
	}
	d := &Descriptor{
		name:          b.desc.name,
		backend:       b.desc.backend,
		fusion:        b.desc.fusion,
		inputs:        slices.Clone(b.desc.inputs),
		outputs:       slices.Clone(b.desc.outputs),
		signatures:    make([]Signature, 0, len(b.desc.signatures)),
		signatureKeys: make(map[string]struct{}, len(b.desc.signatures)),
		finalized:     true,
	}
	for _, sig := range b.desc.signatures {
		key := sig.key()
		if _, found := d.signatureKeys[key]; found {
			continue
		}
		d.signatures = append(d.signatures, slices.Clone(sig))
		d.signatureKeys[key] = struct{}{}
	}
	return d, nil
}

// MustFinalize is like Finalize, but panics with the error. Registration failures are fatal at
// startup, so registration functions use this and the startup routine catches the panic.
func (b *Builder) MustFinalize() *Descriptor {
	d, err := b.Finalize()
	if err != nil {
		panic(err)
	}
	return d
}

func (b *Builder) validate() error {
	if b.err != nil {
		return b.err
	}
	if len(b.desc.outputs) == 0 {
		return errors.Wrap(ErrMissingSlot, "at least one output must be declared")
	}
	if len(b.desc.signatures) == 0 {
		return errors.WithStack(ErrMissingSignature)
	}
	arity := len(b.desc.inputs) + len(b.desc.outputs)
	for ii, sig := range b.desc.signatures {
		if len(sig) != arity {
			return errors.Wrapf(ErrArityMismatch, "signature #%d %s has %d types, expected %d (%d inputs + %d outputs)",
				ii, sig, len(sig), arity, len(b.desc.inputs), len(b.desc.outputs))
		}
		for jj, t := range sig {
			if !t.IsValid() {
				return errors.Wrapf(ErrInvalidTensorType, "signature #%d %s, position %d: %s", ii, sig, jj, t)
			}
		}
	}
	return nil
}
