// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package opinfo

import (
	"slices"
	"sync/atomic"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/opregistry/pkg/core/dtypes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// State of a Registry.
type State int

const (
	// StateOpen accepts registrations. It is the initial state.
	StateOpen State = iota

	// StateSealed is read-only: every Register call fails with ErrRegistryClosed.
	StateSealed
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == StateSealed {
		return "Sealed"
	}
	return "Open"
}

// Registry maps (operator name, backend) pairs to their Descriptor.
//
// Registrations happen in a single goroutine during startup, and then the registry is sealed.
// A sealed registry is immutable, and it can be queried concurrently without locking.
type Registry struct {
	descriptors map[Key]*Descriptor
	sealed      atomic.Bool
}

// NewRegistry returns an empty open Registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[Key]*Descriptor)}
}

// State returns whether the registry is still open for registrations.
func (r *Registry) State() State {
	if r.sealed.Load() {
		return StateSealed
	}
	return StateOpen
}

// IsSealed is a shortcut to State() == StateSealed.
func (r *Registry) IsSealed() bool {
	return r.sealed.Load()
}

// Seal the registry: later calls to Register fail with ErrRegistryClosed.
// It is a one-way transition, and calling it again is a no-op.
func (r *Registry) Seal() {
	if r.sealed.CompareAndSwap(false, true) {
		klog.V(1).Infof("operator registry sealed with %d descriptors", len(r.descriptors))
	}
}

// Register inserts the descriptor, keyed by its (name, backend).
//
// It fails with ErrDuplicateRegistration if the key is already registered, in which case the
// previous registration is kept unchanged, and with ErrRegistryClosed if the registry was sealed.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil {
		return errors.Wrap(ErrValidation, "nil descriptor")
	}
	if !d.finalized {
		return errors.Wrapf(ErrValidation, "descriptor %s was not built with Builder.Finalize", d.Key())
	}
	key := d.Key()
	if r.sealed.Load() {
		err := errors.Wrapf(ErrRegistryClosed, "cannot register %s", key)
		klog.Warningf("%v", err)
		return err
	}
	if _, found := r.descriptors[key]; found {
		err := errors.Wrapf(ErrDuplicateRegistration, "%s", key)
		klog.Warningf("%v", err)
		return err
	}
	r.descriptors[key] = d
	klog.V(1).Infof("registered operator %s: %d inputs, %d outputs, %d signatures",
		key, len(d.inputs), len(d.outputs), len(d.signatures))
	return nil
}

// MustRegister is like Register, but panics with the error.
func (r *Registry) MustRegister(d *Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered for the operator name and backend.
// It fails with ErrNotFound if there is none.
func (r *Registry) Lookup(name string, backend Backend) (*Descriptor, error) {
	key := Key{Name: name, Backend: backend}
	d, found := r.descriptors[key]
	if !found {
		return nil, errors.Wrapf(ErrNotFound, "%s", key)
	}
	return d, nil
}

// MustLookup is like Lookup, but panics with the error if the operator is not registered.
func (r *Registry) MustLookup(name string, backend Backend) *Descriptor {
	d, err := r.Lookup(name, backend)
	if err != nil {
		exceptions.Panicf("%+v", err)
	}
	return d
}

// Supports returns whether the operator is registered for backend with exactly the given signature
// (input types followed by output types). It returns false if the operator is not registered.
func (r *Registry) Supports(name string, backend Backend, signature ...TensorType) bool {
	d, found := r.descriptors[Key{Name: name, Backend: backend}]
	if !found {
		return false
	}
	return d.Supports(signature...)
}

// SupportsDTypes is like Supports, with all types in the default format.
func (r *Registry) SupportsDTypes(name string, backend Backend, dts ...dtypes.DType) bool {
	return r.Supports(name, backend, DTypes(dts...)...)
}

// Backends returns the backends the operator name is registered for, sorted.
// A compiler pass can use it to fall back to another backend.
func (r *Registry) Backends(name string) []Backend {
	var backends []Backend
	for key := range r.descriptors {
		if key.Name == name {
			backends = append(backends, key.Backend)
		}
	}
	slices.Sort(backends)
	return backends
}

// Operators returns the sorted names of the operators registered for backend.
func (r *Registry) Operators(backend Backend) []string {
	var names []string
	for key := range r.descriptors {
		if key.Backend == backend {
			names = append(names, key.Name)
		}
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return len(r.descriptors)
}
