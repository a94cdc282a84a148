// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package opinfo

import (
	"sync"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/opregistry/pkg/core/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, StateOpen, r.State())
	d := greaterEqual().MustFinalize()
	require.NoError(t, r.Register(d))
	assert.Equal(t, 1, r.Len())

	got, err := r.Lookup("GreaterEqual", BackendGPU)
	require.NoError(t, err)
	assert.Same(t, d, got)

	assert.True(t, r.Supports("GreaterEqual", BackendGPU, T(dtypes.F32), T(dtypes.F32), T(dtypes.BOOL)))
	assert.False(t, r.Supports("GreaterEqual", BackendGPU, T(dtypes.F64), T(dtypes.F64), T(dtypes.BOOL)))
	assert.True(t, r.SupportsDTypes("GreaterEqual", BackendGPU, dtypes.I32, dtypes.I32, dtypes.BOOL))
	assert.False(t, r.SupportsDTypes("GreaterEqual", BackendGPU, dtypes.I32, dtypes.I32, dtypes.I32))

	_, err = r.Lookup("GreaterEqual", BackendAscend)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.Lookup("Greater", BackendGPU)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, r.Supports("Greater", BackendGPU, T(dtypes.F32), T(dtypes.F32), T(dtypes.BOOL)))
}

func TestRegistryDuplicate(t *testing.T) {
	r := NewRegistry()
	first := greaterEqual().MustFinalize()
	require.NoError(t, r.Register(first))

	second := New("GreaterEqual", BackendGPU).
		Input(0, "x").Input(1, "y").Output(0, "output").
		DTypes(dtypes.F64, dtypes.F64, dtypes.BOOL).
		MustFinalize()
	err := r.Register(second)
	require.ErrorIs(t, err, ErrDuplicateRegistration)
	assert.ErrorContains(t, err, "GreaterEqual@gpu")

	// The first registration is kept unchanged.
	got, err := r.Lookup("GreaterEqual", BackendGPU)
	require.NoError(t, err)
	assert.Same(t, first, got)
	assert.False(t, r.SupportsDTypes("GreaterEqual", BackendGPU, dtypes.F64, dtypes.F64, dtypes.BOOL))
	assert.Equal(t, 1, r.Len())

	// The same operator on another backend is a different key.
	ascend := New("GreaterEqual", BackendAscend).
		Input(0, "x").Input(1, "y").Output(0, "output").
		DTypes(dtypes.F16, dtypes.F16, dtypes.BOOL).
		MustFinalize()
	require.NoError(t, r.Register(ascend))
	assert.Equal(t, []Backend{BackendGPU, BackendAscend}, r.Backends("GreaterEqual"))
	assert.Empty(t, r.Backends("Less"))
}

func TestRegistrySeal(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(greaterEqual().MustFinalize()))
	before, err := r.Lookup("GreaterEqual", BackendGPU)
	require.NoError(t, err)

	r.Seal()
	assert.Equal(t, StateSealed, r.State())
	assert.True(t, r.IsSealed())
	assert.Equal(t, "Sealed", r.State().String())

	less := New("Less", BackendGPU).Input(0, "x").Input(1, "y").Output(0, "output").
		DTypes(dtypes.F32, dtypes.F32, dtypes.BOOL).MustFinalize()
	err = r.Register(less)
	require.ErrorIs(t, err, ErrRegistryClosed)
	_, err = r.Lookup("Less", BackendGPU)
	assert.ErrorIs(t, err, ErrNotFound)

	// Sealing again is a no-op, and reads are unchanged.
	r.Seal()
	assert.True(t, r.IsSealed())
	after, err := r.Lookup("GreaterEqual", BackendGPU)
	require.NoError(t, err)
	assert.Same(t, before, after)
	assert.True(t, r.SupportsDTypes("GreaterEqual", BackendGPU, dtypes.F16, dtypes.F16, dtypes.BOOL))

	// Registering a duplicate after sealing reports the sealing.
	err = r.Register(greaterEqual().MustFinalize())
	assert.ErrorIs(t, err, ErrRegistryClosed)
}

func TestRegistryConcurrentReads(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(greaterEqual().MustFinalize()))
	r.Seal()

	const numReaders = 16
	var wg sync.WaitGroup
	results := make([]bool, numReaders)
	for ii := range numReaders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok := true
			for range 100 {
				ok = ok && r.SupportsDTypes("GreaterEqual", BackendGPU, dtypes.F32, dtypes.F32, dtypes.BOOL)
				ok = ok && !r.SupportsDTypes("GreaterEqual", BackendGPU, dtypes.F64, dtypes.F64, dtypes.BOOL)
				_, err := r.Lookup("GreaterEqual", BackendGPU)
				ok = ok && err == nil
			}
			results[ii] = ok
		}()
	}
	wg.Wait()
	for ii, ok := range results {
		assert.True(t, ok, "reader #%d", ii)
	}
}

func TestRegistryOperators(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"LessEqual", "Equal", "GreaterEqual"} {
		r.MustRegister(New(name, BackendGPU).Input(0, "x").Input(1, "y").Output(0, "output").
			DTypes(dtypes.F32, dtypes.F32, dtypes.BOOL).MustFinalize())
	}
	r.MustRegister(New("Equal", BackendCPU).Input(0, "x").Input(1, "y").Output(0, "output").
		DTypes(dtypes.F64, dtypes.F64, dtypes.BOOL).MustFinalize())
	assert.Equal(t, []string{"Equal", "GreaterEqual", "LessEqual"}, r.Operators(BackendGPU))
	assert.Equal(t, []string{"Equal"}, r.Operators(BackendCPU))
	assert.Empty(t, r.Operators(BackendTBE))
	assert.Equal(t, 4, r.Len())
}

func TestRegistryMustVariants(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(greaterEqual().MustFinalize())
	err := exceptions.TryCatch[error](func() { r.MustRegister(greaterEqual().MustFinalize()) })
	assert.ErrorIs(t, err, ErrDuplicateRegistration)

	assert.NotPanics(t, func() { _ = r.MustLookup("GreaterEqual", BackendGPU) })
	err = exceptions.TryCatch[error](func() { _ = r.MustLookup("Greater", BackendGPU) })
	assert.ErrorContains(t, err, "operator not found")

	assert.ErrorIs(t, r.Register(nil), ErrValidation)
}

func TestRegistryRejectsUnfinalized(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&Descriptor{})
	assert.ErrorIs(t, err, ErrValidation)

	// Even a descriptor with a valid key must come from Builder.Finalize.
	err = r.Register(&Descriptor{name: "GreaterEqual", backend: BackendGPU})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, r.Len())
	_, err = r.Lookup("", BackendInvalid)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, r.Supports("GreaterEqual", BackendGPU))
}

func TestDefaultRegistry(t *testing.T) {
	d := New("DefaultRegistryTestOp", BackendCPU).
		Input(0, "x").Output(0, "y").
		DTypes(dtypes.F32, dtypes.F32).
		MustFinalize()
	require.NoError(t, Register(d))
	assert.ErrorIs(t, Register(d), ErrDuplicateRegistration)

	got, err := Lookup("DefaultRegistryTestOp", BackendCPU)
	require.NoError(t, err)
	assert.Same(t, d, got)
	assert.Same(t, d, Default().MustLookup("DefaultRegistryTestOp", BackendCPU))
	assert.True(t, Supports("DefaultRegistryTestOp", BackendCPU, T(dtypes.F32), T(dtypes.F32)))
	assert.True(t, SupportsDTypes("DefaultRegistryTestOp", BackendCPU, dtypes.F32, dtypes.F32))
	assert.False(t, SupportsDTypes("DefaultRegistryTestOp", BackendGPU, dtypes.F32, dtypes.F32))
	assert.Panics(t, func() { MustRegister(d) })
}
