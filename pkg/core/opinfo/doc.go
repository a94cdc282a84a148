// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package opinfo holds the registration records ("op info") of the operators implemented by each
// compiler backend, and the Registry the compiler queries while lowering graph nodes.
//
// A record is a Descriptor: the operator name, its backend, its FusionClass, the labeled input
// and output slots, and the set of supported signatures. Each signature lists one TensorType
// (dtype and format) per input, followed by one per output.
//
// Descriptors are declared with a Builder and registered at startup, one registration function
// per operator (see package akg/gpu). Once every registration has run, the host seals the
// Registry, and from then on it is read-only and safe for concurrent queries:
//
//	if err := startup.Initialize(); err != nil {
//		klog.Fatalf("failed to register operators: %+v", err)
//	}
//	if opinfo.SupportsDTypes("GreaterEqual", opinfo.BackendGPU, dtypes.F32, dtypes.F32, dtypes.Bool) {
//		...
//	}
//
// Errors can be tested with errors.Is against the sentinels ErrValidation, ErrDuplicateSlot,
// ErrOutOfOrder, ErrArityMismatch, ErrDuplicateRegistration, ErrNotFound and ErrRegistryClosed.
package opinfo
