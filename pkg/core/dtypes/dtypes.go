// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dtypes includes the DType enum for the data types an operator may declare in its
// registration signatures.
//
// It is a trimmed fork of GoMLX's dtypes: the enum values are kept aligned with XLA/PJRT, and the
// names accept the short forms used by operator registration tables ("F16", "I32", "BOOL").
package dtypes

import (
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/gomlx/opregistry/pkg/core/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// panicf panics with the formatted description.
//
// It is only used for "bugs in the code" -- when parameters don't follow the specifications.
func panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

func init() {
	// Add a mapping to the lower-case version of dtypes.
	keys := slices.Collect(maps.Keys(MapOfNames))
	for _, key := range keys {
		lowerKey := strings.ToLower(key)
		if lowerKey == key {
			continue
		}
		if _, found := MapOfNames[lowerKey]; found {
			continue
		}
		MapOfNames[lowerKey] = MapOfNames[key]
	}
}

// FromName returns the DType for the given name or alias (case-insensitive), e.g.: "F16",
// "float16" or "Float16".
func FromName(name string) (DType, error) {
	if dtype, found := MapOfNames[name]; found {
		return dtype, nil
	}
	if dtype, found := MapOfNames[strings.ToLower(name)]; found {
		return dtype, nil
	}
	return InvalidDType, errors.Errorf("unknown dtype name %q", name)
}

// Pre-generate constant reflect.TypeOf for convenience.
var (
	float32Type  = reflect.TypeOf(float32(0))
	float64Type  = reflect.TypeOf(float64(0))
	float16Type  = reflect.TypeOf(float16.Float16(0))
	bfloat16Type = reflect.TypeOf(bfloat16.BFloat16(0))
)

// GoType returns the Go `reflect.Type` corresponding to the DType.
// It panics for InvalidDType or values beyond the ones defined.
func (dtype DType) GoType() reflect.Type {
	switch dtype {
	case Int64:
		return reflect.TypeOf(int64(0))
	case Int32:
		return reflect.TypeOf(int32(0))
	case Int16:
		return reflect.TypeOf(int16(0))
	case Int8:
		return reflect.TypeOf(int8(0))

	case Uint64:
		return reflect.TypeOf(uint64(0))
	case Uint32:
		return reflect.TypeOf(uint32(0))
	case Uint16:
		return reflect.TypeOf(uint16(0))
	case Uint8:
		return reflect.TypeOf(uint8(0))

	case Bool:
		return reflect.TypeOf(true)

	case Float16:
		return float16Type
	case BFloat16:
		return bfloat16Type
	case Float32:
		return float32Type
	case Float64:
		return float64Type

	case Complex64:
		return reflect.TypeOf(complex64(0))
	case Complex128:
		return reflect.TypeOf(complex128(0))

	default:
		panicf("unknown dtype %q (%d) in DType.GoType", dtype, dtype)
		panic(nil)
	}
}

// Size returns the number of bytes for the given DType.
// It panics for dtypes that are not supported, see GoType.
func (dtype DType) Size() int {
	return int(dtype.GoType().Size())
}

// IsSupported returns whether dtype can be used in an operator signature.
// Only InvalidDType and values out of the enum range are not supported.
func (dtype DType) IsSupported() bool {
	return dtype != InvalidDType && dtype.IsADType()
}

// ShortName returns the short upper-case alias used in registration tables, e.g. "F16" for
// Float16 or "BOOL" for Bool.
func (dtype DType) ShortName() string {
	switch dtype {
	case Bool:
		return "BOOL"
	case Int8, Int16, Int32, Int64:
		return "I" + strings.TrimPrefix(dtype.String(), "Int")
	case Uint8, Uint16, Uint32, Uint64:
		return "U" + strings.TrimPrefix(dtype.String(), "Uint")
	case Float16, Float32, Float64:
		return "F" + strings.TrimPrefix(dtype.String(), "Float")
	case BFloat16:
		return "BF16"
	case Complex64, Complex128:
		return "C" + strings.TrimPrefix(dtype.String(), "Complex")
	default:
		return dtype.String()
	}
}
