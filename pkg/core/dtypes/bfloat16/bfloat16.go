// Package bfloat16 holds the Go representation of the dtypes.BFloat16 data type,
// based on https://github.com/x448/float16.
package bfloat16

// BFloat16 (brain floating point) is the upper 16 bits of an IEEE 754 float32: 1 bit for the sign,
// 8 bits for the exponent and 7 bits for the mantissa.
type BFloat16 uint16
