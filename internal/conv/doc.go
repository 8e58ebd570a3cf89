// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking when converting between Go's
// platform-dependent int and the fixed-width int32 lengths used by the
// foreign memory layouts in package abi.
//
// Only Go-side constructors use these helpers. The abi entry points trust
// the lengths they are given and convert them with direct casts.
package conv
