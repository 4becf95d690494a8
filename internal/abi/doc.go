// Package abi provides the alignment arithmetic underlying layout
// computation.
//
// This package contains the round-up-to-alignment primitive, alignment
// predicates, and overflow-safe integer helpers used by the calculator.
//
// # Contents
//
//   - align.go: AlignTo, IsAligned, IsPowerOfTwo, safe add/multiply
//
// This package is internal to structlayout.
package abi
