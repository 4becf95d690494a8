// Package calc computes structure layouts from ordered field lists.
//
// The computation is a single pass: each field's offset is its
// predecessor's end rounded up to the field's alignment, the structure
// alignment is the maximum field alignment, and the total size is the end
// of the last field rounded up to the structure alignment.
//
// # Layout Rules
//
//   - Fields are placed in declaration order; order changes offsets.
//   - offset(field) is always a multiple of align(field).
//   - No padding is inserted beyond what alignment requires.
//   - Total size is a multiple of the structure alignment, so elements of
//     an array of the structure all satisfy every field's alignment.
//
// This package is internal to structlayout.
package calc
