// Package structlayout simulates standard struct layout: given an ordered
// list of fields with sizes and power-of-two alignment requirements, it
// computes every field's byte offset, the padding the compiler would
// insert, the total structure size, and the structure alignment.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	structlayout/        Root package with the public FieldSpec/Layout API
//	├── internal/calc/   Validation and the single-pass layout fold
//	├── internal/abi/    Alignment arithmetic primitives
//	├── errors/          Structured error types
//	└── cmd/structlayout CLI and interactive layout explorer
//
// # Quick Start
//
// Compute the layout of a structure:
//
//	layout, err := structlayout.Compute([]structlayout.FieldSpec{
//	    structlayout.Int8("a"),
//	    structlayout.Int64("b"),
//	    structlayout.Int8("c"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	off, _ := layout.Offset("b") // 8
//	_ = layout.Size              // 24
//	_ = layout.Align             // 8
//
// Field order is significant: declaring members from most- to
// least-aligned minimizes padding. Repack produces that ordering:
//
//	packed, _ := structlayout.Compute(structlayout.Repack(fields))
//
// All computations are pure: no shared state, safe for concurrent use.
package structlayout
