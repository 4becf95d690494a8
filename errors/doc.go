// Package errors provides structured error types for the structlayout library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, detail message,
// and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValidate, errors.KindInvalidField).
//		Path("header", "flags").
//		Detail("alignment 3 is not a power of two").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidField([]string{"flags"}, "size must be positive")
//	err := errors.Overflow([]string{"payload"}, "offset overflows uint32")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
