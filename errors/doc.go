// Package errors provides structured error types for the ownref library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: projection path, view type name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRegion, errors.KindOutOfBounds).
//		Path("payload", "header").
//		View("[]byte").
//		Detail("range [8, 24) exceeds size 16").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseRegion, 8, 16, 16)
//	err := errors.NotFound(errors.PhaseFixture, "fixture", "greeting")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
