// Package errors provides structured error types for the yapl-disasm library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLoad, errors.KindTruncated).
//		Detail("string pool entry %d", i).
//		Cause(ioErr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MalformedHeader("bad magic 0x%08x", got)
//	err := errors.InvalidOpcode(op, offset)
//
// All errors implement the standard error interface and support errors.Is/As.
// IsKind matches a Kind anywhere in a wrapped chain.
package errors
