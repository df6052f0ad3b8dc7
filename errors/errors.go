package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad   Phase = "load"   // header, string pool, function table
	PhaseDecode Phase = "decode" // instruction stream decoding
	PhaseRender Phase = "render" // listing formatting and pool resolution
	PhaseEncode Phase = "encode" // container and instruction encoding
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedHeader     Kind = "malformed_header"
	KindTruncated           Kind = "truncated"
	KindNotFound            Kind = "not_found"
	KindInvalidOpcode       Kind = "invalid_opcode"
	KindUnimplementedOpcode Kind = "unimplemented_opcode"
	KindNotLoaded           Kind = "not_loaded"
	KindInvalidData         Kind = "invalid_data"
	KindOutOfBounds         Kind = "out_of_bounds"
)

// Error is the structured error type used throughout the disassembler
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedHeader creates a header validation error
func MalformedHeader(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindMalformedHeader,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// Truncated creates an unexpected-end-of-input error
func Truncated(phase Phase, what string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncated,
		Detail: fmt.Sprintf("unexpected end of input in %s", what),
		Cause:  cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidOpcode creates an error for an opcode outside the reserved range
func InvalidOpcode(opcode byte, offset int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidOpcode,
		Detail: fmt.Sprintf("opcode 0x%02x at offset %d is outside the instruction set", opcode, offset),
		Value:  opcode,
	}
}

// UnimplementedOpcode creates an error for a reserved in-range opcode with no mnemonic
func UnimplementedOpcode(opcode byte, offset int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnimplementedOpcode,
		Detail: fmt.Sprintf("opcode 0x%02x at offset %d has no assigned mnemonic", opcode, offset),
		Value:  opcode,
	}
}

// NotLoaded creates a usage error for operations invoked before Load
func NotLoaded(op string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindNotLoaded,
		Detail: fmt.Sprintf("%s called before Load", op),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
