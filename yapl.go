package yapldisasm

// Span locates one function's code inside the code segment.
type Span struct {
	Offset uint32 // virtual start address
	Length uint32 // size in bytes; zero-length spans are valid
}

// End returns the first virtual address past the span.
func (s Span) End() uint32 {
	return s.Offset + s.Length
}

// StringPool is read-only access to a module's interned strings.
type StringPool interface {
	// StringAt returns the pool entry at index, reporting whether it exists.
	StringAt(index uint32) (string, bool)

	// NumStrings returns the number of pool entries.
	NumStrings() uint32
}

// Module is the read-only surface of a loaded container. The disassembler
// drives it; *yapl.Loader is the canonical implementation.
type Module interface {
	StringPool

	// Mixed reports whether the module is a mixed markup file with a single
	// implicit code body instead of a function table.
	Mixed() bool

	// Functions returns the function names in table order. Empty for mixed
	// markup modules.
	Functions() []string

	// ResolveSpan returns the named function's code span.
	ResolveSpan(name string) (Span, error)

	// ReadCode reads length bytes of code starting at virtual address va.
	ReadCode(va, length uint32) ([]byte, error)

	// CodeSize returns the size of the code segment in bytes.
	CodeSize() uint32
}
