package yapl

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	yapldisasm "github.com/wippyai/yapl-disasm"
	"github.com/wippyai/yapl-disasm/errors"
	"github.com/wippyai/yapl-disasm/yapl/internal/binary"
)

// Loader owns one container source exclusively: header, string pool,
// function table, and seek access into the code segment. The zero value
// is not usable; construct with Open or NewLoader.
type Loader struct {
	r         *binary.Reader
	closer    io.Closer
	funcIndex map[string]int
	strings   []string
	funcs     []Function
	hdr       Header
	codeBase  int64
	loaded    bool
}

var _ yapldisasm.Module = (*Loader)(nil)

// Open opens the container file at path and validates its header. The
// file handle is owned by the Loader and released by Close.
func Open(path string) (*Loader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat container: %w", err)
	}

	l, err := NewLoader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	l.closer = f
	return l, nil
}

// NewLoader wraps an arbitrary seekable source of known size, reading
// and validating the 16-byte header immediately.
func NewLoader(rs io.ReadSeeker, size int64) (*Loader, error) {
	l := &Loader{r: binary.NewReader(rs, size)}

	hdr, err := decodeHeader(l.r)
	if err != nil {
		return nil, err
	}
	l.hdr = hdr
	return l, nil
}

// decodeHeader reads the fixed 16-byte prologue. The layout is known at
// compile time; fields are decoded explicitly in file order.
func decodeHeader(r *binary.Reader) (Header, error) {
	var hdr Header

	magic, err := r.ReadU32()
	if err != nil {
		return hdr, errors.Truncated(errors.PhaseLoad, "header", r.WrapError("header", err))
	}
	if magic != Magic {
		return hdr, errors.MalformedHeader("bad magic 0x%08x, want 0x%08x %q", magic, Magic, "Yapl")
	}

	ftype, err := r.ReadU32()
	if err != nil {
		return hdr, errors.Truncated(errors.PhaseLoad, "header", r.WrapError("header", err))
	}
	if !FileType(ftype).Valid() {
		return hdr, errors.MalformedHeader("unrecognized file type %d", ftype)
	}

	numStrings, err := r.ReadU32()
	if err != nil {
		return hdr, errors.Truncated(errors.PhaseLoad, "header", r.WrapError("header", err))
	}
	numFunctions, err := r.ReadU32()
	if err != nil {
		return hdr, errors.Truncated(errors.PhaseLoad, "header", r.WrapError("header", err))
	}

	hdr.Magic = magic
	hdr.Type = FileType(ftype)
	hdr.NumStrings = numStrings
	hdr.NumFunctions = numFunctions
	return hdr, nil
}

// Load reads the string pool and, for pure modules, the function table,
// then records the code segment base. Must complete before any span or
// code access.
func (l *Loader) Load() error {
	for i := uint32(0); i < l.hdr.NumStrings; i++ {
		s, err := l.r.ReadCString()
		if err != nil {
			return errors.Truncated(errors.PhaseLoad,
				fmt.Sprintf("string pool entry %d of %d", i, l.hdr.NumStrings),
				l.r.WrapError("string pool", err))
		}
		l.strings = append(l.strings, s)
	}

	if l.hdr.Type == FileTypeYAPL {
		if err := l.loadFunctionTable(); err != nil {
			return err
		}
	} else if l.hdr.NumFunctions != 0 {
		// A mixed markup module has no function table; the declared count
		// is ignored.
		Logger().Warn("TPL header declares functions, treating table as absent",
			zap.Uint32("num_functions", l.hdr.NumFunctions))
	}

	l.codeBase = l.r.Position()
	l.loaded = true
	return nil
}

func (l *Loader) loadFunctionTable() error {
	l.funcIndex = make(map[string]int, l.hdr.NumFunctions)
	for i := uint32(0); i < l.hdr.NumFunctions; i++ {
		name, err := l.r.ReadCString()
		if err != nil {
			return errors.Truncated(errors.PhaseLoad,
				fmt.Sprintf("function table entry %d of %d", i, l.hdr.NumFunctions),
				l.r.WrapError("function table", err))
		}
		offset, err := l.r.ReadU32()
		if err != nil {
			return errors.Truncated(errors.PhaseLoad,
				fmt.Sprintf("function table entry %d of %d", i, l.hdr.NumFunctions),
				l.r.WrapError("function table", err))
		}

		if _, dup := l.funcIndex[name]; dup {
			return errors.InvalidData(errors.PhaseLoad, "duplicate function name %q at table entry %d", name, i)
		}
		if i > 0 && offset < l.funcs[i-1].Offset {
			// Tolerated, but span resolution against the previous entry
			// will fail.
			Logger().Warn("function table offsets are not non-decreasing",
				zap.String("function", name),
				zap.Uint32("offset", offset),
				zap.Uint32("previous", l.funcs[i-1].Offset))
		}

		l.funcIndex[name] = int(i)
		l.funcs = append(l.funcs, Function{Name: name, Offset: offset})
	}
	return nil
}

// Close releases the underlying handle. Idempotent; safe after errors.
func (l *Loader) Close() error {
	if l.closer == nil {
		return nil
	}
	c := l.closer
	l.closer = nil
	return c.Close()
}

// Type returns the container file type.
func (l *Loader) Type() FileType {
	return l.hdr.Type
}

// Mixed reports whether the module is a mixed markup (TPL) container with
// a single implicit code body.
func (l *Loader) Mixed() bool {
	return l.hdr.Type == FileTypeTPL
}

// Header returns a copy of the decoded container header.
func (l *Loader) Header() Header {
	return l.hdr
}

// NumStrings returns the number of string pool entries.
func (l *Loader) NumStrings() uint32 {
	return uint32(len(l.strings))
}

// StringAt returns the pool entry at index, reporting whether it exists.
func (l *Loader) StringAt(index uint32) (string, bool) {
	if index >= uint32(len(l.strings)) {
		return "", false
	}
	return l.strings[index], true
}

// NumFunctions returns the number of function table entries.
func (l *Loader) NumFunctions() int {
	return len(l.funcs)
}

// FunctionAt returns the function table entry at index i.
func (l *Loader) FunctionAt(i int) (Function, bool) {
	if i < 0 || i >= len(l.funcs) {
		return Function{}, false
	}
	return l.funcs[i], true
}

// Functions returns the function names in table order. Empty for mixed
// markup modules.
func (l *Loader) Functions() []string {
	names := make([]string, len(l.funcs))
	for i, fn := range l.funcs {
		names[i] = fn.Name
	}
	return names
}

// CodeSize returns the size of the code segment in bytes.
func (l *Loader) CodeSize() uint32 {
	if !l.loaded {
		return 0
	}
	return uint32(l.r.Size() - l.codeBase)
}

// ResolveSpan returns the named function's code span. The length is the
// delta to the next table entry's offset, or to the end of the code
// segment for the last entry.
func (l *Loader) ResolveSpan(name string) (yapldisasm.Span, error) {
	if !l.loaded {
		return yapldisasm.Span{}, errors.NotLoaded("ResolveSpan")
	}

	i, ok := l.funcIndex[name]
	if !ok {
		return yapldisasm.Span{}, errors.NotFound(errors.PhaseLoad, "function", name)
	}

	start := l.funcs[i].Offset
	end := l.CodeSize()
	if i+1 < len(l.funcs) {
		end = l.funcs[i+1].Offset
	}
	if end < start {
		return yapldisasm.Span{}, errors.New(errors.PhaseLoad, errors.KindTruncated).
			Detail("function %q spans [%d, %d), end precedes start", name, start, end).
			Build()
	}

	return yapldisasm.Span{Offset: start, Length: end - start}, nil
}

// ReadCode seeks to code_base + va and reads exactly length bytes.
func (l *Loader) ReadCode(va, length uint32) ([]byte, error) {
	if !l.loaded {
		return nil, errors.NotLoaded("ReadCode")
	}
	if length == 0 {
		return nil, nil
	}

	if err := l.r.Seek(l.codeBase + int64(va)); err != nil {
		return nil, errors.Truncated(errors.PhaseLoad,
			fmt.Sprintf("code segment at virtual address %d", va), err)
	}
	code, err := l.r.ReadFull(int(length))
	if err != nil {
		return nil, errors.Truncated(errors.PhaseLoad,
			fmt.Sprintf("%d code bytes at virtual address %d", length, va), err)
	}
	return code, nil
}
