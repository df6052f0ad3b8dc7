package yapl

import (
	"fmt"

	yapldisasm "github.com/wippyai/yapl-disasm"
	"github.com/wippyai/yapl-disasm/errors"
)

// Validate decodes every function span end to end (the whole code
// segment for mixed markup modules) without rendering, surfacing the
// first decode error with its function name and virtual address. A
// module that validates cleanly will disassemble cleanly.
func (l *Loader) Validate() error {
	if !l.loaded {
		return errors.NotLoaded("Validate")
	}

	if l.Mixed() {
		span := yapldisasm.Span{Offset: 0, Length: l.CodeSize()}
		return l.validateSpan("template body", span)
	}

	for _, fn := range l.funcs {
		span, err := l.ResolveSpan(fn.Name)
		if err != nil {
			return err
		}
		if err := l.validateSpan(fn.Name, span); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) validateSpan(name string, span yapldisasm.Span) error {
	code, err := l.ReadCode(span.Offset, span.Length)
	if err != nil {
		return fmt.Errorf("function %q: %w", name, err)
	}

	pos := 0
	for pos < len(code) {
		inst, err := DecodeInstruction(code, pos)
		if err != nil {
			return fmt.Errorf("function %q at virtual address %d: %w", name, span.Offset+uint32(pos), err)
		}
		pos += inst.Len()
	}
	return nil
}
