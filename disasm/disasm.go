package disasm

import (
	"fmt"
	"io"

	yapldisasm "github.com/wippyai/yapl-disasm"
	"github.com/wippyai/yapl-disasm/errors"
	"github.com/wippyai/yapl-disasm/yapl"
)

// MixedBanner heads the single implicit function of a mixed markup
// module.
const MixedBanner = "==== template body ===="

// Banner returns the heading line printed before a named function's
// listing.
func Banner(name string) string {
	return fmt.Sprintf("==== function %q ====", name)
}

// Disassembler renders a loaded module's instruction streams as text.
// It keeps no state across calls; every invocation is a fresh linear
// scan over the requested span.
type Disassembler struct {
	mod yapldisasm.Module
}

// New creates a Disassembler over a loaded module.
func New(mod yapldisasm.Module) *Disassembler {
	return &Disassembler{mod: mod}
}

// Function renders the named function's listing to w, one line per
// instruction. Printed addresses are virtual: the function's code offset
// plus the instruction's offset within it. A zero-length span renders
// nothing.
func (d *Disassembler) Function(name string, w io.Writer) error {
	span, err := d.mod.ResolveSpan(name)
	if err != nil {
		return err
	}
	return d.span(span, w)
}

// All renders every function in table order, a banner line before each.
// Mixed markup modules render exactly one banner and the whole code
// segment as one stream from virtual address 0. The first decode error
// aborts the batch.
func (d *Disassembler) All(w io.Writer) error {
	if d.mod.Mixed() {
		if _, err := fmt.Fprintln(w, MixedBanner); err != nil {
			return err
		}
		return d.span(yapldisasm.Span{Offset: 0, Length: d.mod.CodeSize()}, w)
	}

	for _, name := range d.mod.Functions() {
		if _, err := fmt.Fprintln(w, Banner(name)); err != nil {
			return err
		}
		if err := d.Function(name, w); err != nil {
			return err
		}
	}
	return nil
}

func (d *Disassembler) span(span yapldisasm.Span, w io.Writer) error {
	code, err := d.mod.ReadCode(span.Offset, span.Length)
	if err != nil {
		return err
	}

	pos := 0
	for pos < len(code) {
		inst, err := yapl.DecodeInstruction(code, pos)
		if err != nil {
			return err
		}

		line, err := d.format(span.Offset+uint32(pos), inst)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		pos += inst.Len()
	}
	return nil
}

// format produces one listing line: "<va>: <MNEMONIC> <operands>".
func (d *Disassembler) format(va uint32, inst yapl.Instruction) (string, error) {
	info, err := yapl.LookupOp(inst.Opcode)
	if err != nil {
		return "", err
	}

	switch info.Kind {
	case yapl.OperandImm:
		return fmt.Sprintf("%d: %s #%d", va, info.Name, inst.Operand), nil

	case yapl.OperandPool:
		s, err := d.poolString(inst.Operand)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d: %s [%d] // %q", va, info.Name, inst.Operand, s), nil

	case yapl.OperandCall:
		// Direct calls print the resolved target only.
		s, err := d.poolString(inst.Operand)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d: %s %s", va, info.Name, s), nil

	case yapl.OperandSlot:
		return fmt.Sprintf("%d: %s [%d]", va, info.Name, inst.Operand), nil

	case yapl.OperandBuiltin:
		return fmt.Sprintf("%d: %s // CALL %s", va, info.Name, info.Builtin), nil

	default:
		return fmt.Sprintf("%d: %s", va, info.Name), nil
	}
}

func (d *Disassembler) poolString(index uint32) (string, error) {
	s, ok := d.mod.StringAt(index)
	if !ok {
		return "", errors.OutOfBounds(errors.PhaseRender, int(index), int(d.mod.NumStrings()))
	}
	return s, nil
}
