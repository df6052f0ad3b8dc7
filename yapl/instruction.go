package yapl

import (
	"bytes"
	"encoding/binary"

	"github.com/wippyai/yapl-disasm/errors"
)

// Instruction is one decoded unit: a control byte plus an optional
// big-endian operand.
type Instruction struct {
	Operand uint32
	Width   int // operand bytes: 0, 1, 2, or 4
	Opcode  byte
}

// Len returns the number of encoded bytes the instruction occupies.
func (i Instruction) Len() int {
	return 1 + i.Width
}

// selectorWidth maps the 2-bit size selector to the operand byte width.
var selectorWidth = [4]int{0, 1, 2, 4}

// DecodeInstruction decodes one instruction from code starting at pos.
// It is a pure function; the caller advances by Instruction.Len.
func DecodeInstruction(code []byte, pos int) (Instruction, error) {
	if pos >= len(code) {
		return Instruction{}, errors.Truncated(errors.PhaseDecode, "instruction stream", nil)
	}
	ctrl := code[pos]
	op := ctrl & OpcodeMask

	if _, err := lookupOpAt(op, pos); err != nil {
		return Instruction{}, err
	}

	width := selectorWidth[ctrl>>SelectorShift]
	if pos+1+width > len(code) {
		return Instruction{}, errors.New(errors.PhaseDecode, errors.KindTruncated).
			Detail("operand at offset %d needs %d bytes, %d remain", pos, width, len(code)-pos-1).
			Build()
	}

	var operand uint32
	for _, b := range code[pos+1 : pos+1+width] {
		operand = operand<<8 | uint32(b)
	}

	return Instruction{Opcode: op, Width: width, Operand: operand}, nil
}

// DecodeInstructions decodes a whole buffer sequentially, stopping at the
// first error. Instruction boundaries cannot be trusted past a decode
// failure, so there is no skip-and-resync.
func DecodeInstructions(code []byte) ([]Instruction, error) {
	var insts []Instruction
	pos := 0
	for pos < len(code) {
		inst, err := DecodeInstruction(code, pos)
		if err != nil {
			return nil, err
		}
		insts = append(insts, inst)
		pos += inst.Len()
	}
	return insts, nil
}

// EncodeInstructionTo appends the encoded form of inst to buf. The opcode
// must fit 6 bits, the width must be one of 0/1/2/4, and the operand must
// fit the selected width.
func EncodeInstructionTo(buf *bytes.Buffer, inst Instruction) error {
	if inst.Opcode&^OpcodeMask != 0 {
		return errors.InvalidData(errors.PhaseEncode, "opcode 0x%02x does not fit 6 bits", inst.Opcode)
	}

	var selector byte
	switch inst.Width {
	case 0:
		selector = 0
	case 1:
		selector = 1
	case 2:
		selector = 2
	case 4:
		selector = 3
	default:
		return errors.InvalidData(errors.PhaseEncode, "operand width %d is not one of 0/1/2/4", inst.Width)
	}

	if inst.Width < 4 && inst.Operand>>(8*inst.Width) != 0 {
		return errors.InvalidData(errors.PhaseEncode, "operand %d does not fit %d bytes", inst.Operand, inst.Width)
	}

	buf.WriteByte(inst.Opcode | selector<<SelectorShift)

	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], inst.Operand)
	buf.Write(tmp[4-inst.Width:])
	return nil
}

// EncodeInstructions encodes a sequence of instructions into one
// contiguous buffer.
func EncodeInstructions(insts []Instruction) ([]byte, error) {
	var buf bytes.Buffer
	for _, inst := range insts {
		if err := EncodeInstructionTo(&buf, inst); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
