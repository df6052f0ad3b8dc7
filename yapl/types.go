package yapl

import "fmt"

// FileType discriminates the two container flavors.
type FileType uint32

// Valid reports whether the value is a recognized file type.
func (t FileType) Valid() bool {
	return t == FileTypeTPL || t == FileTypeYAPL
}

func (t FileType) String() string {
	switch t {
	case FileTypeTPL:
		return "TPL"
	case FileTypeYAPL:
		return "YAPL"
	default:
		return fmt.Sprintf("FileType(%d)", uint32(t))
	}
}

// Header is the fixed 16-byte container prologue. All fields are stored
// big-endian in the file.
type Header struct {
	Magic        uint32
	Type         FileType
	NumStrings   uint32
	NumFunctions uint32
}

// Function is one function-table entry: a name and the virtual offset of
// its code inside the code segment.
type Function struct {
	Name   string
	Offset uint32
}

// OperandKind classifies how an opcode's operand is interpreted and rendered.
type OperandKind int

const (
	OperandNone    OperandKind = iota // no operand, bare mnemonic
	OperandImm                        // immediate value, printed as #value
	OperandPool                       // string pool index, printed as [i] // "s"
	OperandCall                       // direct call target, printed as the resolved name
	OperandSlot                       // stack frame slot, printed as [i]
	OperandBuiltin                    // no operand, bare mnemonic with builtin comment
)

// OpInfo describes one assigned opcode.
type OpInfo struct {
	Name    string
	Builtin string // builtin target for OperandBuiltin entries
	Kind    OperandKind
}
