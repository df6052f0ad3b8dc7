package yapl

// Magic is the 4-byte container tag "Yapl" read as a big-endian u32.
const Magic uint32 = 0x5961706C

// HeaderSize is the fixed size of the container header in bytes.
const HeaderSize = 16

// File types
const (
	FileTypeTPL  FileType = 0 // mixed markup with one implicit code body
	FileTypeYAPL FileType = 1 // pure bytecode module with a function table
)

// Control byte layout: the low 6 bits carry the opcode, the high 2 bits
// select the operand width.
const (
	OpcodeMask    byte = 0x3F
	SelectorShift uint = 6
)

// NumOpcodes is the size of the reserved opcode range. Values at or above
// it do not decode.
const NumOpcodes = 48

// Constants and variables
const (
	OpLDCI byte = 0x00 // load integer constant
	OpLDCS byte = 0x01 // load string constant
	// 0x02 reserved
	OpLDGV byte = 0x03 // load global variable
	OpSTGV byte = 0x04 // store global variable
	OpLDLV byte = 0x05 // load local variable
	OpSTLV byte = 0x06 // store local variable
	OpLDLA byte = 0x07 // address of local variable
	OpINCL byte = 0x08 // increment local variable
	OpDECL byte = 0x09 // decrement local variable
)

// Stack manipulation
const (
	OpDUP  byte = 0x0A // duplicate top of stack
	OpDROP byte = 0x0B // discard top of stack
	OpSWAP byte = 0x0C // swap top two stack values
)

// Arithmetic
const (
	OpADD byte = 0x0D
	OpSUB byte = 0x0E
	OpMUL byte = 0x0F
	OpDIV byte = 0x10
	OpMOD byte = 0x11
	OpNEG byte = 0x12
)

// Comparison
const (
	OpCEQ byte = 0x13 // equal
	OpCNE byte = 0x14 // not equal
	OpCLT byte = 0x15 // less than
	OpCLE byte = 0x16 // less or equal
	OpCGT byte = 0x17 // greater than
	OpCGE byte = 0x18 // greater or equal
)

// Logical
const (
	OpAND byte = 0x19
	OpOR  byte = 0x1A
	OpXOR byte = 0x1B
	OpNOT byte = 0x1C
)

// Strings
const (
	OpCAT byte = 0x1D // concatenate
	OpLEN byte = 0x1E // length
	OpIDX byte = 0x1F // subscript
)

// Control flow
const (
	OpJMP  byte = 0x20 // unconditional jump
	OpJMPT byte = 0x21 // jump if true
	OpJMPF byte = 0x22 // jump if false
)

// Calls and frames
const (
	OpCALL  byte = 0x23 // direct call by pool name
	OpCALLN byte = 0x24 // native call through the string pool
	OpRET   byte = 0x25 // return from function
	OpENTER byte = 0x26 // enter stack frame
	OpLEAVE byte = 0x27 // leave stack frame
)

// Output
const (
	OpEMIT  byte = 0x28 // emit top of stack
	OpEMITS byte = 0x29 // emit string pool entry
)

// Builtin pseudo-opcodes: zero-operand opcodes dispatching to fixed
// runtime builtins.
const (
	OpSGET byte = 0x2A // string read
	OpSPUT byte = 0x2B // string print
	OpTSRC byte = 0x2C // template source
	OpTGET byte = 0x2D // template read
)

// Miscellaneous
const (
	OpHALT byte = 0x2E // stop execution
	OpNOP  byte = 0x2F // no operation
)

// Builtin function names referenced by the pseudo-opcodes.
const (
	BuiltinStrGet = "str:get"
	BuiltinStrPut = "str:put"
	BuiltinTplSrc = "tpl:src"
	BuiltinTplGet = "tpl:get"
)
