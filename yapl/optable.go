package yapl

import "github.com/wippyai/yapl-disasm/errors"

// opTable assigns a description to every opcode in the reserved range.
// Entries with an empty name are reserved but unimplemented.
var opTable = [NumOpcodes]OpInfo{
	OpLDCI: {Name: "LDCI", Kind: OperandImm},
	OpLDCS: {Name: "LDCS", Kind: OperandPool},
	// 0x02 reserved
	OpLDGV: {Name: "LDGV", Kind: OperandPool},
	OpSTGV: {Name: "STGV", Kind: OperandPool},
	OpLDLV: {Name: "LDLV", Kind: OperandSlot},
	OpSTLV: {Name: "STLV", Kind: OperandSlot},
	OpLDLA: {Name: "LDLA", Kind: OperandSlot},
	OpINCL: {Name: "INCL", Kind: OperandSlot},
	OpDECL: {Name: "DECL", Kind: OperandSlot},

	OpDUP:  {Name: "DUP", Kind: OperandNone},
	OpDROP: {Name: "DROP", Kind: OperandNone},
	OpSWAP: {Name: "SWAP", Kind: OperandNone},

	OpADD: {Name: "ADD", Kind: OperandNone},
	OpSUB: {Name: "SUB", Kind: OperandNone},
	OpMUL: {Name: "MUL", Kind: OperandNone},
	OpDIV: {Name: "DIV", Kind: OperandNone},
	OpMOD: {Name: "MOD", Kind: OperandNone},
	OpNEG: {Name: "NEG", Kind: OperandNone},

	OpCEQ: {Name: "CEQ", Kind: OperandNone},
	OpCNE: {Name: "CNE", Kind: OperandNone},
	OpCLT: {Name: "CLT", Kind: OperandNone},
	OpCLE: {Name: "CLE", Kind: OperandNone},
	OpCGT: {Name: "CGT", Kind: OperandNone},
	OpCGE: {Name: "CGE", Kind: OperandNone},

	OpAND: {Name: "AND", Kind: OperandNone},
	OpOR:  {Name: "OR", Kind: OperandNone},
	OpXOR: {Name: "XOR", Kind: OperandNone},
	OpNOT: {Name: "NOT", Kind: OperandNone},

	OpCAT: {Name: "CAT", Kind: OperandNone},
	OpLEN: {Name: "LEN", Kind: OperandNone},
	OpIDX: {Name: "IDX", Kind: OperandNone},

	OpJMP:  {Name: "JMP", Kind: OperandImm},
	OpJMPT: {Name: "JMPT", Kind: OperandImm},
	OpJMPF: {Name: "JMPF", Kind: OperandImm},

	OpCALL:  {Name: "CALL", Kind: OperandCall},
	OpCALLN: {Name: "CALLN", Kind: OperandPool},
	OpRET:   {Name: "RET", Kind: OperandNone},
	OpENTER: {Name: "ENTER", Kind: OperandNone},
	OpLEAVE: {Name: "LEAVE", Kind: OperandNone},

	OpEMIT:  {Name: "EMIT", Kind: OperandNone},
	OpEMITS: {Name: "EMITS", Kind: OperandPool},

	OpSGET: {Name: "SGET", Kind: OperandBuiltin, Builtin: BuiltinStrGet},
	OpSPUT: {Name: "SPUT", Kind: OperandBuiltin, Builtin: BuiltinStrPut},
	OpTSRC: {Name: "TSRC", Kind: OperandBuiltin, Builtin: BuiltinTplSrc},
	OpTGET: {Name: "TGET", Kind: OperandBuiltin, Builtin: BuiltinTplGet},

	OpHALT: {Name: "HALT", Kind: OperandNone},
	OpNOP:  {Name: "NOP", Kind: OperandNone},
}

// LookupOp returns the description of an assigned opcode. Values outside
// the reserved range yield an invalid_opcode error; reserved values with
// no assigned mnemonic yield unimplemented_opcode.
func LookupOp(op byte) (OpInfo, error) {
	return lookupOpAt(op, 0)
}

func lookupOpAt(op byte, offset int) (OpInfo, error) {
	if op >= NumOpcodes {
		return OpInfo{}, errors.InvalidOpcode(op, offset)
	}
	info := opTable[op]
	if info.Name == "" {
		return OpInfo{}, errors.UnimplementedOpcode(op, offset)
	}
	return info, nil
}

// AssignedOpcodes returns every opcode with an assigned mnemonic, in
// numeric order.
func AssignedOpcodes() []byte {
	ops := make([]byte, 0, NumOpcodes)
	for op := range opTable {
		if opTable[op].Name != "" {
			ops = append(ops, byte(op))
		}
	}
	return ops
}
