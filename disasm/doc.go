// Package disasm renders loaded YAPL modules as mnemonic listings.
//
// The Disassembler drives the instruction decoder across function spans
// and writes one annotated line per instruction, resolving pool-index
// operands through the module's string pool. Branch targets are printed
// as raw virtual addresses; there is no label or control-flow recovery.
package disasm
