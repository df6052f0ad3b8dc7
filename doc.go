// Package yapldisasm provides a static disassembler for YAPL bytecode containers.
//
// A YAPL container is a compact binary module: a fixed 16-byte header, an
// interned string pool, an optional named function table, and a code segment
// of variable-width instructions. This library loads such containers and
// renders their instruction streams as annotated mnemonic listings. It never
// executes code and never modifies a loaded file.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	yapldisasm/      Root package with the shared Span and Module interfaces
//	├── yapl/        Container loading, opcode table, instruction codec, encoder
//	├── disasm/      Listing renderer driving the decoder over function spans
//	├── errors/      Structured error types with the load/decode/render taxonomy
//	└── cmd/yapldis/ Command line disassembler with an interactive browser
//
// # Quick Start
//
// Load a container and disassemble every function:
//
//	l, err := yapl.Open("views.yapl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer l.Close()
//
//	if err := l.Load(); err != nil {
//	    log.Fatal(err)
//	}
//
//	d := disasm.New(l)
//	if err := d.All(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// Disassemble one function by name:
//
//	err = d.Function("render_header", os.Stdout)
//
// # File Types
//
// Two container flavors share the format. Pure modules (file type 1) carry an
// explicit function table of named routines. Mixed markup modules (file type
// 0, "TPL") have no table; their whole code segment is one implicit body that
// disassembles under a single banner.
//
// # Error Handling
//
// Failures are fatal and surfaced verbatim: a malformed header, a truncated
// table, an unknown opcode, or a missing function stops the current operation
// with a structured error from the errors package. There is no resynchronizing
// past malformed bytes, because instruction boundaries cannot be trusted once
// framing is lost.
package yapldisasm
