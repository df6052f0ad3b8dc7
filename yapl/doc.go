// Package yapl implements the YAPL container format: the fixed header,
// the interned string pool, the named function table, and the
// variable-width instruction codec.
//
// A Loader owns one container source and exposes its tables and code
// segment; DecodeInstruction and its encoder counterpart form the
// instruction codec; File authors new container images. The disasm
// package drives these pieces to produce listings.
package yapl
