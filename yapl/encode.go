package yapl

import (
	"io"

	"github.com/wippyai/yapl-disasm/yapl/internal/binary"
)

// File is an in-memory container image for authoring new modules and
// building test fixtures. Encode is the exact inverse of the loader for
// well-formed input.
type File struct {
	Strings   []string
	Functions []Function
	Code      []byte
	Type      FileType
}

// Encode emits the container bytes: header, string pool, function table
// (pure modules only), code segment.
func (f *File) Encode() []byte {
	w := binary.NewWriter()

	w.WriteU32(Magic)
	w.WriteU32(uint32(f.Type))
	w.WriteU32(uint32(len(f.Strings)))
	w.WriteU32(uint32(len(f.Functions)))

	for _, s := range f.Strings {
		w.WriteCString(s)
	}

	// Mixed markup modules carry no function table.
	if f.Type == FileTypeYAPL {
		for _, fn := range f.Functions {
			w.WriteCString(fn.Name)
			w.WriteU32(fn.Offset)
		}
	}

	w.WriteBytes(f.Code)
	return w.Bytes()
}

// EncodeTo writes the encoded container to w.
func (f *File) EncodeTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Encode())
	return int64(n), err
}
