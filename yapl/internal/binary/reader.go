package binary

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader provides position-tracked reading utilities for the YAPL
// container format. All multi-byte reads are big-endian.
type Reader struct {
	rs   io.ReadSeeker
	pos  int64
	size int64
}

// NewReader creates a Reader over a seekable source of known size.
func NewReader(rs io.ReadSeeker, size int64) *Reader {
	return &Reader{rs: rs, size: size}
}

// Position returns the current byte offset from the start of the source.
func (r *Reader) Position() int64 {
	return r.pos
}

// Size returns the total size of the source in bytes.
func (r *Reader) Size() int64 {
	return r.size
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int64 {
	return r.size - r.pos
}

// Seek moves the cursor to an absolute offset.
func (r *Reader) Seek(off int64) error {
	if off < 0 || off > r.size {
		return fmt.Errorf("seek to %d outside source (size %d)", off, r.size)
	}
	if _, err := r.rs.Seek(off, io.SeekStart); err != nil {
		return err
	}
	r.pos = off
	return nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	var buf [1]byte
	n, err := io.ReadFull(r.rs, buf[:])
	r.pos += int64(n)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadFull reads exactly n bytes. A short source yields
// io.ErrUnexpectedEOF (or io.EOF when nothing was read).
func (r *Reader) ReadFull(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read length %d", n)
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(r.rs, buf)
	r.pos += int64(read)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadU8 reads an unsigned 8-bit integer.
func (r *Reader) ReadU8() (uint8, error) {
	return r.ReadByte()
}

// ReadU16 reads a big-endian unsigned 16-bit integer.
func (r *Reader) ReadU16() (uint16, error) {
	buf, err := r.ReadFull(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf), nil
}

// ReadU32 reads a big-endian unsigned 32-bit integer.
func (r *Reader) ReadU32() (uint32, error) {
	buf, err := r.ReadFull(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

// ReadCString reads bytes up to and including a NUL terminator and
// returns them as a string without the terminator. A source that ends
// before the terminator yields io.ErrUnexpectedEOF.
func (r *Reader) ReadCString() (string, error) {
	var buf []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", err
		}
		if b == 0 {
			return string(buf), nil
		}
		buf = append(buf, b)
	}
}

// ParseError provides position context for parsing failures.
type ParseError struct {
	Err      error
	Section  string
	Position int64
}

func (e *ParseError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("yapl: %s at position %d: %v", e.Section, e.Position, e.Err)
	}
	return fmt.Sprintf("yapl: at position %d: %v", e.Position, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with the current position and section context.
func (r *Reader) WrapError(section string, err error) error {
	return &ParseError{
		Position: r.pos,
		Section:  section,
		Err:      err,
	}
}
