package binary

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func newTestReader(data []byte) *Reader {
	return NewReader(bytes.NewReader(data), int64(len(data)))
}

func TestReaderReadByte(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := newTestReader(data)

	for i, want := range data {
		if r.Position() != int64(i) {
			t.Errorf("position before read %d: got %d, want %d", i, r.Position(), i)
		}
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte %d: %v", i, err)
		}
		if b != want {
			t.Errorf("ReadByte %d: got 0x%02x, want 0x%02x", i, b, want)
		}
	}

	if r.Position() != 3 {
		t.Errorf("final position: got %d, want 3", r.Position())
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining: got %d, want 0", r.Remaining())
	}

	_, err := r.ReadByte()
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestReaderReadFull(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	r := newTestReader(data)

	got, err := r.ReadFull(3)
	if err != nil {
		t.Fatalf("ReadFull: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("ReadFull: got %v, want [1 2 3]", got)
	}

	if r.Position() != 3 {
		t.Errorf("position: got %d, want 3", r.Position())
	}

	_, err = r.ReadFull(10)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF for short read, got %v", err)
	}
}

func TestReaderReadU16(t *testing.T) {
	r := newTestReader([]byte{0x01, 0x02})
	got, err := r.ReadU16()
	if err != nil {
		t.Fatalf("ReadU16: %v", err)
	}
	if got != 0x0102 {
		t.Errorf("ReadU16: got 0x%04x, want 0x0102", got)
	}
}

func TestReaderReadU32(t *testing.T) {
	tests := []struct {
		encoded []byte
		want    uint32
	}{
		{[]byte{0x00, 0x00, 0x00, 0x00}, 0},
		{[]byte{0x00, 0x00, 0x00, 0x01}, 1},
		{[]byte{0x01, 0x02, 0x03, 0x04}, 0x01020304},
		{[]byte{0x59, 0x61, 0x70, 0x6c}, 0x5961706c},
		{[]byte{0xff, 0xff, 0xff, 0xff}, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		r := newTestReader(tt.encoded)
		got, err := r.ReadU32()
		if err != nil {
			t.Errorf("ReadU32(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadU32(%v): got 0x%08x, want 0x%08x", tt.encoded, got, tt.want)
		}
	}
}

func TestReaderReadU32Truncated(t *testing.T) {
	r := newTestReader([]byte{0x01, 0x02})
	_, err := r.ReadU32()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestReaderReadCString(t *testing.T) {
	data := []byte{'h', 'e', 'l', 'l', 'o', 0x00, 'x'}
	r := newTestReader(data)

	got, err := r.ReadCString()
	if err != nil {
		t.Fatalf("ReadCString: %v", err)
	}
	if got != "hello" {
		t.Errorf("ReadCString: got %q, want %q", got, "hello")
	}
	if r.Position() != 6 {
		t.Errorf("position after ReadCString: got %d, want 6", r.Position())
	}
}

func TestReaderReadCStringEmpty(t *testing.T) {
	r := newTestReader([]byte{0x00})
	got, err := r.ReadCString()
	if err != nil {
		t.Fatalf("ReadCString: %v", err)
	}
	if got != "" {
		t.Errorf("ReadCString: got %q, want empty", got)
	}
}

func TestReaderReadCStringUnterminated(t *testing.T) {
	r := newTestReader([]byte{'a', 'b', 'c'})
	_, err := r.ReadCString()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF for missing terminator, got %v", err)
	}
}

func TestReaderSeek(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	r := newTestReader(data)

	if _, err := r.ReadFull(3); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}

	if err := r.Seek(1); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if r.Position() != 1 {
		t.Errorf("position after seek: got %d, want 1", r.Position())
	}

	b, _ := r.ReadByte()
	if b != 0x02 {
		t.Errorf("ReadByte after seek: got 0x%02x, want 0x02", b)
	}

	// Seek to end is allowed, past end is not.
	if err := r.Seek(4); err != nil {
		t.Errorf("Seek(4) should work: %v", err)
	}
	if err := r.Seek(5); err == nil {
		t.Error("expected error for seek past end")
	}
	if err := r.Seek(-1); err == nil {
		t.Error("expected error for negative seek")
	}
}

func TestReaderWrapError(t *testing.T) {
	r := newTestReader([]byte{0x01, 0x02})
	r.ReadByte()
	r.ReadByte()

	err := r.WrapError("string pool", errors.New("test error"))
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Position != 2 {
		t.Errorf("Position: got %d, want 2", pe.Position)
	}
	if pe.Section != "string pool" {
		t.Errorf("Section: got %q, want %q", pe.Section, "string pool")
	}

	errStr := pe.Error()
	if errStr != "yapl: string pool at position 2: test error" {
		t.Errorf("Error(): got %q", errStr)
	}
}

func TestParseErrorNoSection(t *testing.T) {
	pe := &ParseError{Position: 5, Err: errors.New("some error")}
	errStr := pe.Error()
	if errStr != "yapl: at position 5: some error" {
		t.Errorf("Error(): got %q", errStr)
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	inner := errors.New("inner error")
	pe := &ParseError{Position: 10, Section: "header", Err: inner}
	if !errors.Is(pe, inner) {
		t.Error("errors.Is should reach the inner error")
	}
}

func TestWriterBasic(t *testing.T) {
	w := NewWriter()
	if w.Len() != 0 {
		t.Errorf("initial Len: got %d, want 0", w.Len())
	}

	w.Byte(0x42)
	if w.Len() != 1 {
		t.Errorf("Len after Byte: got %d, want 1", w.Len())
	}

	w.WriteBytes([]byte{0x01, 0x02, 0x03})
	got := w.Bytes()
	want := []byte{0x42, 0x01, 0x02, 0x03}
	if !bytes.Equal(got, want) {
		t.Errorf("Bytes: got %v, want %v", got, want)
	}
}

func TestWriterWriteU16(t *testing.T) {
	w := NewWriter()
	w.WriteU16(0x0102)
	got := w.Bytes()
	want := []byte{0x01, 0x02}
	if !bytes.Equal(got, want) {
		t.Errorf("WriteU16: got %v, want %v", got, want)
	}
}

func TestWriterWriteU32(t *testing.T) {
	tests := []struct {
		want  []byte
		value uint32
	}{
		{[]byte{0x00, 0x00, 0x00, 0x00}, 0},
		{[]byte{0x00, 0x00, 0x00, 0x01}, 1},
		{[]byte{0x01, 0x02, 0x03, 0x04}, 0x01020304},
		{[]byte{0xff, 0xff, 0xff, 0xff}, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		w := NewWriter()
		w.WriteU32(tt.value)
		got := w.Bytes()
		if !bytes.Equal(got, tt.want) {
			t.Errorf("WriteU32(0x%08x): got %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestWriterWriteCString(t *testing.T) {
	w := NewWriter()
	w.WriteCString("test")
	got := w.Bytes()
	want := []byte{'t', 'e', 's', 't', 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("WriteCString: got %v, want %v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteU32(0x5961706c)
	w.WriteCString("roundtrip")
	w.WriteU16(0xBEEF)
	w.Byte(0x2F)

	r := newTestReader(w.Bytes())

	u32, err := r.ReadU32()
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if u32 != 0x5961706c {
		t.Errorf("ReadU32: got 0x%08x, want 0x5961706c", u32)
	}

	s, err := r.ReadCString()
	if err != nil {
		t.Fatalf("ReadCString: %v", err)
	}
	if s != "roundtrip" {
		t.Errorf("ReadCString: got %q, want %q", s, "roundtrip")
	}

	u16, err := r.ReadU16()
	if err != nil {
		t.Fatalf("ReadU16: %v", err)
	}
	if u16 != 0xBEEF {
		t.Errorf("ReadU16: got 0x%04x, want 0xBEEF", u16)
	}

	b, err := r.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if b != 0x2F {
		t.Errorf("ReadByte: got 0x%02x, want 0x2F", b)
	}

	if r.Remaining() != 0 {
		t.Errorf("Remaining: got %d, want 0", r.Remaining())
	}
}
