package swatchr

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// byteReader is a forward-only cursor over an in-memory buffer
//
// all multi-byte values are big-endian
type byteReader struct {
	data []byte
	pos  int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

func (r *byteReader) atEnd() bool {
	return r.pos >= len(r.data)
}

func (r *byteReader) remaining() int {
	return len(r.data) - r.pos
}

func (r *byteReader) offset() int {
	return r.pos
}

func (r *byteReader) readBytes(n int) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, fmt.Errorf("need %d bytes at 0x%X, have %d: %w", n, r.pos, r.remaining(), ErrUnexpectedEndOfData)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *byteReader) readU16BE() (uint16, error) {
	b, err := r.readBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *byteReader) readI16BE() (int16, error) {
	v, err := r.readU16BE()
	return int16(v), err
}

func (r *byteReader) readU32BE() (uint32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *byteReader) readI32BE() (int32, error) {
	v, err := r.readU32BE()
	return int32(v), err
}

func (r *byteReader) readFloat32BE() (float32, error) {
	v, err := r.readU32BE()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// readFixedUTF16BEString decodes byteLength bytes of UTF-16BE text, trailing NULs are trimmed
func (r *byteReader) readFixedUTF16BEString(byteLength int) (string, error) {
	b, err := r.readBytes(byteLength)
	if err != nil {
		return "", err
	}
	decoded, err := utf16BE.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("failed to decode UTF-16 text at 0x%X: %w", r.pos-byteLength, err)
	}
	return strings.TrimRight(string(decoded), "\x00"), nil
}

func (r *byteReader) seekRelative(delta int) error {
	next := r.pos + delta
	if next < 0 || next > len(r.data) {
		return fmt.Errorf("seek by %d from 0x%X out of range", delta, r.pos)
	}
	r.pos = next
	return nil
}
