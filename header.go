package swatchr

import (
	"fmt"
)

// Signature is the magic that every ASE file is expected to start with
const Signature = "ASEF"

// Header represents the parsed ASE file header (12 bytes)
//
// all fields are informational - BlockCount in particular is not used to bound parsing
type Header struct {
	Magic      string
	Major      int16
	Minor      int16
	BlockCount int32
}

// Valid reports whether the header magic is "ASEF"
func (h Header) Valid() bool {
	return h.Magic == Signature
}

// Version returns the header version as "major.minor"
func (h Header) Version() string {
	return fmt.Sprintf("%d.%d", h.Major, h.Minor)
}

func parseHeader(r *byteReader) (hdr Header, err error) {
	var magic []byte
	if magic, err = r.readBytes(4); err != nil {
		return Header{}, fmt.Errorf("failed to read header magic: %w", err)
	}
	hdr.Magic = string(magic)
	if hdr.Major, err = r.readI16BE(); err != nil {
		return Header{}, fmt.Errorf("failed to read header major version: %w", err)
	}
	if hdr.Minor, err = r.readI16BE(); err != nil {
		return Header{}, fmt.Errorf("failed to read header minor version: %w", err)
	}
	if hdr.BlockCount, err = r.readI32BE(); err != nil {
		return Header{}, fmt.Errorf("failed to read header block count: %w", err)
	}
	return hdr, nil
}
