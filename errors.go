package swatchr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEndOfData is returned when a fixed size read runs past the end of the data
	//
	// it is always fatal - no partial Document is returned
	ErrUnexpectedEndOfData = errors.New("unexpected end of data")
	// ErrMalformedHeader is recorded when the file does not start with "ASEF"
	ErrMalformedHeader = errors.New("file header did not match ASEF")
	// ErrUnsupportedColorModel is recorded (once per document) when a LAB color is encountered
	ErrUnsupportedColorModel = errors.New("LAB color model not supported")
	// ErrApproximateColorModel is recorded (once per document) when a CMYK color is encountered
	ErrApproximateColorModel = errors.New("CMYK color conversion ignores color space and is approximate")
	// ErrTruncatedColorChunk is recorded when a chunk has color data too short to hold a color model
	ErrTruncatedColorChunk = errors.New("color chunk too short to hold a color model")
)

// Warning is a non-fatal condition encountered during parsing
type Warning struct {
	// Err is one of the warning sentinels (ErrMalformedHeader, ErrUnsupportedColorModel etc.)
	Err error
	// Offset is the byte offset at which the condition was detected
	Offset int
	// Detail is optional extra context
	Detail string
}

func (w Warning) Error() string {
	if w.Detail != "" {
		return fmt.Sprintf("%s at 0x%X (%s)", w.Err, w.Offset, w.Detail)
	}
	return fmt.Sprintf("%s at 0x%X", w.Err, w.Offset)
}

func (w Warning) Unwrap() error {
	return w.Err
}
