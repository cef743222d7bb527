package swatchr

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ParseOptions represents the parsing options passed to Parse
type ParseOptions struct {
	// Logger receives warnings (and debug detail about skipped chunks)
	//
	// if nil, nothing is logged - warnings are still recorded in Document.Warnings
	Logger *zerolog.Logger
	// ErrorOnMalformedHeader determines whether a header magic other than "ASEF" fails the parse
	//
	// defaults to false - the mismatch is recorded as a warning and parsing continues
	ErrorOnMalformedHeader bool
	// ErrorOnWarning determines whether any warning (unsupported/approximate color model,
	// truncated color chunk, malformed header) fails the parse
	ErrorOnWarning bool
	// ColorModels allows you to provide custom color models (or override the default ones)
	//
	// keyed by the model tag with padding trimmed (e.g. "RGB", "CMYK")
	ColorModels map[string]ColorModel
}

// ColorEntry is a single decoded color
type ColorEntry struct {
	Name  string
	Color RGB
	// Model is the color model tag the color was decoded from (empty if the chunk had no color data)
	Model string
	// SwatchType is informational only
	SwatchType SwatchType
}

// SwatchType is the trailing swatch type of a color chunk
type SwatchType int16

const (
	SwatchGlobal SwatchType = iota
	SwatchSpot
	SwatchNormal
)

func (t SwatchType) String() string {
	switch t {
	case SwatchGlobal:
		return "global"
	case SwatchSpot:
		return "spot"
	case SwatchNormal:
		return "normal"
	}
	return fmt.Sprintf("unknown(%d)", int16(t))
}

// Document represents the contents of an ASE file
type Document struct {
	// Header is the ASE file header
	Header Header
	// Entries is every decoded color, in file order
	//
	// colors inside groups are flattened into the same list
	Entries []ColorEntry
	// Title is the name of the last top-level chunk (color entry or group start) parsed
	//
	// note: this is not necessarily the palette's own name
	Title string
	// Warnings is every non-fatal condition encountered, in file order
	Warnings []Warning
}

// NumColors is the number of decoded color chunks
func (d *Document) NumColors() int {
	return len(d.Entries)
}

// Colors returns just the colors of all entries, in order
func (d *Document) Colors() []RGB {
	result := make([]RGB, len(d.Entries))
	for i, e := range d.Entries {
		result[i] = e.Color
	}
	return result
}

// Names returns just the names of all entries, in order
func (d *Document) Names() []string {
	result := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		result[i] = e.Name
	}
	return result
}

// Parse parses an ASE file held in memory with the supplied ParseOptions
//
// if the ParseOptions supplied is nil, default (lenient) options are used
//
// structural underflow (ErrUnexpectedEndOfData) aborts the parse and no Document is returned
func Parse(data []byte, options *ParseOptions) (*Document, error) {
	if options == nil {
		options = &ParseOptions{}
	}
	p := newParser(data, options)
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

// ParseReader reads all of r into memory and parses it
func ParseReader(r io.Reader, options *ParseOptions) (*Document, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to read ASE data: %w", err)
	}
	return Parse(buf.Bytes(), options)
}

// ParseFile reads and parses the ASE file at path
func ParseFile(path string, options *ParseOptions) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data, options)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}
