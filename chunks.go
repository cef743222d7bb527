package swatchr

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ChunkTag is the 2-byte tag that starts every chunk
type ChunkTag uint16

const (
	ChunkColorEntry ChunkTag = 0x0001
	// ChunkGroupColorEntry is only recognised inside a group
	ChunkGroupColorEntry ChunkTag = 0x0002
	ChunkGroupStart      ChunkTag = 0xC001
	ChunkGroupEnd        ChunkTag = 0xC002
)

const groupEndReserved = 4

type parser struct {
	r       *byteReader
	options *ParseOptions
	log     zerolog.Logger
	models  map[string]ColorModel
	warned  map[string]bool
	doc     *Document
}

func newParser(data []byte, options *ParseOptions) *parser {
	p := &parser{
		r:       newByteReader(data),
		options: options,
		log:     zerolog.Nop(),
		models:  defaultColorModels,
		warned:  make(map[string]bool),
		doc:     &Document{Entries: make([]ColorEntry, 0)},
	}
	if options.Logger != nil {
		p.log = *options.Logger
	}
	if len(options.ColorModels) > 0 {
		p.models = make(map[string]ColorModel, len(defaultColorModels)+len(options.ColorModels))
		for k, v := range defaultColorModels {
			p.models[k] = v
		}
		for k, v := range options.ColorModels {
			p.models[k] = v
		}
	}
	return p
}

func (p *parser) parse() (err error) {
	if p.doc.Header, err = parseHeader(p.r); err != nil {
		return err
	}
	if !p.doc.Header.Valid() {
		if p.options.ErrorOnMalformedHeader {
			return fmt.Errorf("%w: got %q", ErrMalformedHeader, p.doc.Header.Magic)
		}
		if err = p.warn(ErrMalformedHeader, 0, fmt.Sprintf("got %q", p.doc.Header.Magic)); err != nil {
			return err
		}
	}
	return p.parseChunks()
}

func (p *parser) parseChunks() error {
	for !p.r.atEnd() {
		at := p.r.offset()
		raw, err := p.r.readU16BE()
		if err != nil {
			return fmt.Errorf("failed to read chunk tag at 0x%X: %w", at, err)
		}
		switch tag := ChunkTag(raw); tag {
		case ChunkColorEntry:
			entry, err := p.parseChunkBody()
			if err != nil {
				return err
			}
			p.doc.Title = entry.Name
			p.doc.Entries = append(p.doc.Entries, entry)
		case ChunkGroupStart:
			group, err := p.parseChunkBody()
			if err != nil {
				return err
			}
			p.doc.Title = group.Name
			if err = p.parseGroup(); err != nil {
				return err
			}
		case ChunkGroupEnd:
			if _, err = p.r.readBytes(groupEndReserved); err != nil {
				return fmt.Errorf("failed to read group end at 0x%X: %w", at, err)
			}
		default:
			// unknown chunk - resync on the next 2 bytes...
			p.log.Debug().Str("tag", fmt.Sprintf("%04X", raw)).Int("offset", at).Msg("skipping unrecognized chunk tag")
		}
	}
	return nil
}

// parseGroup reads the color entries immediately following a group start
//
// the first tag that is not a color entry is pushed back for the outer loop
func (p *parser) parseGroup() error {
	for !p.r.atEnd() {
		at := p.r.offset()
		raw, err := p.r.readU16BE()
		if err != nil {
			return fmt.Errorf("failed to read group chunk tag at 0x%X: %w", at, err)
		}
		if tag := ChunkTag(raw); tag != ChunkColorEntry && tag != ChunkGroupColorEntry {
			return p.r.seekRelative(-2)
		}
		entry, err := p.parseChunkBody()
		if err != nil {
			return err
		}
		p.doc.Entries = append(p.doc.Entries, entry)
	}
	return nil
}

func (p *parser) parseChunkBody() (entry ColorEntry, err error) {
	at := p.r.offset()
	length, err := p.r.readU32BE()
	if err != nil {
		return entry, fmt.Errorf("failed to read chunk length at 0x%X: %w", at, err)
	}
	raw, err := p.r.readBytes(int(length))
	if err != nil {
		return entry, fmt.Errorf("failed to read chunk body at 0x%X: %w", at, err)
	}
	base := at + 4
	body := newByteReader(raw)
	nameLen, err := body.readU16BE()
	if err != nil {
		return entry, fmt.Errorf("failed to read name length of chunk at 0x%X: %w", at, err)
	}
	if entry.Name, err = body.readFixedUTF16BEString(2 * int(nameLen)); err != nil {
		return entry, fmt.Errorf("failed to read name of chunk at 0x%X: %w", at, err)
	}
	entry.Color = Black
	if body.atEnd() {
		return entry, nil
	}
	if body.remaining() < 4 {
		return entry, p.warn(ErrTruncatedColorChunk, base+body.offset(), fmt.Sprintf("%d bytes of color data", body.remaining()))
	}
	tag, _ := body.readBytes(4)
	entry.Model = strings.Trim(string(tag), " \x00")
	model, ok := p.models[entry.Model]
	if !ok || model.Convert == nil {
		p.log.Debug().Str("model", entry.Model).Int("offset", at).Msg("unknown color model")
		entry.Color = White
		return entry, nil
	}
	if model.Warning != nil && !p.warned[entry.Model] {
		p.warned[entry.Model] = true
		if err = p.warn(model.Warning, at, entry.Model); err != nil {
			return entry, err
		}
	}
	values := make([]float32, model.Components)
	for i := range values {
		if values[i], err = body.readFloat32BE(); err != nil {
			return entry, fmt.Errorf("failed to read %s component %d of chunk at 0x%X: %w", entry.Model, i, at, err)
		}
	}
	entry.Color = model.Convert(values)
	st, err := body.readI16BE()
	if err != nil {
		return entry, fmt.Errorf("failed to read swatch type of chunk at 0x%X: %w", at, err)
	}
	entry.SwatchType = SwatchType(st)
	return entry, nil
}

// warn records a warning - returning an error only if ParseOptions.ErrorOnWarning is set
func (p *parser) warn(err error, offset int, detail string) error {
	w := Warning{Err: err, Offset: offset, Detail: detail}
	p.doc.Warnings = append(p.doc.Warnings, w)
	p.log.Warn().Err(err).Int("offset", offset).Str("detail", detail).Msg("ASE parse warning")
	if p.options.ErrorOnWarning {
		return w
	}
	return nil
}
