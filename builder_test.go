package swatchr

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf16"
)

// aseBuilder builds raw ASE data for tests
type aseBuilder struct {
	bytes.Buffer
}

func newASE(blocks int32) *aseBuilder {
	b := &aseBuilder{}
	b.WriteString("ASEF")
	b.be(int16(1), int16(0), blocks)
	return b
}

func (b *aseBuilder) be(values ...any) *aseBuilder {
	for _, v := range values {
		_ = binary.Write(&b.Buffer, binary.BigEndian, v)
	}
	return b
}

func (b *aseBuilder) color(name string, model string, values ...float32) *aseBuilder {
	return b.chunk(ChunkColorEntry, colorBody(name, model, values...))
}

func (b *aseBuilder) groupStart(name string) *aseBuilder {
	return b.chunk(ChunkGroupStart, nameBytes(name))
}

func (b *aseBuilder) groupEnd() *aseBuilder {
	b.be(uint16(ChunkGroupEnd), uint32(0))
	return b
}

func (b *aseBuilder) chunk(tag ChunkTag, body []byte) *aseBuilder {
	b.be(uint16(tag), uint32(len(body)))
	b.Write(body)
	return b
}

func nameBytes(name string) []byte {
	var buf bytes.Buffer
	units := utf16.Encode([]rune(name + "\x00"))
	_ = binary.Write(&buf, binary.BigEndian, uint16(len(units)))
	_ = binary.Write(&buf, binary.BigEndian, units)
	return buf.Bytes()
}

func colorBody(name string, model string, values ...float32) []byte {
	var buf bytes.Buffer
	buf.Write(nameBytes(name))
	tag := []byte("    ")
	copy(tag, model)
	buf.Write(tag)
	for _, v := range values {
		_ = binary.Write(&buf, binary.BigEndian, math.Float32bits(v))
	}
	_ = binary.Write(&buf, binary.BigEndian, int16(SwatchNormal))
	return buf.Bytes()
}
