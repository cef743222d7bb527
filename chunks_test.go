package swatchr

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseChunks_GroupFlattened(t *testing.T) {
	data := newASE(5).
		groupStart("Brand").
		color("Nested 1", ModelRGB, 0.1, 0.2, 0.3).
		color("Nested 2", ModelRGB, 0.4, 0.5, 0.6).
		groupEnd().
		color("Top", ModelRGB, 0.7, 0.8, 0.9).Bytes()
	doc, err := Parse(data, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nested 1", "Nested 2", "Top"}, doc.Names())
	assert.Equal(t, []RGB{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}, {0.7, 0.8, 0.9}}, doc.Colors())
	for _, e := range doc.Entries {
		assert.NotContains(t, e.Name, "Brand")
	}
	assert.Equal(t, "Top", doc.Title)
}

func TestParseChunks_GroupTitle(t *testing.T) {
	t.Run("Group name overwrites title", func(t *testing.T) {
		data := newASE(3).
			color("First", ModelRGB, 0, 0, 0).
			groupStart("Group").
			color("Nested", ModelRGB, 1, 1, 1).
			groupEnd().Bytes()
		doc, err := Parse(data, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, doc.NumColors())
		// nested entries do not overwrite the title...
		assert.Equal(t, "Group", doc.Title)
	})
	t.Run("Empty group", func(t *testing.T) {
		data := newASE(2).groupStart("Empty").groupEnd().Bytes()
		doc, err := Parse(data, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, doc.NumColors())
		assert.Equal(t, "Empty", doc.Title)
	})
}

func TestParseChunks_GroupAlternateEntryTag(t *testing.T) {
	b := newASE(3).groupStart("G")
	b.chunk(ChunkGroupColorEntry, colorBody("Alt", ModelGray, 0.25))
	b.groupEnd()
	doc, err := Parse(b.Bytes(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, doc.NumColors())
	assert.Equal(t, "Alt", doc.Entries[0].Name)
	assert.Equal(t, RGB{0.25, 0.25, 0.25}, doc.Entries[0].Color)

	// outside a group the alternate tag is not a color entry...
	b = newASE(1)
	b.chunk(ChunkGroupColorEntry, colorBody("Alt", ModelGray, 0.25))
	doc, err = Parse(b.Bytes(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.NumColors())
}

func TestParseChunks_GroupPushback(t *testing.T) {
	t.Run("Sibling group", func(t *testing.T) {
		data := newASE(4).
			groupStart("G1").
			color("A", ModelRGB, 1, 0, 0).
			groupStart("G2").
			color("B", ModelRGB, 0, 1, 0).
			groupEnd().Bytes()
		doc, err := Parse(data, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, doc.Names())
		assert.Equal(t, "G2", doc.Title)
	})
	t.Run("Unknown tag ends group", func(t *testing.T) {
		b := newASE(3).groupStart("G").color("A", ModelRGB, 1, 0, 0)
		b.be(uint16(0xBEEF))
		b.color("B", ModelRGB, 0, 0, 1)
		doc, err := Parse(b.Bytes(), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, doc.Names())
		assert.Equal(t, "B", doc.Title)
	})
	t.Run("Group at end of data", func(t *testing.T) {
		data := newASE(2).groupStart("G").color("A", ModelRGB, 1, 0, 0).Bytes()
		doc, err := Parse(data, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, doc.Names())
	})
}

func TestParseChunks_UnknownTagsResync(t *testing.T) {
	b := newASE(2)
	b.be(uint16(0x1234), uint16(0x5678))
	b.color("A", ModelRGB, 1, 0, 0)
	b.be(uint16(0xFFFF))
	b.color("B", ModelRGB, 0, 1, 0)
	doc, err := Parse(b.Bytes(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, doc.Names())
	assert.Empty(t, doc.Warnings)
}

func TestParseChunks_ColorData(t *testing.T) {
	t.Run("No color data", func(t *testing.T) {
		data := newASE(1).chunk(ChunkColorEntry, nameBytes("Bare")).Bytes()
		doc, err := Parse(data, nil)
		require.NoError(t, err)
		require.Equal(t, 1, doc.NumColors())
		assert.Equal(t, ColorEntry{Name: "Bare", Color: Black}, doc.Entries[0])
		assert.Empty(t, doc.Warnings)
	})
	t.Run("Truncated color data", func(t *testing.T) {
		body := append(nameBytes("Short"), 'R', 'G')
		data := newASE(1).chunk(ChunkColorEntry, body).Bytes()
		doc, err := Parse(data, nil)
		require.NoError(t, err)
		require.Equal(t, 1, doc.NumColors())
		assert.Equal(t, Black, doc.Entries[0].Color)
		require.Len(t, doc.Warnings, 1)
		assert.ErrorIs(t, doc.Warnings[0], ErrTruncatedColorChunk)
	})
	t.Run("Empty name", func(t *testing.T) {
		body := []byte{0, 0}
		body = append(body, colorBody("", ModelRGB, 1, 1, 1)[4:]...)
		data := newASE(1).chunk(ChunkColorEntry, body).Bytes()
		doc, err := Parse(data, nil)
		require.NoError(t, err)
		require.Equal(t, 1, doc.NumColors())
		assert.Equal(t, "", doc.Entries[0].Name)
		assert.Equal(t, White, doc.Entries[0].Color)
	})
	t.Run("Extra trailing body bytes", func(t *testing.T) {
		body := append(colorBody("Padded", ModelRGB, 0.5, 0.5, 0.5), 0, 0, 0, 0)
		data := newASE(2).chunk(ChunkColorEntry, body).color("Next", ModelGray, 1).Bytes()
		doc, err := Parse(data, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Padded", "Next"}, doc.Names())
	})
}

func TestParseChunks_ColorModels(t *testing.T) {
	testCases := []struct {
		model    string
		values   []float32
		expected RGB
	}{
		{ModelRGB, []float32{0.2, 0.4, 0.6}, RGB{0.2, 0.4, 0.6}},
		{ModelCMYK, []float32{0, 0, 0, 0}, RGB{1, 1, 1}},
		{ModelCMYK, []float32{1, 0, 0, 0}, RGB{0, 1, 1}},
		{ModelGray, []float32{0.5}, RGB{0.5, 0.5, 0.5}},
		{ModelHSB, []float32{0, 1, 1}, RGB{1, 0, 0}},
		{ModelHSB, []float32{1, 1, 1}, RGB{1, 0, 0}},
		{ModelLAB, []float32{50, 20, -20}, White},
		{"QQQQ", nil, White},
	}
	for _, tc := range testCases {
		t.Run(tc.model, func(t *testing.T) {
			data := newASE(1).color("C", tc.model, tc.values...).Bytes()
			doc, err := Parse(data, nil)
			require.NoError(t, err)
			require.Equal(t, 1, doc.NumColors())
			assertRGB(t, tc.expected, doc.Entries[0].Color)
			assert.Equal(t, tc.model, doc.Entries[0].Model)
		})
	}
}

func TestParseChunks_WarnOncePerDocument(t *testing.T) {
	b := newASE(6)
	for i := 0; i < 3; i++ {
		b.color("Lab", ModelLAB, 50, 0, 0)
		b.color("Ink", ModelCMYK, 0.1, 0.2, 0.3, 0.4)
	}
	data := b.Bytes()
	doc, err := Parse(data, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, doc.NumColors())
	require.Len(t, doc.Warnings, 2)
	assert.ErrorIs(t, doc.Warnings[0], ErrUnsupportedColorModel)
	assert.ErrorIs(t, doc.Warnings[1], ErrApproximateColorModel)

	// warning state does not leak between parses...
	doc, err = Parse(data, nil)
	require.NoError(t, err)
	assert.Len(t, doc.Warnings, 2)
}

func TestParseChunks_UnknownModelNoWarning(t *testing.T) {
	data := newASE(1).color("Odd", "ZZZ", 1, 2, 3).Bytes()
	doc, err := Parse(data, nil)
	require.NoError(t, err)
	assert.Equal(t, White, doc.Entries[0].Color)
	assert.Empty(t, doc.Warnings)
}

func TestParseChunks_CustomColorModel(t *testing.T) {
	options := &ParseOptions{
		ColorModels: map[string]ColorModel{
			"INV": {
				Components: 3,
				Convert: func(v []float32) RGB {
					return RGB{1 - v[0], 1 - v[1], 1 - v[2]}
				},
			},
			// override LAB to something approximate...
			ModelLAB: {
				Components: 3,
				Convert: func(v []float32) RGB {
					return GrayToRGB(v[0] / 100)
				},
			},
		},
	}
	data := newASE(3).
		color("Inv", "INV", 1, 0, 0.25).
		color("Lab", ModelLAB, 50, 0, 0).
		color("Rgb", ModelRGB, 0, 0, 1).Bytes()
	doc, err := Parse(data, options)
	require.NoError(t, err)
	assert.Equal(t, []RGB{{0, 1, 0.75}, {0.5, 0.5, 0.5}, {0, 0, 1}}, doc.Colors())
	assert.Empty(t, doc.Warnings)
	// defaults are untouched...
	assert.Equal(t, ErrUnsupportedColorModel, defaultColorModels[ModelLAB].Warning)
}

func TestParseChunks_Fatal(t *testing.T) {
	testCases := map[string][]byte{
		"Chunk length missing": newASE(1).be(uint16(ChunkColorEntry), uint16(0)).Bytes(),
		"Chunk body short":     newASE(1).be(uint16(ChunkColorEntry), uint32(100), uint32(0)).Bytes(),
		"Name length missing":  newASE(1).chunk(ChunkColorEntry, []byte{0}).Bytes(),
		"Name short":           newASE(1).chunk(ChunkColorEntry, []byte{0, 4, 0, 'A'}).Bytes(),
		"Components short":     newASE(1).chunk(ChunkColorEntry, colorBody("X", ModelRGB, 1, 1, 1)[:18]).Bytes(),
		"Swatch type missing":  newASE(1).chunk(ChunkColorEntry, colorBody("X", ModelGray, 1)[:14]).Bytes(),
		"Group end short":      newASE(1).be(uint16(ChunkGroupEnd), uint16(0)).Bytes(),
		"Odd trailing byte":    append(newASE(1).color("A", ModelRGB, 1, 1, 1).Bytes(), 0),
		"Group body short":     newASE(1).be(uint16(ChunkGroupStart), uint32(10)).Bytes(),
		"Group odd byte":       append(newASE(1).groupStart("G").Bytes(), 0),
	}
	for name, data := range testCases {
		t.Run(name, func(t *testing.T) {
			doc, err := Parse(data, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnexpectedEndOfData)
			assert.Nil(t, doc)
		})
	}
}
