package swatchr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

const (
	assetMagic   = "SWCH"
	assetVersion = 1
)

type assetContent struct {
	Name        string       `json:"name"`
	Colors      [][3]float32 `json:"colors"`
	Fingerprint uint64       `json:"fingerprint"`
}

// SaveAsset writes the swatch as a palette asset
//
// layout: "SWCH", version byte, zstd compressed JSON content
func SaveAsset(w io.Writer, s *Swatch) error {
	colors := s.Colors()
	content := assetContent{
		Name:        s.Name,
		Colors:      make([][3]float32, len(colors)),
		Fingerprint: fingerprint(colors),
	}
	for i, c := range colors {
		content.Colors[i] = [3]float32{c.R, c.G, c.B}
	}
	if _, err := io.WriteString(w, assetMagic); err != nil {
		return err
	}
	if _, err := w.Write([]byte{assetVersion}); err != nil {
		return err
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err = json.NewEncoder(enc).Encode(content); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to encode asset: %w", err)
	}
	return enc.Close()
}

// LoadAsset reads a palette asset written by SaveAsset
func LoadAsset(r io.Reader) (*Swatch, error) {
	var hdr [5]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("failed to read asset header: %w", err)
	}
	if string(hdr[:4]) != assetMagic {
		return nil, errors.New("not a swatch asset")
	}
	if hdr[4] != assetVersion {
		return nil, fmt.Errorf("unsupported swatch asset version %d", hdr[4])
	}
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	var content assetContent
	if err = json.NewDecoder(dec).Decode(&content); err != nil {
		return nil, fmt.Errorf("failed to decode asset: %w", err)
	}
	colors := make([]RGB, len(content.Colors))
	for i, c := range content.Colors {
		colors[i] = RGB{c[0], c[1], c[2]}
	}
	if fp := fingerprint(colors); fp != content.Fingerprint {
		return nil, fmt.Errorf("asset fingerprint mismatch (expected %016x, got %016x)", content.Fingerprint, fp)
	}
	return NewSwatch(content.Name, colors), nil
}
