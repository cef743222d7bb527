package swatchr

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Texture returns the swatch as an image one pixel high with one pixel per color
//
// the texture is cached (and regenerated on SignalChange) - it returns nil for an empty swatch
func (s *Swatch) Texture() *image.NRGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.texture == nil {
		s.texture = s.createTexture()
	}
	return s.texture
}

func (s *Swatch) createTexture() *image.NRGBA {
	if len(s.colors) == 0 {
		return nil
	}
	img := image.NewNRGBA(image.Rect(0, 0, len(s.colors), 1))
	for x, c := range s.colors {
		img.SetNRGBA(x, 0, c.NRGBA())
	}
	return img
}

// TextureOptions determines the size of an exported texture
type TextureOptions struct {
	// CellWidth is the width, in pixels, of each color strip (default 1)
	CellWidth int
	// Height is the height of the texture in pixels (default 1)
	Height int
}

// WritePNG encodes the swatch as a PNG of horizontal color strips
//
// if options is nil, each color is a single pixel
func WritePNG(w io.Writer, s *Swatch, options *TextureOptions) error {
	src := s.Texture()
	if src == nil {
		return errors.New("cannot export empty swatch to texture")
	}
	cellWidth, height := 1, 1
	if options != nil {
		if options.CellWidth > 0 {
			cellWidth = options.CellWidth
		}
		if options.Height > 0 {
			height = options.Height
		}
	}
	var img image.Image = src
	if cellWidth != 1 || height != 1 {
		dst := image.NewNRGBA(image.Rect(0, 0, src.Bounds().Dx()*cellWidth, height))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		img = dst
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode texture: %w", err)
	}
	return nil
}
