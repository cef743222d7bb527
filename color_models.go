package swatchr

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is a normalized color triple, each component nominally in [0, 1]
type RGB struct {
	R, G, B float32
}

var (
	// White is the sentinel used for colors that cannot be decoded (LAB, unknown models)
	White = RGB{1, 1, 1}
	// Black is the sentinel used for chunks that carry no color data
	Black = RGB{0, 0, 0}
)

// NRGBA converts to an 8-bit opaque color (components are clamped to [0, 1])
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: unit8(c.R), G: unit8(c.G), B: unit8(c.B), A: 0xFF}
}

// Hex returns the color as "#rrggbb"
func (c RGB) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func unit8(v float32) uint8 {
	switch {
	case v <= 0 || math.IsNaN(float64(v)):
		return 0
	case v >= 1:
		return 0xFF
	}
	return uint8(math.Round(float64(v) * 255))
}

const (
	ModelRGB  = "RGB"
	ModelCMYK = "CMYK"
	ModelGray = "Gray"
	ModelHSB  = "HSB"
	ModelLAB  = "LAB"
)

// ColorModel describes how the components of a color model are converted to RGB
//
// the parser reads exactly Components big-endian float32 values after the model tag
// and passes them to Convert
type ColorModel struct {
	Components int
	Convert    func(values []float32) RGB
	// Warning, if non-nil, is recorded the first time the model is used in a document
	Warning error
}

var defaultColorModels map[string]ColorModel

func init() {
	defaultColorModels = map[string]ColorModel{
		ModelRGB: {
			Components: 3,
			Convert: func(v []float32) RGB {
				return RGBToRGB(v[0], v[1], v[2])
			},
		},
		ModelCMYK: {
			Components: 4,
			Convert: func(v []float32) RGB {
				return CMYKToRGB(v[0], v[1], v[2], v[3])
			},
			Warning: ErrApproximateColorModel,
		},
		ModelGray: {
			Components: 1,
			Convert: func(v []float32) RGB {
				return GrayToRGB(v[0])
			},
		},
		ModelHSB: {
			Components: 3,
			Convert: func(v []float32) RGB {
				return HSBToRGB(v[0], v[1], v[2])
			},
		},
		ModelLAB: {
			Components: 3,
			Convert: func(_ []float32) RGB {
				return White
			},
			Warning: ErrUnsupportedColorModel,
		},
	}
}

// RGBToRGB is the identity conversion
func RGBToRGB(r, g, b float32) RGB {
	return RGB{r, g, b}
}

// CMYKToRGB is a naive conversion that ignores any color space
func CMYKToRGB(c, m, y, k float32) RGB {
	black := 1 - k
	return RGB{
		R: (1 - c) * black,
		G: (1 - m) * black,
		B: (1 - y) * black,
	}
}

func GrayToRGB(g float32) RGB {
	return RGB{g, g, g}
}

// HSBToRGB converts hue, saturation and brightness (all in [0, 1]) to RGB
//
// hue wraps, so 1.0 is the same as 0.0
func HSBToRGB(h, s, v float32) RGB {
	if s == 0 {
		return RGB{v, v, v}
	}
	if v == 0 {
		return Black
	}
	h = h - float32(math.Floor(float64(h)))
	h6 := h * 6
	sector := int(math.Floor(float64(h6)))
	f := h6 - float32(sector)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch sector {
	case 0:
		return RGB{v, t, p}
	case 1:
		return RGB{q, v, p}
	case 2:
		return RGB{p, v, t}
	case 3:
		return RGB{p, q, v}
	case 4:
		return RGB{t, p, v}
	default:
		return RGB{v, p, q}
	}
}
