package swatchr

import (
	"encoding/binary"
	"image"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Swatch is a stored palette - an ordered list of colors built from one or more ASE documents
//
// a Swatch is safe for concurrent use
type Swatch struct {
	Name string

	mu        sync.RWMutex
	colors    []RGB
	texture   *image.NRGBA
	listeners map[int]func(*Swatch)
	nextID    int
}

// NewSwatch creates a Swatch with the given name and colors (the colors are copied)
func NewSwatch(name string, colors []RGB) *Swatch {
	return &Swatch{
		Name:   name,
		colors: append([]RGB(nil), colors...),
	}
}

// FromDocument creates a Swatch holding the colors of an ASE document
//
// the Swatch is named from the document title
func FromDocument(doc *Document) *Swatch {
	return NewSwatch(doc.Title, doc.Colors())
}

func (s *Swatch) NumColors() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.colors)
}

// Colors returns a copy of the swatch colors
func (s *Swatch) Colors() []RGB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]RGB, len(s.colors))
	copy(result, s.colors)
	return result
}

// Color returns the color at index i, or White if i is out of range
func (s *Swatch) Color(i int) RGB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.colors) {
		return White
	}
	return s.colors[i]
}

// AddColorsFromDocument appends all the colors of doc
func (s *Swatch) AddColorsFromDocument(doc *Document) {
	s.mu.Lock()
	s.colors = append(s.colors, doc.Colors()...)
	s.mu.Unlock()
	s.SignalChange()
}

// AddColorsFromSwatch appends all the colors of other
func (s *Swatch) AddColorsFromSwatch(other *Swatch) {
	colors := other.Colors()
	s.mu.Lock()
	s.colors = append(s.colors, colors...)
	s.mu.Unlock()
	s.SignalChange()
}

// ReplaceWith replaces all colors with those of other
func (s *Swatch) ReplaceWith(other *Swatch) {
	colors := other.Colors()
	s.mu.Lock()
	s.colors = colors
	if s.colors == nil {
		s.colors = []RGB{}
	}
	s.mu.Unlock()
	s.SignalChange()
}

// OnChange registers fn to be called (synchronously) whenever the swatch changes
//
// the returned func unregisters it
func (s *Swatch) OnChange(fn func(*Swatch)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listeners == nil {
		s.listeners = make(map[int]func(*Swatch))
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// SignalChange regenerates the cached texture and notifies listeners
func (s *Swatch) SignalChange() {
	s.mu.Lock()
	s.texture = s.createTexture()
	fns := make([]func(*Swatch), 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(s)
	}
}

// Fingerprint is a hash of the swatch colors (the name is not included)
func (s *Swatch) Fingerprint() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fingerprint(s.colors)
}

func fingerprint(colors []RGB) uint64 {
	d := xxhash.New()
	var buf [12]byte
	for _, c := range colors {
		binary.BigEndian.PutUint32(buf[0:4], math.Float32bits(c.R))
		binary.BigEndian.PutUint32(buf[4:8], math.Float32bits(c.G))
		binary.BigEndian.PutUint32(buf[8:12], math.Float32bits(c.B))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
