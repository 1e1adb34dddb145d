// Package nullsink provides a Surface that keeps only the latest presented image.
package nullsink

import (
	"image"

	"github.com/user/vidcompare/pkg/ports"
)

// Sink is an in-memory implementation of ports.Surface.
// It counts presented images and keeps the most recent one.
type Sink struct {
	size  image.Point
	count int
	last  image.Image
}

// New creates a new NullSink of the given size.
func New(size image.Point) *Sink {
	return &Sink{size: size}
}

// Size returns the surface size.
func (s *Sink) Size() image.Point {
	return s.size
}

// Present replaces the held image with img.
func (s *Sink) Present(img image.Image) error {
	s.count++
	s.last = img
	return nil
}

// Last returns the most recently presented image, or nil.
func (s *Sink) Last() image.Image {
	return s.last
}

// Count returns the number of images presented.
func (s *Sink) Count() int {
	return s.count
}

// Ensure Sink implements ports.Surface
var _ ports.Surface = (*Sink)(nil)
