// Package framesink provides a Surface that saves every presented image as
// a numbered PNG file.
package framesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/vidcompare/pkg/ports"
)

// Sink writes presented images to <dir>/<name>-00000.png, -00001.png, ...
type Sink struct {
	dir      string
	name     string
	size     image.Point
	fs       ports.FileSystem
	renderer ports.Renderer

	index   int
	created bool
}

// New creates a sink reporting the given surface size.
func New(dir, name string, size image.Point, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		dir:      dir,
		name:     name,
		size:     size,
		fs:       fs,
		renderer: renderer,
	}
}

// Size returns the surface size.
func (s *Sink) Size() image.Point {
	return s.size
}

// Present encodes img as PNG and writes it to the next numbered file.
func (s *Sink) Present(img image.Image) error {
	if !s.created {
		if err := s.fs.MkdirAll(s.dir); err != nil {
			return err
		}
		s.created = true
	}
	data, err := s.renderer.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := s.fs.WriteFile(s.Path(s.index), data); err != nil {
		return err
	}
	s.index++
	return nil
}

// Path returns the file path of the index-th presented image.
func (s *Sink) Path(index int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s-%05d.png", s.name, index))
}

// Count returns the number of images written.
func (s *Sink) Count() int {
	return s.index
}

// Ensure Sink implements ports.Surface
var _ ports.Surface = (*Sink)(nil)
