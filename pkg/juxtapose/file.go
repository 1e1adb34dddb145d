package juxtapose

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/vidcompare/pkg/ports"
)

// WritePNG composes left and right and writes the result to path as PNG,
// creating the parent directory if needed.
func WritePNG(fs ports.FileSystem, renderer ports.Renderer, path string, left, right image.Image, opts Options) error {
	data, err := renderer.EncodePNG(Compose(left, right, opts))
	if err != nil {
		return fmt.Errorf("encode side-by-side image: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	if err := fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
