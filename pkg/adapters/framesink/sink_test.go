package framesink

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/vidcompare/pkg/mocks"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("out", "left")

func TestSink_Present(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{}
	sink := New(testBaseDir, "left", image.Pt(600, 350), fs, renderer)

	if got := sink.Size(); got != image.Pt(600, 350) {
		t.Errorf("expected size 600x350, got %v", got)
	}

	for i := 0; i < 3; i++ {
		if err := sink.Present(image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
			t.Fatalf("Present failed: %v", err)
		}
	}

	if sink.Count() != 3 {
		t.Errorf("expected 3 frames, got %d", sink.Count())
	}
	for _, name := range []string{"left-00000.png", "left-00001.png", "left-00002.png"} {
		path := filepath.Join(testBaseDir, name)
		if _, ok := fs.GetFile(path); !ok {
			t.Errorf("expected file at %s", path)
		}
	}
	if ok, _ := fs.Exists(testBaseDir); !ok {
		t.Error("expected directory to be created")
	}
}

func TestSink_EncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{
		EncodePNGFunc: func(image.Image) ([]byte, error) { return nil, errors.New("encode failed") },
	}
	sink := New(testBaseDir, "overlay", image.Pt(10, 10), fs, renderer)

	if err := sink.Present(image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Fatal("expected error")
	}
	if sink.Count() != 0 {
		t.Errorf("expected no frames counted, got %d", sink.Count())
	}
}

func TestSink_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(string, []byte) error { return errors.New("disk full") }
	sink := New(testBaseDir, "overlay", image.Pt(10, 10), fs, &mocks.Renderer{})

	if err := sink.Present(image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Fatal("expected error")
	}
}
