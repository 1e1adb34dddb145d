package mocks

import (
	"fmt"
	"image"

	"github.com/user/vidcompare/pkg/ports"
)

// Surface records presented images.
type Surface struct {
	W, H       int
	Presented  []image.Image
	PresentErr error
}

// NewSurface creates a surface of the given size.
func NewSurface(w, h int) *Surface {
	return &Surface{W: w, H: h}
}

func (m *Surface) Size() image.Point {
	return image.Pt(m.W, m.H)
}

func (m *Surface) Present(img image.Image) error {
	if m.PresentErr != nil {
		return m.PresentErr
	}
	m.Presented = append(m.Presented, img)
	return nil
}

// Last returns the most recently presented image, or nil.
func (m *Surface) Last() image.Image {
	if len(m.Presented) == 0 {
		return nil
	}
	return m.Presented[len(m.Presented)-1]
}

var _ ports.Surface = (*Surface)(nil)

// Message is one dialog shown through a Notifier. Key is the unformatted
// message and Text the formatted one.
type Message struct {
	Title string
	Key   string
	Text  string
}

func newMessage(title, key string, args []interface{}) Message {
	text := key
	if len(args) > 0 {
		text = fmt.Sprintf(key, args...)
	}
	return Message{Title: title, Key: key, Text: text}
}

// Notifier records dialogs.
type Notifier struct {
	Warnings []Message
	Errors   []Message
}

func (m *Notifier) Warn(title, message string, args ...interface{}) {
	m.Warnings = append(m.Warnings, newMessage(title, message, args))
}

func (m *Notifier) Error(title, message string, args ...interface{}) {
	m.Errors = append(m.Errors, newMessage(title, message, args))
}

// Reset forgets recorded dialogs.
func (m *Notifier) Reset() {
	m.Warnings = nil
	m.Errors = nil
}

var _ ports.Notifier = (*Notifier)(nil)
