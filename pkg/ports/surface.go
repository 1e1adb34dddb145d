package ports

import "image"

// Surface is a paint target that displays whole images, such as a video
// label in the side-by-side view or the overlay canvas.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() image.Point

	// Present replaces the displayed content.
	Present(img image.Image) error
}

// Notifier shows blocking messages to the user. Like Logger, title and
// message are message keys that implementations may localize before
// formatting message with args.
type Notifier interface {
	// Warn reports a recoverable user-input problem.
	Warn(title, message string, args ...interface{})

	// Error reports a failed action.
	Error(title, message string, args ...interface{})
}
