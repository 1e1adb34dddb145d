package playback

import "errors"

var (
	// ErrNoPrimary is returned by Load when no first path is given.
	ErrNoPrimary = errors.New("playback: first video not selected")

	// ErrOpen is returned by Load when a file cannot be opened.
	ErrOpen = errors.New("playback: failed to open video")

	// ErrNotLoaded is returned when an action needs a loaded stream.
	ErrNotLoaded = errors.New("playback: no stream loaded")

	// ErrInvalidFPS is returned by Play when the effective frame rate is not positive.
	ErrInvalidFPS = errors.New("playback: invalid frame rate")

	// ErrOverlayUnavailable is returned when switching to the overlay view
	// with nothing loaded.
	ErrOverlayUnavailable = errors.New("playback: overlay view needs a loaded stream")
)

// Dialog titles and messages. They double as l10n keys.
const (
	titleWarning = "Warning"
	titleError   = "Error"

	msgFirstNotSelected  = "First video not selected."
	msgOpenFirstFailed   = "Failed to open the first video. Please check the file and try again."
	msgOpenSecondFailed  = "Failed to open the second video. Please check the file and try again."
	msgLoadFirst         = "Please load at least one video first."
	msgLoadSecond        = "Please load the second video or leave it empty."
	msgInvalidFPS        = "Invalid FPS detected. Cannot start playback."
	msgOverlayNeedsVideo = "Please load at least one video before switching to Overlay Mode."
	msgTooNarrow         = "Video frame width is too small to split for side-by-side comparison."
	msgDisplayFailed     = "An error occurred while displaying a frame:\n%v"
	msgPlaybackFailed    = "An error occurred during playback:\n%v"
	msgSeekFailed        = "An error occurred while seeking:\n%v"
)
