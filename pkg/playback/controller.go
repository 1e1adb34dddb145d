// Package playback implements the playback controller: it owns the logical
// streams, advances them on a repeating tick, keeps the seek indicator in
// step and presents every frame pair through the current view.
//
// All methods must be called from one goroutine, normally the event loop
// that also delivers scheduler ticks and user input.
package playback

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/user/vidcompare/pkg/frame"
	"github.com/user/vidcompare/pkg/ports"
	"github.com/user/vidcompare/pkg/seekbar"
)

// Presenter displays a logical frame pair.
type Presenter interface {
	ShowSideBySide(left, right frame.Frame) error
	ShowOverlay(left, right frame.Frame) error
}

type framePair struct {
	left  frame.Frame
	right frame.Frame
}

// Controller is the playback state machine.
type Controller struct {
	opener    ports.FrameSourceOpener
	scheduler ports.Scheduler
	presenter Presenter
	notifier  ports.Notifier
	log       ports.Logger
	seek      *seekbar.Indicator

	primary   Slot
	secondary Slot
	sess      Session
	resume    bool
	last      *framePair
	observers []func(State)
}

// New creates a controller with nothing loaded.
func New(opener ports.FrameSourceOpener, scheduler ports.Scheduler, presenter Presenter, notifier ports.Notifier, log ports.Logger) *Controller {
	c := &Controller{
		opener:    opener,
		scheduler: scheduler,
		presenter: presenter,
		notifier:  notifier,
		log:       log.WithComponent("playback"),
	}
	c.seek = seekbar.New(c)
	c.sess.DividerRatio = 0.5
	return c
}

// Indicator returns the seek indicator driven by this controller.
func (c *Controller) Indicator() *seekbar.Indicator {
	return c.seek
}

// Session returns a snapshot of the session state.
func (c *Controller) Session() Session {
	return c.sess
}

// OnStateChange registers fn to be called after every state transition.
func (c *Controller) OnStateChange(fn func(State)) {
	c.observers = append(c.observers, fn)
}

func (c *Controller) setState(s State) {
	if c.sess.State == s {
		return
	}
	c.log.Debug("State %s -> %s", c.sess.State, s)
	c.sess.State = s
	for _, fn := range c.observers {
		fn(s)
	}
}

// Load opens pathA and, if given, pathB. An empty pathB selects
// single-split mode. On failure the previous session is left untouched and
// nothing opened by this call stays open.
func (c *Controller) Load(pathA, pathB string) error {
	if pathA == "" {
		c.notifier.Warn(titleWarning, msgFirstNotSelected)
		return ErrNoPrimary
	}

	c.log.Debug("Video 1: %s", pathA)
	if pathB != "" {
		c.log.Debug("Video 2: %s", pathB)
	} else {
		c.log.Debug("Video 2 not provided, using Video 1 for both sides.")
	}

	srcA, err := c.open(pathA)
	if err != nil {
		c.notifier.Error(titleError, msgOpenFirstFailed)
		c.log.Error("Failed to open first video: %s: %v", pathA, err)
		return fmt.Errorf("%w: %s: %v", ErrOpen, pathA, err)
	}
	var srcB ports.FrameSource
	if pathB != "" {
		srcB, err = c.open(pathB)
		if err != nil {
			srcA.Release()
			c.notifier.Error(titleError, msgOpenSecondFailed)
			c.log.Error("Failed to open second video: %s: %v", pathB, err)
			return fmt.Errorf("%w: %s: %v", ErrOpen, pathB, err)
		}
	}

	// Both opened: replace the previous session.
	c.scheduler.Stop()
	c.resume = false
	c.last = nil
	c.releaseAll()

	a := NewStream(pathA, srcA)
	c.primary.Set(a)
	infoA := a.Info()
	infoB := infoA
	infoB.SplitFromPrimary = true
	c.sess.Mode = ModeSingleSplit
	if srcB != nil {
		b := NewStream(pathB, srcB)
		c.secondary.Set(b)
		infoB = b.Info()
		c.sess.Mode = ModeDual
	}

	c.sess.Streams = [2]StreamInfo{infoA, infoB}
	c.sess.PrimaryDurationMs = math.Min(infoA.DurationMs(), infoB.DurationMs())
	c.sess.PositionMs = 0
	c.sess.TickInterval = 0
	c.sess.Loaded = true
	c.sess.Controls = Controls{Play: true, Seek: true, ModeToggle: true}
	c.setState(StateStopped)

	c.seek.SetEnabled(true)
	prev := c.seek.BlockSignals(true)
	c.seek.SetRange(0, int(c.sess.PrimaryDurationMs))
	c.seek.SetValue(0)
	c.seek.BlockSignals(prev)

	c.log.Info("Loaded %s (%s mode), primary duration %.2f sec", pathA, c.sess.Mode, c.sess.PrimaryDurationMs/1000)
	c.rewind()
	c.displayInitial()
	return nil
}

func (c *Controller) open(path string) (ports.FrameSource, error) {
	src, err := c.opener.Open(path)
	if err != nil {
		return nil, err
	}
	if !src.IsOpen() {
		src.Release()
		return nil, errors.New("source not open")
	}
	return src, nil
}

func (c *Controller) releaseAll() {
	if err := c.primary.Release(); err != nil {
		c.log.Warn("Failed to release video 1: %v", err)
	}
	if err := c.secondary.Release(); err != nil {
		c.log.Warn("Failed to release video 2: %v", err)
	}
}

// EffectiveFPS returns the frame rate governing the tick: the faster of the
// two logical streams.
func (c *Controller) EffectiveFPS() float64 {
	a, ok := c.primary.Get()
	if !ok {
		return 0
	}
	fps := a.FPS()
	if b, ok := c.secondary.Get(); ok && c.sess.Mode == ModeDual {
		fps = math.Max(fps, b.FPS())
	}
	return fps
}

// TickInterval converts a frame rate into a whole-millisecond tick interval.
func TickInterval(fps float64) time.Duration {
	return time.Duration(math.Round(1000/fps)) * time.Millisecond
}

// Play starts or resumes playback from the current position.
func (c *Controller) Play() error {
	if !c.primary.Loaded() {
		c.notifier.Warn(titleWarning, msgLoadFirst)
		return ErrNotLoaded
	}
	if c.sess.Mode == ModeDual && !c.secondary.Loaded() {
		c.notifier.Warn(titleWarning, msgLoadSecond)
		return ErrNotLoaded
	}
	if c.sess.State == StatePlaying {
		return nil
	}

	fps := c.EffectiveFPS()
	if fps <= 0 {
		c.notifier.Error(titleError, msgInvalidFPS)
		c.log.Error("Invalid combined FPS: %.2f", fps)
		return fmt.Errorf("%w: %.2f", ErrInvalidFPS, fps)
	}
	c.sess.TickInterval = TickInterval(fps)

	if c.sess.State == StatePausedBySeek {
		// Resumes when the seek indicator is released.
		c.resume = true
		return nil
	}

	c.scheduler.Start(c.sess.TickInterval, c.Tick)
	c.log.Debug("Timer started with interval: %d ms", c.sess.TickInterval.Milliseconds())
	c.sess.Controls.Play = false
	c.sess.Controls.Pause = true
	c.sess.Controls.Stop = true
	c.setState(StatePlaying)
	return nil
}

// Pause suspends playback without moving the streams.
func (c *Controller) Pause() {
	switch c.sess.State {
	case StatePlaying:
		c.scheduler.Stop()
		c.sess.Controls.Play = true
		c.sess.Controls.Pause = false
		c.setState(StatePausedByUser)
		c.log.Debug("Timer paused")
	case StatePausedBySeek:
		c.resume = false
		c.sess.Controls.Play = true
		c.sess.Controls.Pause = false
	}
}

// Stop halts playback, rewinds both streams and shows the first frame pair.
// It does nothing when no stream is loaded.
func (c *Controller) Stop() {
	if !c.primary.Loaded() {
		return
	}
	c.halt()
	c.log.Debug("Timer stopped and videos reset")
	c.displayInitial()
}

// halt is Stop without redisplaying.
func (c *Controller) halt() {
	c.scheduler.Stop()
	c.resume = false
	c.rewind()
	c.sess.PositionMs = 0
	c.seek.SetValueSilently(0)
	c.sess.Controls.Play = true
	c.sess.Controls.Pause = false
	c.sess.Controls.Stop = false
	c.setState(StateStopped)
}

func (c *Controller) rewind() {
	for _, s := range c.physical() {
		if err := s.Rewind(); err != nil {
			c.log.Error("Failed to rewind %s: %v", s.path, err)
		}
	}
}

// physical returns the loaded streams, primary first.
func (c *Controller) physical() []*Stream {
	var out []*Stream
	if a, ok := c.primary.Get(); ok {
		out = append(out, a)
	}
	if b, ok := c.secondary.Get(); ok {
		out = append(out, b)
	}
	return out
}

// readPair reads one logical frame pair.
func (c *Controller) readPair() (framePair, error) {
	a, ok := c.primary.Get()
	if !ok {
		return framePair{}, ErrNotLoaded
	}
	fa, err := a.Read()
	if err != nil {
		return framePair{}, err
	}
	if c.sess.Mode == ModeSingleSplit {
		left, right, err := fa.Split()
		if err != nil {
			return framePair{}, err
		}
		return framePair{left: left, right: right}, nil
	}

	b, ok := c.secondary.Get()
	if !ok {
		return framePair{}, ErrNotLoaded
	}
	fb, err := b.Read()
	if err != nil {
		return framePair{}, err
	}
	return framePair{left: fa, right: fb}, nil
}

// displayInitial shows the first frame pair and rewinds again.
func (c *Controller) displayInitial() {
	p, err := c.readPair()
	switch {
	case errors.Is(err, frame.ErrTooNarrow):
		c.tooNarrow()
		return
	case err != nil:
		c.log.Debug("Failed to read initial frames: %v", err)
	default:
		c.present(p)
	}
	c.rewind()
}

func (c *Controller) tooNarrow() {
	c.log.Error("Frame width too small to split.")
	c.notifier.Error(titleError, msgTooNarrow)
	c.halt()
}

func (c *Controller) present(p framePair) {
	c.last = &p
	var err error
	if c.sess.View == ViewOverlay {
		err = c.presenter.ShowOverlay(p.left, p.right)
	} else {
		err = c.presenter.ShowSideBySide(p.left, p.right)
	}
	if err != nil {
		c.log.Error("Error during frame display: %v", err)
		c.notifier.Error(titleError, msgDisplayFailed, err)
	}
}

// positionMs is the earlier of the logical stream positions.
func (c *Controller) positionMs() float64 {
	pos := math.Inf(1)
	for _, s := range c.physical() {
		pos = math.Min(pos, s.PositionMs())
	}
	if math.IsInf(pos, 1) {
		return 0
	}
	return pos
}

func (c *Controller) exhausted() bool {
	for _, s := range c.physical() {
		if s.Exhausted() {
			return true
		}
	}
	return false
}

// Tick advances both logical streams by one frame. It is a no-op unless
// playing.
func (c *Controller) Tick() {
	if c.sess.State != StatePlaying {
		return
	}

	p, err := c.readPair()
	switch {
	case errors.Is(err, ports.ErrEndOfStream):
		c.log.Debug("End of stream reached.")
		c.Stop()
		return
	case errors.Is(err, frame.ErrTooNarrow):
		c.tooNarrow()
		return
	case err != nil:
		c.log.Error("Error during frame update: %v", err)
		c.Stop()
		c.notifier.Error(titleError, msgPlaybackFailed, err)
		return
	}

	c.present(p)

	pos := c.positionMs()
	c.sess.PositionMs = pos
	c.log.Debug("Current playback position: %.2f seconds", pos/1000)
	c.seek.SetValueSilently(int(pos))

	if (c.sess.PrimaryDurationMs > 0 && pos >= c.sess.PrimaryDurationMs) || c.exhausted() {
		c.log.Debug("End of playback reached at %.2f seconds", pos/1000)
		c.Stop()
	}
}

// SeekPressed suspends a running playback while the indicator is held.
func (c *Controller) SeekPressed() {
	if c.sess.State != StatePlaying {
		return
	}
	c.scheduler.Stop()
	c.resume = true
	c.setState(StatePausedBySeek)
	c.log.Debug("Playback paused for seeking")
}

// SeekMoved positions both streams at positionMs and shows the frame pair
// found there.
func (c *Controller) SeekMoved(positionMs int) {
	if !c.primary.Loaded() {
		return
	}
	ms := float64(positionMs)
	c.log.Debug("Seekbar moved to position: %.3f seconds", ms/1000)

	for _, s := range c.physical() {
		if err := s.SeekMs(ms); err != nil {
			c.seekFailed(err)
			return
		}
	}
	c.sess.PositionMs = ms

	p, err := c.readPair()
	switch {
	case errors.Is(err, ports.ErrEndOfStream):
		c.log.Debug("No frame at %.3f seconds", ms/1000)
	case errors.Is(err, frame.ErrTooNarrow):
		c.tooNarrow()
	case err != nil:
		c.seekFailed(err)
	default:
		c.present(p)
	}
}

func (c *Controller) seekFailed(err error) {
	c.log.Error("Error during seeking: %v", err)
	c.Stop()
	c.notifier.Error(titleError, msgSeekFailed, err)
}

// SeekReleased resumes playback if it was running when the seek began.
func (c *Controller) SeekReleased() {
	if c.sess.State != StatePausedBySeek {
		return
	}
	if c.resume && c.sess.TickInterval > 0 {
		c.resume = false
		c.scheduler.Start(c.sess.TickInterval, c.Tick)
		c.sess.Controls.Play = false
		c.sess.Controls.Pause = true
		c.sess.Controls.Stop = true
		c.setState(StatePlaying)
		c.log.Debug("Playback resumed after seeking")
		return
	}
	c.resume = false
	c.setState(StatePausedByUser)
}

// SetView switches between side-by-side and overlay presentation and
// re-presents the current frame pair. The overlay view needs a loaded
// stream; otherwise the view reverts to side-by-side with a warning.
func (c *Controller) SetView(v View) error {
	if v == ViewOverlay && !c.primary.Loaded() {
		c.sess.View = ViewSideBySide
		c.notifier.Warn(titleWarning, msgOverlayNeedsVideo)
		return ErrOverlayUnavailable
	}
	c.sess.View = v
	if v == ViewOverlay {
		c.log.Debug("Switched to Overlay Mode")
	} else {
		c.log.Debug("Switched to Side-by-Side Mode")
	}
	if c.last != nil {
		c.present(*c.last)
	}
	return nil
}

// DividerChanged records the overlay divider ratio.
func (c *Controller) DividerChanged(ratio float64) {
	c.sess.DividerRatio = ratio
	c.log.Debug("Divider set to %.2f%%", ratio*100)
}

// Shutdown stops the tick and releases every stream.
func (c *Controller) Shutdown() {
	c.scheduler.Stop()
	c.resume = false
	c.releaseAll()
	c.last = nil
	c.sess.Loaded = false
	c.sess.Controls = Controls{}
	c.seek.SetEnabled(false)
	c.setState(StateStopped)
	c.log.Debug("Released video resources")
}

var _ seekbar.Listener = (*Controller)(nil)
