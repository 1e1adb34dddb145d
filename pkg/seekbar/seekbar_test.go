package seekbar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/vidcompare/pkg/ports"
)

type recorder struct {
	events []string
	moves  []int
}

func (r *recorder) SeekPressed()  { r.events = append(r.events, "press") }
func (r *recorder) SeekReleased() { r.events = append(r.events, "release") }
func (r *recorder) SeekMoved(ms int) {
	r.events = append(r.events, "move")
	r.moves = append(r.moves, ms)
}

func newIndicator() (*Indicator, *recorder) {
	rec := &recorder{}
	ind := New(rec)
	ind.SetRange(0, 8000)
	ind.SetEnabled(true)
	return ind, rec
}

func TestIndicator_DragSequence(t *testing.T) {
	ind, rec := newIndicator()

	assert.True(t, ind.Handle(Event{Kind: ports.InputPress, Value: 1000}))
	assert.True(t, ind.Pressed())
	assert.True(t, ind.Handle(Event{Kind: ports.InputMove, Value: 2000}))
	assert.True(t, ind.Handle(Event{Kind: ports.InputMove, Value: 9000}))
	assert.True(t, ind.Handle(Event{Kind: ports.InputRelease}))

	assert.Equal(t, []string{"press", "move", "move", "move", "release"}, rec.events)
	assert.Equal(t, []int{1000, 2000, 8000}, rec.moves)
	assert.Equal(t, 8000, ind.Value())
	assert.False(t, ind.Pressed())
}

func TestIndicator_BlockedWritesAreSilent(t *testing.T) {
	ind, rec := newIndicator()

	prev := ind.BlockSignals(true)
	assert.False(t, prev)
	ind.SetValue(4000)
	assert.True(t, ind.BlockSignals(prev))

	assert.Equal(t, 4000, ind.Value())
	assert.Empty(t, rec.events)

	ind.SetValueSilently(100)
	assert.Equal(t, 100, ind.Value())
	assert.Empty(t, rec.events)
}

func TestIndicator_ProgrammaticWriteNotifies(t *testing.T) {
	ind, rec := newIndicator()

	ind.SetValue(300)
	ind.SetValue(300)

	assert.Equal(t, []int{300}, rec.moves)
}

func TestIndicator_DisabledIgnoresInput(t *testing.T) {
	ind, rec := newIndicator()
	ind.SetEnabled(false)

	assert.False(t, ind.Handle(Event{Kind: ports.InputPress, Value: 10}))
	assert.False(t, ind.Handle(Event{Kind: ports.InputMove, Value: 10}))
	assert.Empty(t, rec.events)
	assert.Equal(t, 0, ind.Value())
}

func TestIndicator_MoveWithoutPress(t *testing.T) {
	ind, rec := newIndicator()

	assert.False(t, ind.Handle(Event{Kind: ports.InputMove, Value: 10}))
	assert.False(t, ind.Handle(Event{Kind: ports.InputRelease}))
	assert.Empty(t, rec.events)
}

func TestIndicator_SetRangeClampsValue(t *testing.T) {
	ind, rec := newIndicator()
	ind.SetValueSilently(7000)

	ind.SetRange(0, 5000)

	lo, hi := ind.Range()
	assert.Equal(t, [2]int{0, 5000}, [2]int{lo, hi})
	assert.Equal(t, 5000, ind.Value())
	assert.Equal(t, []int{5000}, rec.moves)
}
