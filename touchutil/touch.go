package touchutil

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
)

// TapSlop is how far a touch may travel and still count as a tap.
const TapSlop = 12.0

type TouchType int

const (
	TouchTypeMouseButtonPress = iota
	TouchTypeScreenTouch
)

type TouchID struct {
	touchType TouchType
	apiID     any
}

type Touch interface {
	Update()
	ID() TouchID
	IsJustReleased() bool
	Position() *mathutil.Vector2D
	PreviousPosition() *mathutil.Vector2D
	StartPosition() *mathutil.Vector2D
}

// Tracker follows mouse and screen touches across frames and reduces them
// to a horizontal drag delta and a list of taps.
type Tracker struct {
	touches     []Touch
	justTouched []ebiten.TouchID
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Update must be called once per frame. dx is the horizontal movement of
// the oldest active touch since the previous frame; taps are the release
// positions of touches released within TapSlop of where they started.
func (t *Tracker) Update() (dx float64, taps []*mathutil.Vector2D) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		t.touches = append(t.touches, &mouseButtonPress{id: ebiten.MouseButtonLeft})
	}
	t.justTouched = inpututil.AppendJustPressedTouchIDs(t.justTouched[:0])
	for _, id := range t.justTouched {
		t.touches = append(t.touches, &screenTouch{id: id})
	}

	for i, touch := range t.touches {
		touch.Update()
		prev := touch.PreviousPosition()
		if prev == nil {
			continue
		}
		if i == 0 {
			dx = touch.Position().X - prev.X
		}
	}

	for _, touch := range t.touches {
		if touch.IsJustReleased() && touch.Position().Sub(touch.StartPosition()).Norm() <= TapSlop {
			taps = append(taps, touch.Position().Clone())
		}
	}

	t.touches = lo.Reject(t.touches, func(touch Touch, _ int) bool {
		return touch.IsJustReleased()
	})
	return dx, taps
}

type mouseButtonPress struct {
	id                  ebiten.MouseButton
	pos, prevPos, start *mathutil.Vector2D
}

func (m *mouseButtonPress) Update() {
	if m.pos != nil {
		m.prevPos = m.pos.Clone()
	}
	x, y := ebiten.CursorPosition()
	m.pos = mathutil.NewVector2D(float64(x), float64(y))
	if m.start == nil {
		m.start = m.pos.Clone()
	}
}

func (m *mouseButtonPress) ID() TouchID {
	return TouchID{touchType: TouchTypeMouseButtonPress, apiID: m.id}
}

func (m *mouseButtonPress) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(m.id)
}

func (m *mouseButtonPress) Position() *mathutil.Vector2D         { return m.pos }
func (m *mouseButtonPress) PreviousPosition() *mathutil.Vector2D { return m.prevPos }
func (m *mouseButtonPress) StartPosition() *mathutil.Vector2D    { return m.start }

type screenTouch struct {
	id                  ebiten.TouchID
	pos, prevPos, start *mathutil.Vector2D
}

func (s *screenTouch) Update() {
	if s.pos != nil {
		s.prevPos = s.pos.Clone()
	}
	var x, y int
	if s.IsJustReleased() {
		x, y = inpututil.TouchPositionInPreviousTick(s.id)
	} else {
		x, y = ebiten.TouchPosition(s.id)
	}
	s.pos = mathutil.NewVector2D(float64(x), float64(y))
	if s.start == nil {
		s.start = s.pos.Clone()
	}
}

func (s *screenTouch) ID() TouchID {
	return TouchID{touchType: TouchTypeScreenTouch, apiID: s.id}
}

func (s *screenTouch) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(s.id)
}

func (s *screenTouch) Position() *mathutil.Vector2D         { return s.pos }
func (s *screenTouch) PreviousPosition() *mathutil.Vector2D { return s.prevPos }
func (s *screenTouch) StartPosition() *mathutil.Vector2D    { return s.start }
