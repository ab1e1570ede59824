package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/surrender/engine/control"
)

// Binding ties an ebiten key to a viewer command.
type Binding struct {
	Key ebiten.Key
	Cmd control.Command
}

// KeyBindings are checked in this order every frame. Commands in Repeating
// fire every frame while held; the rest fire once per press.
var KeyBindings = []Binding{
	{ebiten.KeyUp, control.CmdMoveUp},
	{ebiten.KeyDown, control.CmdMoveDown},
	{ebiten.KeyLeft, control.CmdMoveLeft},
	{ebiten.KeyRight, control.CmdMoveRight},
	{ebiten.KeyW, control.CmdMoveUp},
	{ebiten.KeyS, control.CmdMoveDown},
	{ebiten.KeyA, control.CmdMoveLeft},
	{ebiten.KeyD, control.CmdMoveRight},
	{ebiten.KeyEqual, control.CmdZoomIn},
	{ebiten.KeyNumpadAdd, control.CmdZoomIn},
	{ebiten.KeyMinus, control.CmdZoomOut},
	{ebiten.KeyNumpadSubtract, control.CmdZoomOut},
	{ebiten.KeyX, control.CmdRotateXPos},
	{ebiten.KeyY, control.CmdRotateYPos},
	{ebiten.KeyZ, control.CmdRotateZPos},
	{ebiten.KeyP, control.CmdToggleProjection},
	{ebiten.KeyC, control.CmdCycleAlgorithm},
	{ebiten.KeyR, control.CmdReset},
	{ebiten.KeyEscape, control.CmdQuit},
	{ebiten.KeyQ, control.CmdQuit},
}

var Repeating = map[control.Command]bool{
	control.CmdMoveUp:     true,
	control.CmdMoveDown:   true,
	control.CmdMoveLeft:   true,
	control.CmdMoveRight:  true,
	control.CmdRotateXPos: true,
	control.CmdRotateYPos: true,
	control.CmdRotateZPos: true,
}

// reversed turns a rotation around when shift is held
var reversed = map[control.Command]control.Command{
	control.CmdRotateXPos: control.CmdRotateXNeg,
	control.CmdRotateYPos: control.CmdRotateYNeg,
	control.CmdRotateZPos: control.CmdRotateZNeg,
}

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY   int
	MouseDX, MouseDY int // delta since last frame
	prevMouseX       int
	prevMouseY       int
	LeftPressed      bool
	LeftJustPressed  bool
	ScrollY          float64

	// Drag
	DragStartX, DragStartY int
	Dragging               bool
	DragThreshold          int

	// Commands triggered this frame, in KeyBindings order, each once
	Commands []control.Command
	frame    control.Frame
}

func NewInputState() *InputState {
	return &InputState{
		DragThreshold: 5,
	}
}

// Update should be called every frame
func (s *InputState) Update() {
	// Mouse position
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	leftDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.LeftPressed = leftDown

	// Scroll
	_, scrollY := ebiten.Wheel()
	s.ScrollY = scrollY

	// Drag tracking
	if s.LeftJustPressed {
		s.DragStartX = s.MouseX
		s.DragStartY = s.MouseY
		s.Dragging = false
	}
	if leftDown && !s.Dragging {
		dx := s.MouseX - s.DragStartX
		dy := s.MouseY - s.DragStartY
		if dx*dx+dy*dy > s.DragThreshold*s.DragThreshold {
			s.Dragging = true
		}
	}
	if !leftDown {
		s.Dragging = false
	}

	// Keyboard
	s.frame.Reset()
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, b := range KeyBindings {
		cmd := b.Cmd
		fire := inpututil.IsKeyJustPressed(b.Key)
		if Repeating[cmd] {
			fire = ebiten.IsKeyPressed(b.Key)
		}
		if !fire {
			continue
		}
		if rev, ok := reversed[cmd]; ok && shift {
			cmd = rev
		}
		s.frame.Add(cmd)
	}
	s.Commands = s.frame.Commands()
}

// DragDelta returns the mouse movement since last frame while dragging
func (s *InputState) DragDelta() (dx, dy int, active bool) {
	if !s.Dragging {
		return 0, 0, false
	}
	return s.MouseDX, s.MouseDY, true
}
