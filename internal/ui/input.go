package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/ui/layout"
)

// InputHandler samples the pointer once per frame. Positions are logical
// (divided by the HiDPI scale).
type InputHandler struct {
	cursor image.Point
	click  bool
	cancel bool
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update reads this frame's cursor and buttons.
func (ih *InputHandler) Update(scale float64) {
	scale = max(scale, 1.0)
	x, y := ebiten.CursorPosition()
	ih.cursor = image.Pt(int(float64(x)/scale), int(float64(y)/scale))
	ih.click = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.cancel = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

// IsLeftJustPressed reports a left click this frame.
func (ih *InputHandler) IsLeftJustPressed() bool { return ih.click }

// IsRightJustPressed reports a right click this frame; it cancels a selection.
func (ih *InputHandler) IsRightJustPressed() bool { return ih.cancel }

// IsInBounds reports whether the cursor is inside the w x h rectangle at (x, y).
func (ih *InputHandler) IsInBounds(x, y, w, h int) bool {
	return ih.cursor.In(image.Rect(x, y, x+w, y+h))
}

// ClickedInBounds is a left click inside the rectangle.
func (ih *InputHandler) ClickedInBounds(x, y, w, h int) bool {
	return ih.click && ih.IsInBounds(x, y, w, h)
}

// ClickedSquare returns the board square under a left click this frame.
func (ih *InputHandler) ClickedSquare(g layout.Geometry) (board.Square, bool) {
	if !ih.click {
		return board.NoSquare, false
	}
	return g.ToSquare(ih.cursor.X, ih.cursor.Y)
}

// IsKeyJustPressed returns true if the specified key was just pressed.
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
