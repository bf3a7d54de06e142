package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/ui/layout"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
	DimTextColor   color.RGBA
	Overlay        color.RGBA
	ButtonColor    color.RGBA
	ButtonHover    color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180},
		LegalMoveColor: color.RGBA{130, 151, 105, 200},
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		CheckColor:     color.RGBA{255, 100, 100, 180},
		Background:     color.RGBA{40, 44, 52, 255},
		TextColor:      color.RGBA{220, 220, 220, 255},
		DimTextColor:   color.RGBA{150, 150, 150, 255},
		Overlay:        color.RGBA{0, 0, 0, 170},
		ButtonColor:    color.RGBA{60, 64, 72, 255},
		ButtonHover:    color.RGBA{80, 84, 92, 255},
	}
}

// Renderer handles all board drawing operations. Coordinates passed in are
// logical; s scales them for HiDPI screens.
type Renderer struct {
	sprites *SpriteManager
	fonts   *Fonts
	theme   *Theme
	geom    layout.Geometry
	scale   float64
}

// NewRenderer creates a renderer for squares of squareSize logical pixels.
func NewRenderer(squareSize int, flipped bool, fonts *Fonts) (*Renderer, error) {
	sprites, err := NewSpriteManager(squareSize)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		sprites: sprites,
		fonts:   fonts,
		theme:   DefaultTheme(),
		geom:    layout.Geometry{SquareSize: squareSize, Flipped: flipped},
		scale:   1.0,
	}, nil
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// Geometry returns the current board layout.
func (r *Renderer) Geometry() layout.Geometry {
	return r.geom
}

// Flip turns the board around.
func (r *Renderer) Flip() {
	r.geom.Flipped = !r.geom.Flipped
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// DrawBoard draws the squares and the file and rank labels.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := r.geom.SquareSize
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := board.Square{Row: row, Col: col}
			c := r.theme.DarkSquare
			if sq.Color() == board.White {
				c = r.theme.LightSquare
			}
			x, y := r.geom.Origin(sq)
			vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(size), r.s(size), c, false)
		}
	}
	r.drawCoordinates(screen)
}

// drawCoordinates labels the files along the bottom edge and ranks along the left.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := r.fonts.Regular(11 * r.scale)
	size := r.geom.SquareSize
	for i := 0; i < 8; i++ {
		fileSq := board.Square{Row: 7, Col: i}
		rankSq := board.Square{Row: i, Col: 0}
		if r.geom.Flipped {
			fileSq = board.Square{Row: 0, Col: i}
			rankSq = board.Square{Row: i, Col: 7}
		}

		x, y := r.geom.Origin(fileSq)
		label := string(rune('a' + fileSq.Col))
		drawText(screen, label, face, float64(r.s(x+size-10)), float64(r.s(y+size-15)), r.theme.DarkSquare)

		x, y = r.geom.Origin(rankSq)
		label = strconv.Itoa(rankSq.Rank())
		drawText(screen, label, face, float64(r.s(x+3)), float64(r.s(y+2)), r.theme.DarkSquare)
	}
}

// HighlightSquare draws a colored overlay on a square.
func (r *Renderer) HighlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.Inside() {
		return
	}
	x, y := r.geom.Origin(sq)
	size := r.geom.SquareSize
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(size), r.s(size), c, false)
}

// DrawLastMove highlights both squares of the previous move.
func (r *Renderer) DrawLastMove(screen *ebiten.Image, m board.Move) {
	if m == board.NoMove {
		return
	}
	r.HighlightSquare(screen, m.From, r.theme.LastMoveColor)
	r.HighlightSquare(screen, m.To, r.theme.LastMoveColor)
}

// DrawTargets marks the destinations of the selected piece. Captures get a
// ring, quiet moves a dot.
func (r *Renderer) DrawTargets(screen *ebiten.Image, b *board.Board, moves []board.Move) {
	size := r.geom.SquareSize
	for _, m := range moves {
		x, y := r.geom.Center(m.To)
		if m.IsCapture(b) {
			vector.StrokeCircle(screen, r.s(x), r.s(y), r.s(size)*0.45, r.s(4), r.theme.LegalMoveColor, true)
			continue
		}
		vector.DrawFilledCircle(screen, r.s(x), r.s(y), r.s(size)*0.15, r.theme.LegalMoveColor, true)
	}
}

// DrawPieces draws every piece on b.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board) {
	for _, sq := range b.PiecePositions() {
		x, y := r.geom.Origin(sq)
		r.sprites.DrawPieceAt(screen, b.At(sq), int(r.s(x)), int(r.s(y)), r.scale)
	}
}
