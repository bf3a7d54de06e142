// Package ui implements the chess board window using Ebitengine.
package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessrules/internal/board"
)

// pieceShapes holds the SVG body of each piece on a 45x45 canvas. ATTR is
// replaced with the fill and stroke of the piece color.
var pieceShapes = map[board.PieceType]string{
	board.Pawn: `<circle cx="22.5" cy="14" r="5" ATTR/>
<path d="M 16 35 L 29 35 L 26 21 L 19 21 Z" ATTR/>
<rect x="12" y="34" width="21" height="4" ATTR/>`,

	board.Knight: `<path d="M 13 38 L 33 38 L 31 24 C 31 14 26 9 20 8 L 18 5 L 16 9 C 12 12 10 18 10 22 L 13 24 L 17 21 L 19 22 L 13 30 Z" ATTR/>
<circle cx="16.5" cy="13" r="1.5" ATTR/>`,

	board.Bishop: `<rect x="12" y="34" width="21" height="4" ATTR/>
<path d="M 15 34 C 12 26 16 17 22.5 12 C 29 17 33 26 30 34 Z" ATTR/>
<circle cx="22.5" cy="9" r="3" ATTR/>`,

	board.Rook: `<rect x="12" y="33" width="21" height="5" ATTR/>
<rect x="15" y="16" width="15" height="17" ATTR/>
<path d="M 12 9 L 16 9 L 16 12 L 20 12 L 20 9 L 25 9 L 25 12 L 29 12 L 29 9 L 33 9 L 33 16 L 12 16 Z" ATTR/>`,

	board.Queen: `<rect x="11" y="33" width="23" height="5" ATTR/>
<path d="M 11 33 L 8 14 L 15 24 L 17 11 L 22.5 23 L 28 11 L 30 24 L 37 14 L 34 33 Z" ATTR/>
<circle cx="8" cy="12" r="2.5" ATTR/>
<circle cx="17" cy="9" r="2.5" ATTR/>
<circle cx="28" cy="9" r="2.5" ATTR/>
<circle cx="37" cy="12" r="2.5" ATTR/>`,

	board.King: `<rect x="11" y="33" width="23" height="5" ATTR/>
<path d="M 11 33 C 6 24 14 17 22.5 22 C 31 17 39 24 34 33 Z" ATTR/>
<rect x="20" y="16" width="5" height="6" ATTR/>
<path d="M 22.5 5 L 22.5 16 M 18 9 L 27 9" fill="none" stroke="STROKE" stroke-width="2.5"/>`,
}

func pieceSVG(pt board.PieceType, c board.Color) string {
	fill, stroke := "#fafafa", "#1e1e1e"
	if c == board.Black {
		fill, stroke = "#262626", "#a0a0a0"
	}
	attr := fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="1.5" stroke-linejoin="round"`, fill, stroke)
	body := strings.NewReplacer("ATTR", attr, "STROKE", stroke).Replace(pieceShapes[pt])
	return `<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">` + body + `</svg>`
}

// spriteKey ignores the moved flag so both states share one sprite.
type spriteKey struct {
	pt board.PieceType
	c  board.Color
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[spriteKey]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager rasterises every piece at the given size.
func NewSpriteManager(size int) (*SpriteManager, error) {
	sm := &SpriteManager{
		pieces:      make(map[spriteKey]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	if err := sm.loadPieces(); err != nil {
		return nil, err
	}
	return sm, nil
}

func (sm *SpriteManager) loadPieces() error {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for pt := range pieceShapes {
		for _, c := range []board.Color{board.White, board.Black} {
			icon, err := oksvg.ReadIconStream(strings.NewReader(pieceSVG(pt, c)))
			if err != nil {
				return fmt.Errorf("parse %s %s sprite: %w", c, pt, err)
			}

			icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

			rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
			scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
			raster := rasterx.NewDasher(renderSize, renderSize, scanner)
			icon.Draw(raster, 1.0)

			sm.pieces[spriteKey{pt, c}] = ebiten.NewImageFromImage(rgba)
		}
	}
	return nil
}

// DrawPieceAt draws a piece with its top-left corner at (x, y).
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int, scale float64) {
	if p.IsEmpty() {
		return
	}
	sprite := sm.pieces[spriteKey{p.Type, p.Color}]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	s := scale / sm.renderScale
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
