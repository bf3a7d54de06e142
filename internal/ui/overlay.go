package ui

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/storage"
)

// promotionChoices are offered left to right; keys Q, R, B, N pick directly.
var promotionChoices = []struct {
	pt  board.PieceType
	key ebiten.Key
}{
	{board.Queen, ebiten.KeyQ},
	{board.Rook, ebiten.KeyR},
	{board.Bishop, ebiten.KeyB},
	{board.Knight, ebiten.KeyN},
}

// promotionPicker asks which piece a pawn reaching the last rank becomes.
type promotionPicker struct {
	from, to board.Square
	color    board.Color
}

// buttonRect returns the logical rectangle of choice i, centered on the board.
func (p *promotionPicker) buttonRect(i, squareSize int) (x, y, w, h int) {
	w, h = squareSize, squareSize
	total := len(promotionChoices) * w
	x = (BoardSize-total)/2 + i*w
	y = (BoardSize - h) / 2
	return x, y, w, h
}

// update returns the chosen piece, or NoPieceType while undecided. cancel is
// set when the player backs out.
func (p *promotionPicker) update(input *InputHandler, squareSize int) (choice board.PieceType, cancel bool) {
	if IsKeyJustPressed(ebiten.KeyEscape) {
		return board.NoPieceType, true
	}
	for i, c := range promotionChoices {
		if IsKeyJustPressed(c.key) {
			return c.pt, false
		}
		x, y, w, h := p.buttonRect(i, squareSize)
		if input.ClickedInBounds(x, y, w, h) {
			return c.pt, false
		}
	}
	if input.IsLeftJustPressed() || input.IsRightJustPressed() {
		return board.NoPieceType, true
	}
	return board.NoPieceType, false
}

func (p *promotionPicker) draw(screen *ebiten.Image, r *Renderer, input *InputHandler) {
	vector.DrawFilledRect(screen, 0, 0, r.s(BoardSize), r.s(BoardSize), r.theme.Overlay, false)

	size := r.geom.SquareSize
	for i, c := range promotionChoices {
		x, y, w, h := p.buttonRect(i, size)
		bg := r.theme.ButtonColor
		if input.IsInBounds(x, y, w, h) {
			bg = r.theme.ButtonHover
		}
		vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(w), r.s(h), bg, false)
		r.sprites.DrawPieceAt(screen, board.NewPiece(c.pt, p.color), int(r.s(x)), int(r.s(y)), r.scale)
	}

	drawTextCentered(screen, "Promote to (Q/R/B/N)", r.fonts.Bold(titleFontSize*r.scale),
		float64(r.s(BoardSize/2)), float64(r.s(BoardSize/2-size)), r.theme.TextColor)
}

// drawGameOver dims the board and shows the result with the restart hint.
func drawGameOver(screen *ebiten.Image, r *Renderer, result string) {
	vector.DrawFilledRect(screen, 0, 0, r.s(BoardSize), r.s(BoardSize), r.theme.Overlay, false)

	cx := float64(r.s(BoardSize / 2))
	cy := float64(r.s(BoardSize / 2))
	drawTextCentered(screen, result, r.fonts.Bold(titleFontSize*1.5*r.scale), cx, cy-float64(r.s(20)), r.theme.TextColor)
	drawTextCentered(screen, "R: new game    Esc: quit", r.fonts.Regular(defaultFontSize*r.scale), cx, cy+float64(r.s(24)), r.theme.DimTextColor)
}

// panelInfo is what the side panel shows.
type panelInfo struct {
	turn        board.Color
	inCheck     bool
	plies       int
	clock       int
	repetitions int
	stats       *storage.Stats
	last        *storage.GameRecord
}

// lastResult summarises an archived game, e.g. "white, checkmate (37 plies)".
func lastResult(rec *storage.GameRecord) string {
	who := rec.Winner
	if who == "" {
		who = "draw"
	}
	return fmt.Sprintf("%s, %s (%d plies)", who, rec.Reason, rec.Plies)
}

func drawPanel(screen *ebiten.Image, r *Renderer, info panelInfo) {
	x := float64(r.s(BoardSize + 20))
	y := float64(r.s(24))
	line := float64(r.s(26))
	title := r.fonts.Bold(titleFontSize * r.scale)
	body := r.fonts.Regular(defaultFontSize * r.scale)

	drawText(screen, "Chess", title, x, y, r.theme.TextColor)
	y += line * 1.5

	turn := info.turn.String() + " to move"
	if info.inCheck {
		turn += " (check)"
	}
	drawText(screen, turn, body, x, y, r.theme.TextColor)
	y += line
	drawText(screen, "Move "+strconv.Itoa(info.plies/2+1), body, x, y, r.theme.DimTextColor)
	y += line
	drawText(screen, "No-progress clock: "+strconv.Itoa(info.clock), body, x, y, r.theme.DimTextColor)
	y += line
	drawText(screen, "Position seen: "+strconv.Itoa(info.repetitions)+"x", body, x, y, r.theme.DimTextColor)

	if st := info.stats; st != nil && st.GamesPlayed > 0 {
		y += line * 1.5
		drawText(screen, "Games played: "+strconv.Itoa(st.GamesPlayed), body, x, y, r.theme.TextColor)
		y += line
		drawText(screen, fmt.Sprintf("White %d  Black %d  Draws %d", st.WhiteWins, st.BlackWins, st.Draws), body, x, y, r.theme.DimTextColor)
		y += line
		drawText(screen, fmt.Sprintf("Draw rate %.0f%%", st.DrawRate()), body, x, y, r.theme.DimTextColor)
	}
	if last := info.last; last != nil {
		y += line
		drawText(screen, "Last: "+lastResult(last), body, x, y, r.theme.DimTextColor)
	}

	hints := []string{"F: flip board", "M: sound on/off", "Ctrl+R: resign", "R: new game (after end)"}
	y = float64(r.s(BoardSize)) - line*float64(len(hints)+1)
	for _, h := range hints {
		drawText(screen, h, body, x, y, r.theme.DimTextColor)
		y += line
	}
}
