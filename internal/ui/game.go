package ui

import (
	"errors"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/config"
	"github.com/hailam/chessrules/internal/game"
	"github.com/hailam/chessrules/internal/storage"
)

// UI Constants
const (
	ScreenWidth  = BoardSize + PanelWidth
	ScreenHeight = BoardSize
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = 280
)

// Options configures the window.
type Options struct {
	Config config.Config
	// Store may be nil, in which case nothing is persisted.
	Store  *storage.Storage
	Logger zerolog.Logger
}

// Game implements ebiten.Game for two players sharing one board.
type Game struct {
	manager   *game.Manager
	session   *game.Session
	startedAt time.Time
	recorded  bool

	startColor board.Color
	startKey   string

	store *storage.Storage
	prefs *storage.Preferences
	stats *storage.Stats
	last  *storage.GameRecord
	log   zerolog.Logger

	renderer *Renderer
	input    *InputHandler
	sounds   *Sounds

	selected  board.Square
	targets   []board.Move
	lastMove  board.Move
	promotion *promotionPicker
	toasts    *Toasts

	scale float64
}

// NewGame creates the window state and starts the first game.
func NewGame(opts Options) (*Game, error) {
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}

	g := &Game{
		manager:    game.NewManager(opts.Logger),
		startColor: opts.Config.StartingColor,
		startKey:   opts.Config.StartKey,
		store:      opts.Store,
		prefs:      storage.DefaultPreferences(),
		log:        opts.Logger,
		input:      NewInputHandler(),
		toasts:     NewToasts(),
		selected:   board.NoSquare,
		lastMove:   board.NoMove,
		scale:      1.0,
	}

	flipped := opts.Config.Flipped
	if g.store != nil {
		if prefs, err := g.store.LoadPreferences(); err != nil {
			g.log.Warn().Err(err).Msg("load preferences")
		} else {
			g.prefs = prefs
			flipped = flipped || prefs.Flipped
		}
		g.refreshStats()
	}

	g.sounds = NewSounds(g.prefs.SoundEnabled)
	g.renderer, err = NewRenderer(SquareSize, flipped, fonts)
	if err != nil {
		return nil, err
	}

	if err := g.startGame(); err != nil {
		return nil, err
	}
	return g, nil
}

// startGame registers a fresh session from the configured start position.
func (g *Game) startGame() error {
	b, side := board.Initial(), g.startColor
	if g.startKey != "" {
		var err error
		if b, side, err = board.DecodeKey(g.startKey); err != nil {
			return err
		}
	}

	if g.session != nil {
		if err := g.manager.Delete(g.session.ID); err != nil && !errors.Is(err, game.ErrGameNotFound) {
			return err
		}
	}
	g.session = g.manager.NewGame(side, b)
	g.startedAt = time.Now()
	g.recorded = false
	g.lastMove = board.NoMove
	g.promotion = nil
	g.clearSelection()

	g.log.Info().Str("game", g.session.ID).Str("start", side.String()).Msg("new game")
	return nil
}

// Update handles one frame of input.
func (g *Game) Update() error {
	g.input.Update(g.scale)
	g.toasts.Update()

	if IsKeyJustPressed(ebiten.KeyF) {
		g.renderer.Flip()
		g.savePreferences()
	}
	if IsKeyJustPressed(ebiten.KeyM) {
		g.prefs.SoundEnabled = g.sounds.Toggle()
		if g.prefs.SoundEnabled {
			g.toasts.Show("Sound on", ToastInfo)
		} else {
			g.toasts.Show("Sound off", ToastInfo)
		}
		g.savePreferences()
	}

	var over bool
	g.session.Do(func(st *game.State) { over = st.IsGameOver() })
	if over {
		g.recordResult()
		switch {
		case IsKeyJustPressed(ebiten.KeyR):
			return g.startGame()
		case IsKeyJustPressed(ebiten.KeyEscape):
			return ebiten.Termination
		}
		return nil
	}

	if IsKeyJustPressed(ebiten.KeyR) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		g.session.Do(func(st *game.State) {
			if err := st.Resign(st.CurrentPlayer()); err != nil {
				g.log.Warn().Err(err).Msg("resign")
			}
		})
		g.sounds.Play(SoundGameOver)
		return nil
	}

	if g.promotion != nil {
		g.updatePromotion()
		return nil
	}

	g.handleBoardInput()
	return nil
}

// handleBoardInput processes clicks on the board: select a piece of the side
// to move, then click one of its highlighted destinations.
func (g *Game) handleBoardInput() {
	if g.input.IsRightJustPressed() {
		g.clearSelection()
		return
	}
	sq, ok := g.input.ClickedSquare(g.renderer.Geometry())
	if !ok {
		return
	}

	var matches []board.Move
	for _, m := range g.targets {
		if m.To == sq {
			matches = append(matches, m)
		}
	}
	switch {
	case len(matches) == 1:
		g.play(matches[0])
		return
	case len(matches) > 1:
		// Several moves share a destination only for promotions.
		g.promotion = &promotionPicker{from: g.selected, to: sq, color: g.pieceColor(g.selected)}
		return
	}

	g.session.Do(func(st *game.State) {
		if p := st.Board().At(sq); !p.IsEmpty() && p.Color == st.CurrentPlayer() {
			g.selected = sq
			g.targets = st.LegalMoves(sq)
			return
		}
		g.clearSelection()
	})
}

func (g *Game) updatePromotion() {
	choice, cancel := g.promotion.update(g.input, SquareSize)
	if cancel {
		g.promotion = nil
		g.clearSelection()
		return
	}
	if choice == board.NoPieceType {
		return
	}

	p := g.promotion
	g.promotion = nil
	var (
		m  board.Move
		ok bool
	)
	g.session.Do(func(st *game.State) { m, ok = st.FindMove(p.from, p.to, choice) })
	if !ok {
		g.clearSelection()
		return
	}
	g.play(m)
}

func (g *Game) play(m board.Move) {
	snd := SoundMove
	g.session.Do(func(st *game.State) {
		capture := m.IsCapture(st.Board())
		if err := st.TryMove(m); err != nil {
			g.log.Warn().Err(err).Str("move", m.String()).Msg("move rejected")
			g.toasts.Show("Illegal move", ToastError)
			snd = SoundIllegal
			return
		}
		g.lastMove = m
		snd = moveSound(m, capture, st.InCheck(), st.IsGameOver())
		if snd == SoundCheck {
			g.toasts.Show("Check", ToastWarning)
		}
	})
	g.sounds.Play(snd)
	g.clearSelection()
}

func moveSound(m board.Move, capture, check, over bool) Sound {
	switch {
	case over:
		return SoundGameOver
	case check:
		return SoundCheck
	case m.IsCastle():
		return SoundCastle
	case capture:
		return SoundCapture
	}
	return SoundMove
}

func (g *Game) pieceColor(sq board.Square) board.Color {
	var c board.Color
	g.session.Do(func(st *game.State) { c = st.Board().At(sq).Color })
	return c
}

func (g *Game) clearSelection() {
	g.selected = board.NoSquare
	g.targets = nil
}

// recordResult archives the finished game once.
func (g *Game) recordResult() {
	if g.recorded {
		return
	}
	g.recorded = true
	if g.store == nil {
		return
	}

	rec := storage.GameRecord{
		ID:         g.session.ID,
		StartedAt:  g.startedAt,
		FinishedAt: time.Now(),
	}
	g.session.Do(func(st *game.State) {
		r, _ := st.Result()
		if !r.IsDraw() {
			rec.Winner = strings.ToLower(r.Winner.String())
		}
		rec.Reason = r.Reason.String()
		rec.Plies = st.Plies()
		rec.FinalKey = st.PositionKey()
	})

	if err := g.store.RecordGame(rec); err != nil {
		g.log.Error().Err(err).Str("game", rec.ID).Msg("record game")
		g.toasts.Show("Could not save result", ToastError)
		return
	}
	g.toasts.Show("Result saved", ToastSuccess)
	g.refreshStats()
	g.savePreferences()
}

func (g *Game) refreshStats() {
	stats, err := g.store.LoadStats()
	if err != nil {
		g.log.Warn().Err(err).Msg("load stats")
		return
	}
	g.stats = stats

	recent, err := g.store.ListGames(1)
	if err != nil {
		g.log.Warn().Err(err).Msg("list games")
		return
	}
	if len(recent) > 0 {
		g.last = &recent[0]
	}
}

func (g *Game) savePreferences() {
	if g.store == nil {
		return
	}
	g.prefs.Flipped = g.renderer.Geometry().Flipped
	g.prefs.StartingColor = strings.ToLower(g.startColor.String())
	if err := g.store.SavePreferences(g.prefs); err != nil {
		g.log.Warn().Err(err).Msg("save preferences")
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	r := g.renderer
	r.SetScale(g.scale)
	screen.Fill(r.Theme().Background)

	g.session.Do(func(st *game.State) {
		b := st.Board()

		r.DrawBoard(screen)
		r.DrawLastMove(screen, g.lastMove)
		if st.InCheck() {
			if k, ok := b.KingSquare(st.CurrentPlayer()); ok {
				r.HighlightSquare(screen, k, r.Theme().CheckColor)
			}
		}
		if g.selected.Inside() {
			r.HighlightSquare(screen, g.selected, r.Theme().SelectedSquare)
		}
		r.DrawTargets(screen, b, g.targets)
		r.DrawPieces(screen, b)

		drawPanel(screen, r, panelInfo{
			turn:        st.CurrentPlayer(),
			inCheck:     st.InCheck(),
			plies:       st.Plies(),
			clock:       st.HalfMoveClock(),
			repetitions: st.Repetitions(),
			stats:       g.stats,
			last:        g.last,
		})

		if res, over := st.Result(); over {
			drawGameOver(screen, r, res.String())
		}
	})

	if g.promotion != nil {
		g.promotion.draw(screen, r, g.input)
	}
	g.toasts.Draw(screen, r)
}

// Layout returns the game's screen dimensions, scaled for HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}
