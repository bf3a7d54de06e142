package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ToastKind selects a toast's colors.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastWarning
	ToastError
	ToastSuccess
)

const (
	toastDuration = 2 * time.Second
	toastFade     = 200 * time.Millisecond
	maxToasts     = 3
)

type toast struct {
	msg   string
	kind  ToastKind
	shown time.Time
}

// Toasts is a short stack of transient messages drawn over the board.
type Toasts struct {
	items []toast
	now   func() time.Time
}

// NewToasts returns an empty stack.
func NewToasts() *Toasts {
	return &Toasts{now: time.Now}
}

// Show pushes msg, evicting the oldest toast when the stack is full.
func (t *Toasts) Show(msg string, kind ToastKind) {
	t.items = append(t.items, toast{msg: msg, kind: kind, shown: t.now()})
	if len(t.items) > maxToasts {
		t.items = t.items[1:]
	}
}

// Update drops expired toasts.
func (t *Toasts) Update() {
	now := t.now()
	live := t.items[:0]
	for _, it := range t.items {
		if now.Sub(it.shown) < toastDuration {
			live = append(live, it)
		}
	}
	t.items = live
}

// alpha fades a toast in and out at the ends of its lifetime.
func (it toast) alpha(now time.Time) float64 {
	age := now.Sub(it.shown)
	switch {
	case age < toastFade:
		return float64(age) / float64(toastFade)
	case age > toastDuration-toastFade:
		return max(0, float64(toastDuration-age)/float64(toastFade))
	}
	return 1
}

func (k ToastKind) colors(a float64) (bg, fg color.RGBA) {
	fg = color.RGBA{255, 255, 255, uint8(255 * a)}
	switch k {
	case ToastWarning:
		return color.RGBA{180, 140, 20, uint8(220 * a)}, color.RGBA{40, 30, 0, uint8(255 * a)}
	case ToastError:
		return color.RGBA{180, 50, 50, uint8(220 * a)}, fg
	case ToastSuccess:
		return color.RGBA{50, 150, 50, uint8(220 * a)}, fg
	}
	return color.RGBA{50, 100, 150, uint8(220 * a)}, fg
}

// Draw stacks the live toasts near the top of the board.
func (t *Toasts) Draw(screen *ebiten.Image, r *Renderer) {
	face := r.fonts.Regular(defaultFontSize * r.scale)
	pad := float64(r.s(12))
	y := float64(r.s(50))
	now := t.now()
	for _, it := range t.items {
		bg, fg := it.kind.colors(it.alpha(now))
		w, h := text.Measure(it.msg, face, 0)
		boxW, boxH := w+pad*2, h+pad*2
		x := float64(r.s(BoardSize))/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)
		drawText(screen, it.msg, face, x+pad, y+pad, fg)
		y += boxH + float64(r.s(8))
	}
}
