//go:build ebiten

package gfx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pong-arcade/internal/config"
	"github.com/vovakirdan/pong-arcade/internal/pong"
)

// imageSurface draws onto an ebiten image in playfield units.
type imageSurface struct {
	img *ebiten.Image
}

var _ pong.Surface = imageSurface{}

func (s imageSurface) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s imageSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s imageSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s imageSurface) StrokeDashedLine(x0, y0, x1, y1, width float64, dash []float64, c color.Color) {
	for _, seg := range DashSegments(x0, y0, x1, y1, dash) {
		vector.StrokeLine(s.img, float32(seg[0]), float32(seg[1]), float32(seg[2]), float32(seg[3]), float32(width), c, false)
	}
}

// Window implements ebiten.Game around a Pong match. Ebiten calls Update at
// a fixed TPS equal to the configured tick rate, so each Update is one tick.
type Window struct {
	game   *pong.Game
	opts   Options
	paused bool
}

// NewWindow creates the window's game from cfg.
func NewWindow(cfg config.PongConfig, opts Options) (*Window, error) {
	gameOpts := []pong.Option{pong.WithLogger(opts.Logger)}
	if opts.Seed != 0 {
		gameOpts = append(gameOpts, pong.WithSeed(opts.Seed))
	}
	game, err := pong.New(cfg, gameOpts...)
	if err != nil {
		return nil, fmt.Errorf("gfx: %w", err)
	}
	return &Window{game: game, opts: opts}, nil
}

// Update handles input and advances the simulation by one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	over := w.game.State().Terminal()
	if over && (inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		w.game.ResetMatch()
		return nil
	}
	if !over && inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.paused = !w.paused
	}

	// Layout maps the window to playfield units, so the cursor already is one
	_, y := ebiten.CursorPosition()
	w.game.SetPlayerPaddlePosition(float64(y))

	if w.paused || over {
		return nil
	}
	res := w.game.Advance()
	w.opts.Cues.Handle(res.Events)
	return nil
}

// Draw renders the field, the score and any banner.
func (w *Window) Draw(screen *ebiten.Image) {
	w.game.Render(imageSurface{img: screen})

	width, height := w.game.Playfield()
	scores := w.game.Scores()
	score := fmt.Sprintf("Player: %d   Computer: %d", scores.Player, scores.Computer)
	ebitenutil.DebugPrintAt(screen, score, int(width)/2-len(score)*3, 12)

	switch {
	case w.game.State().Terminal():
		w.drawBanner(screen, width, height, bannerText(w.game.Winner()), "Press R to play again, Esc to quit")
	case w.paused:
		w.drawBanner(screen, width, height, "PAUSED", "Press P to resume")
	}
}

func (w *Window) drawBanner(screen *ebiten.Image, width, height float64, title, hint string) {
	bw, bh := float32(300), float32(80)
	x, y := float32(width)/2-bw/2, float32(height)/2-bh/2
	vector.DrawFilledRect(screen, x, y, bw, bh, color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xee}, false)
	vector.StrokeRect(screen, x, y, bw, bh, 2, color.RGBA{R: 0x06, G: 0xb6, B: 0xd4, A: 0xff}, false)
	ebitenutil.DebugPrintAt(screen, title, int(width)/2-len(title)*3, int(y)+20)
	ebitenutil.DebugPrintAt(screen, hint, int(width)/2-len(hint)*3, int(y)+48)
}

// Layout keeps the logical screen at playfield size regardless of the window.
func (w *Window) Layout(_, _ int) (int, int) {
	width, height := w.game.Playfield()
	return int(width), int(height)
}

func bannerText(winner pong.Side) string {
	if winner == pong.Player {
		return "You Win!"
	}
	return "Computer Wins!"
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.PongConfig, opts Options) error {
	w, err := NewWindow(cfg, opts)
	if err != nil {
		return err
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(cfg.Playfield.Width*scale), int(cfg.Playfield.Height*scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(cfg.Loop.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gfx: %w", err)
	}
	return nil
}
