// Package pong implements single-player Pong against a computer paddle.
// The player owns the left paddle and steers it with a pointer; the computer
// tracks the ball with the right paddle. Positions are in playfield units and
// velocities are per tick.
package pong

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong-arcade/internal/config"
	"github.com/vovakirdan/pong-arcade/internal/core"
)

// ErrInvalidConfig is returned by New when the geometry cannot be simulated.
var ErrInvalidConfig = errors.New("pong: invalid config")

// RandSource supplies serve directions. *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Ball is the ball state. X and Y are the center.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Paddle is a paddle rectangle. Y is the top edge.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the vertical center of the paddle.
func (p Paddle) Center() float64 {
	return p.Y + p.Height/2
}

// Scores holds both score counters.
type Scores struct {
	Player   int
	Computer int
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source used for serves.
func WithRand(r RandSource) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed seeds a private math/rand source for serves.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
	}
}

// WithLogger sets the logger for match events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithPalette overrides the render colors.
func WithPalette(p Palette) Option {
	return func(g *Game) {
		g.palette = p
	}
}

// Game implements the Pong simulation.
type Game struct {
	// Geometry
	width, height float64
	paddleW       float64
	paddleH       float64

	// Tuning
	serveSpeed float64
	spin       float64
	cpuStep    float64
	deadZone   float64
	winScore   int

	// State
	ball    Ball
	playerY float64
	cpuY    float64
	scores  Scores
	state   MatchState
	tick    uint64
	rng     RandSource
	logger  *log.Logger
	palette Palette
	events  []Event
}

// New creates a game from cfg with both paddles centered and the ball served
// from the center in a random diagonal direction.
func New(cfg config.PongConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	g := &Game{
		width:      cfg.Playfield.Width,
		height:     cfg.Playfield.Height,
		paddleW:    cfg.Paddle.Width,
		paddleH:    cfg.Paddle.Height,
		serveSpeed: cfg.Ball.ServeSpeed,
		spin:       cfg.Ball.SpinFactor,
		cpuStep:    cfg.CPU.Step,
		deadZone:   cfg.CPU.DeadZone,
		winScore:   cfg.Match.WinScore,
		ball:       Ball{Radius: cfg.Ball.Radius},
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())), //#nosec G404 -- gameplay randomness
		logger:     log.New(io.Discard),
		palette:    DefaultPalette(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.centerPaddles()
	g.serve()
	return g, nil
}

// SetPlayerPaddlePosition moves the player paddle so its center follows a
// pointer at pointerY, clamped to the playfield.
func (g *Game) SetPlayerPaddlePosition(pointerY float64) {
	g.SetPlayerPaddleTop(pointerY - g.paddleH/2)
}

// SetPlayerPaddleTop places the player paddle's top edge at topY, clamped to
// the playfield.
func (g *Game) SetPlayerPaddleTop(topY float64) {
	g.playerY = g.clampPaddle(topY)
}

// Advance runs one simulation tick. Once the match is won it does nothing
// until ResetMatch is called.
func (g *Game) Advance() StepResult {
	if g.state.Terminal() {
		return StepResult{Tick: g.tick, State: g.state}
	}

	g.tick++
	g.events = g.events[:0]
	b := &g.ball

	// Move ball
	b.X += b.VX
	b.Y += b.VY

	// Computer tracks the ball with a dead zone
	center := g.cpuY + g.paddleH/2
	if center < b.Y-g.deadZone {
		g.cpuY += g.cpuStep
	} else if center > b.Y+g.deadZone {
		g.cpuY -= g.cpuStep
	}

	g.playerY = g.clampPaddle(g.playerY)
	g.cpuY = g.clampPaddle(g.cpuY)

	// Walls; only flip while still heading into the wall so a contact that
	// spans several ticks flips once
	if (b.Y < b.Radius && b.VY < 0) || (b.Y > g.height-b.Radius && b.VY > 0) {
		b.VY = -b.VY
		g.emit(EventWallBounce, NoSide)
	}

	// Player paddle imparts spin proportional to the strike offset.
	// Paddles only reflect a ball heading into them; one still overlapping
	// after a hit, or moving away, passes through.
	if b.VX < 0 && b.X < g.paddleW+b.Radius && b.Y > g.playerY && b.Y < g.playerY+g.paddleH {
		b.VX = -b.VX
		b.VY = (b.Y - (g.playerY + g.paddleH/2)) * g.spin
		g.emit(EventPlayerHit, Player)
	}

	// Computer paddle reflects without spin, also only when approached.
	// TODO(gameplay): decide whether the computer paddle should impart spin like the player's.
	if b.VX > 0 && b.X > g.width-g.paddleW-b.Radius && b.Y > g.cpuY && b.Y < g.cpuY+g.paddleH {
		b.VX = -b.VX
		g.emit(EventComputerHit, Computer)
	}

	// Scoring
	if b.X < 0 {
		g.scores.Computer++
		g.emit(EventComputerScored, Computer)
		g.logger.Debug("point", "side", Computer, "player", g.scores.Player, "computer", g.scores.Computer)
		g.ResetBall()
	} else if b.X > g.width {
		g.scores.Player++
		g.emit(EventPlayerScored, Player)
		g.logger.Debug("point", "side", Player, "player", g.scores.Player, "computer", g.scores.Computer)
		g.ResetBall()
	}

	g.updateState()

	events := make([]Event, len(g.events))
	copy(events, g.events)
	return StepResult{Tick: g.tick, Events: events, State: g.state}
}

// ResetBall re-centers the ball, reverses its horizontal direction and sets a
// fixed downward vertical speed, removing any spin.
func (g *Game) ResetBall() {
	g.ball.X = g.width / 2
	g.ball.Y = g.height / 2
	g.ball.VX = -g.ball.VX
	g.ball.VY = g.serveSpeed
}

// ResetMatch zeroes both scores and the tick counter, re-centers the paddles
// and serves a fresh ball in a random direction.
func (g *Game) ResetMatch() {
	g.scores = Scores{}
	g.state = InProgress
	g.tick = 0
	g.centerPaddles()
	g.serve()
	g.logger.Debug("match reset")
}

// Ball returns the ball state.
func (g *Game) Ball() Ball {
	return g.ball
}

// PlayerPaddle returns the left paddle.
func (g *Game) PlayerPaddle() Paddle {
	return Paddle{X: 0, Y: g.playerY, Width: g.paddleW, Height: g.paddleH}
}

// ComputerPaddle returns the right paddle.
func (g *Game) ComputerPaddle() Paddle {
	return Paddle{X: g.width - g.paddleW, Y: g.cpuY, Width: g.paddleW, Height: g.paddleH}
}

// Scores returns both score counters.
func (g *Game) Scores() Scores {
	return g.scores
}

// State returns the match state.
func (g *Game) State() MatchState {
	return g.state
}

// Winner returns the winning side, or NoSide while in progress.
func (g *Game) Winner() Side {
	switch g.state {
	case WonByPlayer:
		return Player
	case WonByComputer:
		return Computer
	default:
		return NoSide
	}
}

// WinScore returns the score that ends the match.
func (g *Game) WinScore() int {
	return g.winScore
}

// Playfield returns the playfield size.
func (g *Game) Playfield() (width, height float64) {
	return g.width, g.height
}

func (g *Game) serve() {
	g.ball.X = g.width / 2
	g.ball.Y = g.height / 2
	g.ball.VX = g.randomSign() * g.serveSpeed
	g.ball.VY = g.randomSign() * g.serveSpeed
}

func (g *Game) randomSign() float64 {
	if g.rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

func (g *Game) centerPaddles() {
	top := (g.height - g.paddleH) / 2
	g.playerY = top
	g.cpuY = top
}

func (g *Game) clampPaddle(y float64) float64 {
	return core.ClampF(y, 0, g.height-g.paddleH)
}

func (g *Game) updateState() {
	switch {
	case g.scores.Player >= g.winScore:
		g.state = WonByPlayer
	case g.scores.Computer >= g.winScore:
		g.state = WonByComputer
	default:
		return
	}
	g.emit(EventMatchWon, g.Winner())
	g.logger.Debug("match won", "winner", g.Winner(), "player", g.scores.Player, "computer", g.scores.Computer)
}

func (g *Game) emit(kind EventKind, side Side) {
	g.events = append(g.events, Event{Kind: kind, Side: side})
}
