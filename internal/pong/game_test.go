package pong

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/pong-arcade/internal/config"
)

// seqRand replays a fixed sequence of values.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithRand(&seqRand{vals: []float64{0.9, 0.1}})}, opts...)
	g, err := New(config.DefaultPongConfig(), opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewCentersEverything(t *testing.T) {
	g := newTestGame(t)

	if got := g.PlayerPaddle().Y; got != 250 {
		t.Errorf("PlayerPaddle().Y = %v, expected 250", got)
	}
	if got := g.ComputerPaddle().Y; got != 250 {
		t.Errorf("ComputerPaddle().Y = %v, expected 250", got)
	}
	if got := g.ComputerPaddle().X; got != 790 {
		t.Errorf("ComputerPaddle().X = %v, expected 790", got)
	}

	b := g.Ball()
	if b.X != 400 || b.Y != 300 {
		t.Errorf("ball at (%v, %v), expected (400, 300)", b.X, b.Y)
	}
	// 0.9 > 0.5 gives +, 0.1 gives -
	if b.VX != 5 || b.VY != -5 {
		t.Errorf("ball velocity (%v, %v), expected (5, -5)", b.VX, b.VY)
	}
	if b.Radius != 8 {
		t.Errorf("ball radius = %v, expected 8", b.Radius)
	}
	if g.State() != InProgress {
		t.Errorf("State() = %v, expected in progress", g.State())
	}
}

func TestNewServeDirectionsAreRandom(t *testing.T) {
	seen := map[[2]float64]bool{}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 64; i++ {
		g, err := New(config.DefaultPongConfig(), WithRand(rng))
		if err != nil {
			t.Fatal(err)
		}
		b := g.Ball()
		if math.Abs(b.VX) != 5 || math.Abs(b.VY) != 5 {
			t.Fatalf("serve speed (%v, %v), expected magnitude 5 on both axes", b.VX, b.VY)
		}
		seen[[2]float64{b.VX, b.VY}] = true
	}
	if len(seen) != 4 {
		t.Errorf("saw %d serve directions, expected all 4", len(seen))
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Playfield.Width = -800

	g, err := New(cfg)
	if g != nil {
		t.Error("New() returned a game for invalid config")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New() error = %v, expected ErrInvalidConfig", err)
	}
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("New() error = %v, expected to wrap config.ErrInvalid", err)
	}
}

func TestSetPlayerPaddlePosition(t *testing.T) {
	tests := []struct {
		pointer  float64
		expected float64
	}{
		{300, 250},
		{50, 0},
		{0, 0},
		{-100, 0},
		{550, 500},
		{10000, 500},
		{120, 70},
	}

	g := newTestGame(t)
	for _, tt := range tests {
		g.SetPlayerPaddlePosition(tt.pointer)
		if got := g.PlayerPaddle().Y; got != tt.expected {
			t.Errorf("SetPlayerPaddlePosition(%v): Y = %v, expected %v", tt.pointer, got, tt.expected)
		}
	}
}

func TestSetPlayerPaddleTop(t *testing.T) {
	g := newTestGame(t)

	g.SetPlayerPaddleTop(250)
	if got := g.PlayerPaddle().Y; got != 250 {
		t.Errorf("Y = %v, expected 250", got)
	}
	g.SetPlayerPaddleTop(-5)
	if got := g.PlayerPaddle().Y; got != 0 {
		t.Errorf("Y = %v, expected 0", got)
	}
	g.SetPlayerPaddleTop(501)
	if got := g.PlayerPaddle().Y; got != 500 {
		t.Errorf("Y = %v, expected 500", got)
	}
}

func TestPlayerPaddleReflectsWithSpin(t *testing.T) {
	g := newTestGame(t)
	g.SetPlayerPaddlePosition(300) // top at 250
	g.ball = Ball{X: 17, Y: 275, VX: -5, VY: 0, Radius: 8}

	res := g.Advance()

	b := g.Ball()
	if b.VX != 5 {
		t.Errorf("VX = %v, expected 5", b.VX)
	}
	// (275 - 300) * 0.35
	if !approx(b.VY, -8.75) {
		t.Errorf("VY = %v, expected -8.75", b.VY)
	}
	if !res.Has(EventPlayerHit) {
		t.Errorf("events %v missing player hit", res.Events)
	}
}

func TestPlayerPaddleMissOutsideSpan(t *testing.T) {
	g := newTestGame(t)
	g.SetPlayerPaddleTop(250)
	g.ball = Ball{X: 17, Y: 240, VX: -5, VY: 0, Radius: 8}

	res := g.Advance()
	if g.Ball().VX != -5 {
		t.Errorf("VX = %v, expected -5 (no hit above the paddle)", g.Ball().VX)
	}
	if res.Has(EventPlayerHit) {
		t.Error("unexpected player hit")
	}
}

func TestPlayerPaddleReflectsOncePerContact(t *testing.T) {
	g := newTestGame(t)
	g.SetPlayerPaddleTop(250)
	g.ball = Ball{X: 17, Y: 300, VX: -2, VY: 0, Radius: 8}

	g.Advance() // x=15, reflect
	if g.Ball().VX != 2 {
		t.Fatalf("VX = %v, expected 2", g.Ball().VX)
	}
	g.Advance() // x=17, still overlapping but heading away
	if g.Ball().VX != 2 {
		t.Errorf("VX = %v after second tick in contact, expected 2", g.Ball().VX)
	}
}

func TestPaddlesIgnoreBallMovingAway(t *testing.T) {
	tests := []struct {
		name string
		ball Ball
	}{
		{"inside player paddle heading right", Ball{X: 5, Y: 300, VX: 2, VY: 0, Radius: 8}},
		{"inside computer paddle heading left", Ball{X: 795, Y: 300, VX: -2, VY: 0, Radius: 8}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.ball = tc.ball

			res := g.Advance()

			if got := g.Ball().VX; got != tc.ball.VX {
				t.Errorf("VX = %v, expected %v", got, tc.ball.VX)
			}
			if res.Has(EventPlayerHit) || res.Has(EventComputerHit) {
				t.Errorf("unexpected paddle hit in %v", res.Events)
			}
		})
	}
}

func TestComputerPaddleReflectsWithoutSpin(t *testing.T) {
	g := newTestGame(t)
	g.ball = Ball{X: 785, Y: 302, VX: 5, VY: 2, Radius: 8}

	res := g.Advance()

	b := g.Ball()
	if b.VX != -5 {
		t.Errorf("VX = %v, expected -5", b.VX)
	}
	if b.VY != 2 {
		t.Errorf("VY = %v, expected 2 (no spin from computer)", b.VY)
	}
	if !res.Has(EventComputerHit) {
		t.Errorf("events %v missing computer hit", res.Events)
	}
}

func TestWallReflection(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		wantVY float64
		bounce bool
	}{
		{"top wall", Ball{X: 400, Y: 10, VX: 5, VY: -5, Radius: 8}, 5, true},
		{"bottom wall", Ball{X: 400, Y: 590, VX: 5, VY: 5, Radius: 8}, -5, true},
		{"inside top zone heading away", Ball{X: 400, Y: 2, VX: 5, VY: 1, Radius: 8}, 1, false},
		{"inside bottom zone heading away", Ball{X: 400, Y: 598, VX: 5, VY: -1, Radius: 8}, -1, false},
		{"open field", Ball{X: 400, Y: 300, VX: 5, VY: 5, Radius: 8}, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.ball = tt.ball
			res := g.Advance()
			if got := g.Ball().VY; got != tt.wantVY {
				t.Errorf("VY = %v, expected %v", got, tt.wantVY)
			}
			if res.Has(EventWallBounce) != tt.bounce {
				t.Errorf("wall bounce event = %v, expected %v", res.Has(EventWallBounce), tt.bounce)
			}
		})
	}
}

func TestComputerScores(t *testing.T) {
	g := newTestGame(t)
	g.SetPlayerPaddleTop(250)
	g.ball = Ball{X: 2, Y: 100, VX: -5, VY: 0, Radius: 8}

	res := g.Advance()

	if got := g.Scores(); got != (Scores{Computer: 1}) {
		t.Errorf("Scores() = %+v, expected computer 1", got)
	}
	b := g.Ball()
	if b.X != 400 || b.Y != 300 {
		t.Errorf("ball at (%v, %v), expected (400, 300)", b.X, b.Y)
	}
	if b.VY != 5 {
		t.Errorf("VY = %v, expected 5", b.VY)
	}
	if b.VX != 5 {
		t.Errorf("VX = %v, expected 5 (flipped)", b.VX)
	}
	if !res.Has(EventComputerScored) {
		t.Errorf("events %v missing computer scored", res.Events)
	}
}

func TestPlayerScores(t *testing.T) {
	g := newTestGame(t)
	g.ball = Ball{X: 798, Y: 100, VX: 5, VY: 3, Radius: 8}

	res := g.Advance()

	if got := g.Scores(); got != (Scores{Player: 1}) {
		t.Errorf("Scores() = %+v, expected player 1", got)
	}
	b := g.Ball()
	if b.X != 400 || b.Y != 300 || b.VX != -5 || b.VY != 5 {
		t.Errorf("ball = %+v, expected centered with velocity (-5, 5)", b)
	}
	if !res.Has(EventPlayerScored) {
		t.Errorf("events %v missing player scored", res.Events)
	}
}

func TestResetBallClearsSpin(t *testing.T) {
	g := newTestGame(t)
	g.ball = Ball{X: 100, Y: 42, VX: -5, VY: -8.75, Radius: 8}

	g.ResetBall()

	b := g.Ball()
	if b.X != 400 || b.Y != 300 {
		t.Errorf("ball at (%v, %v), expected (400, 300)", b.X, b.Y)
	}
	if b.VX != 5 || b.VY != 5 {
		t.Errorf("velocity (%v, %v), expected (5, 5)", b.VX, b.VY)
	}
}

func TestComputerTracking(t *testing.T) {
	tests := []struct {
		name  string
		ballY float64
		want  float64
	}{
		{"ball far below", 500, 256},
		{"ball far above", 100, 244},
		{"inside dead zone", 320, 250},
		{"dead zone edge", 335, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			// Ball stays put so the controller sees the given y
			g.ball = Ball{X: 400, Y: tt.ballY, Radius: 8}
			g.Advance()
			if got := g.ComputerPaddle().Y; got != tt.want {
				t.Errorf("ComputerPaddle().Y = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestComputerPaddleClamped(t *testing.T) {
	g := newTestGame(t)
	g.cpuY = 498
	g.ball = Ball{X: 400, Y: 590, Radius: 8}
	g.Advance()
	if got := g.ComputerPaddle().Y; got != 500 {
		t.Errorf("ComputerPaddle().Y = %v, expected 500", got)
	}
}

func TestMatchWon(t *testing.T) {
	tests := []struct {
		name   string
		scores Scores
		ball   Ball
		state  MatchState
		winner Side
	}{
		{"computer", Scores{Player: 3, Computer: 4}, Ball{X: 2, Y: 100, VX: -5, Radius: 8}, WonByComputer, Computer},
		{"player", Scores{Player: 4, Computer: 4}, Ball{X: 798, Y: 100, VX: 5, Radius: 8}, WonByPlayer, Player},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.scores = tt.scores
			g.ball = tt.ball

			res := g.Advance()
			if res.State != tt.state {
				t.Errorf("State = %v, expected %v", res.State, tt.state)
			}
			if g.Winner() != tt.winner {
				t.Errorf("Winner() = %v, expected %v", g.Winner(), tt.winner)
			}
			if !res.Has(EventMatchWon) {
				t.Errorf("events %v missing match won", res.Events)
			}

			// Terminal: Advance is a no-op
			before := g.Snapshot()
			res = g.Advance()
			if len(res.Events) != 0 {
				t.Errorf("terminal Advance returned events %v", res.Events)
			}
			if g.Snapshot() != before {
				t.Error("terminal Advance changed state")
			}
		})
	}
}

func TestResetMatch(t *testing.T) {
	g := newTestGame(t)
	g.scores = Scores{Player: 2, Computer: 5}
	g.state = WonByComputer
	g.SetPlayerPaddleTop(0)
	g.cpuY = 500
	g.ball = Ball{X: 12, Y: 34, VX: -5, VY: 1, Radius: 8}

	g.ResetMatch()

	if g.Scores() != (Scores{}) {
		t.Errorf("Scores() = %+v, expected zero", g.Scores())
	}
	if g.State() != InProgress {
		t.Errorf("State() = %v, expected in progress", g.State())
	}
	if g.PlayerPaddle().Y != 250 || g.ComputerPaddle().Y != 250 {
		t.Errorf("paddles at %v and %v, expected both 250", g.PlayerPaddle().Y, g.ComputerPaddle().Y)
	}
	b := g.Ball()
	if b.X != 400 || b.Y != 300 {
		t.Errorf("ball at (%v, %v), expected (400, 300)", b.X, b.Y)
	}
	if math.Abs(b.VX) != 5 || math.Abs(b.VY) != 5 {
		t.Errorf("velocity (%v, %v), expected magnitude 5", b.VX, b.VY)
	}
	if g.Snapshot().Tick != 0 {
		t.Errorf("Tick = %d, expected 0", g.Snapshot().Tick)
	}

	// Simulation resumes
	if res := g.Advance(); res.Tick != 1 {
		t.Errorf("Advance().Tick = %d, expected 1", res.Tick)
	}
}

func TestInvariantsOverLongRun(t *testing.T) {
	g, err := New(config.DefaultPongConfig(), WithSeed(99))
	if err != nil {
		t.Fatal(err)
	}
	pointer := rand.New(rand.NewSource(3))
	_, h := g.Playfield()
	maxTop := h - g.PlayerPaddle().Height

	prev := g.Scores()
	for i := 0; i < 20000; i++ {
		if i%7 == 0 {
			g.SetPlayerPaddlePosition(pointer.Float64()*900 - 150)
		}
		vyBefore := g.Ball().VY
		res := g.Advance()

		for _, p := range []Paddle{g.PlayerPaddle(), g.ComputerPaddle()} {
			if p.Y < 0 || p.Y > maxTop {
				t.Fatalf("tick %d: paddle y %v out of [0, %v]", i, p.Y, maxTop)
			}
		}

		bounces := 0
		for _, e := range res.Events {
			if e.Kind == EventWallBounce {
				bounces++
			}
		}
		if bounces > 1 {
			t.Fatalf("tick %d: %d wall bounces in one tick", i, bounces)
		}

		s := g.Scores()
		scored := res.Has(EventPlayerScored) || res.Has(EventComputerScored)
		gained := (s.Player - prev.Player) + (s.Computer - prev.Computer)
		if s.Player < prev.Player || s.Computer < prev.Computer {
			t.Fatalf("tick %d: scores went backwards %+v -> %+v", i, prev, s)
		}
		if scored && gained != 1 || !scored && gained != 0 {
			t.Fatalf("tick %d: score changed by %d with events %v", i, gained, res.Events)
		}
		if bounces == 1 && !scored && !res.Has(EventPlayerHit) && math.Signbit(vyBefore) == math.Signbit(g.Ball().VY) {
			t.Fatalf("tick %d: wall bounce without a vertical flip", i)
		}
		prev = s

		if res.State.Terminal() {
			if s.Player >= 5 && res.State != WonByPlayer || s.Computer >= 5 && res.State != WonByComputer {
				t.Fatalf("tick %d: state %v does not match scores %+v", i, res.State, s)
			}
			g.ResetMatch()
			prev = Scores{}
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, err := New(config.DefaultPongConfig(), WithSeed(12345))
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 3000; i++ {
			g.SetPlayerPaddlePosition(g.Ball().Y + float64(i%40-20))
			if g.Advance().State.Terminal() {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1 != snap2 {
		t.Errorf("Determinism failed: snapshots differ %+v vs %+v", snap1, snap2)
	}
}

func TestStepResultTicks(t *testing.T) {
	g := newTestGame(t)
	for i := uint64(1); i <= 3; i++ {
		if res := g.Advance(); res.Tick != i {
			t.Errorf("Advance().Tick = %d, expected %d", res.Tick, i)
		}
	}
}

func TestStringers(t *testing.T) {
	if WonByPlayer.String() != "won by player" {
		t.Errorf("WonByPlayer.String() = %q", WonByPlayer.String())
	}
	if EventMatchWon.String() != "match_won" {
		t.Errorf("EventMatchWon.String() = %q", EventMatchWon.String())
	}
	if Computer.String() != "computer" {
		t.Errorf("Computer.String() = %q", Computer.String())
	}
}
