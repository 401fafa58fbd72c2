package pong

import "math"

// Snapshot is a read-only copy of the full game state.
type Snapshot struct {
	Tick     uint64
	Ball     Ball
	Player   Paddle
	Computer Paddle
	Scores   Scores
	State    MatchState
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Ball:     g.ball,
		Player:   g.PlayerPaddle(),
		Computer: g.ComputerPaddle(),
		Scores:   g.scores,
		State:    g.state,
	}
}

// Hash returns a hash of the snapshot for determinism checks.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []float64{
		snap.Ball.X, snap.Ball.Y, snap.Ball.VX, snap.Ball.VY,
		snap.Player.Y, snap.Computer.Y,
	} {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + uint64(snap.Scores.Player)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Scores.Computer) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)           //#nosec G115 -- hash computation
	return h
}
