package audio

import (
	"errors"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/pong-arcade/internal/pong"
)

// ErrNotBuilt is returned by NewSpeaker in builds without the sound tag.
var ErrNotBuilt = errors.New("audio: speaker support not built (rebuild with -tags sound)")

// SampleRate is the output rate used for all cues.
const SampleRate = beep.SampleRate(44100)

const (
	blipLength   = 60 * time.Millisecond
	noteLength   = 120 * time.Millisecond
	attackLength = 4 * time.Millisecond
	fadeLength   = 30 * time.Millisecond
)

// note is a shaped square tone of length d.
func note(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return Shape(Tone(freq, d, WaveSquare, rate), d, attackLength, fadeLength, rate)
}

// Cue returns the sound for an event kind, or nil if the kind is silent.
func Cue(kind pong.EventKind, rate beep.SampleRate) beep.Streamer {
	switch kind {
	case pong.EventPlayerHit, pong.EventComputerHit:
		return note(440, blipLength, rate)
	case pong.EventWallBounce:
		return note(220, blipLength, rate)
	case pong.EventPlayerScored, pong.EventComputerScored:
		return beep.Seq(note(660, noteLength, rate), note(330, noteLength, rate))
	case pong.EventMatchWon:
		return beep.Seq(
			note(523.25, noteLength, rate),
			note(659.25, noteLength, rate),
			note(783.99, noteLength, rate),
			note(1046.5, 2*noteLength, rate),
		)
	default:
		return nil
	}
}

// Player plays a streamer without blocking.
type Player interface {
	Play(s beep.Streamer)
}

// Cues plays the sound for each simulation event. A Cues with a nil player
// is silent.
type Cues struct {
	player Player
	rate   beep.SampleRate
	volume float64
}

// NewCues returns cues routed to p at the given volume (1 is unscaled).
func NewCues(p Player, volume float64) *Cues {
	return &Cues{player: p, rate: SampleRate, volume: volume}
}

// Handle plays the events from one tick. A match win replaces the score cue
// that produced it.
func (c *Cues) Handle(events []pong.Event) {
	if c == nil || c.player == nil || len(events) == 0 {
		return
	}
	won := false
	for _, e := range events {
		if e.Kind == pong.EventMatchWon {
			won = true
		}
	}
	var parts []beep.Streamer
	for _, e := range events {
		if won && e.Kind != pong.EventMatchWon {
			continue
		}
		if s := Cue(e.Kind, c.rate); s != nil {
			parts = append(parts, s)
		}
	}
	switch len(parts) {
	case 0:
		return
	case 1:
		c.player.Play(withVolume(parts[0], c.volume))
	default:
		c.player.Play(withVolume(beep.Mix(parts...), c.volume))
	}
}
