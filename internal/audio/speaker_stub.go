//go:build !sound

package audio

import "github.com/gopxl/beep"

// Speaker is unavailable without the sound tag.
type Speaker struct{}

// NewSpeaker reports ErrNotBuilt. The audio device driver needs cgo and
// the system sound libraries, so it is only compiled with -tags sound.
func NewSpeaker() (*Speaker, error) {
	return nil, ErrNotBuilt
}

// Play does nothing.
func (*Speaker) Play(beep.Streamer) {}

// Close does nothing.
func (*Speaker) Close() {}
