//go:build sound

package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays streamers on the system audio device.
type Speaker struct {
	mu     sync.Mutex
	closed bool
}

var speakerInit struct {
	once sync.Once
	err  error
}

// NewSpeaker opens the audio device. The device is initialized once per
// process; later calls share it.
func NewSpeaker() (*Speaker, error) {
	speakerInit.once.Do(func() {
		speakerInit.err = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
	})
	if speakerInit.err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", speakerInit.err)
	}
	return &Speaker{}, nil
}

// Play queues s for playback.
func (s *Speaker) Play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Play(st)
}

// Close stops anything still playing.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
}
