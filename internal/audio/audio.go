// Package audio is the default host sound output: it decodes a beep
// sample once and plays it when the interpreter's sound timer reports
// active. The core only exposes VM.SoundActive(); turning
// that into actual sound is entirely a host concern (spec §1, §6).
package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Player owns a decoded beep sample and plays it back each time Sync
// is called with true, so long as nothing is already playing. Grounded on the
// teacher's own ManageAudio, generalized from a channel-driven one-shot
// into a small API the scheduler loop can poll from (VM.SoundActive()).
type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	playing  bool
}

// NewPlayer decodes path (an mp3 file) and initializes the speaker at
// its sample rate. The player is silent until Sync is called with true.
func NewPlayer(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio sample: %w", err)
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding audio sample: %w", err)
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return &Player{streamer: streamer, format: format}, nil
}

// Sync plays the sample while soundActive is true and nothing is
// already playing, and lets it finish naturally once soundActive goes
// false. A host may call this once per frame with VM.SoundActive(); the
// run command calls it with true only when the sound timer becomes
// active, so the sample plays once per activation.
func (p *Player) Sync(soundActive bool) {
	if !soundActive || p.playing {
		return
	}
	p.playing = true
	p.streamer.Seek(0)
	speaker.Play(beep.Seq(p.streamer, beep.Callback(func() {
		p.playing = false
	})))
}

// Close releases the underlying decoded stream.
func (p *Player) Close() error {
	return p.streamer.Close()
}
