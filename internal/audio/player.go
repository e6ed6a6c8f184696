// Package audio synthesizes short feedback cues for game events. All
// sounds are generated, no sample assets. A machine without a working
// audio device degrades to silence; the games never notice.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/ctrlsworld/arcade/internal/core"
)

// Cue identifies one synthesized sound effect.
type Cue int

const (
	CueLock Cue = iota
	CueClear
	CueBigClear
	CueLevelUp
	CueBulletTimeOn
	CueBulletTimeOff
	CueFood
	CueStrike
	CueGameOver
	CueMenuMove
	CueMenuSelect
)

// Player owns the speaker and mixes cues into it.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	muted   bool
}

// NewPlayer creates a player. Call Init before playing.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device. On failure the player stays silent and
// Init returns the error for logging; playback calls remain safe.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return nil
}

// Close shuts the audio device down.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	p.mixer.Clear()
	speaker.Close()
	p.enabled = false
}

// SetMuted toggles playback without releasing the device.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether playback is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play queues a cue. Safe to call before Init or after a failed Init.
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.muted {
		return
	}

	streamer := synthesize(cue)
	if streamer == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// HandleEvents maps game events onto cues.
func (p *Player) HandleEvents(events []core.Event) {
	for _, e := range events {
		switch e.Type {
		case core.EventPieceLocked:
			p.Play(CueLock)
		case core.EventLinesCleared:
			if e.Lines >= 4 {
				p.Play(CueBigClear)
			} else {
				p.Play(CueClear)
			}
		case core.EventLevelUp:
			p.Play(CueLevelUp)
		case core.EventBulletTimeStarted:
			p.Play(CueBulletTimeOn)
		case core.EventBulletTimeEnded:
			p.Play(CueBulletTimeOff)
		case core.EventFoodEaten:
			p.Play(CueFood)
		case core.EventStruck:
			p.Play(CueStrike)
		case core.EventGameOver:
			p.Play(CueGameOver)
		}
	}
}

// synthesize builds the streamer for a cue.
func synthesize(cue Cue) beep.Streamer {
	switch cue {
	case CueLock:
		return newTone(waveSquare, 180, 40, 0.25)
	case CueClear:
		return newSweep(waveSquare, 440, 880, 120, 0.3)
	case CueBigClear:
		return newChord(
			newSweep(waveSquare, 440, 880, 200, 0.3),
			newSweep(waveSquare, 554, 1108, 200, 0.3),
			newSweep(waveSquare, 659, 1318, 200, 0.3),
		)
	case CueLevelUp:
		return newChord(
			newTone(waveSine, 523, 250, 0.35),
			newTone(waveSine, 659, 250, 0.35),
			newTone(waveSine, 784, 250, 0.35),
		)
	case CueBulletTimeOn:
		return newSweep(waveSine, 880, 220, 350, 0.4)
	case CueBulletTimeOff:
		return newSweep(waveSine, 220, 880, 250, 0.3)
	case CueFood:
		return newTone(waveSine, 660, 80, 0.3)
	case CueStrike:
		return newTone(waveNoise, 0, 90, 0.35)
	case CueGameOver:
		return newSweep(waveSaw, 330, 82, 700, 0.35)
	case CueMenuMove:
		return newTone(waveSine, 440, 30, 0.2)
	case CueMenuSelect:
		return newTone(waveSine, 587, 70, 0.25)
	default:
		return nil
	}
}
