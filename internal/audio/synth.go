package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(44100)

// Waveform types for the tone generator.
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// tone is a finite synthesized note: one oscillator with a linear
// attack/release envelope. It implements beep.Streamer.
type tone struct {
	wave    int
	freq    float64
	pos     int
	total   int
	attack  int // Samples of fade-in
	release int // Samples of fade-out
	gain    float64
	phase   float64
}

// newTone creates a tone of the given waveform, frequency and duration.
func newTone(wave int, freq float64, durMS int, gain float64) *tone {
	total := sampleRate.N(time.Duration(durMS) * time.Millisecond)
	attack := total / 20
	release := total / 4
	return &tone{
		wave:    wave,
		freq:    freq,
		total:   total,
		attack:  attack,
		release: release,
		gain:    gain,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}

	phaseInc := t.freq / float64(sampleRate)
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		var v float64
		switch t.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				v = 1.0
			} else {
				v = -1.0
			}
		case waveSaw:
			v = 2.0 * (t.phase - 0.5)
		case waveNoise:
			v = rand.Float64()*2 - 1
		}

		v *= t.envelope() * t.gain
		samples[i][0] = v
		samples[i][1] = v

		t.phase += phaseInc
		if t.phase >= 1.0 {
			t.phase -= 1.0
		}
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}

// envelope returns the linear attack/release gain at the current sample.
func (t *tone) envelope() float64 {
	if t.pos < t.attack && t.attack > 0 {
		return float64(t.pos) / float64(t.attack)
	}
	releaseStart := t.total - t.release
	if t.pos >= releaseStart && t.release > 0 {
		return float64(t.total-t.pos) / float64(t.release)
	}
	return 1.0
}

// sweep is a tone whose frequency glides linearly from start to end.
type sweep struct {
	tone
	startFreq float64
	endFreq   float64
}

func newSweep(wave int, startFreq, endFreq float64, durMS int, gain float64) *sweep {
	s := &sweep{
		tone:      *newTone(wave, startFreq, durMS, gain),
		startFreq: startFreq,
		endFreq:   endFreq,
	}
	return s
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	// Retune per chunk; per-sample glide is inaudible at chunk sizes here.
	progress := float64(s.pos) / float64(s.total)
	s.freq = s.startFreq + (s.endFreq-s.startFreq)*progress
	return s.tone.Stream(samples)
}

// chord layers several streamers and averages them.
type chord struct {
	parts []beep.Streamer
}

func newChord(parts ...beep.Streamer) *chord {
	return &chord{parts: parts}
}

func (c *chord) Stream(samples [][2]float64) (n int, ok bool) {
	if len(c.parts) == 0 {
		return 0, false
	}

	for i := range samples {
		samples[i] = [2]float64{}
	}

	buf := make([][2]float64, len(samples))
	voices := float64(len(c.parts))
	most := 0
	live := c.parts[:0]
	for _, p := range c.parts {
		pn, pok := p.Stream(buf)
		for i := 0; i < pn; i++ {
			samples[i][0] += buf[i][0] / voices
			samples[i][1] += buf[i][1] / voices
		}
		if pn > most {
			most = pn
		}
		if pok {
			live = append(live, p)
		}
	}
	c.parts = live
	return most, len(c.parts) > 0
}

func (c *chord) Err() error {
	return nil
}
