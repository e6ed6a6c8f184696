package audio

import (
	"testing"

	"github.com/ctrlsworld/arcade/internal/core"
)

func drain(s interface {
	Stream([][2]float64) (int, bool)
}) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneProducesExpectedSampleCount(t *testing.T) {
	tn := newTone(waveSine, 440, 100, 0.5)
	got := drain(tn)
	want := tn.total
	if got != want {
		t.Fatalf("expected %d samples, got %d", want, got)
	}

	// Exhausted streamers stay exhausted.
	if n, ok := tn.Stream(make([][2]float64, 16)); n != 0 || ok {
		t.Fatal("drained tone should report done")
	}
}

func TestToneSamplesStayInRange(t *testing.T) {
	for _, wave := range []int{waveSine, waveSquare, waveSaw, waveNoise} {
		tn := newTone(wave, 440, 50, 1.0)
		buf := make([][2]float64, 256)
		for {
			n, ok := tn.Stream(buf)
			for i := 0; i < n; i++ {
				if buf[i][0] < -1.0 || buf[i][0] > 1.0 {
					t.Fatalf("wave %d: sample %f out of range", wave, buf[i][0])
				}
			}
			if !ok {
				break
			}
		}
	}
}

func TestEnvelopeFadesInAndOut(t *testing.T) {
	tn := newTone(waveSquare, 440, 100, 1.0)

	tn.pos = 0
	if g := tn.envelope(); g != 0 {
		t.Errorf("expected silence at the first sample, got %f", g)
	}
	tn.pos = tn.total / 2
	if g := tn.envelope(); g != 1.0 {
		t.Errorf("expected full gain mid-note, got %f", g)
	}
	tn.pos = tn.total - 1
	if g := tn.envelope(); g >= 0.5 {
		t.Errorf("expected a faded tail, got %f", g)
	}
}

func TestSweepEndsLikeATone(t *testing.T) {
	s := newSweep(waveSine, 880, 220, 80, 0.5)
	got := drain(s)
	if got != s.total {
		t.Fatalf("expected %d samples, got %d", s.total, got)
	}
}

func TestChordOutlastsItsLongestVoice(t *testing.T) {
	short := newTone(waveSine, 440, 40, 0.5)
	long := newTone(waveSine, 660, 120, 0.5)
	c := newChord(short, long)

	got := drain(c)
	if got < long.total {
		t.Fatalf("chord ended after %d samples, longest voice runs %d", got, long.total)
	}
}

func TestEveryCueSynthesizes(t *testing.T) {
	for cue := CueLock; cue <= CueMenuSelect; cue++ {
		if synthesize(cue) == nil {
			t.Errorf("cue %d has no sound", cue)
		}
	}
}

func TestPlayerIsSafeWithoutDevice(t *testing.T) {
	p := NewPlayer()

	// Never initialized: playback is a silent no-op, not a crash.
	p.Play(CueClear)
	p.HandleEvents([]core.Event{
		{Type: core.EventLinesCleared, Lines: 4},
		{Type: core.EventGameOver},
	})
	p.SetMuted(true)
	if !p.Muted() {
		t.Fatal("mute flag should stick")
	}
	p.Close()
}
