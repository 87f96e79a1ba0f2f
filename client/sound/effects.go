package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatToneDuration      = 60 * time.Millisecond
	gameOverNoteDuration = 180 * time.Millisecond
	winNoteDuration      = 120 * time.Millisecond
	startNoteDuration    = 80 * time.Millisecond
	releaseDuration      = 30 * time.Millisecond
)

// release fades out the last samples of a finite streamer.
type release struct {
	streamer       beep.Streamer
	position       int
	totalSamples   int
	releaseSamples int
}

func newRelease(s beep.Streamer, duration, fade time.Duration, rate beep.SampleRate) beep.Streamer {
	return &release{
		streamer:       beep.Take(rate.N(duration), s),
		totalSamples:   rate.N(duration),
		releaseSamples: rate.N(fade),
	}
}

func (r *release) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.streamer.Stream(samples)
	releaseStart := r.totalSamples - r.releaseSamples
	for i := 0; i < n; i++ {
		if r.position >= releaseStart && r.releaseSamples > 0 {
			vol := float64(r.totalSamples-r.position) / float64(r.releaseSamples)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		r.position++
	}
	return n, ok
}

func (r *release) Err() error { return r.streamer.Err() }

// note is a sine tone with a short release.
func note(freq float64, duration time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create %0.1fHz tone: %v", freq, err)
	}
	return newRelease(sine, duration, releaseDuration, rate), nil
}

func melody(rate beep.SampleRate, duration time.Duration, freqs ...float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, freq := range freqs {
		n, err := note(freq, duration, rate)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return beep.Seq(notes...), nil
}

// withVolume scales a streamer linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Streamer builds the sound of a cue at the given volume.
func Streamer(cue Cue, vol float64) (beep.Streamer, error) {
	var s beep.Streamer
	var err error
	switch cue {
	case CueStart:
		s, err = melody(sampleRate, startNoteDuration, 523.25, 659.25)
	case CueEat:
		s, err = note(880, eatToneDuration, sampleRate)
	case CueGameOver:
		s, err = melody(sampleRate, gameOverNoteDuration, 392, 311.13, 261.63)
	case CueWin:
		s, err = melody(sampleRate, winNoteDuration, 523.25, 659.25, 783.99, 1046.5)
	default:
		return nil, fmt.Errorf("unknown cue %d", cue)
	}
	if err != nil {
		return nil, err
	}
	return withVolume(s, vol), nil
}
