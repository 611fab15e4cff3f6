package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the output rate of every synthesized clip.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-frequency wave, optionally gliding to freqEnd.
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rnd      *rand.Rand
}

func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		freqEnd:  freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rnd:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

// glide makes the pitch slide linearly to end over the clip.
func (o *oscillator) glide(end float64) *oscillator {
	o.freqEnd = end
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rnd.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.freqEnd-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.position >= start && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator.
func tone(o *oscillator, d, attack, release time.Duration) beep.Streamer {
	return newEnvelope(o, d, attack, release, o.rate)
}

// Synthesize builds a fresh finite streamer for a clip at the given volume.
func Synthesize(c Clip, volume float64) beep.Streamer {
	const ms = time.Millisecond

	var s beep.Streamer
	switch c {
	case ClipBump:
		// dull thud against a wall
		d := 90 * ms
		s = beep.Mix(
			newVolume(tone(newOscillator(110, d, WaveSine, SampleRate).glide(60), d, 2*ms, 70*ms), 0.8),
			newVolume(tone(newOscillator(0, 30*ms, WaveNoise, SampleRate), 30*ms, 1*ms, 25*ms), 0.2),
		)
	case ClipSwoosh:
		d := 160 * ms
		s = beep.Mix(
			newVolume(tone(newOscillator(0, d, WaveNoise, SampleRate), d, 60*ms, 90*ms), 0.35),
			newVolume(tone(newOscillator(300, d, WaveSine, SampleRate).glide(700), d, 60*ms, 90*ms), 0.15),
		)
	case ClipGun:
		// portal zap
		d := 220 * ms
		s = beep.Mix(
			newVolume(tone(newOscillator(1400, d, WaveSaw, SampleRate).glide(180), d, 1*ms, 150*ms), 0.35),
			newVolume(tone(newOscillator(0, 60*ms, WaveNoise, SampleRate), 60*ms, 1*ms, 50*ms), 0.3),
		)
	case ClipWeWon:
		// C5 E5 G5 C6 arpeggio
		notes := []float64{523.25, 659.25, 783.99, 1046.50}
		parts := make([]beep.Streamer, 0, len(notes))
		for i, f := range notes {
			d := 140 * ms
			if i == len(notes)-1 {
				d = 420 * ms
			}
			parts = append(parts, tone(newOscillator(f, d, WaveSquare, SampleRate), d, 5*ms, d/2))
		}
		s = newVolume(beep.Seq(parts...), 0.4)
	default:
		return beep.Silence(0)
	}
	return newVolume(s, volume)
}
