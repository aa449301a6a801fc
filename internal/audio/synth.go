package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// Cue gains relative to the master volume
const (
	jumpGain  = 0.3
	scoreGain = 0.4
	hitGain   = 0.5
	musicGain = 0.3
)

// oscillator generates a finite wave whose frequency slides linearly from
// freq to freqEnd over its duration.
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		freqEnd:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(from*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := sample(o.wave, o.phase, o.rng)
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

func sample(wave WaveType, phase float64, rng *rand.Rand) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveNoise:
		return rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with an attack/release envelope over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := max(e.total-e.release, e.attack)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		} else if e.position >= releaseStart && e.release > 0 {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Jump is a short rising chirp.
func Jump(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	osc := NewSweep(320, 640, d, WaveSquare, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, 80*time.Millisecond, rate)
}

// Score is a two-note chime (B5 then E6).
func Score(rate beep.SampleRate) beep.Streamer {
	d1, d2 := 80*time.Millisecond, 220*time.Millisecond
	n1 := NewEnvelope(NewOscillator(987.77, d1, WaveSquare, rate), d1, 5*time.Millisecond, 20*time.Millisecond, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, d2, WaveSquare, rate), d2, 5*time.Millisecond, 180*time.Millisecond, rate)
	return beep.Seq(n1, n2)
}

// Hit is a falling thud with a burst of noise on top.
func Hit(rate beep.SampleRate) beep.Streamer {
	d := 300 * time.Millisecond
	thud := NewEnvelope(NewSweep(180, 50, d, WaveTriangle, rate), d, 2*time.Millisecond, 250*time.Millisecond, rate)
	crack := NewEnvelope(NewOscillator(0, d/2, WaveNoise, rate), d/2, time.Millisecond, 140*time.Millisecond, rate)
	return beep.Mix(newVolume(thud, 0.8), newVolume(crack, 0.5))
}

// CueStreamer returns the sound for c scaled by the master volume, or nil
// for an unknown cue.
func CueStreamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	switch c {
	case CueJump:
		return newVolume(Jump(rate), jumpGain*volume)
	case CueScore:
		return newVolume(Score(rate), scoreGain*volume)
	case CueHit:
		return newVolume(Hit(rate), hitGain*volume)
	default:
		return nil
	}
}

type note struct {
	freq  float64 // zero is a rest
	beats float64
}

// tune is an eight bar loop in C major.
var tune = []note{
	{523.25, 1}, {659.25, 1}, {783.99, 1}, {659.25, 1},
	{587.33, 1}, {698.46, 1}, {880.00, 2},
	{783.99, 1}, {659.25, 1}, {523.25, 1}, {587.33, 1},
	{659.25, 2}, {0, 2},
	{440.00, 1}, {523.25, 1}, {659.25, 1}, {523.25, 1},
	{587.33, 1}, {493.88, 1}, {392.00, 2},
	{523.25, 1}, {659.25, 1}, {587.33, 1}, {493.88, 1},
	{523.25, 3}, {0, 1},
}

const musicTempo = 140 // beats per minute

// Music is an endless background tune. It never drains, so it is paused
// rather than removed when the game stops it.
type Music struct {
	rate     beep.SampleRate
	beat     int // samples per beat
	noteIdx  int
	noteLeft int
	noteLen  int
	phase    float64
}

// NewMusic creates the tune positioned at its start.
func NewMusic(rate beep.SampleRate) *Music {
	m := &Music{rate: rate, beat: rate.N(time.Minute / musicTempo)}
	m.Rewind()
	return m
}

// Rewind moves the tune back to its first note.
func (m *Music) Rewind() {
	m.noteIdx = 0
	m.phase = 0
	m.noteLen = int(tune[0].beats * float64(m.beat))
	m.noteLeft = m.noteLen
}

// LoopLength returns the number of samples in one pass of the tune.
func (m *Music) LoopLength() int {
	total := 0.0
	for _, n := range tune {
		total += n.beats
	}
	return int(total * float64(m.beat))
}

func (m *Music) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if m.noteLeft <= 0 {
			m.noteIdx = (m.noteIdx + 1) % len(tune)
			m.noteLen = int(tune[m.noteIdx].beats * float64(m.beat))
			m.noteLeft = m.noteLen
			m.phase = 0
		}

		val := 0.0
		if f := tune[m.noteIdx].freq; f > 0 {
			// Plucked decay per note, with a soft square an octave down
			played := float64(m.noteLen-m.noteLeft) / float64(m.rate)
			amp := math.Exp(-3 * played)
			sq := -1.0
			if math.Mod(m.phase/2, 1) < 0.5 {
				sq = 1
			}
			val = amp * (0.7*math.Sin(2*math.Pi*m.phase) + 0.15*sq)
			m.phase += f / float64(m.rate)
			m.phase -= 2 * math.Floor(m.phase/2)
		}

		samples[i][0] = val
		samples[i][1] = val
		m.noteLeft--
	}
	return len(samples), true
}

func (m *Music) Err() error { return nil }
