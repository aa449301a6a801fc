package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// speakerLock guards the mixer while the speaker goroutine reads it.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Speaker plays cues and music through the system audio device. All methods
// are safe to call from the game loop; none of them block on the device.
type Speaker struct {
	mu     sync.Mutex
	lock   sync.Locker // held while touching streams the device is reading
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	music  *Music
	ctrl   *beep.Ctrl
	muted  bool
	open   bool
	logger *log.Logger
}

func newSpeaker(cfg config.Audio, lock sync.Locker, logger *log.Logger) *Speaker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 48000
	}
	s := &Speaker{
		lock:   lock,
		rate:   rate,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		music:  NewMusic(rate),
		muted:  cfg.Muted,
		logger: logger,
	}
	s.ctrl = &beep.Ctrl{Streamer: newVolume(s.music, musicGain*cfg.Volume), Paused: true}
	s.mixer.Add(s.ctrl)
	return s
}

// Open initialises the audio device and starts the mixer. When no device is
// available the speaker stays silent and the error is only logged.
func Open(cfg config.Audio, logger *log.Logger) *Speaker {
	s := newSpeaker(cfg, speakerLock{}, logger)
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		s.logger.Warn("audio disabled", "error", err)
		return s
	}
	speaker.Play(s.mixer)
	s.open = true
	return s
}

// Enabled reports whether a device is playing the mixer.
func (s *Speaker) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Play starts a one-shot cue on top of whatever is already playing.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.muted {
		return
	}
	st := CueStreamer(c, s.rate, s.volume)
	if st == nil {
		return
	}
	s.lock.Lock()
	s.mixer.Add(st)
	s.lock.Unlock()
}

// StartMusic resumes the tune from where it was stopped.
func (s *Speaker) StartMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.muted {
		return
	}
	s.lock.Lock()
	s.ctrl.Paused = false
	s.lock.Unlock()
}

// StopMusic pauses the tune and rewinds it to the start.
func (s *Speaker) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lock.Lock()
	s.ctrl.Paused = true
	s.music.Rewind()
	s.lock.Unlock()
}

// SetMuted silences the tune and future cues. Cues already playing finish.
func (s *Speaker) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.muted = muted
	if muted {
		s.lock.Lock()
		s.ctrl.Paused = true
		s.lock.Unlock()
	}
}

// Muted reports the mute flag.
func (s *Speaker) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// MusicPlaying reports whether the tune is unpaused.
func (s *Speaker) MusicPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lock.Lock()
	defer s.lock.Unlock()
	return !s.ctrl.Paused
}

// Close stops all sound and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lock.Lock()
	s.mixer.Clear()
	s.lock.Unlock()
	if s.open {
		speaker.Close()
		s.open = false
	}
}
