package window

import (
	"bytes"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"

	flappyaudio "github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Audio plays the synthesised cues and tune through Ebitengine's audio
// context. Cue players are pooled so overlapping cues do not cut each other off.
type Audio struct {
	ctx     *audio.Context
	cues    map[flappyaudio.Cue][]byte
	players map[flappyaudio.Cue][]*audio.Player
	music   *audio.Player
	muted   bool
	logger  *log.Logger
}

// NewAudio renders every sound once and creates the audio context.
// Only one context may exist per process.
func NewAudio(cfg config.Audio, logger *log.Logger) *Audio {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 48000
	}
	br := beep.SampleRate(rate)

	a := &Audio{
		ctx:     audio.NewContext(rate),
		cues:    make(map[flappyaudio.Cue][]byte),
		players: make(map[flappyaudio.Cue][]*audio.Player),
		muted:   cfg.Muted,
		logger:  logger,
	}
	for _, c := range []flappyaudio.Cue{flappyaudio.CueJump, flappyaudio.CueScore, flappyaudio.CueHit} {
		a.cues[c] = flappyaudio.CuePCM(c, br, cfg.Volume)
	}

	tune := flappyaudio.MusicPCM(br, cfg.Volume)
	loop := audio.NewInfiniteLoop(bytes.NewReader(tune), int64(len(tune)))
	music, err := a.ctx.NewPlayer(loop)
	if err != nil {
		logger.Warn("music disabled", "error", err)
	} else {
		a.music = music
	}
	return a
}

func (a *Audio) Play(c flappyaudio.Cue) {
	if a.muted {
		return
	}
	p := a.idle(c)
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		a.logger.Debug("rewind", "cue", c, "error", err)
	}
	p.Play()
}

// idle returns a player for c that is not currently sounding.
func (a *Audio) idle(c flappyaudio.Cue) *audio.Player {
	for _, p := range a.players[c] {
		if !p.IsPlaying() {
			return p
		}
	}
	buf, ok := a.cues[c]
	if !ok || len(buf) == 0 {
		return nil
	}
	p := a.ctx.NewPlayerFromBytes(buf)
	a.players[c] = append(a.players[c], p)
	return p
}

func (a *Audio) StartMusic() {
	if a.muted || a.music == nil {
		return
	}
	a.music.Play()
}

func (a *Audio) StopMusic() {
	if a.music == nil {
		return
	}
	a.music.Pause()
	if err := a.music.Rewind(); err != nil {
		a.logger.Debug("rewind music", "error", err)
	}
}

// SetMuted silences everything; it does not resume music on unmute.
func (a *Audio) SetMuted(muted bool) {
	a.muted = muted
	if muted && a.music != nil {
		a.music.Pause()
	}
}

func (a *Audio) Muted() bool { return a.muted }

// Close releases every player.
func (a *Audio) Close() {
	for _, ps := range a.players {
		for _, p := range ps {
			_ = p.Close()
		}
	}
	if a.music != nil {
		_ = a.music.Close()
	}
}
