// Package audio synthesises and plays the game's sound: three short cues and
// a looping background tune. Sound is best effort; when no output device is
// available every call is a no-op.
package audio

// Cue identifies a one-shot sound effect. Cues may overlap.
type Cue int

const (
	CueJump Cue = iota
	CueScore
	CueHit
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueScore:
		return "score"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Nop is a silent player that only remembers the mute flag.
type Nop struct {
	muted   bool
	playing bool
}

// NewNop returns a silent player.
func NewNop(muted bool) *Nop {
	return &Nop{muted: muted}
}

func (n *Nop) Play(Cue) {}

func (n *Nop) StartMusic() {
	if !n.muted {
		n.playing = true
	}
}

func (n *Nop) StopMusic() { n.playing = false }

func (n *Nop) SetMuted(muted bool) {
	n.muted = muted
	if muted {
		n.playing = false
	}
}

func (n *Nop) Muted() bool { return n.muted }

// MusicPlaying reports whether the tune would be audible.
func (n *Nop) MusicPlaying() bool { return n.playing }
