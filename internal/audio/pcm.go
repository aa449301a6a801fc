package audio

import (
	"bytes"

	"github.com/gopxl/beep"
)

// PCMFormat is 16-bit signed little-endian stereo, the layout ebiten's audio
// players consume.
func PCMFormat(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

// EncodePCM drains s into raw PCM bytes. At most limit samples are read; a
// non-positive limit reads until s is drained, so it must not be endless.
func EncodePCM(s beep.Streamer, rate beep.SampleRate, limit int) []byte {
	format := PCMFormat(rate)
	frame := format.Width()

	var out bytes.Buffer
	buf := make([][2]float64, 512)
	p := make([]byte, len(buf)*frame)
	read := 0

	for limit <= 0 || read < limit {
		want := len(buf)
		if limit > 0 {
			want = min(want, limit-read)
		}
		n, ok := s.Stream(buf[:want])
		for i := 0; i < n; i++ {
			format.EncodeSigned(p[i*frame:], buf[i])
		}
		out.Write(p[:n*frame])
		read += n
		if !ok || n < want {
			break
		}
	}
	return out.Bytes()
}

// CuePCM renders a cue at the master volume.
func CuePCM(c Cue, rate beep.SampleRate, volume float64) []byte {
	s := CueStreamer(c, rate, volume)
	if s == nil {
		return nil
	}
	return EncodePCM(s, rate, 0)
}

// MusicPCM renders exactly one pass of the background tune, for players that
// loop raw PCM themselves.
func MusicPCM(rate beep.SampleRate, volume float64) []byte {
	m := NewMusic(rate)
	return EncodePCM(newVolume(m, musicGain*volume), rate, m.LoopLength())
}
