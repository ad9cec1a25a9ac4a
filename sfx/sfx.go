// Package sfx synthesizes the game's sound effects with beep so no audio
// assets ship with the binary.
package sfx

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is shared by every effect and by both playback backends.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// Note is one tone in an effect.
type Note struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
	Attack   time.Duration
	Release  time.Duration
}

// Effect is a sequence of notes played at Volume.
type Effect struct {
	Notes  []Note
	Volume float64
}

// Effects maps sound names to their synthesis recipe.
var Effects = map[string]Effect{
	"ring": {
		Notes:  []Note{{Freq: 1320, Duration: 40 * time.Millisecond, Wave: WaveSine, Attack: 2 * time.Millisecond, Release: 30 * time.Millisecond}},
		Volume: 0.15,
	},
	"attack": {
		Notes: []Note{
			{Freq: 220, Duration: 60 * time.Millisecond, Wave: WaveSaw, Attack: 5 * time.Millisecond, Release: 40 * time.Millisecond},
			{Freq: 440, Duration: 80 * time.Millisecond, Wave: WaveSine, Attack: 5 * time.Millisecond, Release: 60 * time.Millisecond},
		},
		Volume: 0.4,
	},
	"die": {
		Notes: []Note{
			{Freq: 330, Duration: 120 * time.Millisecond, Wave: WaveSquare, Attack: 5 * time.Millisecond, Release: 60 * time.Millisecond},
			{Freq: 165, Duration: 240 * time.Millisecond, Wave: WaveSquare, Attack: 5 * time.Millisecond, Release: 200 * time.Millisecond},
		},
		Volume: 0.35,
	},
	"boss_hit": {
		Notes:  []Note{{Freq: 110, Duration: 50 * time.Millisecond, Wave: WaveSquare, Attack: time.Millisecond, Release: 40 * time.Millisecond}},
		Volume: 0.2,
	},
}

// Names returns the known effect names, sorted.
func Names() []string {
	names := make([]string, 0, len(Effects))
	for name := range Effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Streamer builds a fresh streamer for the named effect.
func Streamer(name string) (beep.Streamer, error) {
	fx, ok := Effects[name]
	if !ok {
		return nil, fmt.Errorf("sfx: unknown effect %q", name)
	}
	parts := make([]beep.Streamer, 0, len(fx.Notes))
	for _, n := range fx.Notes {
		tone, err := newTone(n)
		if err != nil {
			return nil, fmt.Errorf("sfx: %s: %w", name, err)
		}
		parts = append(parts, newEnvelope(tone, n.Duration, n.Attack, n.Release))
	}
	return newVolume(beep.Seq(parts...), fx.Volume), nil
}

// Render synthesizes the named effect to 16-bit little-endian stereo PCM.
func Render(name string) ([]byte, error) {
	s, err := Streamer(name)
	if err != nil {
		return nil, err
	}
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("sfx: render %s: %w", name, err)
	}
	return out, nil
}

// RenderAll renders every effect, keyed by name.
func RenderAll() (map[string][]byte, error) {
	out := make(map[string][]byte, len(Effects))
	for _, name := range Names() {
		pcm, err := Render(name)
		if err != nil {
			return nil, err
		}
		out[name] = pcm
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

func newTone(n Note) (beep.Streamer, error) {
	var s beep.Streamer
	switch n.Wave {
	case WaveSquare, WaveSaw:
		s = &oscillator{freq: n.Freq, wave: n.Wave}
	default:
		sine, err := generators.SineTone(SampleRate, n.Freq)
		if err != nil {
			return nil, err
		}
		s = sine
	}
	return beep.Take(SampleRate.N(n.Duration), s), nil
}

// oscillator is an endless square or saw wave.
type oscillator struct {
	freq  float64
	phase float64
	wave  Wave
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		var v float64
		switch o.wave {
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		}
		samples[i][0] = v
		samples[i][1] = v
		o.phase += o.freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a streamer in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   SampleRate.N(attack),
		release:  SampleRate.N(release),
		total:    SampleRate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; effects.Volume is logarithmic, so zero maps to
// Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
