package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Sound identifies a feedback effect.
type Sound int

const (
	SoundMove Sound = iota
	SoundCapture
	SoundCheck
	SoundCastle
	SoundIllegal
	SoundGameOver
)

const sampleRate = 44100

// envelope maps progress through a sound (0..1) to its amplitude.
type envelope func(t, progress float64) float64

func decay(rate float64) envelope {
	return func(t, _ float64) float64 { return math.Exp(-t * rate) }
}

func attackRelease(attack, release float64) envelope {
	return func(_, p float64) float64 {
		switch {
		case p < attack:
			return p / attack
		case p > 1-release:
			return (1 - p) / release
		}
		return 1
	}
}

// synth renders a sum of sines as 16-bit little-endian stereo PCM.
func synth(freqs []float64, seconds, amp float64, env envelope, shape func(i int, t float64) float64) []byte {
	n := int(sampleRate * seconds)
	pcm := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		var v float64
		for _, f := range freqs {
			v += math.Sin(2 * math.Pi * f * t)
		}
		v /= float64(len(freqs))
		if shape != nil {
			v += shape(i, t)
		}
		s := int16(math.Max(-1, math.Min(1, v*env(t, t/seconds)*amp)) * 32767)
		pcm[i*4], pcm[i*4+1] = byte(s), byte(s>>8)
		pcm[i*4+2], pcm[i*4+3] = byte(s), byte(s>>8)
	}
	return pcm
}

// Sounds plays procedurally generated effects for board events.
type Sounds struct {
	ctx     *audio.Context
	clips   map[Sound][]byte
	enabled bool
	volume  float64
}

// NewSounds creates the audio context and renders every clip up front.
func NewSounds(enabled bool) *Sounds {
	wood := func(i int, _ float64) float64 {
		return (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
	}
	click := func(f, amp float64) []byte { return synth([]float64{f}, 0.08, amp, decay(30), wood) }

	castle := click(400, 0.3)
	castle = append(castle, make([]byte, int(sampleRate*0.05)*4)...)
	castle = append(castle, click(440, 0.24)...)

	return &Sounds{
		ctx: audio.NewContext(sampleRate),
		clips: map[Sound][]byte{
			SoundMove:    click(440, 0.3),
			SoundCapture: synth([]float64{330}, 0.12, 0.5, decay(30), wood),
			SoundCheck:   synth([]float64{880}, 0.15, 0.4, attackRelease(0.1, 0.9), nil),
			SoundCastle:  castle,
			SoundIllegal: synth([]float64{150, 300}, 0.1, 0.3, attackRelease(0.01, 0.99), nil),
			// C major triad
			SoundGameOver: synth([]float64{261.63, 329.63, 392.00}, 0.4, 0.5, attackRelease(0.1, 0.3), nil),
		},
		enabled: enabled,
		volume:  0.5,
	}
}

// Play starts s on a fresh player so effects may overlap.
func (s *Sounds) Play(snd Sound) {
	if s == nil || !s.enabled {
		return
	}
	clip, ok := s.clips[snd]
	if !ok {
		return
	}
	p := s.ctx.NewPlayerFromBytes(clip)
	p.SetVolume(s.volume)
	p.Play()
}

// Toggle flips sound on or off and reports the new state.
func (s *Sounds) Toggle() bool {
	s.enabled = !s.enabled
	return s.enabled
}
