// Package audio plays short blips for paddle hits, wall bounces and points.
package audio

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
	"github.com/mjibson/go-dsp/window"
	"github.com/san-kum/waitpong/internal/pong"
)

const (
	SampleRate = 44100
	BufferSize = 512

	maxVoices = 8
)

// Tone describes one blip.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Gain     float64
}

var (
	TonePlayer   = Tone{Freq: 660, Duration: 60 * time.Millisecond, Gain: 0.5}
	ToneOpponent = Tone{Freq: 440, Duration: 60 * time.Millisecond, Gain: 0.5}
	ToneWall     = Tone{Freq: 220, Duration: 40 * time.Millisecond, Gain: 0.3}
	TonePoint    = Tone{Freq: 110, Duration: 250 * time.Millisecond, Gain: 0.6}
)

type voice struct {
	freq, gain float64
	env        []float64
	pos        int
}

// Synth mixes blips into a stereo output stream. The game thread queues
// blips through OnFrame; the audio callback renders them.
type Synth struct {
	Stream *portaudio.Stream
	Volume float64
	Active bool

	mu     sync.Mutex
	voices []*voice
	envs   map[int][]float64
	log    *slog.Logger
}

func NewSynth(logger *slog.Logger) *Synth {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synth{
		Volume: 0.3,
		envs:   make(map[int][]float64),
		log:    logger,
	}
}

// Start opens the default output device. On failure the synth stays silent
// and the error is returned for the caller to log.
func (s *Synth) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, s.Process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	s.Stream = stream
	s.Active = true
	s.log.Debug("audio started", "rate", SampleRate, "buffer", BufferSize)
	return nil
}

func (s *Synth) Stop() {
	if !s.Active {
		return
	}
	if s.Stream != nil {
		s.Stream.Stop()
		s.Stream.Close()
		s.Stream = nil
	}
	portaudio.Terminate()
	s.Active = false
}

// envelope returns a cached Hann window of n samples.
func (s *Synth) envelope(n int) []float64 {
	env, ok := s.envs[n]
	if !ok {
		env = window.Hann(n)
		s.envs[n] = env
	}
	return env
}

// Play queues a tone. The oldest voice is dropped when all are busy.
func (s *Synth) Play(t Tone) {
	n := int(t.Duration.Seconds() * SampleRate)
	if n < 2 || t.Freq <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.voices) >= maxVoices {
		s.voices = s.voices[1:]
	}
	s.voices = append(s.voices, &voice{freq: t.Freq, gain: t.Gain, env: s.envelope(n)})
}

// OnFrame maps collision events to tones.
func (s *Synth) OnFrame(_ pong.State, ev pong.Events, _ time.Duration) {
	switch {
	case ev.Point != pong.SideNone:
		s.Play(TonePoint)
	case ev.PlayerHit:
		s.Play(TonePlayer)
	case ev.OpponentHit:
		s.Play(ToneOpponent)
	case ev.WallBounce:
		s.Play(ToneWall)
	}
}

// Voices reports how many blips are still sounding.
func (s *Synth) Voices() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.voices)
}

// Process is the stream callback: out holds one slice per channel.
func (s *Synth) Process(out [][]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	frames := len(out[0])
	for i := 0; i < frames; i++ {
		sample := 0.0
		for _, v := range s.voices {
			if v.pos >= len(v.env) {
				continue
			}
			phase := float64(v.pos) * v.freq / SampleRate
			sample += square(phase) * v.env[v.pos] * v.gain
			v.pos++
		}
		sample = math.Max(-1, math.Min(1, sample*s.Volume))
		for ch := range out {
			out[ch][i] = float32(sample)
		}
	}

	live := s.voices[:0]
	for _, v := range s.voices {
		if v.pos < len(v.env) {
			live = append(live, v)
		}
	}
	s.voices = live
}

// square is a band-softened square wave built from its first three odd
// harmonics.
func square(phase float64) float64 {
	x := 2 * math.Pi * phase
	return (math.Sin(x) + math.Sin(3*x)/3 + math.Sin(5*x)/5) * 4 / math.Pi
}
