// Package audio plays procedural tones for plane-crossing effects. All
// sounds are synthesized streamers; no assets are loaded.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"cosmodrift/sim"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager owns the mixer and speaker. Playing before Initialize or
// after a failed Initialize is a silent no-op, so callers need no mute
// branches.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager; call Initialize before playing
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// PlayCrossing plays the one-shot tone for an effect kind
func (sm *SoundManager) PlayCrossing(kind sim.EffectKind) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var streamer beep.Streamer
	var duration time.Duration

	switch kind {
	case sim.EffectRipple:
		streamer = NewChimeGenerator(sampleRate, 440, 880)
		duration = time.Millisecond * 400
	case sim.EffectGlow:
		streamer = NewWarmToneGenerator(sampleRate, 220)
		duration = time.Millisecond * 600
	case sim.EffectExplosion:
		streamer = NewBurstGenerator(sampleRate)
		duration = time.Millisecond * 500
	case sim.EffectDistortion:
		streamer = NewWarbleGenerator(sampleRate, 160)
		duration = time.Millisecond * 700
	default:
		return
	}

	sm.mixer.Add(beep.Take(sampleRate.N(duration), streamer))
}

// ChimeGenerator sweeps a sine from a low to a high frequency
type ChimeGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	samples  int
}

// NewChimeGenerator creates a rising chime over a 400ms sweep
func NewChimeGenerator(sr beep.SampleRate, from, to float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(time.Millisecond * 400),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/float64(g.samples), 1.0)

		freq := g.from + (g.to-g.from)*progress
		envelope := (1 - progress) * 0.2
		sample := envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// WarmToneGenerator layers a fundamental with soft harmonics
type WarmToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewWarmToneGenerator creates a sustained warm tone
func NewWarmToneGenerator(sr beep.SampleRate, freq float64) *WarmToneGenerator {
	return &WarmToneGenerator{sr: sr, freq: freq}
}

func (g *WarmToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.2 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.08 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.04 * math.Sin(2*math.Pi*g.freq*3*t)

		// Quick attack, exponential release
		attack := math.Min(t/0.02, 1.0)
		sample *= attack * math.Exp(-t*3)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WarmToneGenerator) Err() error {
	return nil
}

// BurstGenerator mixes decaying noise with a low rumble
type BurstGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewBurstGenerator creates an explosion burst
func NewBurstGenerator(sr beep.SampleRate) *BurstGenerator {
	return &BurstGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *BurstGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.35 * math.Sin(2*math.Pi*55*t)
		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BurstGenerator) Err() error {
	return nil
}

// WarbleGenerator beats two slightly detuned sines against each other
type WarbleGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewWarbleGenerator creates a detuned distortion tone
func NewWarbleGenerator(sr beep.SampleRate, freq float64) *WarbleGenerator {
	return &WarbleGenerator{sr: sr, freq: freq}
}

func (g *WarbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*(g.freq*1.03)*t)

		attack := math.Min(t/0.05, 1.0)
		sample *= attack * math.Exp(-t*2)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WarbleGenerator) Err() error {
	return nil
}
