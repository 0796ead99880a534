// Package audio plays short synthesized effects for game events through
// the beep speaker.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and the effect mixer.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates a sound manager; call Initialize before playing.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize sets up the audio device. Safe to call more than once.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences all effects. beep has no speaker teardown; clearing the
// mixer is enough to stop output.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// PlayCapture plays a rising blip for an asteroid capture.
func (m *Manager) PlayCapture() {
	m.play(newTone(sampleRate, 880, 120*time.Millisecond))
}

// PlayCollision plays a low buzz for the craft's demise.
func (m *Manager) PlayCollision() {
	m.play(newTone(sampleRate, 110, 400*time.Millisecond))
}

// PlaySpawn plays a faint tick when a new object enters the field.
func (m *Manager) PlaySpawn() {
	m.play(newTone(sampleRate, 440, 40*time.Millisecond))
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}
