package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// SpeakerRate is the output rate every clip is resampled to.
const SpeakerRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker opens the audio device once for the whole process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SpeakerRate, SpeakerRate.N(time.Second/10))
	})
	return speakerErr
}

// IsAudioFile reports whether path has an extension Audio can decode.
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".flac", ".wav", ".ogg":
		return true
	}
	return false
}

// Audio plays one audio file through the shared speaker. Several Audio
// players may be loaded at once; each only ever touches its own streamer.
type Audio struct {
	path string

	state    State
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	ended    atomic.Bool
}

// NewAudio creates a player for the file at path. Nothing is opened until
// Load.
func NewAudio(path string) *Audio {
	return &Audio{path: path, state: Stopped}
}

// Load opens and decodes the file and attaches a paused stream to the speaker.
func (a *Audio) Load() error {
	if a.state.IsActive() {
		return nil
	}

	f, err := os.Open(a.path)
	if err != nil {
		return err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext := strings.ToLower(filepath.Ext(a.path)); ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		err = fmt.Errorf("unsupported format: %s", ext)
	}
	if err != nil {
		f.Close()
		return err
	}

	if err := initSpeaker(); err != nil {
		streamer.Close()
		f.Close()
		return err
	}

	a.file = f
	a.streamer = streamer
	a.format = format
	a.ctrl = &beep.Ctrl{Streamer: a.output(), Paused: true}
	a.state = Paused
	a.attach()

	return nil
}

// output resamples the decoded stream to the speaker rate when needed.
func (a *Audio) output() beep.Streamer {
	if a.format.SampleRate == SpeakerRate {
		return a.streamer
	}
	return beep.Resample(4, a.format.SampleRate, SpeakerRate, a.streamer)
}

func (a *Audio) attach() {
	a.ended.Store(false)
	speaker.Play(beep.Seq(a.ctrl, beep.Callback(func() {
		a.ended.Store(true)
	})))
}

// Play resumes the clip, rewinding it first if it had finished.
func (a *Audio) Play() error {
	if err := a.Load(); err != nil {
		return err
	}
	if a.state == Playing && !a.ended.Load() {
		return nil
	}

	if a.ended.Load() {
		speaker.Lock()
		err := a.streamer.Seek(0)
		a.ctrl.Streamer = a.output()
		a.ctrl.Paused = false
		speaker.Unlock()
		if err != nil {
			return err
		}
		a.attach()
	} else {
		speaker.Lock()
		a.ctrl.Paused = false
		speaker.Unlock()
	}
	a.state = Playing
	return nil
}

// Pause pauses playback.
func (a *Audio) Pause() {
	if a.state != Playing || a.ctrl == nil {
		return
	}
	speaker.Lock()
	a.ctrl.Paused = true
	speaker.Unlock()
	a.state = Paused
}

// Close detaches the stream from the speaker and closes the file.
func (a *Audio) Close() {
	if a.state == Stopped {
		return
	}

	speaker.Lock()
	a.ctrl.Streamer = nil
	speaker.Unlock()

	if a.streamer != nil {
		a.streamer.Close()
		a.streamer = nil
	}
	if a.file != nil {
		a.file.Close()
		a.file = nil
	}

	a.ctrl = nil
	a.state = Stopped
}

// State returns the player state. A finished clip reports Paused.
func (a *Audio) State() State {
	if a.state == Playing && a.ended.Load() {
		return Paused
	}
	return a.state
}

// Position returns the current playback position.
func (a *Audio) Position() time.Duration {
	if a.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := a.format.SampleRate.D(a.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the clip length, or zero before Load.
func (a *Audio) Duration() time.Duration {
	if a.streamer == nil {
		return 0
	}
	return a.format.SampleRate.D(a.streamer.Len())
}
