package grove

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AudioState is the playback state of an AudioSource.
type AudioState int

const (
	AudioStateInitial AudioState = iota
	AudioStatePlaying
	AudioStatePaused
	AudioStateStopped
)

// audioSampleRate is the device-side sample rate; decoded streams are
// resampled to it on playback.
const audioSampleRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(audioSampleRate, audioSampleRate.N(time.Second/30))
	})
	return speakerErr
}

// AudioSource is a positional sound attached to a node. Playback runs through
// the speaker device; the source tracks its owning node's world position by
// listening to the node's transform. The source's decoded stream is closed
// deterministically when the last ownership share is released.
type AudioSource struct {
	Ref

	streamer  beep.StreamSeekCloser
	format    beep.Format
	ctrl      *beep.Ctrl
	volume    *effects.Volume
	resampler *beep.Resampler

	// The speaker mixes on its own goroutine, so the end-of-stream callback
	// lands off the simulation thread; state alone is mutex-guarded for that.
	mu    sync.Mutex
	state AudioState

	looped   bool
	gain     float32
	pitch    float32
	velocity mgl32.Vec3
	position mgl32.Vec3

	node *Node // Non-owning; the node the source is attached to.
}

// NewAudioSource creates an audio source from a sound file. Only wav files
// are supported. A source that cannot be created (missing or unsupported
// file) yields a nil source and an error; there is nothing to retry.
func NewAudioSource(path string) (*AudioSource, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".wav" {
		return nil, errors.Errorf("unsupported audio format %q (only wav is supported)", ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open audio file %q", path)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "decode wav %q", path)
	}
	audio := &AudioSource{
		streamer: streamer,
		format:   format,
		state:    AudioStateInitial,
		gain:     1,
		pitch:    1,
	}
	audio.Ref = newRef(func() {
		audio.Stop()
		audio.streamer.Close()
	})
	return audio, nil
}

// State returns the source's playback state.
func (audio *AudioSource) State() AudioState {
	audio.mu.Lock()
	defer audio.mu.Unlock()
	return audio.state
}

func (audio *AudioSource) setState(state AudioState) {
	audio.mu.Lock()
	audio.state = state
	audio.mu.Unlock()
}

// Play starts playback from the current stream position, or resumes if the
// source is paused. A device failure leaves the source stopped and is logged;
// there is no error to handle at this layer.
func (audio *AudioSource) Play() {
	switch audio.State() {
	case AudioStatePlaying:
		return
	case AudioStatePaused:
		audio.Resume()
		return
	}

	if err := initSpeaker(); err != nil {
		log.Warn("audio device unavailable", zap.Error(err))
		return
	}

	// Starting fresh after a natural end leaves the stream drained; always
	// begin from the top.
	audio.streamer.Seek(0)

	var base beep.Streamer = audio.streamer
	if audio.looped {
		base = beep.Loop(-1, audio.streamer)
	}
	ratio := float64(audio.format.SampleRate) / float64(audioSampleRate) * float64(audio.pitch)
	audio.resampler = beep.ResampleRatio(4, ratio, base)
	audio.ctrl = &beep.Ctrl{Streamer: audio.resampler}
	audio.volume = &effects.Volume{
		Streamer: audio.ctrl,
		Base:     2,
		Volume:   gainToVolume(audio.gain),
		Silent:   audio.gain <= 0,
	}

	audio.setState(AudioStatePlaying)
	speaker.Play(beep.Seq(audio.volume, beep.Callback(func() {
		audio.setState(AudioStateStopped)
	})))
}

// Pause pauses playback. Pausing a source that is not playing is a no-op.
func (audio *AudioSource) Pause() {
	if audio.State() != AudioStatePlaying || audio.ctrl == nil {
		return
	}
	speaker.Lock()
	audio.ctrl.Paused = true
	speaker.Unlock()
	audio.setState(AudioStatePaused)
}

// Resume resumes a paused source.
func (audio *AudioSource) Resume() {
	if audio.State() != AudioStatePaused || audio.ctrl == nil {
		return
	}
	speaker.Lock()
	audio.ctrl.Paused = false
	speaker.Unlock()
	audio.setState(AudioStatePlaying)
}

// Stop stops playback and rewinds the stream to the beginning.
func (audio *AudioSource) Stop() {
	state := audio.State()
	if state != AudioStatePlaying && state != AudioStatePaused {
		return
	}
	speaker.Lock()
	if audio.ctrl != nil {
		audio.ctrl.Paused = true
		audio.ctrl.Streamer = nil
	}
	audio.streamer.Seek(0)
	speaker.Unlock()
	audio.setState(AudioStateStopped)
}

// Rewind seeks the stream back to the beginning without changing the
// playback state.
func (audio *AudioSource) Rewind() {
	speaker.Lock()
	audio.streamer.Seek(0)
	speaker.Unlock()
}

// IsLooped returns whether the source loops.
func (audio *AudioSource) IsLooped() bool {
	return audio.looped
}

// SetLooped sets whether the source loops. Takes effect the next time
// playback starts from the beginning.
func (audio *AudioSource) SetLooped(looped bool) {
	audio.looped = looped
}

// Gain returns the source's gain.
func (audio *AudioSource) Gain() float32 {
	return audio.gain
}

// SetGain sets the source's gain, where 0 is silent and 1 is full volume.
func (audio *AudioSource) SetGain(gain float32) {
	audio.gain = gain
	if audio.volume != nil {
		speaker.Lock()
		audio.volume.Volume = gainToVolume(gain)
		audio.volume.Silent = gain <= 0
		speaker.Unlock()
	}
}

// Pitch returns the source's pitch multiplier.
func (audio *AudioSource) Pitch() float32 {
	return audio.pitch
}

// SetPitch sets the source's pitch multiplier; 1 plays at normal speed.
func (audio *AudioSource) SetPitch(pitch float32) {
	if pitch <= 0 {
		return
	}
	audio.pitch = pitch
	if audio.resampler != nil {
		ratio := float64(audio.format.SampleRate) / float64(audioSampleRate) * float64(pitch)
		speaker.Lock()
		audio.resampler.SetRatio(ratio)
		speaker.Unlock()
	}
}

// Velocity returns the source's velocity, used for doppler-style effects by
// consumers; the core only stores it.
func (audio *AudioSource) Velocity() mgl32.Vec3 {
	return audio.velocity
}

// SetVelocity sets the source's velocity.
func (audio *AudioSource) SetVelocity(velocity mgl32.Vec3) {
	audio.velocity = velocity
}

// Position returns the source's last-known world position, updated whenever
// the owning node's transform changes.
func (audio *AudioSource) Position() mgl32.Vec3 {
	return audio.position
}

// Node returns the node this source is attached to, or nil.
func (audio *AudioSource) Node() *Node {
	return audio.node
}

func (audio *AudioSource) setNode(node *Node) {
	if audio.node != nil {
		audio.node.RemoveListener(audio)
	}
	audio.node = node
	if node != nil {
		node.AddListener(audio)
		audio.position = node.WorldTranslation()
	}
}

// TransformChanged implements TransformListener. The owning node is always
// registered before the source, so the node's caches are already invalidated
// when this queries the new world position.
func (audio *AudioSource) TransformChanged(*Transform) {
	if audio.node != nil {
		audio.position = audio.node.WorldTranslation()
	}
}

func gainToVolume(gain float32) float64 {
	if gain <= 0 {
		return -10
	}
	return math.Log2(float64(gain))
}
