package monocle

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// SampleRate is the mixer output rate.
const SampleRate = 44100

// MaxVolume is the loudest music and SFX volume.
const MaxVolume = 128

// SFX is a sound effect decoded to PCM at load time.
type SFX struct {
	Name string
	pcm  []byte
}

// decodeStream picks a decoder by file extension.
func decodeStream(file string, data []byte) (io.ReadSeeker, int64, error) {
	r := bytes.NewReader(data)
	switch strings.ToLower(path.Ext(file)) {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	default:
		return nil, 0, fmt.Errorf("monocle: %s: unsupported audio format", file)
	}
}

func decodeSFX(name, file string, data []byte) (*SFX, error) {
	s, _, err := decodeStream(file, data)
	if err != nil {
		return nil, fmt.Errorf("monocle: decode sfx %q: %w", name, err)
	}
	pcm, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("monocle: decode sfx %q: %w", name, err)
	}
	return &SFX{Name: name, pcm: pcm}, nil
}

// fade animates the music gain multiplier between 0 and 1.
type fade struct {
	tween *gween.Tween
	stop  bool // stop the music when the fade finishes
}

// Mixer plays one looping music track and any number of sound effects.
// The audio context is created on first use.
type Mixer struct {
	res *Resources

	ctx       *audio.Context
	music     *audio.Player
	musicFile string
	volume    int
	gain      float64
	fade      *fade
	paused    bool

	sfx []*audio.Player
}

func newMixer(res *Resources) *Mixer {
	return &Mixer{res: res, volume: MaxVolume, gain: 1}
}

func (m *Mixer) context() *audio.Context {
	if m.ctx == nil {
		if c := audio.CurrentContext(); c != nil {
			m.ctx = c
		} else {
			m.ctx = audio.NewContext(SampleRate)
		}
	}
	return m.ctx
}

// PlayMusic starts the named music resource, looping forever. With
// fadeInMs > 0 it fades in over that many milliseconds. Asking for the
// file that is already playing does nothing.
func (m *Mixer) PlayMusic(name string, fadeInMs int) error {
	file, ok := m.res.Music(name)
	if !ok {
		return fmt.Errorf("monocle: music %q: %w", name, ErrResourceNotFound)
	}
	return m.PlayMusicFile(file, fadeInMs)
}

// PlayMusicFile is PlayMusic for a raw file name.
func (m *Mixer) PlayMusicFile(file string, fadeInMs int) error {
	if m.music != nil && m.musicFile == file {
		return nil
	}
	m.StopMusic()
	b, err := m.res.Raw(file)
	if err != nil {
		return err
	}
	stream, length, err := decodeStream(file, b)
	if err != nil {
		return fmt.Errorf("monocle: play music: %w", err)
	}
	p, err := m.context().NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		return fmt.Errorf("monocle: play music: %w", err)
	}
	m.music = p
	m.musicFile = file
	m.paused = false
	m.gain = 1
	if fadeInMs > 0 {
		m.gain = 0
		m.fade = &fade{tween: gween.New(0, 1, float32(fadeInMs)/1000, ease.Linear)}
	}
	m.apply()
	p.Play()
	Logger().Debug("playing music", zap.String("file", file), zap.Int("fade_in_ms", fadeInMs))
	return nil
}

// StopMusic stops and releases the current track.
func (m *Mixer) StopMusic() {
	m.fade = nil
	if m.music == nil {
		return
	}
	m.music.Pause()
	if err := m.music.Close(); err != nil {
		Logger().Warn("close music player", zap.Error(err))
	}
	m.music = nil
	m.musicFile = ""
}

// FadeOutMusic fades the current track out over ms milliseconds and then
// stops it.
func (m *Mixer) FadeOutMusic(ms int) {
	if m.music == nil {
		return
	}
	if ms <= 0 {
		m.StopMusic()
		return
	}
	m.fade = &fade{
		tween: gween.New(float32(m.gain), 0, float32(ms)/1000, ease.Linear),
		stop:  true,
	}
}

// SetMusicVolume sets the music volume, clamped to [0, MaxVolume].
func (m *Mixer) SetMusicVolume(v int) {
	m.volume = clampVolume(v)
	m.apply()
}

// MusicVolume returns the music volume.
func (m *Mixer) MusicVolume() int {
	return m.volume
}

// PauseMusic pauses the current track.
func (m *Mixer) PauseMusic() {
	if m.music != nil && !m.paused {
		m.music.Pause()
		m.paused = true
	}
}

// ResumeMusic resumes a paused track.
func (m *Mixer) ResumeMusic() {
	if m.music != nil && m.paused {
		m.music.Play()
		m.paused = false
	}
}

// MusicPaused reports whether the current track is paused.
func (m *Mixer) MusicPaused() bool {
	return m.paused
}

// PlaySFX plays s once at the given volume in [0, MaxVolume].
func (m *Mixer) PlaySFX(s *SFX, volume int) {
	if s == nil {
		return
	}
	p := m.context().NewPlayerFromBytes(s.pcm)
	p.SetVolume(float64(clampVolume(volume)) / MaxVolume)
	p.Play()
	m.sfx = append(m.sfx, p)
}

// update advances fades by dt seconds and releases finished SFX players.
func (m *Mixer) update(dt float32) {
	if m.fade != nil {
		v, done := m.fade.tween.Update(dt)
		m.gain = float64(v)
		m.apply()
		if done {
			stop := m.fade.stop
			m.fade = nil
			if stop {
				m.StopMusic()
			}
		}
	}
	live := m.sfx[:0]
	for _, p := range m.sfx {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	clear(m.sfx[len(live):])
	m.sfx = live
}

func (m *Mixer) apply() {
	if m.music != nil {
		m.music.SetVolume(musicGain(m.volume, m.gain))
	}
}

// musicGain maps a 0..MaxVolume volume and a fade multiplier to a player
// volume.
func musicGain(volume int, gain float64) float64 {
	return float64(clampVolume(volume)) / MaxVolume * gain
}

func clampVolume(v int) int {
	return max(0, min(v, MaxVolume))
}
