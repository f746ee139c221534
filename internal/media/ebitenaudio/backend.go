// Package ebitenaudio plays MP3 tracks from disk through ebiten's audio context.
package ebitenaudio

import (
	"fmt"
	"os"

	"portfolio/internal/media"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

// DefaultSampleRate is the output sample rate for decoded tracks.
const DefaultSampleRate = 44100

// Backend decodes MP3 files from disk into ebiten audio players.
type Backend struct {
	context *audio.Context
}

// NewBackend creates the audio context. It must be called at most once per process.
func NewBackend(sampleRate int) *Backend {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Backend{context: audio.NewContext(sampleRate)}
}

// Open implements media.Opener.
func (backend *Backend) Open(path string) (media.Stream, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open track: %w", err)
	}

	decoded, err := mp3.DecodeWithSampleRate(backend.context.SampleRate(), file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("decode track %s: %w", path, err)
	}

	player, err := backend.context.NewPlayer(decoded)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("create player for %s: %w", path, err)
	}

	return &stream{player: player, file: file}, nil
}

var _ media.Stream = (*stream)(nil)

type stream struct {
	player *audio.Player
	file   *os.File
}

func (s *stream) Play() {
	s.player.Play()
}

func (s *stream) Pause() {
	s.player.Pause()
}

func (s *stream) IsPlaying() bool {
	return s.player.IsPlaying()
}

func (s *stream) SetVolume(volume float64) {
	s.player.SetVolume(volume)
}

func (s *stream) Rewind() error {
	return s.player.SetPosition(0)
}

func (s *stream) Close() error {
	playerErr := s.player.Close()
	fileErr := s.file.Close()
	if playerErr != nil {
		return fmt.Errorf("close player: %w", playerErr)
	}
	return fileErr
}
