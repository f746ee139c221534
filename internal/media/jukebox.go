package media

import (
	"context"
	"errors"
	"sync"
	"time"

	"portfolio/internal/core/playlist"

	"go.uber.org/zap"
)

var (
	// ErrEmptyPlaylist indicates there is nothing to play.
	ErrEmptyPlaylist = errors.New("playlist is empty")
	// ErrNoPlayableTrack indicates every track in the playlist failed to load.
	ErrNoPlayableTrack = errors.New("no playable track in playlist")
)

// DefaultVolume is applied when no volume is configured.
const DefaultVolume = 0.5

// Stream is a single decoded track ready for playback.
type Stream interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Rewind() error
	Close() error
}

// Opener loads a track.
type Opener func(path string) (Stream, error)

// Jukebox plays a looping playlist one track at a time.
type Jukebox struct {
	mu      sync.Mutex
	cursor  *playlist.Cursor
	open    Opener
	volume  float64
	logger  *zap.Logger
	stream  Stream
	playing bool
}

// NewJukebox creates a jukebox over tracks. A volume outside (0, 1] becomes DefaultVolume.
func NewJukebox(tracks []string, open Opener, volume float64, logger *zap.Logger) *Jukebox {
	if volume <= 0 || volume > 1 {
		volume = DefaultVolume
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Jukebox{
		cursor: playlist.NewCursor(tracks),
		open:   open,
		volume: volume,
		logger: logger,
	}
}

// Play resumes the paused track or starts the current one.
func (jukebox *Jukebox) Play() error {
	jukebox.mu.Lock()
	defer jukebox.mu.Unlock()
	jukebox.playing = true
	if jukebox.stream != nil {
		jukebox.stream.Play()
		return nil
	}
	return jukebox.startCurrentLocked()
}

// Pause holds the current track at its position.
func (jukebox *Jukebox) Pause() {
	jukebox.mu.Lock()
	defer jukebox.mu.Unlock()
	jukebox.playing = false
	if jukebox.stream != nil {
		jukebox.stream.Pause()
	}
}

// Stop halts playback and rewinds the playlist to its first track.
func (jukebox *Jukebox) Stop() {
	jukebox.mu.Lock()
	defer jukebox.mu.Unlock()
	jukebox.playing = false
	jukebox.closeStreamLocked()
	jukebox.cursor.Rewind()
}

// SetVolume changes the volume of the current and following tracks.
func (jukebox *Jukebox) SetVolume(volume float64) {
	jukebox.mu.Lock()
	defer jukebox.mu.Unlock()
	if volume <= 0 || volume > 1 {
		return
	}
	jukebox.volume = volume
	if jukebox.stream != nil {
		jukebox.stream.SetVolume(volume)
	}
}

// Track returns the index of the current track.
func (jukebox *Jukebox) Track() int {
	jukebox.mu.Lock()
	defer jukebox.mu.Unlock()
	return jukebox.cursor.Index()
}

// Poll advances to the next track once the current one has ended.
func (jukebox *Jukebox) Poll() {
	jukebox.mu.Lock()
	defer jukebox.mu.Unlock()
	if !jukebox.playing || jukebox.stream == nil || jukebox.stream.IsPlaying() {
		return
	}

	jukebox.closeStreamLocked()
	jukebox.cursor.Advance()
	if err := jukebox.startCurrentLocked(); err != nil {
		jukebox.logger.Warn("playlist halted", zap.Error(err))
	}
}

// Watch polls for finished tracks until ctx is done.
func (jukebox *Jukebox) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			jukebox.Poll()
		}
	}
}

func (jukebox *Jukebox) startCurrentLocked() error {
	if jukebox.cursor.Len() == 0 {
		jukebox.playing = false
		return ErrEmptyPlaylist
	}

	for attempt := 0; attempt < jukebox.cursor.Len(); attempt++ {
		path, _ := jukebox.cursor.Current()
		stream, err := jukebox.open(path)
		if err != nil {
			jukebox.logger.Warn("skipping track", zap.String("track", path), zap.Error(err))
			jukebox.cursor.Advance()
			continue
		}
		stream.SetVolume(jukebox.volume)
		stream.Play()
		jukebox.stream = stream
		jukebox.logger.Debug("playing track", zap.String("track", path), zap.Int("index", jukebox.cursor.Index()))
		return nil
	}

	jukebox.playing = false
	return ErrNoPlayableTrack
}

func (jukebox *Jukebox) closeStreamLocked() {
	if jukebox.stream == nil {
		return
	}
	jukebox.stream.Pause()
	if err := jukebox.stream.Rewind(); err != nil {
		jukebox.logger.Debug("rewind track", zap.Error(err))
	}
	if err := jukebox.stream.Close(); err != nil {
		jukebox.logger.Debug("close track", zap.Error(err))
	}
	jukebox.stream = nil
}
