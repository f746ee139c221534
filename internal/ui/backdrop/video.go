// Package backdrop renders the looping background video behind the Pomodoro
// screen as a frame sequence.
package backdrop

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// Video is a Fyne image that plays a Player's frames.
type Video struct {
	*Player
	image *canvas.Image
}

// NewVideo creates a hidden backdrop image driven by frames.
func NewVideo(frames []fyne.Resource, framesPerSecond int) *Video {
	image := canvas.NewImageFromResource(nil)
	image.FillMode = canvas.ImageFillStretch
	image.Translucency = 0.35
	image.Hide()

	video := &Video{image: image}
	video.Player = NewPlayer(frames, framesPerSecond, func(resource fyne.Resource) {
		fyne.Do(func() {
			image.Resource = resource
			image.Refresh()
		})
	}, func(visible bool) {
		fyne.Do(func() {
			if visible {
				image.Show()
				return
			}
			image.Hide()
		})
	})
	return video
}

// CanvasObject returns the image to place behind the timer content.
func (video *Video) CanvasObject() fyne.CanvasObject {
	return video.image
}

// LoadFrames reads PNG and JPEG frames from dir in name order.
func LoadFrames(dir string) ([]fyne.Resource, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read frames dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".png", ".jpg", ".jpeg":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	frames := make([]fyne.Resource, 0, len(names))
	for _, name := range names {
		resource, err := fyne.LoadResourceFromPath(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("load frame %s: %w", name, err)
		}
		frames = append(frames, resource)
	}
	return frames, nil
}
