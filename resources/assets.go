package resources

import (
	"embed"
	"fmt"
	"sync"

	"portfolio/internal/core/model"

	"fyne.io/fyne/v2"
	"gopkg.in/yaml.v3"
)

const logoDir = "logo/"

//go:embed logo/*.svg
var logoFS embed.FS

//go:embed defaults.yaml
var defaultsYAML []byte

var logoCache sync.Map

type defaultsFile struct {
	Tracks    []string `yaml:"tracks"`
	FramesDir string   `yaml:"frames_dir"`
	About     []struct {
		ID          string `yaml:"id"`
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"about"`
}

// Defaults holds built-in content shipped with the binary.
type Defaults struct {
	Tracks    []string
	FramesDir string
	About     []model.AboutRegion
}

// LoadDefaults parses the embedded defaults.
func LoadDefaults() (Defaults, error) {
	var file defaultsFile
	if err := yaml.Unmarshal(defaultsYAML, &file); err != nil {
		return Defaults{}, fmt.Errorf("parse embedded defaults: %w", err)
	}

	defaults := Defaults{
		Tracks:    file.Tracks,
		FramesDir: file.FramesDir,
	}
	for _, region := range file.About {
		defaults.About = append(defaults.About, model.AboutRegion{
			ID:          region.ID,
			Title:       region.Title,
			Description: region.Description,
		})
	}
	return defaults, nil
}

// MustDefaults returns the embedded defaults or panics on error.
func MustDefaults() Defaults {
	defaults, err := LoadDefaults()
	if err != nil {
		panic(err)
	}
	return defaults
}

// Logo returns a Fyne resource for the given logo file.
func Logo(fileName string) (fyne.Resource, error) {
	return loadResource(logoFS, logoDir+fileName, &logoCache)
}

// MustLogo returns a Fyne resource or panics on error.
func MustLogo(fileName string) fyne.Resource {
	resource, err := Logo(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
