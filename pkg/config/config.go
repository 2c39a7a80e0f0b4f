// Package config loads the viewer settings file.
//
// Settings cover presentation only: the theme flag, frame rate and window
// geometry. The sphere's own constants are compiled in (sphere.Params).
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/seclabx-org/portal/pkg/sphere"
	"github.com/seclabx-org/portal/pkg/watcher"
	"go.uber.org/zap"
)

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid settings")

// Settings is the content of the settings file
type Settings struct {
	Theme    string           `toml:"theme"`
	FPS      int              `toml:"fps"`
	Window   WindowSettings   `toml:"window"`
	Snapshot SnapshotSettings `toml:"snapshot"`
}

// WindowSettings holds the initial window size of the interactive shells
type WindowSettings struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// SnapshotSettings holds the defaults of the snapshot command
type SnapshotSettings struct {
	Frames int `toml:"frames"` // Frames to simulate
	Every  int `toml:"every"`  // Write every n-th frame
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		Theme: sphere.Light.String(),
		FPS:   60,
		Window: WindowSettings{
			Width:  1200,
			Height: 800,
		},
		Snapshot: SnapshotSettings{
			Frames: 120,
			Every:  30,
			Width:  500,
			Height: 500,
		},
	}
}

// Load reads settings from path. An empty path or a missing file yields the
// defaults; keys absent from the file keep their default values.
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates TOML settings on top of the defaults
func Parse(data []byte) (Settings, error) {
	s := Default()

	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Settings{}, fmt.Errorf("%w: unknown keys: %s", ErrInvalid, strings.Join(keys, ", "))
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks value ranges
func (s Settings) Validate() error {
	if _, err := sphere.ParseTheme(s.Theme); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if s.FPS < 1 || s.FPS > 240 {
		return fmt.Errorf("%w: fps must be between 1 and 240, got %d", ErrInvalid, s.FPS)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, s.Window.Width, s.Window.Height)
	}
	if s.Snapshot.Frames < 1 || s.Snapshot.Every < 1 {
		return fmt.Errorf("%w: snapshot frames and every must be at least 1", ErrInvalid)
	}
	if s.Snapshot.Width <= 0 || s.Snapshot.Height <= 0 {
		return fmt.Errorf("%w: snapshot size must be positive, got %dx%d", ErrInvalid, s.Snapshot.Width, s.Snapshot.Height)
	}
	return nil
}

// ThemeValue returns the parsed theme, Light if the value is invalid
func (s Settings) ThemeValue() sphere.Theme {
	theme, _ := sphere.ParseTheme(s.Theme)
	return theme
}

// Watch reloads the settings file whenever it changes and passes each valid
// version to onChange on the watcher's goroutine. Invalid edits are logged
// and skipped. The caller closes the returned watcher.
func Watch(ctx context.Context, path string, log *zap.Logger, onChange func(Settings)) (*watcher.FileWatcher, error) {
	if log == nil {
		log = zap.NewNop()
	}

	fw, err := watcher.NewFileWatcher(100*time.Millisecond, log)
	if err != nil {
		return nil, err
	}

	err = fw.Watch([]string{path}, func(string) {
		s, err := Load(path)
		if err != nil {
			log.Warn("ignoring settings change", zap.String("path", path), zap.Error(err))
			return
		}
		log.Info("settings reloaded", zap.String("path", path), zap.String("theme", s.Theme))
		onChange(s)
	})
	if err != nil {
		fw.Close()
		return nil, err
	}

	fw.Start(ctx)
	return fw, nil
}
