// ABOUTME: Settings loading with global + project YAML files; project values override global ones
// ABOUTME: Each file decodes onto the previous result, so absent keys keep their earlier value

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/tui-overlay/internal/log"
	"github.com/mauromedda/tui-overlay/pkg/geom"
)

// Duration is a time.Duration written as "700ms" or as an integer of
// milliseconds.
type Duration time.Duration

// UnmarshalYAML accepts Go duration strings and plain millisecond counts.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var ms int64
	if err := node.Decode(&ms); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("line %d: duration must be a string or milliseconds", node.Line)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML writes the Go duration syntax.
func (d Duration) MarshalYAML() (any, error) { return time.Duration(d).String(), nil }

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Settings holds the merged configuration.
type Settings struct {
	LogLevel string          `yaml:"log_level"`
	Theme    string          `yaml:"theme"`
	Tooltip  TooltipSettings `yaml:"tooltip"`
	Window   WindowSettings  `yaml:"window"`
	Busy     BusySettings    `yaml:"busy"`
}

// TooltipSettings configures every tooltip the program creates.
type TooltipSettings struct {
	HideDelay  Duration `yaml:"hide_delay"`
	Horizontal string   `yaml:"horizontal"`
	Vertical   string   `yaml:"vertical"`
	MaxWidth   int      `yaml:"max_width"`
}

// WindowSettings configures floating windows.
type WindowSettings struct {
	MinWidth           int  `yaml:"min_width"`
	MinHeight          int  `yaml:"min_height"`
	Movable            bool `yaml:"movable"`
	Resizable          bool `yaml:"resizable"`
	ShowCloseButton    bool `yaml:"show_close_button"`
	ShowMaximizeButton bool `yaml:"show_maximize_button"`
}

// BusySettings configures busy indicators.
type BusySettings struct {
	FrameInterval Duration `yaml:"frame_interval"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		LogLevel: "info",
		Theme:    "default",
		Tooltip: TooltipSettings{
			HideDelay:  Duration(700 * time.Millisecond),
			Horizontal: "center",
			Vertical:   "top",
			MaxWidth:   40,
		},
		Window: WindowSettings{
			MinWidth:           12,
			MinHeight:          4,
			Movable:            true,
			Resizable:          true,
			ShowCloseButton:    true,
			ShowMaximizeButton: true,
		},
		Busy: BusySettings{FrameInterval: Duration(80 * time.Millisecond)},
	}
}

// Load reads and merges global and project-local settings onto Defaults.
// Missing files are skipped.
func Load(projectRoot string) (*Settings, error) {
	return LoadFiles(Files(projectRoot)...)
}

// LoadFiles merges the given files in order onto Defaults and validates
// the result.
func LoadFiles(paths ...string) (*Settings, error) {
	s := Defaults()
	for _, path := range paths {
		if err := mergeFile(&s, path); err != nil {
			return nil, err
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// mergeFile decodes path onto s. A missing or empty file leaves s unchanged.
func mergeFile(s *Settings, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("config %s not found, skipping", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid value at once.
func (s *Settings) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := geom.ParseHAlign(s.Tooltip.Horizontal); err != nil {
		errs = append(errs, fmt.Errorf("tooltip.horizontal: %w", err))
	}
	if _, err := geom.ParseVAlign(s.Tooltip.Vertical); err != nil {
		errs = append(errs, fmt.Errorf("tooltip.vertical: %w", err))
	}
	if s.Tooltip.HideDelay < 0 {
		errs = append(errs, errors.New("tooltip.hide_delay must not be negative"))
	}
	if s.Tooltip.MaxWidth <= 0 {
		errs = append(errs, errors.New("tooltip.max_width must be positive"))
	}
	if s.Window.MinWidth < 0 || s.Window.MinHeight < 0 {
		errs = append(errs, errors.New("window minimum size must not be negative"))
	}
	if s.Busy.FrameInterval < 0 {
		errs = append(errs, errors.New("busy.frame_interval must not be negative"))
	}
	return errors.Join(errs...)
}
