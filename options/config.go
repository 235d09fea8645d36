package options

import (
	"flag"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// File is the on-disk configuration. Zero values mean "not set".
type File struct {
	Lesson    string       `toml:"lesson"`
	HotReload bool         `toml:"hotreload"`
	Window    WindowConfig `toml:"window"`
	Assets    AssetsConfig `toml:"assets"`
	Record    RecordConfig `toml:"record"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type AssetsConfig struct {
	Dir string `toml:"dir"`
}

type RecordConfig struct {
	Output     string  `toml:"output"`
	Duration   float64 `toml:"duration"`
	FPS        int     `toml:"fps"`
	FFMPEGPath string  `toml:"ffmpeg"`
}

// LoadFile decodes a TOML configuration file. Unknown keys are rejected.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	var cfg File
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply copies values from cfg into o for every flag that was not set explicitly in fs.
// fs must already be parsed.
func (o *LessonOptions) Apply(fs *flag.FlagSet, cfg *File) {
	if cfg == nil {
		return
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	setString := func(name string, dst *string, v string) {
		if !set[name] && v != "" {
			*dst = v
		}
	}
	setInt := func(name string, dst *int, v int) {
		if !set[name] && v != 0 {
			*dst = v
		}
	}

	setString("lesson", o.Lesson, cfg.Lesson)
	setInt("width", o.Width, cfg.Window.Width)
	setInt("height", o.Height, cfg.Window.Height)
	setString("title", o.Title, cfg.Window.Title)
	setString("assets", o.AssetsDir, cfg.Assets.Dir)
	setString("record", o.RecordFile, cfg.Record.Output)
	setInt("fps", o.FPS, cfg.Record.FPS)
	setString("ffmpeg", o.FFMPEGPath, cfg.Record.FFMPEGPath)
	if !set["duration"] && cfg.Record.Duration != 0 {
		*o.Duration = cfg.Record.Duration
	}
	if !set["hotreload"] && cfg.HotReload {
		*o.HotReload = true
	}
}
