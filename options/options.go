package options

import (
	"errors"
	"flag"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "Learning OpenGL"
)

type LessonOptions struct {
	Lesson     *string
	List       *bool
	Help       *bool
	Width      *int
	Height     *int
	Title      *string
	AssetsDir  *string // Directory holding shaders/ and textures/
	ConfigFile *string // Optional TOML file; explicit flags win over it
	HotReload  *bool   // Rebuild shader programs when their source files change
	// Recording options
	RecordFile *string // When set, render hidden and encode to this file instead of opening a window
	Duration   *float64
	FPS        *int
	FFMPEGPath *string
}

// Register adds the lesson flags to fs and returns the options they populate.
func Register(fs *flag.FlagSet) *LessonOptions {
	return &LessonOptions{
		Lesson:     fs.String("lesson", "hello-triangle", "Lesson to run (see -list)"),
		List:       fs.Bool("list", false, "List available lessons and exit"),
		Help:       fs.Bool("help", false, "Show help message"),
		Width:      fs.Int("width", DefaultWidth, "Window width"),
		Height:     fs.Int("height", DefaultHeight, "Window height"),
		Title:      fs.String("title", DefaultTitle, "Window title"),
		AssetsDir:  fs.String("assets", "assets", "Directory containing shaders/ and textures/"),
		ConfigFile: fs.String("config", "", "Optional TOML configuration file"),
		HotReload:  fs.Bool("hotreload", false, "Reload shader files when they change on disk"),
		RecordFile: fs.String("record", "", "Record the lesson to this video file instead of showing a window"),
		Duration:   fs.Float64("duration", 10.0, "Duration to record in seconds"),
		FPS:        fs.Int("fps", 60, "Frames per second for recording"),
		FFMPEGPath: fs.String("ffmpeg", "", "Path to ffmpeg executable"),
	}
}

// Recording reports whether the options ask for offscreen recording.
func (o *LessonOptions) Recording() bool {
	return o.RecordFile != nil && *o.RecordFile != ""
}

// Validate checks the options for values no lesson can run with.
func (o *LessonOptions) Validate() error {
	var errs []error
	if *o.Width <= 0 || *o.Height <= 0 {
		errs = append(errs, errors.New("width and height must be positive"))
	}
	if *o.Lesson == "" && !*o.List {
		errs = append(errs, errors.New("no lesson selected"))
	}
	if o.Recording() {
		if *o.FPS <= 0 {
			errs = append(errs, errors.New("fps must be positive"))
		}
		if *o.Duration <= 0 {
			errs = append(errs, errors.New("duration must be positive"))
		}
	}
	return errors.Join(errs...)
}
