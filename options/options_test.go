package options

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*flag.FlagSet, *LessonOptions) {
	t.Helper()
	fs := flag.NewFlagSet("learngl", flag.ContinueOnError)
	opts := Register(fs)
	require.NoError(t, fs.Parse(args))
	return fs, opts
}

func TestDefaults(t *testing.T) {
	_, opts := parse(t)
	assert.Equal(t, DefaultWidth, *opts.Width)
	assert.Equal(t, DefaultHeight, *opts.Height)
	assert.Equal(t, DefaultTitle, *opts.Title)
	assert.False(t, opts.Recording())
	assert.NoError(t, opts.Validate())
}

func TestValidate(t *testing.T) {
	_, opts := parse(t, "-width", "0")
	assert.Error(t, opts.Validate())

	_, opts = parse(t, "-record", "out.mp4", "-fps", "0")
	assert.True(t, opts.Recording())
	assert.ErrorContains(t, opts.Validate(), "fps")

	_, opts = parse(t, "-record", "out.mp4", "-duration", "-1")
	assert.ErrorContains(t, opts.Validate(), "duration")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "learngl.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileAndApply(t *testing.T) {
	path := writeConfig(t, `
lesson = "camera-walk"
hotreload = true

[window]
width = 1024
height = 768
title = "cubes"

[record]
fps = 30
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	fs, opts := parse(t, "-width", "640")
	opts.Apply(fs, cfg)

	assert.Equal(t, "camera-walk", *opts.Lesson)
	assert.Equal(t, 640, *opts.Width, "explicit flag wins over config")
	assert.Equal(t, 768, *opts.Height)
	assert.Equal(t, "cubes", *opts.Title)
	assert.Equal(t, 30, *opts.FPS)
	assert.True(t, *opts.HotReload)
	assert.Equal(t, "assets", *opts.AssetsDir, "unset config keys keep flag defaults")
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[window]\ndepth = 3\n")
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
