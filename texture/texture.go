// Package texture loads images from disk into 2D GL textures.
package texture

import (
	"errors"
	"fmt"
	"image"
	"os"

	// Decoders registered with image.Decode.
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrLoad is wrapped by every image read or decode failure.
var ErrLoad = errors.New("Failed to load texture")

type Wrap string

const (
	Repeat       Wrap = "repeat"
	Clamp        Wrap = "clamp"
	MirrorRepeat Wrap = "mirror"
)

type Filter string

const (
	Nearest Filter = "nearest"
	Linear  Filter = "linear"
	Mipmap  Filter = "mipmap"
)

// Options controls how an image is sampled.
type Options struct {
	Wrap   Wrap
	Filter Filter
	// FlipY flips rows so the first row of the image is at t=0, where GL expects it.
	FlipY bool
}

// DefaultOptions repeats, filters with trilinear mipmaps and flips.
var DefaultOptions = Options{Wrap: Repeat, Filter: Mipmap, FlipY: true}

// Texture is a 2D texture object.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// Decode reads an image file and returns it as tightly packed RGBA.
func Decode(path string, flipY bool) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	if flipY {
		rgba = vflip(rgba)
	}
	return rgba, nil
}

// vflip vertically flips the provided RGBA image.
func vflip(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	flipped := image.NewRGBA(bounds)
	height := bounds.Dy()

	rowSize := bounds.Dx() * 4
	for y := 0; y < height; y++ {
		srcRow := src.Pix[((height-1)-y)*src.Stride:]
		dstRow := flipped.Pix[y*flipped.Stride:]
		copy(dstRow, srcRow[:rowSize])
	}
	return flipped
}

// Load decodes the image at path and uploads it into a new texture.
// When decoding fails the texture object is still created, without storage,
// so callers may log the error and keep drawing.
func Load(path string, opts Options) (*Texture, error) {
	t := &Texture{}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	defer gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapMode(opts.Wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapMode(opts.Wrap))
	minFilter, magFilter := filterMode(opts.Filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)

	rgba, err := Decode(path, opts.FlipY)
	if err != nil {
		return t, err
	}

	t.Width = rgba.Rect.Dx()
	t.Height = rgba.Rect.Dy()
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(t.Width),
		int32(t.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	if opts.Filter == Mipmap {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	return t, nil
}

// Bind activates texture unit and binds t to it.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

func wrapMode(wrap Wrap) int32 {
	switch wrap {
	case Clamp:
		return gl.CLAMP_TO_EDGE
	case MirrorRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.REPEAT
	}
}

func filterMode(filter Filter) (minFilter, magFilter int32) {
	switch filter {
	case Mipmap:
		return gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR
	case Nearest:
		return gl.NEAREST, gl.NEAREST
	default:
		return gl.LINEAR, gl.LINEAR
	}
}
