package shader

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/learngl/translator"
)

// ErrFileRead is returned when a shader source file cannot be read.
var ErrFileRead = errors.New("ERROR::SHADER::FILE_NOT_SUCCESSFULLY_READ")

// Program is a linked vertex + fragment shader program.
// A Program whose ID is 0 failed to build; using it binds no program and its
// setters write nothing.
type Program struct {
	ID uint32

	vertexPath   string
	fragmentPath string
	// uniform name in source -> name in compiled code, set when the source was translated
	names     map[string]string
	locations map[string]int32
}

// Load reads the vertex and fragment sources from disk and builds a program from them.
// Failures are logged and also returned; the returned Program is never nil.
func Load(vertexPath, fragmentPath string) (*Program, error) {
	p := &Program{vertexPath: vertexPath, fragmentPath: fragmentPath}
	vs, fs, err := readSources(vertexPath, fragmentPath)
	if err != nil {
		log.Println(err)
		return p, err
	}
	if err := p.build(vs, fs); err != nil {
		return p, err
	}
	return p, nil
}

// New builds a program from in-memory sources.
func New(vertexSource, fragmentSource string) (*Program, error) {
	p := &Program{}
	if err := p.build(vertexSource, fragmentSource); err != nil {
		return p, err
	}
	return p, nil
}

func readSources(vertexPath, fragmentPath string) (string, string, error) {
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	return string(vs), string(fs), nil
}

func (p *Program) build(vertexSource, fragmentSource string) error {
	var names map[string]string
	if translator.NeedsTranslation(vertexSource) || translator.NeedsTranslation(fragmentSource) {
		var err error
		vertexSource, fragmentSource, names, err = translate(vertexSource, fragmentSource)
		if err != nil {
			log.Println(err)
			return err
		}
	}

	id, err := newProgram(vertexSource, fragmentSource)
	if err != nil {
		log.Println(err)
		return err
	}
	p.ID = id
	p.names = names
	p.locations = make(map[string]int32)
	return nil
}

func translate(vs, fs string) (string, string, map[string]string, error) {
	names := make(map[string]string)
	if translator.NeedsTranslation(vs) {
		code, vnames, err := translator.Translate(vs, translator.Vertex)
		if err != nil {
			return "", "", nil, err
		}
		vs = code
		for k, v := range vnames {
			names[k] = v
		}
	}
	if translator.NeedsTranslation(fs) {
		code, fnames, err := translator.Translate(fs, translator.Fragment)
		if err != nil {
			return "", "", nil, err
		}
		fs = code
		for k, v := range fnames {
			names[k] = v
		}
	}
	return vs, fs, names, nil
}

// Reload rebuilds the program from its source files. The current program is
// kept when the rebuild fails.
func (p *Program) Reload() error {
	if p.vertexPath == "" {
		return errors.New("program was not loaded from files")
	}
	next, err := Load(p.vertexPath, p.fragmentPath)
	if err != nil {
		return err
	}
	p.Delete()
	*p = *next
	return nil
}

// Paths returns the source files the program was loaded from.
func (p *Program) Paths() (string, string) {
	return p.vertexPath, p.fragmentPath
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the program object.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// Location returns the location of the named uniform, or -1.
func (p *Program) Location(name string) int32 {
	if p.ID == 0 {
		return -1
	}
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(p.mappedName(name)+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) mappedName(name string) string {
	// Array elements are looked up by their base name.
	base, index, found := strings.Cut(name, "[")
	if mapped, ok := p.names[base]; ok {
		if found {
			return mapped + "[" + index
		}
		return mapped
	}
	return name
}

func (p *Program) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	p.SetInt(name, v)
}

func (p *Program) SetInt(name string, value int32) {
	if loc := p.Location(name); loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

func (p *Program) SetFloat(name string, value float32) {
	if loc := p.Location(name); loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.Location(name); loc != -1 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if loc := p.Location(name); loc != -1 {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.Location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}
