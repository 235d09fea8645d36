package lessons

import (
	"log"
	"path/filepath"

	"github.com/richinsley/learngl/renderer"
	"github.com/richinsley/learngl/shader"
	"github.com/richinsley/learngl/texture"
)

func shaderPath(env *renderer.Env, name string) string {
	return filepath.Join(env.AssetsDir, "shaders", name)
}

func texturePath(env *renderer.Env, name string) string {
	return filepath.Join(env.AssetsDir, "textures", name)
}

// loadProgram builds a program from two files under assets/shaders and
// registers it for hot reload.
func loadProgram(env *renderer.Env, vertex, fragment string) (*shader.Program, error) {
	p, err := shader.Load(shaderPath(env, vertex), shaderPath(env, fragment))
	if err != nil {
		return nil, err
	}
	env.Watch(p)
	return p, nil
}

// loadTexture loads an image under assets/textures. A missing or unreadable
// image is logged and leaves an empty texture bound in its place.
func loadTexture(env *renderer.Env, name string) *texture.Texture {
	t, err := texture.Load(texturePath(env, name), texture.DefaultOptions)
	if err != nil {
		log.Println(err)
	}
	return t
}
