// Package lessons holds the individual OpenGL lessons, each runnable by name.
package lessons

import (
	"fmt"
	"sort"
	"strings"

	"github.com/richinsley/learngl/renderer"
)

// Info describes a registered lesson.
type Info struct {
	Name    string
	Summary string
	New     func() renderer.Lesson
}

var registry = map[string]Info{}

func register(name, summary string, ctor func() renderer.Lesson) {
	if _, dup := registry[name]; dup {
		panic("lessons: duplicate lesson " + name)
	}
	registry[name] = Info{Name: name, Summary: summary, New: ctor}
}

// Names returns the registered lesson names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every lesson, sorted by name.
func All() []Info {
	infos := make([]Info, 0, len(registry))
	for _, name := range Names() {
		infos = append(infos, registry[name])
	}
	return infos
}

// Get looks up a lesson by name.
func Get(name string) (Info, error) {
	info, ok := registry[name]
	if !ok {
		return Info{}, fmt.Errorf("unknown lesson %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return info, nil
}
