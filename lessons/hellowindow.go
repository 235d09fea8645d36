package lessons

import "github.com/richinsley/learngl/renderer"

// helloWindow only clears the window every frame.
type helloWindow struct{}

func init() {
	register("hello-window", "Open a window and clear it", func() renderer.Lesson { return &helloWindow{} })
}

func (l *helloWindow) Init(*renderer.Env) error { return nil }
func (l *helloWindow) Update(renderer.Frame) {}
func (l *helloWindow) Draw(renderer.Frame) {}
func (l *helloWindow) Destroy() {}
