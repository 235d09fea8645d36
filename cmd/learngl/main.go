package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/richinsley/learngl/glfwcontext"
	"github.com/richinsley/learngl/lessons"
	"github.com/richinsley/learngl/options"
	"github.com/richinsley/learngl/renderer"
)

func init() {
	runtime.LockOSThread()
}

func printLessons() {
	for _, info := range lessons.All() {
		fmt.Printf("  %-24s %s\n", info.Name, info.Summary)
	}
}

func runLesson(opts *options.LessonOptions, info lessons.Info) error {
	record := opts.Recording()

	// If recording, the window stays hidden.
	ctx, err := glfwcontext.New(opts, !record)
	if err != nil {
		log.Println("Failed to create GLFW window")
		return err
	}
	defer ctx.Shutdown()

	r, err := renderer.NewRenderer(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer r.Shutdown()

	lesson := info.New()
	if record {
		log.Printf("Starting offscreen render of %s...", info.Name)
		return r.RunOffscreen(lesson)
	}
	log.Printf("Starting %s...", info.Name)
	return r.Run(lesson)
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("LearnOpenGL lessons")
		flag.PrintDefaults()
		fmt.Println("\nLessons:")
		printLessons()
		return
	}
	if *opts.List {
		printLessons()
		return
	}

	if *opts.ConfigFile != "" {
		cfg, err := options.LoadFile(*opts.ConfigFile)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		opts.Apply(flag.CommandLine, cfg)
	}
	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	info, err := lessons.Get(*opts.Lesson)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	err = runLesson(opts, info)
	glfwcontext.TerminateGraphics()
	if err != nil {
		log.Printf("Lesson %s failed: %v", info.Name, err)
		os.Exit(1)
	}
}
