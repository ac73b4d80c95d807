package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"termray/pkg/loaders"
	"termray/pkg/renderer"
	"termray/pkg/scene"
	"termray/pkg/tui"
)

func main() {
	defaults := renderer.DefaultMarchConfig()

	scenePath := flag.String("scene", "", "Path to a TOML scene file (default: built-in scene)")
	fov := flag.Float64("fov", 30.0, "Horizontal field of view in degrees")
	marchSteps := flag.Int("march-steps", defaults.MaxSteps, "Ray march step budget per cell")
	hitThreshold := flag.Float64("hit-threshold", defaults.HitThreshold, "Hit distance threshold in world units")
	debug := flag.Bool("debug", false, "Write debug logs to termray.log")
	flag.Parse()

	if *debug {
		f, err := tea.LogToFile("termray.log", "termray")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	s := scene.NewDefaultScene()
	march := renderer.MarchConfig{
		MaxSteps:     *marchSteps,
		HitThreshold: *hitThreshold,
	}

	// Values set in the scene file win over flags.
	if *scenePath != "" {
		loaded, options, err := loaders.LoadScene(*scenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
		s = loaded
		if options.FOV != 0 {
			*fov = options.FOV
		}
		if options.March != nil {
			march = *options.March
		}
		log.Printf("loaded scene %s: %d surfaces, %d lights", *scenePath, len(s.Surfaces), len(s.Lights))
	}

	model, err := tui.NewModel(s, *fov, march)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
