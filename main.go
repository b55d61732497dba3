package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/input"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/settings"
	"github.com/pkg/profile"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	autopilot := flag.String("autopilot", "", "drive the player with a tengo script from prefabs/scripts (e.g. patrol)")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	prefs := settings.Open("topdown")
	if *fullscreen {
		prefs.SetFullscreen(true)
	}

	var source input.Source = NewKeyboard()
	if *autopilot != "" {
		script, err := loadAutopilot(*autopilot)
		if err != nil {
			log.Fatalf("autopilot: %v", err)
		}
		source = script
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("topdown")
	ebiten.SetFullscreen(prefs.Get().Fullscreen)

	game := NewGame(GameOptions{
		Debug:     *debug,
		Movement:  source,
		Autopilot: *autopilot,
		Settings:  prefs,
	})
	defer game.Close()

	var p interface{ Stop() }
	if *cpuProfile {
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	}
	err := ebiten.RunGame(game)
	if p != nil {
		p.Stop()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		game.Close()
		log.Fatal(err)
	}
}

func loadAutopilot(name string) (*input.Script, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	return input.NewScript(name, src)
}
