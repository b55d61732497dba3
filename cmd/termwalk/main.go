package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/topdown/clock"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/input"
	"github.com/milk9111/topdown/prefabs"
)

// World units per terminal cell. Cells are about twice as tall as wide.
const (
	cellW = 20.0
	cellH = 40.0
)

const sampleRate = beep.SampleRate(44100)

type walker struct {
	screen    tcell.Screen
	world     *ecs.World
	scheduler *ecs.Scheduler
	clock     *clock.Wall
	keys      *decayKeys
	scripted  bool
	inspector bool
	audio     bool
}

func newWalker(source input.Source, keys *decayKeys, debug, sound bool) (*walker, error) {
	world := ecs.NewWorld()
	if _, err := entity.NewCamera(world); err != nil {
		return nil, err
	}
	if _, err := entity.NewPlayer(world, nil); err != nil {
		return nil, err
	}
	if _, err := entity.NewTree(world, nil); err != nil {
		return nil, err
	}

	audio := false
	if sound {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			log.Printf("audio initialization failed: %v", err)
		} else {
			audio = true
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	w := &walker{
		screen: screen,
		world:  world,
		scheduler: ecs.NewScheduler(
			system.NewInputSystem(source),
			system.NewMovementSystem(),
			system.NewAnimationSystem(),
			system.NewCameraSystem(debug),
		),
		clock: clock.NewWall(),
		keys:  keys,
		audio: audio,
	}
	_, w.scripted = source.(*input.Script)

	return w, nil
}

func (w *walker) run() error {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := w.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !w.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if err := w.step(); err != nil {
				return err
			}
			w.draw()
		}
	}
}

func (w *walker) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		w.keys.press(ev)
	case *tcell.EventResize:
		w.screen.Sync()
	}
	return true
}

func (w *walker) step() error {
	// A script drives movement through the input system; terminal keys still
	// drive the overlay and are polled here instead.
	if w.scripted {
		if err := w.keys.Poll(); err != nil {
			return err
		}
	}
	if err := w.scheduler.Update(w.world, w.clock.Elapsed()); err != nil {
		return err
	}
	if w.keys.Released(input.KeyInspector) {
		w.inspector = !w.inspector
	}

	for _, evt := range w.world.Events().Drain() {
		if evt.Type == ecs.EventClipSwapped {
			w.chirp(evt.Data)
		}
	}
	return nil
}

// chirp plays a short tone on a clip swap, higher for walking clips.
func (w *walker) chirp(data any) {
	if !w.audio {
		return
	}
	swap, ok := data.(ecs.ClipSwap)
	if !ok {
		return
	}
	freq := 440.0
	if loc, ok := ecs.Get(w.world, swap.Entity, component.LocomotionComponent.Kind()); ok && loc.Activity == component.ActivityMoving {
		freq = 660
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(30*time.Millisecond), tone))
}

func (w *walker) draw() {
	w.screen.Clear()
	width, height := w.screen.Size()

	camX, camY := 0.0, 0.0
	if cam, ok := ecs.First(w.world, component.CameraComponent.Kind()); ok {
		if t, ok := ecs.Get(w.world, cam, component.TransformComponent.Kind()); ok {
			camX, camY = t.X, t.Y
		}
	}

	treeStyle := tcell.StyleDefault.Foreground(tcell.ColorOrange)
	ecs.ForEach2(w.world, component.PropTagComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.PropTag, t *component.Transform) {
		col, row := project(t.X, t.Y, camX, camY, width, height)
		w.screen.SetContent(col, row, '♣', nil, treeStyle)
	})

	ecs.ForEach3(w.world, component.LocomotionComponent.Kind(), component.AnimationComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, loc *component.Locomotion, anim *component.Animation, t *component.Transform) {
		col, row := project(t.X, t.Y, camX, camY, width, height)
		w.screen.SetContent(col, row, glyph(loc.Facing), nil, frameStyle(loc.Activity, anim.State))
	})

	if w.inspector {
		w.drawInspector()
	}
	drawText(w.screen, 0, height-1, tcell.StyleDefault.Dim(true), "wasd/arrows move  i inspector  q quit")
	w.screen.Show()
}

func (w *walker) drawInspector() {
	player, ok := ecs.First(w.world, component.PlayerTagComponent.Kind())
	if !ok {
		drawText(w.screen, 0, 0, tcell.StyleDefault, "player: none")
		return
	}
	t, _ := ecs.Get(w.world, player, component.TransformComponent.Kind())
	loc, _ := ecs.Get(w.world, player, component.LocomotionComponent.Kind())
	anim, _ := ecs.Get(w.world, player, component.AnimationComponent.Kind())
	if t == nil || loc == nil || anim == nil {
		return
	}
	s := anim.State
	lines := []string{
		fmt.Sprintf("position: %.1f, %.1f", t.X, t.Y),
		fmt.Sprintf("facing: %s  activity: %s", loc.Facing, loc.Activity),
		fmt.Sprintf("sheet: %s  clip: %d-%d  frame: %d", s.Sheet, s.Clip.FirstFrame, s.Clip.LastFrame, s.Frame),
	}
	for i, line := range lines {
		drawText(w.screen, 0, i, tcell.StyleDefault, line)
	}
}

func (w *walker) close() {
	if w.audio {
		speaker.Close()
	}
	w.screen.Fini()
}

func project(x, y, camX, camY float64, width, height int) (int, int) {
	col := int(math.Round((x-camX)/cellW)) + width/2
	row := int(math.Round(-(y-camY)/cellH)) + height/2
	return col, row
}

func glyph(f component.FacingDirection) rune {
	switch f {
	case component.FacingUp:
		return '^'
	case component.FacingLeft:
		return '<'
	case component.FacingRight:
		return '>'
	}
	return 'v'
}

// frameStyle alternates brightness with the animation frame so the clip is
// visible without a sprite sheet.
func frameStyle(a component.ActivityState, s component.AnimationRuntimeState) tcell.Style {
	color := tcell.ColorLightGreen
	if a == component.ActivityMoving {
		color = tcell.ColorYellow
	}
	style := tcell.StyleDefault.Foreground(color)
	if (s.Frame-s.Clip.FirstFrame)%2 == 0 {
		style = style.Bold(true)
	}
	return style
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func main() {
	debug := flag.Bool("debug", false, "log missing camera targets")
	autopilot := flag.String("autopilot", "", "drive the player with a tengo script from prefabs/scripts")
	sound := flag.Bool("sound", false, "play a tone on every clip change")
	flag.Parse()

	keys := newDecayKeys()
	var source input.Source = keys
	if *autopilot != "" {
		src, err := prefabs.LoadScript(*autopilot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "autopilot: %v\n", err)
			os.Exit(1)
		}
		script, err := input.NewScript(*autopilot, src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "autopilot: %v\n", err)
			os.Exit(1)
		}
		source = script
	}

	w, err := newWalker(source, keys, *debug, *sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	err = w.run()
	w.close()
	if err != nil {
		log.Fatal(err)
	}
}
