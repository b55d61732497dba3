package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/topdown/clock"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/ecs/render"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/input"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/settings"
)

type GameOptions struct {
	Debug bool
	// Movement feeds the player's direction keys. Menu and overlay keys always
	// come from the keyboard.
	Movement  input.Source
	Autopilot string
	Settings  *settings.Manager
}

type Game struct {
	frames int
	debug  bool
	state  component.GameState

	world     *ecs.World
	scheduler *ecs.Scheduler
	drawer    *render.DrawSystem
	clock     *clock.Wall

	keys      input.Source
	autopilot *input.Script
	scriptRef string

	menu          *ebitenui.UI
	startPressed  bool
	exitPressed   bool
	showInspector bool
	settings      *settings.Manager

	watcher *prefabs.Watcher
}

func NewGame(opts GameOptions) *Game {
	keyboard := NewKeyboard()
	movement := opts.Movement
	if movement == nil {
		movement = keyboard
	}
	prefs := opts.Settings
	if prefs == nil {
		prefs = settings.New(nil)
	}

	g := &Game{
		debug:         opts.Debug,
		state:         component.GameStateLoading,
		world:         ecs.NewWorld(),
		drawer:        render.NewDrawSystem(),
		clock:         clock.NewWall(),
		keys:          keyboard,
		scriptRef:     opts.Autopilot,
		settings:      prefs,
		showInspector: prefs.Get().Inspector,
	}
	if script, ok := movement.(*input.Script); ok {
		g.autopilot = script
	}

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(movement),
		system.NewMovementSystem(),
		system.NewAnimationSystem(),
		system.NewCameraSystem(opts.Debug),
	)
	g.menu = NewMenuUI(
		func() { g.startPressed = true },
		func() { g.exitPressed = true },
	)

	if opts.Debug {
		g.startWatcher()
	}
	return g
}

func (g *Game) startWatcher() {
	dirs := []string{}
	for _, dir := range []string{"prefabs", filepath.Join("prefabs", "scripts")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		log.Printf("hot reload: no prefab directory on disk")
		return
	}

	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("hot reload: %v", err)
		return
	}
	g.watcher = w
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.keys.Released(input.KeyFullscreen) {
		g.toggleFullscreen()
	}
	if g.keys.Released(input.KeyInspector) {
		g.showInspector = !g.showInspector
		g.settings.SetInspector(g.showInspector)
		g.saveSettings()
	}

	switch g.state {
	case component.GameStateLoading:
		return g.load()
	case component.GameStateMenu:
		return g.updateMenu()
	case component.GameStatePlaying:
		return g.updatePlaying()
	}
	return nil
}

// load spawns the camera once and enters Playing. A broken prefab stops the
// game here.
func (g *Game) load() error {
	if _, err := entity.NewCamera(g.world); err != nil {
		return fmt.Errorf("loading: %w", err)
	}
	return g.enterPlaying()
}

func (g *Game) enterPlaying() error {
	if _, err := entity.NewPlayer(g.world, render.LoadSheet); err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}
	if _, err := entity.NewTree(g.world, render.LoadSheet); err != nil {
		return fmt.Errorf("spawn tree: %w", err)
	}
	g.clock.Reset()
	g.setState(component.GameStatePlaying)
	return nil
}

func (g *Game) leavePlaying(next component.GameState) {
	n := system.DespawnScoped(g.world, component.GameStatePlaying)
	if g.debug {
		log.Printf("despawned %d entities leaving %s", n, component.GameStatePlaying)
	}
	g.setState(next)
}

func (g *Game) setState(next component.GameState) {
	if g.debug {
		log.Printf("state %s -> %s", g.state, next)
	}
	g.state = next
}

func (g *Game) updateMenu() error {
	g.menu.Update()
	if g.exitPressed {
		return ebiten.Termination
	}
	if g.startPressed {
		g.startPressed = false
		return g.enterPlaying()
	}
	return nil
}

func (g *Game) updatePlaying() error {
	if g.keys.Released(input.KeyMenu) {
		g.leavePlaying(component.GameStateMenu)
		return nil
	}

	g.pollReload()

	dt := g.clock.Elapsed()
	if err := g.scheduler.Update(g.world, dt); err != nil {
		return err
	}

	for _, evt := range g.world.Events().Drain() {
		if !g.debug || evt.Type != ecs.EventClipSwapped {
			continue
		}
		if swap, ok := evt.Data.(ecs.ClipSwap); ok {
			log.Printf("entity %s: clip %s@%d", swap.Entity, swap.Sheet, swap.First)
		}
	}
	return nil
}

func (g *Game) toggleFullscreen() {
	on := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(on)
	g.settings.SetFullscreen(on)
	g.saveSettings()
}

func (g *Game) saveSettings() {
	if err := g.settings.Save(); err != nil {
		log.Printf("%v", err)
	}
}

// pollReload applies prefab and script edits made while running. A rebuild
// that fails keeps the current entity.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("hot reload: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	name := filepath.Base(path)
	switch {
	case name == entity.PlayerPrefab:
		if err := g.respawnPlayer(); err != nil {
			log.Printf("hot reload: %s: %v (keeping current player)", name, err)
			return
		}
		log.Printf("hot reload: %s", name)
	case strings.HasSuffix(name, ".tengo") && g.autopilot != nil && strings.TrimSuffix(name, ".tengo") == strings.TrimSuffix(filepath.Base(g.scriptRef), ".tengo"):
		if err := g.reloadScript(); err != nil {
			log.Printf("hot reload: %s: %v (keeping current script)", name, err)
			return
		}
		log.Printf("hot reload: %s", name)
	}
}

func (g *Game) respawnPlayer() error {
	old, ok := ecs.First(g.world, component.PlayerTagComponent.Kind())
	if !ok {
		return errors.New("no player to replace")
	}
	x, y := 0.0, 0.0
	if t, ok := ecs.Get(g.world, old, component.TransformComponent.Kind()); ok {
		x, y = t.X, t.Y
	}

	next, err := entity.NewPlayerAt(g.world, render.LoadSheet, x, y)
	if err != nil {
		return err
	}
	if loc, ok := ecs.Get(g.world, old, component.LocomotionComponent.Kind()); ok {
		if err := ecs.Add(g.world, next, component.LocomotionComponent.Kind(), &component.Locomotion{Facing: loc.Facing, Activity: component.ActivityIdle}); err != nil {
			ecs.DestroyEntity(g.world, next)
			return err
		}
	}
	ecs.DestroyEntity(g.world, old)
	return nil
}

func (g *Game) reloadScript() error {
	src, err := prefabs.LoadScript(g.scriptRef)
	if err != nil {
		return err
	}
	script, err := input.NewScript(g.scriptRef, src)
	if err != nil {
		return err
	}
	*g.autopilot = *script
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawer.Draw(g.world, screen)

	if g.state == component.GameStateMenu {
		g.menu.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 0, common.BaseHeight-16)
	}
	if g.showInspector {
		ebitenutil.DebugPrint(screen, g.inspect())
	}
}

func (g *Game) inspect() string {
	var b strings.Builder
	fmt.Fprintf(&b, "state: %s\n", g.state)
	fmt.Fprintf(&b, "entities: %d\n", len(ecs.Entities(g.world)))

	player, ok := ecs.First(g.world, component.PlayerTagComponent.Kind())
	if !ok {
		b.WriteString("player: none\n")
		return b.String()
	}
	fmt.Fprintf(&b, "player: %s\n", player)
	if t, ok := ecs.Get(g.world, player, component.TransformComponent.Kind()); ok {
		fmt.Fprintf(&b, "position: %.1f, %.1f\n", t.X, t.Y)
	}
	if loc, ok := ecs.Get(g.world, player, component.LocomotionComponent.Kind()); ok {
		fmt.Fprintf(&b, "facing: %s\nactivity: %s\n", loc.Facing, loc.Activity)
	}
	if anim, ok := ecs.Get(g.world, player, component.AnimationComponent.Kind()); ok {
		s := anim.State
		fmt.Fprintf(&b, "sheet: %s\nclip: %d-%d @%dfps\nframe: %d (+%v)\n", s.Sheet, s.Clip.FirstFrame, s.Clip.LastFrame, s.Clip.FPS, s.Frame, s.Elapsed)
	}
	return b.String()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
