package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/cubehop/config"
	"github.com/milk9111/cubehop/desktop"
	"github.com/milk9111/cubehop/ecs"
	"github.com/milk9111/cubehop/ecs/component"
	"github.com/milk9111/cubehop/ecs/system"
	"github.com/rs/zerolog/log"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type GameOptions struct {
	Config     *config.Config
	ConfigPath string
	Watch      bool
	Debug      bool
}

type Game struct {
	frames int
	debug  bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	config    *config.Provider

	watcher *config.Watcher
}

func NewGame(opts GameOptions) (*Game, error) {
	source, err := desktop.NewSource()
	if err != nil {
		return nil, err
	}

	provider := config.NewProvider(opts.Config)
	g := &Game{
		debug:  opts.Debug,
		world:  ecs.NewWorld(),
		config: provider,
	}
	g.scheduler = system.NewPipeline(system.Deps{
		Source:  source,
		Pointer: desktop.Pointer{},
		Clock:   desktop.Clock{},
		Config:  provider,
	})
	if err := g.scheduler.Startup(g.world); err != nil {
		return nil, fmt.Errorf("startup: %w", err)
	}

	if opts.Watch && opts.ConfigPath != "" {
		w, err := config.Watch(opts.ConfigPath)
		if err != nil {
			log.Warn().Err(err).Msg("config watch disabled")
		} else {
			g.watcher = w
			log.Info().Str("path", w.Path()).Msg("watching config")
		}
	}
	return g, nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.frames++
	g.reloadConfig()
	g.scheduler.Update(g.world)
	return nil
}

// reloadConfig swaps in a changed config file between ticks. A file that
// fails to load leaves the current config in place.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case r, ok := <-g.watcher.Reloads:
			if !ok {
				g.watcher = nil
				return
			}
			if r.Err != nil {
				log.Warn().Err(r.Err).Msg("config reload failed")
				continue
			}
			g.config.Swap(r.Config)
			log.Info().Str("path", g.watcher.Path()).Msg("config reloaded")
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Warn().Err(err).Msg("config watcher")
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	msg := fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS())

	if m := g.world.Single(ecs.With(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind())); m.Found() {
		t, _ := ecs.Get(g.world, m.Entity, component.TransformComponent.Kind())
		msg += fmt.Sprintf("\nplayer %.2f %.2f %.2f", t.Position.X(), t.Position.Y(), t.Position.Z())
		if j, ok := ecs.Get(g.world, m.Entity, component.JumpBudgetComponent.Kind()); ok {
			msg += fmt.Sprintf("    jumps %d/%d", j.Remaining, j.MaxJumps)
			if j.Airborne() {
				msg += "    airborne"
			}
		}
	}
	if g.debug {
		if m := g.world.Single(ecs.With(component.CameraTagComponent.Kind(), component.OrbitCameraComponent.Kind())); m.Found() {
			t, _ := ecs.Get(g.world, m.Entity, component.TransformComponent.Kind())
			o, _ := ecs.Get(g.world, m.Entity, component.OrbitCameraComponent.Kind())
			if t != nil && o != nil {
				msg += fmt.Sprintf("\ncamera %.2f %.2f %.2f    yaw %.2f pitch %.2f", t.Position.X(), t.Position.Y(), t.Position.Z(), o.Yaw, o.Pitch)
			}
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
