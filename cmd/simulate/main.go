// Command simulate runs the movement pipeline headless against a scripted
// input sequence and logs the actor and camera every tick.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cubehop/config"
	"github.com/milk9111/cubehop/ecs"
	"github.com/milk9111/cubehop/ecs/component"
	"github.com/milk9111/cubehop/ecs/system"
	"github.com/milk9111/cubehop/input"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	ticks := flag.Int("ticks", 120, "number of ticks to simulate")
	dt := flag.Float64("dt", 1.0/60, "seconds per tick")
	configPath := flag.String("config", "", "path to a YAML config file layered over the defaults")
	debug := flag.Bool("debug", false, "log every system transition")
	jsonOut := flag.Bool("json", false, "write JSON log lines instead of console output")
	spawnY := flag.Float64("spawn-y", 0, "drop the player from this height instead of the prefab position")
	flag.Parse()

	var spawnAt *mgl64.Vec3
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "spawn-y" {
			spawnAt = &mgl64.Vec3{0, *spawnY, 0}
		}
	})

	if !*jsonOut {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("could not load config")
		}
		cfg = loaded
	}

	var landed, jumped int
	world := ecs.NewWorld()
	sched := system.NewPipeline(system.Deps{
		Source:  input.NewScript(script(cfg.Bindings, *ticks)...),
		Pointer: &input.LockState{},
		Clock:   system.FixedClock(*dt),
		Config:  config.NewProvider(cfg),
		SpawnAt: spawnAt,
		OnEvent: func(e ecs.Event) {
			switch e.Type {
			case string(ecs.MovementEventJumped):
				jumped++
			case string(ecs.MovementEventLanded):
				landed++
			}
		},
	})
	if err := sched.Startup(world); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	player := world.Single(ecs.With(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind()))
	camera := world.Single(ecs.With(component.CameraTagComponent.Kind(), component.TransformComponent.Kind()))
	if !player.Found() || !camera.Found() {
		log.Fatal().Msg("player or camera missing after startup")
	}

	for tick := 0; tick < *ticks; tick++ {
		sched.Update(world)

		pt, _ := ecs.Get(world, player.Entity, component.TransformComponent.Kind())
		pv, _ := ecs.Get(world, player.Entity, component.VelocityComponent.Kind())
		jb, _ := ecs.Get(world, player.Entity, component.JumpBudgetComponent.Kind())
		ct, _ := ecs.Get(world, camera.Entity, component.TransformComponent.Kind())

		log.Info().
			Int("tick", tick).
			Floats64("pos", pt.Position[:]).
			Floats64("vel", pv.Value[:]).
			Int("jumps", jb.Remaining).
			Bool("airborne", jb.Airborne()).
			Floats64("camera", ct.Position[:]).
			Msg("tick")
	}
	log.Info().Int("jumps", jumped).Int("landings", landed).Msg("done")
}

// script jumps on the first tick, walks right and forward for a while,
// double jumps midway and sweeps the camera.
func script(kb config.KeyBindings, ticks int) []input.Frame {
	frames := make([]input.Frame, ticks)
	for i := range frames {
		var f input.Frame
		switch {
		case i == 0:
			f.Held = append(f.Held, kb.Jump)
		case i >= 10 && i < 40:
			f.Held = append(f.Held, kb.MoveRight, kb.MoveForward)
			if i == 20 {
				f.Held = append(f.Held, kb.Jump)
			}
		}
		if i >= 40 && i < 60 {
			f.Motion = mgl64.Vec2{4, 1}
		}
		frames[i] = f
	}
	return frames
}
