// Command weakfield runs the 2D particle physics demo: a raylib window
// driving a solver.Solver through one of several scene-builder
// topologies, with live input toggles and an on-screen diagnostics
// overlay.
package main

import (
	"flag"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"weakfield/internal/config"
	"weakfield/internal/diagnostics"
	"weakfield/internal/input"
	"weakfield/internal/renderer"
	"weakfield/internal/scene"
	"weakfield/internal/solver"
	"weakfield/internal/vecmath"
)

var demoNames = []string{"cloud", "attractor", "rope", "cloth", "softbody", "box"}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file; defaults are used for any field it omits")
	diagnosticsOn := flag.Bool("diagnostics", false, "print a column-density spectrum sample to the log every second")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadYAML(*configPath)
		if err != nil {
			log.Fatalf("weakfield: %v", err)
		}
		cfg = loaded
	}

	pool := solver.NewTaskPool(cfg.Threads)
	defer pool.Stop()

	sim := solver.NewSolver(float32(cfg.ScreenWidth), float32(cfg.ScreenHeight), 20, pool)
	sim.Resolver = resolverFromConfig(cfg.Resolver)
	sim.Flags.Gravity = cfg.GravityOn

	builder := scene.NewBuilder(sim, 1)
	demoIndex := demoIndexFor(cfg.Demo)
	loadDemo(builder, demoIndex, cfg)

	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), "Weakfield 2D Particle Physics")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Framerate))

	loop := renderer.NewRenderLoop()
	loop.SetTargetFPS(cfg.Framerate)

	controller := input.NewController()
	state := &input.FrameState{Render: cfg.RenderOn, SpeedColouring: cfg.SpeedColouringOn}

	particleRenderer := renderer.NewParticleRenderer()
	ui := renderer.NewUIRenderer(cfg.ScreenWidth, cfg.ScreenHeight)

	var spectrumReader *diagnostics.ColumnDensityReader
	if *diagnosticsOn {
		spectrumReader = diagnostics.NewColumnDensityReader()
	}

	frameCount := 0
	for !rl.WindowShouldClose() {
		loop.BeginFrame()
		dt := rl.GetFrameTime()

		controller.UpdateFromRaylib()
		spawn, nextDemo := controller.Update(sim, state)
		if nextDemo {
			demoIndex = (demoIndex + 1) % len(demoNames)
			resetDemo(sim, pool, controller, builder, demoIndex, cfg)
		}
		if spawn.Requested {
			spawnAt(sim, spawn.Position, cfg)
		}

		sim.Step(dt, cfg.Substeps)
		loop.RecordFrameTime(float64(dt))

		if spectrumReader != nil && frameCount%cfg.Framerate == 0 {
			spectrum := spectrumReader.Sample(sim)
			log.Printf("column spectrum: wavelength=%d magnitude=%.2f energy=%.2f",
				spectrum.DominantWavelength, spectrum.Magnitude, spectrum.TotalEnergy)
		}
		frameCount++

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if state.Render {
			particleRenderer.Draw(sim)
		}
		ui.UpdateState(renderer.UIState{
			ParticleCount: len(sim.Particles()),
			Resolver:      sim.Resolver,
			Threads:       cfg.Threads,
			TargetFPS:     cfg.Framerate,
			ActualFPS:     loop.GetActualFPS(),
			FrameTime:     loop.GetLastFrameTime(),
		})
		ui.Render()
		rl.EndDrawing()
	}
}

func resolverFromConfig(r config.Resolver) solver.ResolverMode {
	switch r {
	case config.ResolverNaive:
		return solver.ResolverNaive
	case config.ResolverCellular:
		return solver.ResolverCellular
	default:
		return solver.ResolverThreaded
	}
}

func demoIndexFor(name string) int {
	for i, n := range demoNames {
		if n == name {
			return i
		}
	}
	return 0
}

func spawnRegion(cfg *config.Config) scene.Region {
	return scene.Region{
		MinX: 0, MinY: 0,
		MaxX: float32(cfg.ScreenWidth), MaxY: float32(cfg.ScreenHeight),
	}
}

// loadDemo populates an already-empty solver with the named topology.
// Called once at startup; resetDemo handles rebuilding a fresh solver
// on every subsequent demo switch, since the solver has no removal
// operation to undo a prior topology's particles and constraints.
func loadDemo(b *scene.Builder, index int, cfg *config.Config) {
	centre := vecmath.New(float32(cfg.ScreenWidth)/2, float32(cfg.ScreenHeight)/2)
	switch demoNames[index] {
	case "cloud":
		b.SpawnCloud(200, cfg.MinSpawnRadius, cfg.MaxSpawnRadius, spawnRegion(cfg))
	case "attractor":
		b.SpawnCentralAttractor(200, centre, 30, cfg.MinSpawnRadius, cfg.MaxSpawnRadius, spawnRegion(cfg))
	case "rope":
		b.SpawnRope(25, vecmath.New(centre.X, 60), 12, cfg.MinSpawnRadius, true)
	case "cloth":
		b.SpawnCloth(20, 14, vecmath.New(centre.X-190, 60), 20, cfg.MinSpawnRadius)
	case "softbody":
		b.SpawnSoftBody(16, 80, cfg.MinSpawnRadius, centre)
	case "box":
		b.SpawnBox(5, cfg.MaxSpawnRadius, scene.Region{
			MinX: centre.X - 60, MinY: centre.Y - 60,
			MaxX: centre.X + 60, MaxY: centre.Y + 60,
		})
	}
}

// resetDemo swaps in a fresh solver and builder, since the solver has
// no facility for removing a prior demo's particles, constraints or
// soft bodies before loading the next one.
func resetDemo(sim *solver.Solver, pool *solver.TaskPool, controller *input.Controller, b *scene.Builder, index int, cfg *config.Config) {
	*sim = *solver.NewSolver(sim.WorldWidth, sim.WorldHeight, 20, pool)
	sim.Resolver = resolverFromConfig(cfg.Resolver)
	sim.Flags.Gravity = cfg.GravityOn
	fresh := scene.NewBuilder(sim, uint64(index+1))
	*b = *fresh
	controller.Reset()
	loadDemo(b, index, cfg)
}

func spawnAt(sim *solver.Solver, pos vecmath.Vec2, cfg *config.Config) {
	radius := (cfg.MinSpawnRadius + cfg.MaxSpawnRadius) / 2
	sim.AddParticle(pos, radius, false)
}
