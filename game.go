package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"orrery/camera"
	"orrery/common"
	"orrery/ecs"
	"orrery/ecs/entity"
	"orrery/ecs/system"
	"orrery/hud"
	"orrery/specs"
	"orrery/sprites"
)

const tps = 60

// spritesPerFrame bounds sprite generation work per tick so the
// loading screen stays responsive.
const spritesPerFrame = 2

type Game struct {
	debug    bool
	tourPath string
	specPath string

	spec    *specs.SystemSpec
	watcher *specs.Watcher

	world  *ecs.World
	sched  *ecs.Scheduler
	cam    *camera.Camera
	ctrl   *camera.FocusController
	orbits *system.OrbitSystem
	panel  *hud.HUD

	// Loading state: sprites are generated a few per tick, then the
	// world is built and the scene starts.
	pending  []specs.BodySpec
	total    int
	images   map[string]*ebiten.Image
	loaded   bool
	loadFace ebtext.Face
}

// NewGame loads the system spec and begins the staged startup. The
// scene itself is built once all sprites are generated.
func NewGame(specPath, tourPath string, debug bool) (*Game, error) {
	var spec *specs.SystemSpec
	var err error
	if specPath != "" {
		spec, err = specs.LoadSystemSpec(specPath)
	} else {
		spec, err = specs.DefaultSystemSpec()
	}
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:    debug,
		tourPath: tourPath,
		specPath: specPath,
		spec:     spec,
		images:   make(map[string]*ebiten.Image),
		loadFace: ebtext.NewGoXFace(basicfont.Face7x13),
	}
	g.queueSprites(spec)

	if debug && specPath != "" {
		if w, err := specs.WatchFile(specPath); err != nil {
			log.Printf("game: spec watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) queueSprites(spec *specs.SystemSpec) {
	g.pending = g.pending[:0]
	for _, b := range spec.Bodies {
		g.pending = append(g.pending, b)
		g.pending = append(g.pending, b.Moons...)
	}
	g.total = len(g.pending)
}

// generateSprites runs one loading step and reports whether loading is
// complete.
func (g *Game) generateSprites() bool {
	n := spritesPerFrame
	for n > 0 && len(g.pending) > 0 {
		b := g.pending[0]
		g.pending = g.pending[1:]
		rgba, err := b.RGBA()
		if err != nil {
			// Validation already rejected bad colors; this is a guard
			// for hot-reloaded specs.
			log.Printf("game: sprite %s: %v", b.Name, err)
			continue
		}
		g.images[b.Name] = sprites.Disc(rgba, b.Glow)
		n--
	}
	return len(g.pending) == 0
}

func (g *Game) buildScene() error {
	home := camera.Pose{
		Position: common.Vec3{X: g.spec.Camera.Position.X, Y: g.spec.Camera.Position.Y, Z: g.spec.Camera.Position.Z},
		LookAt:   common.Vec3{X: g.spec.Camera.LookAt.X, Y: g.spec.Camera.LookAt.Y, Z: g.spec.Camera.LookAt.Z},
	}

	// Camera and focus controller survive scene rebuilds so a hot
	// reload doesn't yank the view around.
	if g.cam == nil {
		g.cam = camera.New(home, common.BaseWidth, common.BaseHeight)
		g.ctrl = camera.NewFocusController()
	}

	w := ecs.NewWorld()
	built, err := entity.BuildSystem(w, g.spec, func(name string) *ebiten.Image {
		return g.images[name]
	})
	if err != nil {
		return err
	}

	g.orbits = system.NewOrbitSystem(tps)
	picking := system.NewPickingSystem(g.cam)
	focus := system.NewFocusSystem(g.cam, g.ctrl)

	// Event producers (input, tour) run before the consumers so their
	// events land the same tick they are pushed.
	updates := []ecs.System{system.NewInputSystem(g.orbits)}
	if g.tourPath != "" {
		tour, err := system.NewTourSystem(g.tourPath, tps)
		if err != nil {
			log.Printf("game: tour disabled: %v", err)
		} else {
			updates = append(updates, tour)
		}
		g.tourPath = "" // only load once, not again on hot reload
	}
	updates = append(updates,
		g.orbits,
		system.NewSpinSystem(tps, g.orbits),
		picking,
		focus,
	)
	sched := ecs.NewScheduler(updates...)

	sched.AddDrawer(system.NewRenderSystem(g.cam))
	sched.AddDrawer(system.NewLabelSystem(g.cam))

	var debugSys *system.DebugSystem
	if g.debug {
		debugSys = system.NewDebugSystem(g.cam, g.ctrl, g.orbits)
		sched.Add(debugSys)
		sched.AddDrawer(debugSys)
	}

	names := make([]string, 0, len(g.spec.Bodies))
	for _, b := range g.spec.Bodies {
		names = append(names, b.Name)
	}
	g.panel = hud.Build(g.spec.Name, names, hud.Callbacks{
		OnSpeed: func(scale float64) {
			w.Events().Push(ecs.Event{Kind: ecs.EventSpeedChange, Data: ecs.SpeedChangeEvent{Scale: scale}})
		},
		OnPauseToggle: func() bool {
			g.orbits.SetPaused(!g.orbits.Paused())
			return g.orbits.Paused()
		},
		OnReset: func() {
			w.Events().Push(ecs.Event{Kind: ecs.EventResetView})
		},
		OnFocus: func(name string) {
			if e, ok := built[name]; ok {
				w.Events().Push(ecs.Event{Kind: ecs.EventFocusBody, Data: ecs.FocusBodyEvent{Body: e}})
			}
		},
	})
	picking.Blocked = g.panel.Contains

	g.world = w
	g.sched = sched
	g.loaded = true
	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		spec, err := specs.LoadSystemSpec(path)
		if err != nil {
			log.Printf("game: reload rejected: %v", err)
			return
		}
		log.Printf("game: reloading system from %s", path)
		g.spec = spec
		g.queueSprites(spec)
		for len(g.pending) > 0 {
			g.generateSprites()
		}
		if err := g.buildScene(); err != nil {
			log.Printf("game: rebuild failed: %v", err)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("game: spec watcher: %v", err)
		}
	default:
	}
}

func (g *Game) Update() error {
	if !g.loaded {
		if g.generateSprites() {
			if err := g.buildScene(); err != nil {
				return err
			}
		}
		return nil
	}

	g.pollReload()
	g.panel.Update()
	g.sched.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.loaded {
		g.drawLoading(screen)
		return
	}
	g.sched.Draw(g.world, screen)
	g.panel.Draw(screen)
}

func (g *Game) drawLoading(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x05, G: 0x06, B: 0x10, A: 0xff})

	done := g.total - len(g.pending)
	progress := 0.0
	if g.total > 0 {
		progress = float64(done) / float64(g.total)
	}

	const barW, barH = 320, 10
	x := float32(common.BaseWidth-barW) / 2
	y := float32(common.BaseHeight) / 2

	vector.DrawFilledRect(screen, x, y, barW, barH, color.RGBA{R: 0x22, G: 0x26, B: 0x38, A: 0xff}, false)
	vector.DrawFilledRect(screen, x, y, float32(barW*progress), barH, color.RGBA{R: 0x7a, G: 0x86, B: 0xb8, A: 0xff}, false)

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)-20)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	ebtext.Draw(screen, fmt.Sprintf("Preparing bodies %d/%d", done, g.total), g.loadFace, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Close stops the hot-reload watcher, if any.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
