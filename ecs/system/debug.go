package system

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"orrery/camera"
	"orrery/ecs"
	"orrery/ecs/component"
)

// DebugSystem draws the debug overlay and copies the camera pose to the
// system clipboard when C is pressed. Clipboard access can fail on
// headless setups; the copy shortcut is then disabled and everything
// else keeps working.
type DebugSystem struct {
	cam       *camera.Camera
	ctrl      *camera.FocusController
	orbits    *OrbitSystem
	clipReady bool
	frames    int
}

func NewDebugSystem(cam *camera.Camera, ctrl *camera.FocusController, orbits *OrbitSystem) *DebugSystem {
	s := &DebugSystem{cam: cam, ctrl: ctrl, orbits: orbits}
	if err := clipboard.Init(); err != nil {
		log.Printf("debug: clipboard unavailable: %v", err)
	} else {
		s.clipReady = true
	}
	return s
}

func (s *DebugSystem) Update(w *ecs.World) {
	s.frames++
	if !s.clipReady || !inpututil.IsKeyJustPressed(ebiten.KeyC) {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(s.cam.DescribePose()))
	log.Printf("debug: copied camera pose")
}

func (s *DebugSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	bodies := len(w.Query(component.BodyComponent.ID()))
	msg := fmt.Sprintf("FPS %.1f  TPS %.1f  frames %d\nbodies %d  speed %.2fx  focus %s\n%s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), s.frames,
		bodies, s.orbits.Speed(), s.ctrl.State(), s.cam.DescribePose())
	ebitenutil.DebugPrint(screen, msg)
}
