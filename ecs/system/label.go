package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"orrery/camera"
	"orrery/ecs"
	"orrery/ecs/component"
)

// LabelSystem draws the name of the hovered body next to its projected
// position.
type LabelSystem struct {
	cam  *camera.Camera
	face ebtext.Face
}

func NewLabelSystem(cam *camera.Camera) *LabelSystem {
	return &LabelSystem{cam: cam, face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (s *LabelSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	for _, e := range w.Query(component.PickableComponent.ID(), component.BodyComponent.ID(), component.TransformComponent.ID()) {
		pickable, _ := ecs.Get(w, e, component.PickableComponent)
		if !pickable.Hovered {
			continue
		}

		body, _ := ecs.Get(w, e, component.BodyComponent)
		tr, _ := ecs.Get(w, e, component.TransformComponent)

		sx, sy, _, scale, visible := s.cam.Project(tr.Position)
		if !visible {
			continue
		}

		offset := body.Radius*scale + 6

		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(sx+offset, sy-offset)
		op.ColorScale.ScaleWithColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
		ebtext.Draw(screen, body.Name, s.face, op)
	}
}
