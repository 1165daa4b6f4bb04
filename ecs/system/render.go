package system

import (
	"image/color"
	"math"
	"math/rand"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"orrery/camera"
	"orrery/common"
	"orrery/ecs"
	"orrery/ecs/component"
)

const (
	starCount  = 420
	starSphere = 4000.0 // radius of the background star shell
)

type star struct {
	pos  common.Vec3
	size float32
	c    color.RGBA
}

type drawItem struct {
	img   *ebiten.Image
	sx    float64
	sy    float64
	depth float64
	scale float64
	rot   float64
}

// RenderSystem projects the scene through the camera and draws it
// far-to-near: starfield shell, orbit rings, then body sprites scaled
// by perspective.
type RenderSystem struct {
	cam   *camera.Camera
	stars []star
	queue []drawItem
}

func NewRenderSystem(cam *camera.Camera) *RenderSystem {
	rng := rand.New(rand.NewSource(9))
	stars := make([]star, 0, starCount)
	for i := 0; i < starCount; i++ {
		// Uniform direction on the shell.
		z := rng.Float64()*2 - 1
		theta := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - z*z)
		dir := common.Vec3{X: r * math.Cos(theta), Y: z, Z: r * math.Sin(theta)}

		shade := uint8(120 + rng.Intn(136))
		stars = append(stars, star{
			pos:  dir.Scale(starSphere),
			size: float32(0.5 + rng.Float64()*1.2),
			c:    color.RGBA{R: shade, G: shade, B: uint8(math.Min(255, float64(shade)+20)), A: 255},
		})
	}
	return &RenderSystem{cam: cam, stars: stars}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x05, G: 0x06, B: 0x10, A: 0xff})

	r.drawStars(screen)
	r.drawRings(w, screen)
	r.drawBodies(w, screen)
}

func (r *RenderSystem) drawStars(screen *ebiten.Image) {
	for _, st := range r.stars {
		sx, sy, _, _, visible := r.cam.Project(st.pos)
		if !visible {
			continue
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), st.size, st.c, false)
	}
}

func (r *RenderSystem) drawRings(w *ecs.World, screen *ebiten.Image) {
	for _, e := range w.Query(component.OrbitRingComponent.ID(), component.OrbitComponent.ID()) {
		ring, _ := ecs.Get(w, e, component.OrbitRingComponent)
		orbit, _ := ecs.Get(w, e, component.OrbitComponent)

		center := common.Vec3{}
		if parent := ecs.Entity(orbit.Parent); parent.Valid() {
			if pt, ok := ecs.Get(w, parent, component.TransformComponent); ok {
				center = pt.Position
			}
		}

		segments := ring.Segments
		if segments < 8 {
			segments = 64
		}

		prevX, prevY := 0.0, 0.0
		prevOK := false
		for i := 0; i <= segments; i++ {
			angle := float64(i) / float64(segments) * 2 * math.Pi
			p := center.Add(OrbitOffset(orbit.Radius, angle, orbit.Inclination))
			sx, sy, _, _, visible := r.cam.Project(p)
			if !visible {
				prevOK = false
				continue
			}
			if prevOK {
				vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(sx), float32(sy), 1, ring.Color, true)
			}
			prevX, prevY = sx, sy
			prevOK = true
		}
	}
}

func (r *RenderSystem) drawBodies(w *ecs.World, screen *ebiten.Image) {
	r.queue = r.queue[:0]

	for _, e := range w.Query(component.SpriteComponent.ID(), component.TransformComponent.ID()) {
		sprite, _ := ecs.Get(w, e, component.SpriteComponent)
		tr, _ := ecs.Get(w, e, component.TransformComponent)
		if sprite.Image == nil {
			continue
		}

		sx, sy, depth, scale, visible := r.cam.Project(tr.Position)
		if !visible {
			continue
		}

		item := drawItem{
			img:   sprite.Image,
			sx:    sx,
			sy:    sy,
			depth: depth,
			scale: scale * sprite.WorldSize / float64(sprite.Image.Bounds().Dx()),
		}
		if spin, ok := ecs.Get(w, e, component.SpinComponent); ok {
			item.rot = spin.Angle
		}
		r.queue = append(r.queue, item)
	}

	sort.SliceStable(r.queue, func(i, j int) bool {
		return r.queue[i].depth > r.queue[j].depth
	})

	for _, item := range r.queue {
		b := item.img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterLinear
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Rotate(item.rot)
		op.GeoM.Scale(item.scale, item.scale)
		op.GeoM.Translate(item.sx, item.sy)
		screen.DrawImage(item.img, op)
	}
}
