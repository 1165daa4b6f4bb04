package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is a pre-rendered disc image drawn at the entity's projected
// screen position. WorldSize is the world-unit diameter the image
// represents, used to derive the perspective draw scale.
type Sprite struct {
	Image     *ebiten.Image
	WorldSize float64
}

var SpriteComponent = NewHandle[Sprite]()
