package component

// Pickable lets the pointer select an entity. MinPickPixels keeps tiny
// distant bodies clickable. Hovered is written by the picking system
// each tick.
type Pickable struct {
	MinPickPixels float64
	Hovered       bool
}

var PickableComponent = NewHandle[Pickable]()
