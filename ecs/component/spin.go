package component

// Spin is a visual self-rotation applied to the body's sprite.
type Spin struct {
	Angle float64
	Rate  float64 // radians per second at 1x simulation speed
}

var SpinComponent = NewHandle[Spin]()
