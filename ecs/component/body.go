package component

import "image/color"

// Body is a celestial body's identity and display properties. Radius is
// in world units, not an astronomical value.
type Body struct {
	Name   string
	Radius float64
	Color  color.RGBA
	Glow   bool // suns render with a halo and skip shading
}

var BodyComponent = NewHandle[Body]()
