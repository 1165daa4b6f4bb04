package component

import "image/color"

// OrbitRing draws the entity's orbital path as a projected polyline.
type OrbitRing struct {
	Segments int
	Color    color.RGBA
}

var OrbitRingComponent = NewHandle[OrbitRing]()
