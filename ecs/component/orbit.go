package component

// Orbit places an entity on a circular path around a parent entity.
// Parent is the raw entity handle (stored untyped to keep this package
// free of the ecs import); zero means the body orbits the world origin.
type Orbit struct {
	Parent      uint64
	Radius      float64
	AngularVel  float64 // radians per second at 1x simulation speed
	Angle       float64 // current phase in radians
	Inclination float64 // tilt of the orbital plane in radians
}

var OrbitComponent = NewHandle[Orbit]()
