package component

import "orrery/common"

// Transform is an entity's world-space position.
type Transform struct {
	Position common.Vec3
}

var TransformComponent = NewHandle[Transform]()
