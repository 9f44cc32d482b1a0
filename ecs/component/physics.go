package component

// PhysicsBody couples an entity to the bounding volume used for ground
// resolution.
type PhysicsBody struct {
	Volume BoundingVolume
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
