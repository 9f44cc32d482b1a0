package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// GravityTag marks entities resolved by the gravity system.
type GravityTag struct{}

var GravityTagComponent = NewComponent[GravityTag]()
