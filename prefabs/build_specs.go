package prefabs

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type TransformComponentSpec struct {
	Position Vec3Spec `yaml:"position"`
}

type VelocityComponentSpec struct {
	Value Vec3Spec `yaml:"value"`
}

type PlayerComponentSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
}

// PhysicsBodyComponentSpec describes the bounding volume. Shape "cube"
// takes either size (full edge lengths) or half_extents.
type PhysicsBodyComponentSpec struct {
	Shape       string    `yaml:"shape"`
	Size        *Vec3Spec `yaml:"size"`
	HalfExtents *Vec3Spec `yaml:"half_extents"`
}

type JumpBudgetComponentSpec struct {
	MaxJumps int `yaml:"max_jumps"`
}

// OrbitCameraComponentSpec angles are in degrees.
type OrbitCameraComponentSpec struct {
	LagAmount     float64 `yaml:"lag_amount"`
	OrbitDistance float64 `yaml:"orbit_distance"`
	Pitch         float64 `yaml:"pitch"`
	Yaw           float64 `yaml:"yaw"`
}
