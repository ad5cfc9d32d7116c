package component

// Config holds the immutable movement tunables. Values are assumed valid:
// windows and durations are non-negative and TickRate is positive.
type Config struct {
	TickRate int

	// Collision
	DetectionRayLength float64

	// Walking
	Acceleration float64
	MoveClamp    float64
	Deceleration float64
	ApexBonus    float64

	// Gravity. FallClamp is the most negative vertical speed allowed.
	FallClamp    float64
	MinFallSpeed float64
	MaxFallSpeed float64

	// Jumping. JumpHeight is the vertical speed applied on a jump.
	JumpHeight                  float64
	JumpApexThreshold           float64
	CoyoteTicks                 int
	JumpBufferTicks             int
	JumpEndEarlyGravityModifier float64

	// Crouching
	CrouchSizeModifier               float64
	CrouchSpeedModifier              float64
	CrouchSlowdownTicks              int
	ImmediateCrouchSlowdownThreshold float64
	StandClearance                   float64

	// Dashing
	DashPower                   float64
	DashTicks                   int
	DashEndHorizontalMultiplier float64
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		TickRate:           60,
		DetectionRayLength: 0.1,

		Acceleration: 90,
		MoveClamp:    13,
		Deceleration: 60,
		ApexBonus:    2,

		FallClamp:    -40,
		MinFallSpeed: 80,
		MaxFallSpeed: 120,

		JumpHeight:                  30,
		JumpApexThreshold:           10,
		CoyoteTicks:                 7,
		JumpBufferTicks:             7,
		JumpEndEarlyGravityModifier: 3,

		CrouchSizeModifier:               0.5,
		CrouchSpeedModifier:              0.5,
		CrouchSlowdownTicks:              20,
		ImmediateCrouchSlowdownThreshold: 0.1,
		StandClearance:                   0.95,

		DashPower:                   50,
		DashTicks:                   3,
		DashEndHorizontalMultiplier: 0.25,
	}
}

// DeltaTime is the fixed tick duration in seconds.
func (c Config) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 0
	}
	return 1 / float64(c.TickRate)
}
