package component

// Abilities defines which optional movement abilities are enabled.
type Abilities struct {
	DoubleJump bool
	Dash       bool
	Crouch     bool
}

// AllAbilities returns an Abilities value with everything unlocked.
func AllAbilities() Abilities {
	return Abilities{DoubleJump: true, Dash: true, Crouch: true}
}
