package component

// Stamina is a bounded resource drained by gameplay actions.
type Stamina struct {
	Max     float64
	Current float64

	OnExhausted func(s *Stamina)
}

// NewStamina creates a full Stamina pool.
func NewStamina(max float64) *Stamina {
	if max <= 0 {
		max = 1
	}
	return &Stamina{Max: max, Current: max}
}

// Spend drains amount and clamps at zero. Returns false when nothing was left
// to spend.
func (s *Stamina) Spend(amount float64) bool {
	if s == nil || amount <= 0 || s.Current <= 0 {
		return false
	}
	s.Current -= amount
	if s.Current <= 0 {
		s.Current = 0
		if s.OnExhausted != nil {
			s.OnExhausted(s)
		}
	}
	return true
}

// Restore adds amount up to Max.
func (s *Stamina) Restore(amount float64) {
	if s == nil || amount <= 0 {
		return
	}
	s.Current += amount
	if s.Current > s.Max {
		s.Current = s.Max
	}
}

// Fraction returns Current/Max in [0, 1].
func (s *Stamina) Fraction() float64 {
	if s == nil || s.Max <= 0 {
		return 0
	}
	return s.Current / s.Max
}
