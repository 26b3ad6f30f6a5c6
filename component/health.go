package component

// Health tracks hit points for an entity. Nothing in the game deals damage
// yet, so it only carries the values.
type Health struct {
	Max     int
	Current int
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) Health {
	if max <= 0 {
		max = 1
	}
	return Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h Health) IsAlive() bool {
	return h.Current > 0
}

// Fraction returns Current/Max clamped to [0,1].
func (h Health) Fraction() float64 {
	if h.Max <= 0 || h.Current <= 0 {
		return 0
	}
	if h.Current >= h.Max {
		return 1
	}
	return float64(h.Current) / float64(h.Max)
}
