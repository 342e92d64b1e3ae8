package models

// Snapshot is the caller-supplied read-only view of external state the
// scorer consumes: who is already rostered or targeted, which slots are
// still empty, the weight strategy, and any live auction prices. The
// engine never mutates a snapshot.
type Snapshot struct {
	RosteredKeys map[string]bool
	Targets      map[string]Target
	Weights      CategoryWeights
	LivePrices   map[string]float64
	EmptySlots   []string
}

// IsRostered reports whether a player key is already on the roster.
func (s *Snapshot) IsRostered(key string) bool {
	return s != nil && s.RosteredKeys[key]
}

// IsTargeted reports whether a player key already has a target.
func (s *Snapshot) IsTargeted(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s.Targets[key]
	return ok
}

// PlanFor returns the planned bid for a player key, or 0 when untargeted.
func (s *Snapshot) PlanFor(key string) float64 {
	if s == nil {
		return 0
	}
	return s.Targets[key].Plan
}

// LivePriceFor returns the live auction price for a player key, or false
// when none has been observed.
func (s *Snapshot) LivePriceFor(key string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	v, ok := s.LivePrices[key]
	return v, ok
}
