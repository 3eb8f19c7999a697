package sim

import "github.com/Flavius4914/RTS-Engine/internal/config"

// Stockpile is the shared resource counter set fed by production buildings
// and spent by placement and spawning. It is a single-writer value: the
// World mutates it only between ticks (commands) or in the building phase.
type Stockpile struct {
	amounts  map[string]int
	produced map[string]int
}

// NewStockpile creates a stockpile holding a copy of initial.
func NewStockpile(initial map[string]int) *Stockpile {
	s := &Stockpile{
		amounts:  make(map[string]int, len(config.ResourceKinds)),
		produced: make(map[string]int, len(config.ResourceKinds)),
	}
	for _, k := range config.ResourceKinds {
		s.amounts[k] = 0
	}
	for k, v := range initial {
		s.amounts[k] = v
	}
	return s
}

// Add credits amount of kind. Non-positive amounts are ignored.
func (s *Stockpile) Add(kind string, amount int) {
	if amount <= 0 {
		return
	}
	s.amounts[kind] += amount
	s.produced[kind] += amount
}

// Amount returns the current quantity of kind.
func (s *Stockpile) Amount(kind string) int {
	return s.amounts[kind]
}

// Produced returns the total ever credited through Add for kind.
func (s *Stockpile) Produced(kind string) int {
	return s.produced[kind]
}

// CanAfford reports whether every component of cost is covered.
func (s *Stockpile) CanAfford(cost map[string]int) bool {
	for kind, n := range cost {
		if s.amounts[kind] < n {
			return false
		}
	}
	return true
}

// TrySpend deducts cost only if every component is sufficient.
func (s *Stockpile) TrySpend(cost map[string]int) bool {
	if !s.CanAfford(cost) {
		return false
	}
	for kind, n := range cost {
		s.amounts[kind] -= n
	}
	return true
}

// Amounts returns a copy of the current quantities.
func (s *Stockpile) Amounts() map[string]int {
	out := make(map[string]int, len(s.amounts))
	for k, v := range s.amounts {
		out[k] = v
	}
	return out
}
