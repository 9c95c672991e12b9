package fault

import "math/rand"

// Strategy decides whether a simulated transient fault fires for the
// current request.
type Strategy interface {
	Trip() bool
}

type probability float64

// Probability trips with probability p per call.
func Probability(p float64) Strategy { return probability(p) }

func (p probability) Trip() bool { return rand.Float64() < float64(p) }

type fixed bool

func (f fixed) Trip() bool { return bool(f) }

// Never and Always are deterministic substitutes for tests.
func Never() Strategy  { return fixed(false) }
func Always() Strategy { return fixed(true) }
