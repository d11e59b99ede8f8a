package enums

// Item 33: index dense per-enum data with an array, not a map.
//
// When the key type is a small contiguous enum, a [N]T array indexed by the
// constant is both faster and impossible to key incorrectly. The map
// version works but pays hashing for nothing and accepts out-of-range keys
// silently.

// Phase is a phase of matter.
type Phase int

// The phases.
const (
	Solid Phase = iota
	Liquid
	Gas

	numPhases
)

var phaseNames = [numPhases]string{"solid", "liquid", "gas"}

// String returns the phase name.
func (p Phase) String() string {
	if p < 0 || p >= numPhases {
		return "Phase(?)"
	}
	return phaseNames[p]
}

// Transition names a phase change.
type Transition int

// The transitions.
const (
	Melt Transition = iota
	Freeze
	Boil
	Condense
	Sublime
	Deposit

	noTransition
)

var transitionNames = [noTransition]string{
	"melt", "freeze", "boil", "condense", "sublime", "deposit",
}

// String returns the transition name.
func (t Transition) String() string {
	if t < 0 || t >= noTransition {
		return "Transition(?)"
	}
	return transitionNames[t]
}

// transitions is the dense two-dimensional lookup: from-phase × to-phase.
// The diagonal holds noTransition.
var transitions = [numPhases][numPhases]Transition{
	Solid:  {Solid: noTransition, Liquid: Melt, Gas: Sublime},
	Liquid: {Solid: Freeze, Liquid: noTransition, Gas: Boil},
	Gas:    {Solid: Deposit, Liquid: Condense, Gas: noTransition},
}

// PhaseTransition returns the transition between two phases.
func PhaseTransition(from, to Phase) (Transition, bool) {
	if from < 0 || from >= numPhases || to < 0 || to >= numPhases || from == to {
		return noTransition, false
	}
	return transitions[from][to], true
}
