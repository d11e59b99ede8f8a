package classes

// Item 19: use interfaces only to define behavior.
//
// The Java anti-pattern is a "constant interface" implemented just to
// inherit its constants into a namespace. Go cannot express that, which is
// the point: constants belong at package level, exported from the package
// that owns the concept. An interface with no methods that exists only to
// group things is the nearest Go smell (see the marker-interface lesson in
// the enums chapter for when an empty interface is legitimate).

// Physical constants, owned by the package that uses them.
const (
	// AvogadroNumber is particles per mole.
	AvogadroNumber = 6.02214199e23

	// BoltzmannConstant is in J/K.
	BoltzmannConstant = 1.3806503e-23

	// ElectronMassKg is the electron rest mass.
	ElectronMassKg = 9.10938188e-31
)
