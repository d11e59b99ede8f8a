package enums

// Item 30: use typed iota constants with a method set instead of bare ints.
//
// The int enum pattern survives in Go as untyped const blocks: no type
// safety (any int passes), no printable names, no iteration. A named type
// plus methods restores all three; data per constant lives in a parallel
// table indexed by the constant itself.

// Planet identifies a planet of the solar system.
type Planet int

// The planets, in orbital order. The zero value is Mercury on purpose:
// every Planet value in range is meaningful.
const (
	Mercury Planet = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune

	numPlanets
)

// planetData carries the per-constant data the Java enum stores in fields.
type planetData struct {
	name   string
	mass   float64 // kg
	radius float64 // m
}

var planets = [numPlanets]planetData{
	Mercury: {"Mercury", 3.302e23, 2.439e6},
	Venus:   {"Venus", 4.869e24, 6.052e6},
	Earth:   {"Earth", 5.975e24, 6.378e6},
	Mars:    {"Mars", 6.419e23, 3.393e6},
	Jupiter: {"Jupiter", 1.899e27, 7.149e7},
	Saturn:  {"Saturn", 5.685e26, 6.027e7},
	Uranus:  {"Uranus", 8.683e25, 2.556e7},
	Neptune: {"Neptune", 1.024e26, 2.477e7},
}

const gravitationalConstant = 6.673e-11

// Valid reports whether p names a real planet.
func (p Planet) Valid() bool { return p >= Mercury && p < numPlanets }

// String returns the planet's name, or a placeholder for out-of-range
// values.
func (p Planet) String() string {
	if !p.Valid() {
		return "Planet(?)"
	}
	return planets[p].name
}

// SurfaceGravity returns the gravity at the surface in m/s².
func (p Planet) SurfaceGravity() float64 {
	d := planets[p]
	return gravitationalConstant * d.mass / (d.radius * d.radius)
}

// SurfaceWeight returns the weight of the given mass on this planet.
func (p Planet) SurfaceWeight(mass float64) float64 {
	return mass * p.SurfaceGravity()
}

// AllPlanets iterates the constants in declaration order, something the int
// pattern cannot offer.
func AllPlanets() []Planet {
	out := make([]Planet, 0, numPlanets)
	for p := Mercury; p < numPlanets; p++ {
		out = append(out, p)
	}
	return out
}
