package object

import "slices"

// Item 11: copy deliberately.
//
// Go has no clone protocol; assignment copies the struct, and that is
// exactly the trap. Assignment of a struct holding a slice copies the
// slice header, not the elements, so "copies" share storage. A type whose
// fields reference mutable storage needs an explicit Copy that duplicates
// what it owns.

// Route is a value type owning an ordered list of waypoints.
type Route struct {
	Name      string
	Waypoints []Point
}

// shallowCopy is plain assignment - DON'T DO THIS for owning types.
// Mutating a waypoint through the copy mutates the original too.
func (r Route) shallowCopy() Route {
	return r
}

// Copy duplicates everything the route owns. Mutations of the copy can no
// longer reach the original.
func (r Route) Copy() Route {
	return Route{
		Name:      r.Name,
		Waypoints: slices.Clone(r.Waypoints),
	}
}

// Append returns a route extended by one waypoint without mutating the
// receiver; safe even when two routes were built from a shared prefix.
func (r Route) Append(p Point) Route {
	out := r.Copy()
	out.Waypoints = append(out.Waypoints, p)
	return out
}
