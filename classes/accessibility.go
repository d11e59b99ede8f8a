package classes

import "slices"

// Item 13: minimize the accessibility of everything.
//
// An exported slice variable is never safe: any importer can reorder or
// overwrite it. Expose a copy, or better, an accessor that hands out copies
// on demand.

// supportedRegions is the private, mutable truth.
var supportedRegions = []string{"eu-west-1", "us-east-1", "ap-south-1"}

// LeakedRegions exposes the backing array - DON'T DO THIS. Any caller can
// do LeakedRegions[0] = "owned" and every other caller sees it.
var LeakedRegions = supportedRegions

// Regions returns a copy of the supported regions. Callers can mutate their
// copy freely.
func Regions() []string {
	return slices.Clone(supportedRegions)
}
