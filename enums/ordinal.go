package enums

// Item 31: derive nothing from a constant's position.
//
// iota is an implementation detail of the declaration, not data. The broken
// ensemble derives its musician count from the constant's numeric value, so
// inserting a constant renumbers every one after it. The fixed version
// stores the count explicitly, leaving iota to do the only job it is good
// at: producing distinct identities.

// brokenEnsemble encodes meaning in iota - DON'T DO THIS.
type brokenEnsemble int

const (
	brokenSolo brokenEnsemble = iota + 1
	brokenDuet
	brokenTrio
	// Inserting "double quartet" (8 musicians, like octet) here is
	// impossible without lying about every later constant.
)

func (b brokenEnsemble) musicians() int { return int(b) }

// Ensemble stores its data explicitly.
type Ensemble struct {
	Name      string
	Musicians int
}

// The ensembles; two of them legitimately share a musician count, which the
// ordinal encoding cannot express at all.
var (
	Solo          = Ensemble{Name: "solo", Musicians: 1}
	Duet          = Ensemble{Name: "duet", Musicians: 2}
	Trio          = Ensemble{Name: "trio", Musicians: 3}
	Octet         = Ensemble{Name: "octet", Musicians: 8}
	DoubleQuartet = Ensemble{Name: "double quartet", Musicians: 8}
)
