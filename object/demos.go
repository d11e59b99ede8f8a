package object

import (
	"context"
	"log/slog"
	"sort"

	"github.com/sghaida/effectivego/catalog"
)

// Demos returns this chapter's runnable lessons.
func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Item: 8, Slug: "equality-contract", Chapter: "object", Summary: "symmetry and transitivity of Equal methods", Run: runEquality},
		{Item: 9, Slug: "hash-keys", Chapter: "object", Summary: "canonical map keys consistent with Equal", Run: runHashKeys},
		{Item: 10, Slug: "stringer", Chapter: "object", Summary: "fmt.Stringer with a documented format", Run: runStringer},
		{Item: 11, Slug: "copy", Chapter: "object", Summary: "shallow assignment vs explicit deep Copy", Run: runCopy},
		{Item: 12, Slug: "compare", Chapter: "object", Summary: "Compare consistent with Equal, no subtraction tricks", Run: runCompare},
	}
}

func runEquality(_ context.Context, log *slog.Logger) error {
	cis := CaseInsensitiveString{S: "Polish"}
	log.Info("broken one-way interoperability",
		"cis.EqualAny(string)", cis.EqualAny("polish"),
		"string side cannot reciprocate", "polish" == cis.S)
	log.Info("fixed symmetric form",
		"equal", cis.Equal(CaseInsensitiveString{S: "POLISH"}))

	red := ColorPoint{Point: Point{1, 2}, Color: "red"}
	blue := ColorPoint{Point: Point{1, 2}, Color: "blue"}
	plain := Point{1, 2}
	log.Info("broken mixed comparison is intransitive",
		"red==plain", red.equalMixed(plain),
		"plain==blue (via blue)", blue.equalMixed(plain),
		"red==blue", red.equalMixed(blue))
	log.Info("composition instead",
		"red.Equal(blue)", red.Equal(blue),
		"red.AsPoint()==blue.AsPoint()", red.AsPoint().Equal(blue.AsPoint()))
	return nil
}

func runHashKeys(_ context.Context, log *slog.Logger) error {
	book := NewPhoneBook()
	jenny := CaseInsensitiveString{S: "Jenny"}
	lower := CaseInsensitiveString{S: "jenny"}

	book.putRaw(jenny, "867-5309")
	_, rawHit := book.getRaw(lower)
	log.Info("raw keys miss logically-equal lookups", "found", rawHit)

	book.Put(jenny, "867-5309")
	n, ok := book.Get(lower)
	log.Info("canonical keys agree with Equal", "found", ok, "number", n)

	a, err := NewPhoneNumber(707, 867, 5309)
	if err != nil {
		return err
	}
	b, err := NewPhoneNumber(707, 867, 1234)
	if err != nil {
		return err
	}
	log.Info("full hash separates unequal values",
		"collide", a.Hash() == b.Hash())
	log.Info("partial hash collides on purpose-built neighbours",
		"collide", a.hashPartial() == b.hashPartial())
	return nil
}

func runStringer(_ context.Context, log *slog.Logger) error {
	p, err := NewPhoneNumber(707, 867, 5309)
	if err != nil {
		return err
	}
	log.Info("documented format", "number", p.String())
	return nil
}

func runCopy(_ context.Context, log *slog.Logger) error {
	original := Route{Name: "coastal", Waypoints: []Point{{0, 0}, {1, 1}}}

	aliased := original.shallowCopy()
	aliased.Waypoints[0] = Point{9, 9}
	log.Info("shallow copy aliases storage", "original[0]", original.Waypoints[0])

	original.Waypoints[0] = Point{0, 0}
	deep := original.Copy()
	deep.Waypoints[0] = Point{7, 7}
	log.Info("deep copy isolates", "original[0]", original.Waypoints[0], "copy[0]", deep.Waypoints[0])
	return nil
}

func runCompare(_ context.Context, log *slog.Logger) error {
	nums := make([]PhoneNumber, 0, 3)
	for _, raw := range [][3]int{{707, 867, 5309}, {212, 555, 100}, {707, 123, 4567}} {
		p, err := NewPhoneNumber(raw[0], raw[1], raw[2])
		if err != nil {
			return err
		}
		nums = append(nums, p)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i].Less(nums[j]) })
	log.Info("sorted", "first", nums[0].String(), "last", nums[2].String())

	// int32 subtraction wraps: the "shortcut" misorders extreme values.
	log.Info("subtraction shortcut wraps",
		"compare(maxInt32, -1) < 0", compareBySubtraction(1<<31-1, -1) < 0)
	return nil
}
