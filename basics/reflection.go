package basics

import (
	"fmt"
	"reflect"
	"strconv"
)

// Item 53: prefer interfaces to reflection.
//
// Reflection trades compile-time checking, readability and speed for
// genericity you rarely need. When plug-in construction is unavoidable,
// confine reflection to the single instantiation and immediately assert to
// an interface, so the rest of the program stays typed.

// Formatter is the typed contract every plug-in satisfies.
type Formatter interface {
	Format(v int) string
}

// DecimalFormatter and HexFormatter are two plug-ins.
type DecimalFormatter struct{}

// Format renders base 10.
func (DecimalFormatter) Format(v int) string { return strconv.Itoa(v) }

// HexFormatter renders base 16.
type HexFormatter struct{}

// Format renders base 16.
func (HexFormatter) Format(v int) string { return "0x" + strconv.FormatInt(int64(v), 16) }

// formatterTypes is the registry keyed by external name. Reflection is used
// only to instantiate; the value leaves this map as a Formatter.
var formatterTypes = map[string]reflect.Type{
	"decimal": reflect.TypeFor[DecimalFormatter](),
	"hex":     reflect.TypeFor[HexFormatter](),
}

// NewFormatter instantiates a plug-in by name, reflectively, then returns
// to the typed world for good.
func NewFormatter(name string) (Formatter, error) {
	rt, ok := formatterTypes[name]
	if !ok {
		return nil, fmt.Errorf("basics: unknown formatter %q", name)
	}
	f, ok := reflect.New(rt).Elem().Interface().(Formatter)
	if !ok {
		return nil, fmt.Errorf("basics: %q does not implement Formatter", name)
	}
	return f, nil
}
