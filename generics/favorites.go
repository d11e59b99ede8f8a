package generics

import "reflect"

// Item 29: type-safe heterogeneous container.
//
// One container, many value types, each stored and retrieved under its own
// type. The map is keyed by reflect.Type; the generic accessors restore
// compile-time typing at the boundary, so the single assertion inside Get
// can only succeed.

// Favorites stores at most one favorite value per type.
type Favorites struct {
	items map[reflect.Type]any
}

// NewFavorites returns an empty container.
func NewFavorites() *Favorites {
	return &Favorites{items: map[reflect.Type]any{}}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// PutFavorite stores v as the favorite T.
func PutFavorite[T any](f *Favorites, v T) {
	f.items[typeOf[T]()] = v
}

// GetFavorite retrieves the favorite T, if any.
func GetFavorite[T any](f *Favorites) (T, bool) {
	raw, ok := f.items[typeOf[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	// The only writers are PutFavorite instantiations, which key values by
	// their own type, so this assertion cannot fail.
	return raw.(T), true
}

// Len reports how many distinct types have favorites.
func (f *Favorites) Len() int { return len(f.items) }
