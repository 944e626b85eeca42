package layers

import "fmt"

// Set is a bound layer sequence: the static-binding form of the package-level
// operations. A Set is built once by [Define], is immutable afterwards, and
// forwards every operation to its package-level counterpart with the bound
// sequence, with identical semantics.
type Set[N comparable] struct {
	names []N
}

// Define builds a Set from a fixed ordered list of layer names. It returns
// [ErrTooManyLayers] when more names are given than a Mask has bits.
// Duplicate names are permitted and resolve to their first occurrence, as
// with the package-level operations.
func Define[N comparable](names ...N) (*Set[N], error) {
	if len(names) > MaskWidth {
		return nil, fmt.Errorf("%w: %d names for %d bits", ErrTooManyLayers, len(names), MaskWidth)
	}
	bound := make([]N, len(names))
	copy(bound, names)
	return &Set[N]{names: bound}, nil
}

// MustDefine is Define, panicking on error. Intended for package-level
// declarations of fixed layer sets.
func MustDefine[N comparable](names ...N) *Set[N] {
	s, err := Define(names...)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns a copy of the bound sequence.
func (s *Set[N]) Names() []N {
	out := make([]N, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of bound names.
func (s *Set[N]) Len() int { return len(s.names) }

// All returns a mask with every bound layer enabled.
func (s *Set[N]) All() Mask { return NewMask().EnableAll(len(s.names)) }

// Resolve translates a layer reference against the bound sequence.
func (s *Set[N]) Resolve(layer any) (int, error) { return ResolveIndex(s.names, layer) }

// MustResolve is Resolve, panicking on resolution failure.
func (s *Set[N]) MustResolve(layer any) int { return MustResolveIndex(s.names, layer) }

// Enable sets the referenced layer's bit.
func (s *Set[N]) Enable(m Mask, layer any) (Mask, error) { return Enable(s.names, m, layer) }

// MustEnable is Enable, panicking on resolution failure.
func (s *Set[N]) MustEnable(m Mask, layer any) Mask { return MustEnable(s.names, m, layer) }

// Disable clears the referenced layer's bit.
func (s *Set[N]) Disable(m Mask, layer any) (Mask, error) { return Disable(s.names, m, layer) }

// MustDisable is Disable, panicking on resolution failure.
func (s *Set[N]) MustDisable(m Mask, layer any) Mask { return MustDisable(s.names, m, layer) }

// Enabled reports whether at least one referenced layer is enabled.
func (s *Set[N]) Enabled(m Mask, refs ...any) bool { return Enabled(s.names, m, refs...) }

// Disabled reports whether every referenced layer is disabled or unresolved.
func (s *Set[N]) Disabled(m Mask, refs ...any) bool { return Disabled(s.names, m, refs...) }

// EnabledLayers filters the bound sequence to the enabled names, in order.
func (s *Set[N]) EnabledLayers(m Mask) []N { return EnabledLayers(s.names, m) }

// DisabledLayers filters the bound sequence to the disabled names, in order.
func (s *Set[N]) DisabledLayers(m Mask) []N { return DisabledLayers(s.names, m) }

// MapEnabled applies fn to every enabled name in order. Methods cannot
// introduce a result type parameter, so the bound map forms work with any;
// callers needing typed results use the package-level [MapEnabled] with
// [Set.Names].
func (s *Set[N]) MapEnabled(m Mask, fn func(N) any) []any {
	return MapEnabled(s.names, m, fn)
}

// MapLayer applies fn to the referenced name only when its layer is enabled.
// See [MapLayer] for the full contract and [Set.MapEnabled] for the typing
// note.
func (s *Set[N]) MapLayer(m Mask, layer any, fn func(N) any) (any, bool) {
	return MapLayer(s.names, m, layer, fn)
}

// MapLayerOr is MapLayer returning def when the layer is disabled.
func (s *Set[N]) MapLayerOr(m Mask, layer, def any, fn func(N) any) any {
	return MapLayerOr(s.names, m, layer, def, fn)
}
