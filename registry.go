package layers

// The operations below are stateless: the caller owns the ordered layer
// sequence and supplies it on every call. A layer reference is any value —
// an integer of any Go kind passes through unchanged as a raw index, a value
// of the sequence's element type resolves by linear search.

// ResolveIndex translates a layer reference into its bit index.
//
// Integer references pass through unchanged with no existence check; a raw
// index is always usable in place of a name. A reference of the sequence's
// element type resolves to the position of its first occurrence, so
// duplicate names share the index of the first. A missing name, or a
// reference of any other type, yields a [NotFoundError] wrapping
// [ErrLayerNotFound].
func ResolveIndex[N comparable](seq []N, layer any) (int, error) {
	switch v := layer.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case uintptr:
		return int(v), nil
	}
	if name, ok := layer.(N); ok {
		for i, candidate := range seq {
			if candidate == name {
				return i, nil
			}
		}
	}
	return 0, &NotFoundError{Layer: layer}
}

// MustResolveIndex is ResolveIndex, panicking on resolution failure.
func MustResolveIndex[N comparable](seq []N, layer any) int {
	i, err := ResolveIndex(seq, layer)
	if err != nil {
		panic(err)
	}
	return i
}

// Enable resolves the layer reference and returns a mask with its bit set.
// Resolution failure propagates unchanged; the mask is returned as-is in
// that case.
func Enable[N comparable](seq []N, m Mask, layer any) (Mask, error) {
	i, err := ResolveIndex(seq, layer)
	if err != nil {
		return m, err
	}
	return m.Enable(i), nil
}

// MustEnable is Enable, panicking on resolution failure.
func MustEnable[N comparable](seq []N, m Mask, layer any) Mask {
	out, err := Enable(seq, m, layer)
	if err != nil {
		panic(err)
	}
	return out
}

// Disable resolves the layer reference and returns a mask with its bit
// cleared. Resolution failure propagates unchanged.
func Disable[N comparable](seq []N, m Mask, layer any) (Mask, error) {
	i, err := ResolveIndex(seq, layer)
	if err != nil {
		return m, err
	}
	return m.Disable(i), nil
}

// MustDisable is Disable, panicking on resolution failure.
func MustDisable[N comparable](seq []N, m Mask, layer any) Mask {
	out, err := Disable(seq, m, layer)
	if err != nil {
		panic(err)
	}
	return out
}

// Enabled reports whether at least one of the referenced layers is enabled.
// A reference that fails to resolve counts as disabled; the predicate is
// total and never errors. With no references it reports false.
func Enabled[N comparable](seq []N, m Mask, refs ...any) bool {
	for _, layer := range refs {
		i, err := ResolveIndex(seq, layer)
		if err != nil {
			continue
		}
		if m.Enabled(i) {
			return true
		}
	}
	return false
}

// Disabled is the exact negation of Enabled on the same arguments: true only
// when every referenced layer is disabled or unresolved. With no references
// it reports true.
func Disabled[N comparable](seq []N, m Mask, refs ...any) bool {
	return !Enabled(seq, m, refs...)
}

// EnabledLayers filters the sequence down to the names whose layers are
// enabled, preserving sequence order.
func EnabledLayers[N comparable](seq []N, m Mask) []N {
	out := make([]N, 0, len(seq))
	for _, name := range seq {
		if Enabled(seq, m, name) {
			out = append(out, name)
		}
	}
	return out
}

// DisabledLayers is the complementary filter to EnabledLayers, also
// preserving sequence order.
func DisabledLayers[N comparable](seq []N, m Mask) []N {
	out := make([]N, 0, len(seq))
	for _, name := range seq {
		if Disabled(seq, m, name) {
			out = append(out, name)
		}
	}
	return out
}

// MapEnabled applies fn to every enabled name in sequence order and returns
// the results. The result is empty when nothing is enabled.
func MapEnabled[N comparable, R any](seq []N, m Mask, fn func(N) R) []R {
	out := make([]R, 0, len(seq))
	for _, name := range seq {
		if Enabled(seq, m, name) {
			out = append(out, fn(name))
		}
	}
	return out
}

// MapLayer applies fn to the referenced layer's name only when that layer is
// enabled, returning the result and true. When the layer is disabled or the
// reference does not resolve, fn is not called and the zero result and false
// are returned. A raw index outside the sequence counts as disabled: there
// is no name to hand to fn.
func MapLayer[N comparable, R any](seq []N, m Mask, layer any, fn func(N) R) (R, bool) {
	var zero R
	i, err := ResolveIndex(seq, layer)
	if err != nil || i < 0 || i >= len(seq) || !m.Enabled(i) {
		return zero, false
	}
	return fn(seq[i]), true
}

// MapLayerOr is MapLayer returning def instead of the zero result and false
// when the layer is disabled. fn is never called for a disabled layer.
func MapLayerOr[N comparable, R any](seq []N, m Mask, layer any, def R, fn func(N) R) R {
	if out, ok := MapLayer(seq, m, layer, fn); ok {
		return out
	}
	return def
}
