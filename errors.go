package layers

import (
	"errors"
	"fmt"
)

var (
	// ErrLayerNotFound reports a layer reference with no entry in the supplied sequence.
	ErrLayerNotFound = errors.New("layer not found")
	// ErrTooManyLayers reports a Define call with more names than a Mask has bits.
	ErrTooManyLayers = errors.New("too many layers")
)

// NotFoundError carries the layer reference that failed to resolve.
// It is returned by every fallible operation and is the panic value of the
// Must variants.
type NotFoundError struct {
	Layer any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Layer {%v} not found!", e.Layer)
}

// Unwrap makes errors.Is(err, ErrLayerNotFound) hold for resolution failures.
func (e *NotFoundError) Unwrap() error { return ErrLayerNotFound }
