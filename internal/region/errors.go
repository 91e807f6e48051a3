package region

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMount is returned when the mount target is empty or the
	// backend cannot resolve it.
	ErrInvalidMount = errors.New("invalid mount target")

	// ErrInvalidSize is returned for non-positive canvas dimensions.
	ErrInvalidSize = errors.New("invalid canvas size")
)

// DrawError records an outline the surface refused to draw. It never aborts
// a render pass.
type DrawError struct {
	RegionID string
	Kind     Kind
	Index    int
	Err      error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("region %q: %s outline %d: %v", e.RegionID, e.Kind, e.Index, e.Err)
}

// Unwrap returns the surface error.
func (e *DrawError) Unwrap() error { return e.Err }
