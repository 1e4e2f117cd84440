package cities

import "errors"

var (
	// ErrNoCities is returned when an instance would hold zero cities.
	ErrNoCities = errors.New("cities: no cities")

	// ErrDimensionMismatch is returned when an ordering is not a permutation of [0,N).
	ErrDimensionMismatch = errors.New("cities: ordering is not a permutation of the cities")

	// ErrBadDistance is returned when an edge of a tour has a NaN, infinite
	// or negative length.
	ErrBadDistance = errors.New("cities: invalid edge distance")

	// ErrParse is returned for malformed lines in a city file.
	ErrParse = errors.New("cities: malformed city line")

	// ErrBadBounds is returned by Random for non-positive or non-finite extents.
	ErrBadBounds = errors.New("cities: invalid bounds")
)

// Point is a city location in the plane.
type Point struct {
	X, Y float64
}
