package gazescreens

import "github.com/pkg/errors"

var (
	// ErrConfig reports invalid construction parameters.
	ErrConfig = errors.New("invalid configuration")
	// ErrDegenerate reports a zero-length or non-finite vector where a direction is required.
	ErrDegenerate = errors.New("degenerate input")
	// ErrNoIntersection is returned when no candidate screen is hit by the target ray.
	ErrNoIntersection = errors.New("no intersection on any screen was found")
)
