package petro

import "errors"

var (
	// ErrInvalidPorosity indicates a porosity outside (0, 1).
	ErrInvalidPorosity = errors.New("petro: porosity must be in (0, 1)")
	// ErrInvalidSampleCount indicates a trend sampled at fewer than two points.
	ErrInvalidSampleCount = errors.New("petro: trend needs at least two sample points")
)
