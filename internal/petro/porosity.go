package petro

// DensityPorosity converts a bulk density reading to density porosity via
// the two-point matrix/fluid transform, clamped to [0, 1]. Readings denser
// than the matrix clamp to 0 and lighter than the fluid clamp to 1; the
// clamp is always applied and out-of-range samples are never discarded.
// Excluding null-sentinel samples is the caller's job.
func DensityPorosity(bulkDensity, matrixDensity, fluidDensity float64) float64 {
	phi := (matrixDensity - bulkDensity) / (matrixDensity - fluidDensity)
	if phi < 0 {
		return 0
	}
	if phi > 1 {
		return 1
	}
	return phi
}
