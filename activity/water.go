package activity

// WaterProps carries the two water properties the Debye–Hückel coefficients
// A and B are built from.
type WaterProps struct {
	// Density is the water density in kg/m³.
	Density float64

	// Epsilon is the relative dielectric constant (dimensionless).
	Epsilon float64
}

// WaterPropsFunc supplies water properties at (T, P). Property correlations
// are collaborators of this package, not part of it: callers with a real
// equation of state inject it through WithWaterProps.
type WaterPropsFunc func(temperature, pressure float64) (WaterProps, error)

// ReferenceWaterProps returns the liquid-water reference values at 25 °C and
// 1 bar regardless of (T, P). It is the default property source of
// NewDebyeHuckel, adequate for near-ambient conditions.
func ReferenceWaterProps(temperature, pressure float64) (WaterProps, error) {
	return WaterProps{Density: 997.047, Epsilon: 78.24514}, nil
}
