package body

import (
	"github.com/matzehuels/sprout/pkg/errors"
)

// Config holds every tunable of body generation. Load it from TOML with
// [github.com/matzehuels/sprout/pkg/io.LoadConfig] or start from
// [DefaultConfig]. Linear dimensions are in layout units; the spine is
// BodyLength units long.
type Config struct {
	// Sampling
	Samples int `toml:"samples"` // Spine samples (rings), at least 4
	Sides   int `toml:"sides"`   // Vertices per ring, at least 3

	// Layout
	LayoutIterations int     `toml:"layout_iterations"`
	LayoutArea       float32 `toml:"layout_area"`
	BodyLength       float32 `toml:"body_length"`
	Camber           float32 `toml:"camber"` // Peak lift as a fraction of spine length

	// Cross section
	RadiusA     float32 `toml:"radius_a"` // Semi-axis along the normal at the head
	RadiusB     float32 `toml:"radius_b"` // Semi-axis along the binormal at the head
	TaperA      float32 `toml:"taper_a"`
	TaperB      float32 `toml:"taper_b"`
	MinRadius   float32 `toml:"min_radius"`
	HeadCap     float32 `toml:"head_cap"` // Head apex distance ahead of the first ring, times its larger semi-axis
	TailCap     float32 `toml:"tail_cap"` // Tail apex distance behind the last ring, times its larger semi-axis
	BulgeAmp    float32 `toml:"bulge_amp"`
	BulgeCenter float32 `toml:"bulge_center"`
	BulgeSigma  float32 `toml:"bulge_sigma"`
	Twist       float32 `toml:"twist"` // Radians of twist from head to tail

	// Asymmetry
	AsymAmp    float32 `toml:"asym_amp"`
	AsymSigma  float32 `toml:"asym_sigma"`
	DegreeBias float32 `toml:"degree_bias"`

	// Accessories
	Accessories bool    `toml:"accessories"`
	TubeRadius  float32 `toml:"tube_radius"`
	TubeSides   int     `toml:"tube_sides"`
	Fins        bool    `toml:"fins"`
	FinSize     float32 `toml:"fin_size"`

	// Complexity scale
	BaseComplexity float32 `toml:"base_complexity"`
	MinScale       float32 `toml:"min_scale"`
	MaxScale       float32 `toml:"max_scale"`

	// Cleanup
	WeldTolerance float32 `toml:"weld_tolerance"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		Samples: 48,
		Sides:   16,

		LayoutIterations: 120,
		LayoutArea:       1,
		BodyLength:       4,
		Camber:           0.06,

		RadiusA:     0.45,
		RadiusB:     0.35,
		TaperA:      0.6,
		TaperB:      0.8,
		MinRadius:   0.02,
		HeadCap:     0.5,
		TailCap:     1,
		BulgeAmp:    0.35,
		BulgeCenter: 0.35,
		BulgeSigma:  0.18,
		Twist:       0.6,

		AsymAmp:    0.25,
		AsymSigma:  0.12,
		DegreeBias: 0.5,

		Accessories: true,
		TubeRadius:  0.06,
		TubeSides:   8,
		Fins:        true,
		FinSize:     0.5,

		BaseComplexity: 12,
		MinScale:       0.75,
		MaxScale:       2,

		WeldTolerance: 1e-4,
	}
}

// Validate reports the first invalid field as an [errors.ErrCodeInvalidConfig]
// error.
func (c Config) Validate() error {
	checks := []error{
		errors.ValidateAtLeast("samples", c.Samples, 4),
		errors.ValidateAtLeast("sides", c.Sides, 3),
		errors.ValidateAtLeast("layout_iterations", c.LayoutIterations, 1),
		errors.ValidatePositive("layout_area", float64(c.LayoutArea)),
		errors.ValidatePositive("body_length", float64(c.BodyLength)),
		errors.ValidateNonNegative("camber", float64(c.Camber)),
		errors.ValidatePositive("radius_a", float64(c.RadiusA)),
		errors.ValidatePositive("radius_b", float64(c.RadiusB)),
		errors.ValidateNonNegative("taper_a", float64(c.TaperA)),
		errors.ValidateNonNegative("taper_b", float64(c.TaperB)),
		errors.ValidatePositive("min_radius", float64(c.MinRadius)),
		errors.ValidateNonNegative("head_cap", float64(c.HeadCap)),
		errors.ValidateNonNegative("tail_cap", float64(c.TailCap)),
		errors.ValidateNonNegative("bulge_amp", float64(c.BulgeAmp)),
		errors.ValidatePositive("bulge_sigma", float64(c.BulgeSigma)),
		errors.ValidateNonNegative("asym_amp", float64(c.AsymAmp)),
		errors.ValidatePositive("asym_sigma", float64(c.AsymSigma)),
		errors.ValidateNonNegative("degree_bias", float64(c.DegreeBias)),
		errors.ValidatePositive("tube_radius", float64(c.TubeRadius)),
		errors.ValidateAtLeast("tube_sides", c.TubeSides, 3),
		errors.ValidatePositive("fin_size", float64(c.FinSize)),
		errors.ValidatePositive("base_complexity", float64(c.BaseComplexity)),
		errors.ValidatePositive("min_scale", float64(c.MinScale)),
		errors.ValidatePositive("weld_tolerance", float64(c.WeldTolerance)),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	if c.AsymAmp >= 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "asym_amp must be below 1, got %g", c.AsymAmp)
	}
	if c.MaxScale < c.MinScale {
		return errors.New(errors.ErrCodeInvalidConfig, "max_scale %g is below min_scale %g", c.MaxScale, c.MinScale)
	}
	return nil
}
