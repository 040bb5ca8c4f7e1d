package body

import "cogentcore.org/core/math32"

// ComplexityScale maps genome size to a uniform size factor:
//
//	clamp(sqrt((nodes + 2·edges) / BaseComplexity), MinScale, MaxScale)
//
// Radii, tube radii and fin sizes are multiplied by it, so grown genomes grow
// visibly bigger bodies.
func ComplexityScale(nodes, edges int, cfg Config) float32 {
	v := math32.Sqrt(float32(nodes+2*edges) / cfg.BaseComplexity)
	return min(max(v, cfg.MinScale), cfg.MaxScale)
}
