package fieldground

import "math"

// mix is WGSL mix(): exact at both t=0 and t=1.
func mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// fract returns x - floor(x).
func fract(x float64) float64 {
	return x - math.Floor(x)
}

// clamp01 restricts x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// smoothstep is the Hermite step between edge0 and edge1.
// Like its WGSL namesake it accepts edge0 > edge1, producing a falling step.
// Equal edges degrade to a hard step at edge0.
func smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}
