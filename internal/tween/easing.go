package tween

import "fmt"

// Easing maps linear progress in [0,1] onto eased progress in [0,1].
// Every easing here is monotone with f(0)=0 and f(1)=1.
type Easing func(x float64) float64

func Linear(x float64) float64 {
	return x
}

// Cubic is the smoothstep curve 3x^2 - 2x^3.
func Cubic(x float64) float64 {
	return x * x * (3 - 2*x)
}

// CubicInOut accelerates cubically to the midpoint and mirrors back out.
func CubicInOut(x float64) float64 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	f := 2*x - 2
	return 0.5*f*f*f + 1
}

// EasingByName resolves a config easing name.
func EasingByName(name string) (Easing, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "cubic", "":
		return Cubic, nil
	case "cubic-in-out":
		return CubicInOut, nil
	}
	return nil, fmt.Errorf("unknown easing %q", name)
}
