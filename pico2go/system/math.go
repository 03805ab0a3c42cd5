package system

import (
	"math"

	"golang.org/x/exp/constraints"
)

func ASin(x float64) float64 {
	return math.Asin(x)
}

func ATan(x float64) float64 {
	return math.Atan(x)
}

func ATan2(y, x float64) float64 {
	return math.Atan2(y, x)
}

func Abs(x float64) float64 {
	return math.Abs(x)
}

func Ceil(x float64) float64 {
	return math.Ceil(x)
}

func Cos(x float64) float64 {
	return math.Cos(x)
}

func Exp(x float64) float64 {
	return math.Exp(x)
}

func Floor(x float64) float64 {
	return math.Floor(x)
}

func Log(x float64) float64 {
	return math.Log(x)
}

func Pow(x, y float64) float64 {
	return math.Pow(x, y)
}

func Sin(x float64) float64 {
	return math.Sin(x)
}

func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}

func Tan(x float64) float64 {
	return math.Tan(x)
}

// Sgn returns 1 for positive x, -1 for negative x and 0 otherwise.
func Sgn(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Int truncates x towards zero. Values outside of the int range saturate,
// NaN becomes 0.
func Int(x float64) int {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt:
		return math.MaxInt
	case x <= math.MinInt:
		return math.MinInt
	}
	return int(x)
}

// Div divides x by y, truncating towards zero. A zero divisor gives 0.
func Div(x, y int) int {
	if y == 0 {
		logger.Warn("division by zero", "dividend", x)
		return 0
	}
	return x / y
}

// ModInt returns the remainder of x / y for int operands. A zero divisor
// gives 0.
func ModInt(x, y int) int {
	if y == 0 {
		logger.Warn("mod by zero", "dividend", x)
		return 0
	}
	return x % y
}

// Quo divides x by y for real operands. A zero divisor gives an infinity or
// NaN.
func Quo(x, y float64) float64 {
	return x / y
}

// Mod returns the remainder of x / y for real operands.
func Mod(x, y float64) float64 {
	return math.Mod(x, y)
}

// Max returns x if it is greater or equal to y, otherwise y.
func Max[T constraints.Ordered](x, y T) T {
	if x >= y {
		return x
	}
	return y
}

// Min returns x if it is less or equal to y, otherwise y.
func Min[T constraints.Ordered](x, y T) T {
	if x <= y {
		return x
	}
	return y
}

// Clamp limits x to the range [lo, hi]. If lo > hi, hi wins.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Min(Max(x, lo), hi)
}
