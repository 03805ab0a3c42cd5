package system

import "golang.org/x/exp/constraints"

// BoolInt converts b to the truth values used by pico programs: 1 for true
// and 0 for false.
func BoolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// IntBool reports whether i is a true value.
func IntBool(i int) bool {
	return i != 0
}

// Not negates the truth value i.
func Not(i int) int {
	return BoolInt(i == 0)
}

// ForCond reports whether a for loop with the control value v, the final
// value to and the increment step continues. A negative step counts down.
func ForCond[T constraints.Integer | constraints.Float](v, to, step T) bool {
	if step < 0 {
		return v >= to
	}
	return v <= to
}
