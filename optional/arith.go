package optional

import "golang.org/x/exp/constraints"

// Number is the type set the arithmetic lifts range over.
type Number interface {
	constraints.Integer | constraints.Float
}

// The binary lifts follow the applicative product rule: if either operand is
// Absent, the result is Absent. The unary lifts go through Map. None of
// these can fail; Div and Recip keep whatever T's own division does with a
// zero divisor.

// Add lifts + elementwise.
func Add[T Number](a, b Optional[T]) Optional[T] {
	return lift2(func(x, y T) T { return x + y }, a, b)
}

// Sub lifts - elementwise.
func Sub[T Number](a, b Optional[T]) Optional[T] {
	return lift2(func(x, y T) T { return x - y }, a, b)
}

// Mul lifts * elementwise.
func Mul[T Number](a, b Optional[T]) Optional[T] {
	return lift2(func(x, y T) T { return x * y }, a, b)
}

// Div lifts / elementwise, for fractional types only.
func Div[T constraints.Float](a, b Optional[T]) Optional[T] {
	return lift2(func(x, y T) T { return x / y }, a, b)
}

// Neg lifts unary minus.
func Neg[T Number](v Optional[T]) Optional[T] {
	return Map(func(x T) T { return -x }, v)
}

// Abs lifts absolute value.
func Abs[T Number](v Optional[T]) Optional[T] {
	return Map(func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	}, v)
}

// Sign lifts the sign function: -1, 0, or +1 in T.
func Sign[T Number](v Optional[T]) Optional[T] {
	return Map(func(x T) T {
		switch one := T(1); {
		case x < 0:
			return -one
		case x > 0:
			return one
		default:
			return 0
		}
	}, v)
}

// Recip lifts the reciprocal, for fractional types only.
func Recip[T constraints.Float](v Optional[T]) Optional[T] {
	return Map(func(x T) T { return 1 / x }, v)
}

func lift2[T Number](op func(T, T) T, a, b Optional[T]) Optional[T] {
	return lift2Any(op, a, b)
}
