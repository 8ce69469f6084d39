package optional

// Monoid describes an associative combination over T with an identity
// element. It is the capability LiftMonoid needs from the contained type.
type Monoid[T any] struct {
	Empty   func() T
	Combine func(a, b T) T
}

// LiftMonoid lifts a monoid on T to a monoid on Optional[T] by combining
// contained values. Its identity is Present(m.Empty()), not Absent: the
// combination follows the applicative product rule, so an Absent operand
// absorbs the whole combination. Use OrElse when you want first-present-wins
// fallback instead; the two must not be confused, since they have different
// identity elements.
func LiftMonoid[T any](m Monoid[T]) Monoid[Optional[T]] {
	return Monoid[Optional[T]]{
		Empty: func() Optional[T] {
			return Present(m.Empty())
		},
		Combine: func(a, b Optional[T]) Optional[T] {
			return lift2Any(m.Combine, a, b)
		},
	}
}

func lift2Any[T any](op func(T, T) T, a, b Optional[T]) Optional[T] {
	return Apply(Map(func(x T) func(T) T {
		return func(y T) T { return op(x, y) }
	}, a), b)
}
