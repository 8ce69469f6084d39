package optional

// The transforms that change the element type live here as free functions,
// since Go methods cannot introduce new type parameters.

// Map applies f inside the wrapper: Absent stays Absent, Present(x) becomes
// Present(f(x)).
func Map[T, U any](f func(T) U, v Optional[T]) Optional[U] {
	if item, exists := v.Unpack(); exists {
		return Present(f(item))
	}
	return Absent[U]()
}

// Bind sequences two optional computations. Absent short-circuits without
// calling f; Present(x) yields f(x), which may itself be Absent.
func Bind[T, U any](v Optional[T], f func(T) Optional[U]) Optional[U] {
	if item, exists := v.Unpack(); exists {
		return f(item)
	}
	return Absent[U]()
}

// Apply is the applicative product: the result is Present only when both the
// function and the argument are. Unlike Bind it never lets one present side
// through on its own.
func Apply[T, U any](vf Optional[func(T) U], vx Optional[T]) Optional[U] {
	f, fExists := vf.Unpack()
	x, xExists := vx.Unpack()
	if fExists && xExists {
		return Present(f(x))
	}
	return Absent[U]()
}

// OrElse returns a if it is present, else b. This is the fallback
// combination with Absent as its identity; it is associative, so chains of
// OrElse pick the first present value. It is deliberately distinct from the
// value-lifting combination in monoid.go, which has a different identity.
func OrElse[T any](a, b Optional[T]) Optional[T] {
	if a.exists {
		return a
	}
	return b
}

// Fold collapses the wrapper: defaultValue for Absent, f(x) for Present(x).
func Fold[T, B any](defaultValue B, f func(T) B, v Optional[T]) B {
	if item, exists := v.Unpack(); exists {
		return f(item)
	}
	return defaultValue
}

// ValueOr is Fold with the identity function.
func ValueOr[T any](defaultValue T, v Optional[T]) T {
	if item, exists := v.Unpack(); exists {
		return item
	}
	return defaultValue
}
