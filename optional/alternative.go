package optional

import "iter"

// To converts into any other single-or-none container given that container's
// empty value and its single-value injection: Absent maps to empty,
// Present(x) to wrap(x). The concrete bridges below are instances of it.
func To[T, F any](empty F, wrap func(T) F, v Optional[T]) F {
	if item, exists := v.Unpack(); exists {
		return wrap(item)
	}
	return empty
}

// ToPointer bridges to Go's idiomatic nullable: nil for Absent, a pointer to
// a copy of the value for Present.
func ToPointer[T any](v Optional[T]) *T {
	if item, exists := v.Unpack(); exists {
		return &item
	}
	return nil
}

// FromPointer is the inverse bridge; the value is copied out, so the result
// does not alias *p.
func FromPointer[T any](p *T) Optional[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// ToSlice yields an empty-or-single-element slice.
func ToSlice[T any](v Optional[T]) []T {
	if item, exists := v.Unpack(); exists {
		return []T{item}
	}
	return nil
}

// ToSeq yields a sequence of zero or one elements.
func ToSeq[T any](v Optional[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if item, exists := v.Unpack(); exists {
			yield(item)
		}
	}
}
