// Package optional provides Optional[T], a value type for function arguments
// that may be explicitly provided or left at their default.
//
// The zero value of Optional[T] is Absent, so an Optional field or variable
// that is never assigned means "use the default". Callers supply a value with
// Present (or one of the literal constructors in literal.go) and callees
// branch with Unpack, Fold, or ValueOr. Every operation in this package is
// total and pure: nothing here panics, returns an error, or mutates its
// inputs.
//
// Optional[T] is comparable whenever T is, and == is structural equality:
// Absent[T]() == Absent[T](), and Present(a) == Present(b) exactly when
// a == b.
package optional

// Optional holds either no value (Absent) or exactly one value of type T
// (Present). It is a plain immutable value; copy it freely.
type Optional[T any] struct {
	item   T
	exists bool
}

// Present wraps a provided value.
func Present[T any](item T) Optional[T] {
	return Optional[T]{
		item:   item,
		exists: true,
	}
}

// Absent is the "use the default" value. Equivalent to the zero value.
func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// Unpack returns the contained value and whether one is present. The second
// result is the exhaustive branch point; the first is the zero value of T
// when absent.
func (me Optional[T]) Unpack() (T, bool) {
	return me.item, me.exists
}

// IsPresent reports whether a value was provided.
func (me Optional[T]) IsPresent() bool {
	return me.exists
}

// IsAbsent reports whether the value was left at its default.
func (me Optional[T]) IsAbsent() bool {
	return !me.exists
}

// IsZero reports whether me is Absent. This wires Optional into the
// encoding conventions that treat IsZero as "is the default value".
func (me Optional[T]) IsZero() bool {
	return !me.exists
}

// Or returns the contained value if present, else defaultValue. Method form
// of ValueOr.
func (me Optional[T]) Or(defaultValue T) T {
	if me.exists {
		return me.item
	}
	return defaultValue
}

// Equal reports structural equality. For comparable T this agrees with ==;
// it exists so law-style code can spell the comparison out.
func Equal[T comparable](a, b Optional[T]) bool {
	return a == b
}
