package optional

import "golang.org/x/exp/constraints"

// Go has no implicit literal conversion, so each literal class gets an
// explicit constructor instead. The type-set constraints mean a user-defined
// wrapper over a literal-bearing type participates too: FromText accepts
// any `type Name string`, FromInt any `type Count int`, and so on. Since
// untyped constants convert at the call site, FromInt[Count](20) is the same
// value as Present[Count](20).

// FromText wraps a string-like value.
func FromText[T ~string](text T) Optional[T] {
	return Present(text)
}

// FromInt wraps an integer-like value.
func FromInt[T constraints.Integer](n T) Optional[T] {
	return Present(n)
}

// FromFraction wraps a float-like value.
func FromFraction[T constraints.Float](x T) Optional[T] {
	return Present(x)
}
