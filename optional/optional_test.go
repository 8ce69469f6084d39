package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Optional_unpack(t *testing.T) {
	for _, tc := range []struct {
		name       string
		value      Optional[string]
		wantItem   string
		wantExists bool
	}{
		{
			name:       "present",
			value:      Present("John"),
			wantItem:   "John",
			wantExists: true,
		},
		{
			name:       "absent",
			value:      Absent[string](),
			wantItem:   "",
			wantExists: false,
		},
		{
			name:       "zero value is absent",
			value:      Optional[string]{},
			wantItem:   "",
			wantExists: false,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			item, exists := tc.value.Unpack()
			assert.Equal(t, tc.wantItem, item)
			assert.Equal(t, tc.wantExists, exists)

			assert.Equal(t, tc.wantExists, tc.value.IsPresent())
			assert.Equal(t, !tc.wantExists, tc.value.IsAbsent())
			assert.Equal(t, !tc.wantExists, tc.value.IsZero())
		})
	}
}

func Test_Optional_or(t *testing.T) {
	assert.Equal(t, 20, Present(20).Or(0))
	assert.Equal(t, 0, Absent[int]().Or(0))
	assert.Equal(t, "fallback", Absent[string]().Or("fallback"))
}

func Test_Optional_equality(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b Optional[int]
		want bool
	}{
		{name: "absent equals absent", a: Absent[int](), b: Absent[int](), want: true},
		{name: "present equals same present", a: Present(5), b: Present(5), want: true},
		{name: "present differs from other present", a: Present(5), b: Present(6), want: false},
		{name: "absent differs from present", a: Absent[int](), b: Present(0), want: false},
		{name: "zero of contained type is still present", a: Present(0), b: Absent[int](), want: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a == tc.b)
			assert.Equal(t, tc.want, Equal(tc.a, tc.b))

			// symmetry
			assert.Equal(t, tc.want, tc.b == tc.a)

			// reflexivity
			assert.True(t, Equal(tc.a, tc.a))
			assert.True(t, Equal(tc.b, tc.b))
		})
	}
}

func Test_Optional_equality_transitivity(t *testing.T) {
	a, b, c := Present("x"), Present("x"), Present("x")
	require.True(t, a == b)
	require.True(t, b == c)
	assert.True(t, a == c)
}

// The calling convention the package exists for: an optional argument
// resolved inside the callee.
func Test_Optional_greet(t *testing.T) {
	greet := func(name Optional[string]) string {
		return Fold("Hello", func(name string) string {
			return "Hello, " + name
		}, name)
	}

	assert.Equal(t, "Hello, John", greet(Present("John")))
	assert.Equal(t, "Hello", greet(Absent[string]()))
}
