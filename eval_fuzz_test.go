package spoken_test

import (
	"testing"

	"github.com/zephyrtronium/spoken"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("two plus two")
	f.Add("log sin eleven hundred")
	f.Add("one divided by zero")
	f.Add("negative two to the one half power")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := spoken.Evaluate(s)
		if err != nil && r != 0 {
			t.Errorf("%q gave result %g with error %v", s, r, err)
		}
		if err, ok := err.(spoken.InputError); ok && err.Pos() < 1 {
			t.Errorf("%q gave error with position %d: %v", s, err.Pos(), err)
		}
	})
}
