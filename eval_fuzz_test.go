package arith_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/arith"
)

func FuzzEval(f *testing.F) {
	f.Add("2+3*4")
	f.Add("2^3^2")
	f.Add("-(1.5/0)")
	f.Add("((1)")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := arith.Eval(s)
		q, qerr := arith.Eval(s)
		if math.Float64bits(r) != math.Float64bits(q) {
			t.Fatalf("%q: evaluated to %g then %g", s, r, q)
		}
		if (err == nil) != (qerr == nil) {
			t.Fatalf("%q: errors %v then %v", s, err, qerr)
		}
		if err == nil {
			return
		}
		if err.Error() != qerr.Error() {
			t.Fatalf("%q: errors %v then %v", s, err, qerr)
		}
		if r != 0 {
			t.Fatalf("%q: result %g with error %v", s, r, err)
		}
		var ie arith.InputError
		if !errors.As(err, &ie) {
			t.Fatalf("%q: error %T is not an InputError", s, err)
		}
		if p := ie.Pos(); p < 0 || p > len(s) {
			t.Fatalf("%q: error position %d out of range", s, p)
		}
	})
}
