package arith_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/arith"
)

func ExampleEval() {
	for _, src := range []string{"2+3*4", "2^3^2", "-(2+3)", "2+3)", "5/0"} {
		r, err := arith.Eval(src)
		if err != nil {
			var ie arith.InputError
			errors.As(err, &ie)
			fmt.Printf("%s: error at %d: %v\n", src, ie.Pos(), err)
			continue
		}
		fmt.Printf("%s = %g\n", src, r)
	}

	// Output:
	// 2+3*4 = 14
	// 2^3^2 = 512
	// -(2+3) = -5
	// 2+3): error at 3: unexpected token at position 3: ')'
	// 5/0: error at 2: division by zero at position 2
}

func ExampleWhitespace() {
	r, err := arith.Eval("1 +\n2", arith.Whitespace('\n'))
	fmt.Println(r, err)

	// Output:
	// 3 <nil>
}
