package spoken_test

import (
	"fmt"
	"math/big"

	"github.com/zephyrtronium/spoken"
)

type double struct{}

func (double) CanCall(n int) bool {
	return n == 1
}

func (double) Call(ctx *spoken.Context, invoc []*big.Float, r *big.Float) error {
	r.SetPrec(ctx.Prec()).Add(invoc[0], invoc[0])
	return nil
}

func ExampleFunc() {
	ctx := spoken.NewContext(spoken.Prec(32))
	opt := spoken.ParseFunc("double", double{})

	a, _ := spoken.Parse("double twenty one", opt)
	b, _ := spoken.Parse("double three plus one", opt)
	fmt.Println(a.Eval(ctx), a)
	fmt.Println(b.Eval(ctx), b)

	// Output:
	// 42 (double [21])
	// 7 ([double (3)] + [1])
}
