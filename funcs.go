package spoken

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a function from reals to reals, named by a word or phrase. A Func
// that can be called with one argument is a function word; one that can be
// called with none is a constant word.
type Func interface {
	// Call evaluates the function. The function arguments are passed in
	// invoc, which has a length for which CanCall returned true. The function
	// must set r to its result and should not use the value of r otherwise.
	// Call may modify the elements of invoc.
	Call(ctx *Context, invoc []*big.Float, r *big.Float) error

	// CanCall returns whether the function can be called with n arguments.
	// Words for functions with CanCall(1) take the term after them as their
	// argument: "square root of nine" is sqrt(9), and "sine two times pi" is
	// sin(2π). Words with only CanCall(0) are constants, and a term after
	// them multiplies.
	CanCall(n int) bool
}

var globalfuncs = map[string]Func{
	"exp":         Monadic(bigfloat.Exp),
	"log":         Monadic(ln),
	"ln":          Monadic(ln),
	"natural log": Monadic(ln),

	"sqrt":        Monadic(sqrt),
	"square root": Monadic(sqrt),
	"cbrt":        Float64Func("cube root", math.Cbrt),
	"cube root":   Float64Func("cube root", math.Cbrt),

	"abs":            Monadic((*big.Float).Abs),
	"absolute value": Monadic((*big.Float).Abs),

	"sin":     Float64Func("sine", math.Sin),
	"sine":    Float64Func("sine", math.Sin),
	"cos":     Float64Func("cosine", math.Cos),
	"cosine":  Float64Func("cosine", math.Cos),
	"tan":     Float64Func("tangent", math.Tan),
	"tangent": Float64Func("tangent", math.Tan),
	"arcsin":  Float64Func("arcsine", math.Asin),
	"arcsine": Float64Func("arcsine", math.Asin),
	"arccos":  Float64Func("arccosine", math.Acos),
	"arctan":  Float64Func("arctangent", math.Atan),

	// constants
	"pi":  Niladic(bigfloat.Pi),
	"pie": Niladic(bigfloat.Pi),
	"π":   Niladic(bigfloat.Pi),
	"tau": Niladic(func(out *big.Float) *big.Float {
		return out.SetMantExp(bigfloat.Pi(out), 1)
	}),
	"e": Niladic(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}),
}

// ln is the natural logarithm, defined for positive arguments.
func ln(out, in *big.Float) *big.Float {
	if in.Sign() <= 0 {
		panic(&DomainError{X: new(big.Float).Copy(in), Func: "log"})
	}
	return bigfloat.Log(out, in)
}

func sqrt(out, in *big.Float) *big.Float {
	if in.Sign() < 0 {
		panic(&DomainError{X: new(big.Float).Copy(in), Func: "square root"})
	}
	return out.Sqrt(in)
}

type monadic struct {
	f func(out, in *big.Float) *big.Float
}

func (m monadic) Call(ctx *Context, invoc []*big.Float, r *big.Float) (err error) {
	in := invoc[0]
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err = p.(error) // panic if not error
		var nan big.ErrNaN
		if errors.As(err, &nan) {
			err = &DomainError{X: new(big.Float).Copy(in)}
			return
		}
		if errors.As(err, new(*DomainError)) {
			return
		}
		panic(p)
	}()
	r.SetPrec(ctx.Prec())
	if v := m.f(r, in); v != nil && v != r {
		r.Set(v)
	}
	return nil
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one variable into a Func. f sets out to its
// result, to the precision of out, or returns a different value holding the
// result, as the bigfloat functions sometimes do. If f is called on an
// argument outside f's domain, it should panic with a *DomainError or an error
// of type big.ErrNaN.
func Monadic(f func(out, in *big.Float) *big.Float) Func {
	return monadic{f}
}

type float64func struct {
	name string
	f    func(float64) float64
}

func (g float64func) Call(ctx *Context, invoc []*big.Float, r *big.Float) error {
	x, _ := invoc[0].Float64()
	y := g.f(x)
	if math.IsNaN(y) {
		return &DomainError{X: new(big.Float).Copy(invoc[0]), Func: g.name}
	}
	r.SetPrec(ctx.Prec()).SetFloat64(y)
	return nil
}

func (g float64func) CanCall(n int) bool {
	return n == 1
}

// Float64Func wraps a float64 function of one variable into a Func. The
// argument is rounded to float64 before the call, so the result has at most
// float64 precision. A NaN result is a DomainError naming the function.
func Float64Func(name string, f func(float64) float64) Func {
	return float64func{name, f}
}

type niladic struct {
	f func(out *big.Float) *big.Float
}

func (n niladic) Call(ctx *Context, invoc []*big.Float, r *big.Float) (err error) {
	r.SetPrec(ctx.Prec())
	if v := n.f(r); v != nil && v != r {
		r.Set(v)
	}
	return nil
}

func (n niladic) CanCall(k int) bool {
	return k == 0
}

// Niladic wraps a function of zero variables, generally a function which
// computes a constant, into a Func. f sets out to its result or returns the
// result, as Monadic. Unlike Monadic, the wrapped function is expected
// never to panic.
func Niladic(f func(out *big.Float) *big.Float) Func {
	return niladic{f}
}
