package spoken

import (
	"errors"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently.
type Context struct {
	stack []*big.Float
	prec  uint
	err   error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: 64}
	return ctx.Clone(opts...)
}

// Eval evaluates an expression and returns the result. If an error occurs,
// e.g. a division by zero or an argument to a function is outside the
// function's domain, then the result is nil and ctx.Err returns the error.
func (ctx *Context) Eval(e *Expr) (r *big.Float) {
	switch len(ctx.stack) {
	case 0: // do nothing
	case 1:
		ctx.stack[0] = new(big.Float).SetPrec(ctx.prec)
		ctx.stack = ctx.stack[:0]
	default:
		panic("spoken: Eval during Eval")
	}
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		// Arithmetic on infinities can produce NaN, which big.Float reports
		// by panicking.
		if _, ok := p.(big.ErrNaN); !ok {
			panic(p)
		}
		ctx.stack = ctx.stack[:0]
		ctx.err = &DomainError{Func: "arithmetic"}
		r = nil
	}()
	err := e.n.eval(ctx)
	ctx.err = err
	if err != nil {
		ctx.stack = ctx.stack[:0]
		return nil
	}
	return ctx.Result()
}

// Eval is a shortcut for ctx.Eval(e).
func (e *Expr) Eval(ctx *Context) *big.Float {
	return ctx.Eval(e)
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns nil if an error
// occurred during evaluation.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("spoken: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("spoken: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
}

// Err returns the error that occurred while evaluating the last expression
// with ctx, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Clone creates a copy of a context and applies options to it. The returned
// context has no Result and is safe to use to evaluate an expression.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack: make([]*big.Float, 0, cap(ctx.stack)),
		prec:  ctx.prec,
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			continue
		case precopt:
			n.prec = uint(opt)
		default:
			panic("spoken: unknown option type")
		}
	}
	return &n
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future node evaluations.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// eval pushes the node's value to the context's stack.
func (n *node) eval(ctx *Context) error {
	switch n.kind {
	case nodeNum:
		ctx.push().SetRat(n.num)
	case nodeConst:
		r := ctx.push()
		if err := n.fn.Call(ctx, nil, r); err != nil {
			return err
		}
	case nodeCall:
		r := ctx.push()
		k := len(ctx.stack)
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		invoc := ctx.stack[k:len(ctx.stack):len(ctx.stack)]
		if err := n.fn.Call(ctx, invoc, r); err != nil {
			var de *DomainError
			if errors.As(err, &de) && de.Func == "" {
				de.Func = n.name
			}
			return err
		}
		ctx.stack = ctx.stack[:k]
	case nodeNeg:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		v := ctx.top()
		v.Neg(v)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		if err := n.right.eval(ctx); err != nil {
			return err
		}
		r := ctx.pop()
		l := ctx.top()
		return n.binary(ctx, l, r)
	default:
		panic("spoken: invalid AST node " + n.kind.String())
	}
	return nil
}

// binary sets l to l op r.
func (n *node) binary(ctx *Context, l, r *big.Float) error {
	switch n.kind {
	case nodeAdd:
		l.Add(l, r)
	case nodeSub:
		l.Sub(l, r)
	case nodeMul:
		l.Mul(l, r)
	case nodeDiv:
		if r.Sign() == 0 {
			return &DivisionByZeroError{Col: n.pos}
		}
		if l.IsInf() && r.IsInf() {
			return &DomainError{Func: "division"}
		}
		l.Quo(l, r)
	case nodeMod:
		if r.Sign() == 0 {
			return &DivisionByZeroError{Col: n.pos}
		}
		if l.IsInf() {
			return &DomainError{X: new(big.Float).Copy(l), Func: "mod"}
		}
		if r.IsInf() {
			// x mod ±inf = x
			return nil
		}
		// Truncated remainder, so the result has the sign of l.
		var q big.Float
		q.SetPrec(max(ctx.prec, l.MinPrec())).Quo(l, r)
		var t big.Int
		q.Int(&t)
		q.SetInt(&t)
		q.Mul(&q, r)
		l.Sub(l, &q)
	case nodePow:
		return pow(l, r, n.pos)
	default:
		panic("spoken: invalid binary node " + n.kind.String())
	}
	return nil
}

// pow sets l to l^r. A negative base requires an integer exponent.
func pow(l, r *big.Float, pos int) error {
	switch {
	case l.Sign() == 0:
		switch r.Sign() {
		case 0:
			l.SetInt64(1)
		case -1:
			return &DivisionByZeroError{Col: pos}
		}
		return nil
	case l.Sign() < 0:
		if !r.IsInt() {
			return &DomainError{X: new(big.Float).Copy(l), Func: "power"}
		}
		var t big.Int
		r.Int(&t)
		odd := t.Bit(0) == 1
		l.Neg(l)
		raise(l, r)
		if odd {
			l.Neg(l)
		}
		return nil
	}
	raise(l, r)
	return nil
}

// raise sets l to l^r for l > 0. bigfloat.Pow does not always write into its
// first argument, so the result is copied back.
func raise(l, r *big.Float) {
	l.Set(bigfloat.Pow(new(big.Float).SetPrec(l.Prec()), l, r))
}

// EvalString is a shortcut to parse and evaluate a sentence using the
// default functions.
func EvalString(text string, opts ...ContextOption) (*big.Float, error) {
	a, err := Parse(text)
	if err != nil {
		return nil, err
	}
	ctx := NewContext(opts...)
	ctx.Eval(a)
	return ctx.Result(), ctx.Err()
}

// Evaluate parses and evaluates a sentence and returns the nearest float64 to
// its value.
func Evaluate(text string, opts ...ContextOption) (float64, error) {
	r, err := EvalString(text, opts...)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()
	return f, nil
}
