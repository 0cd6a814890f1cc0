package spoken

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/bigfloat"
)

func TestGlobalFuncsCallable(t *testing.T) {
	for name, fn := range globalfuncs {
		if fn == nil {
			t.Errorf("%q is nil", name)
			continue
		}
		if fn.CanCall(0) == fn.CanCall(1) {
			t.Errorf("%q should be exactly one of a constant or a function", name)
		}
	}
}

func TestMonadicRecovers(t *testing.T) {
	ctx := NewContext()
	nan := Monadic(func(out, in *big.Float) *big.Float {
		panic(big.ErrNaN{})
	})
	r := new(big.Float)
	err := nan.Call(ctx, []*big.Float{big.NewFloat(-1)}, r)
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("%#v is not *DomainError", err)
	}
	if de.X == nil || de.X.Cmp(big.NewFloat(-1)) != 0 {
		t.Errorf("wrong argument: %v", de.X)
	}
	err = Monadic(ln).Call(ctx, []*big.Float{big.NewFloat(0)}, r)
	if !errors.As(err, &de) || de.Func != "log" {
		t.Errorf("log 0 gave %#v", err)
	}
}

func TestMonadicReturnedResult(t *testing.T) {
	ctx := NewContext()
	one := Monadic(func(out, in *big.Float) *big.Float {
		return big.NewFloat(1)
	})
	r := new(big.Float)
	if err := one.Call(ctx, []*big.Float{big.NewFloat(5)}, r); err != nil {
		t.Fatal(err)
	}
	if r.Cmp(big.NewFloat(1)) != 0 {
		t.Errorf("want 1, got %v", r)
	}
	two := Niladic(func(out *big.Float) *big.Float {
		return big.NewFloat(2)
	})
	if err := two.Call(ctx, nil, r); err != nil {
		t.Fatal(err)
	}
	if r.Cmp(big.NewFloat(2)) != 0 {
		t.Errorf("want 2, got %v", r)
	}
	if err := Monadic(bigfloat.Exp).Call(ctx, []*big.Float{new(big.Float)}, r); err != nil {
		t.Fatal(err)
	}
	if r.Cmp(big.NewFloat(1)) != 0 {
		t.Errorf("exp 0: want 1, got %v", r)
	}
}

func TestMonadicRepanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	bad := Monadic(func(out, in *big.Float) *big.Float {
		panic(errors.New("not a domain error"))
	})
	bad.Call(NewContext(), []*big.Float{new(big.Float)}, new(big.Float))
}

func TestFloat64Func(t *testing.T) {
	ctx := NewContext()
	f := Float64Func("arcsine", math.Asin)
	r := new(big.Float)
	if err := f.Call(ctx, []*big.Float{big.NewFloat(1)}, r); err != nil {
		t.Fatal(err)
	}
	if x, _ := r.Float64(); x != math.Pi/2 {
		t.Errorf("arcsine 1: want %g, got %g", math.Pi/2, x)
	}
	if r.Prec() != ctx.Prec() {
		t.Errorf("wrong precision: want %d, got %d", ctx.Prec(), r.Prec())
	}
	err := f.Call(ctx, []*big.Float{big.NewFloat(2)}, r)
	var de *DomainError
	if !errors.As(err, &de) || de.Func != "arcsine" {
		t.Errorf("arcsine 2 gave %#v", err)
	}
}

func TestConstants(t *testing.T) {
	cases := map[string]float64{
		"pi":  math.Pi,
		"pie": math.Pi,
		"π":   math.Pi,
		"tau": 2 * math.Pi,
		"e":   math.E,
	}
	ctx := NewContext(Prec(53))
	for name, want := range cases {
		r := new(big.Float)
		if err := globalfuncs[name].Call(ctx, nil, r); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if got, _ := r.Float64(); math.Abs(got-want) > 1e-15*want {
			t.Errorf("%s: want %v, got %v", name, want, got)
		}
	}
}

func TestDisableDefaultFuncs(t *testing.T) {
	p := newparsectx([]ParseOption{DisableDefaultFuncs()})
	for name, fn := range p.funcs {
		if fn != nil {
			t.Errorf("%q still enabled", name)
		}
	}
	p = newparsectx([]ParseOption{ParseFunc("double", Monadic(func(out, in *big.Float) *big.Float { return out.Add(in, in) }))})
	if p.funcs["double"] == nil || p.funcs["sqrt"] == nil {
		t.Error("ParseFunc should add to the defaults")
	}
	if globalfuncs["double"] != nil {
		t.Error("ParseFunc modified the defaults")
	}
}
