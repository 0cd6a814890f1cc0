package spoken

import (
	"strings"
)

// Expr = Num | Const | Call | Neg | Add | Sub | Mul | Div | Mod | Pow
// Num = number phrase
// Const = constant word
// Call = function word Expr
// Neg = ('negative' | 'minus') Expr
// Add = Expr 'plus' Expr
// Sub = Expr 'minus' Expr
// Mul = Expr ('times' | 'multiplied by') Expr | Expr Expr
// Div = Expr ('divided by' | 'over') Expr
// Mod = Expr ('mod' | 'modulo') Expr
// Pow = Expr ('to the' | 'to the power of' | 'raised to') Expr ['power'] | Expr ('squared' | 'cubed')

// Expr is a parsed sentence that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses a sentence so it can be evaluated with a context. The given
// options are applied in order.
func Parse(text string, opts ...ParseOption) (*Expr, error) {
	p := newparsectx(opts)
	toks, err := tokenize(text, &p)
	if err != nil {
		return nil, err
	}
	return parseTokens(toks, &p)
}

func parseTokens(toks []Token, p *parsectx) (*Expr, error) {
	scan := &scanner{toks: toks}
	n, err := parseterm(scan, p, exprprec)
	if err != nil {
		return nil, err
	}
	if tok := scan.must(); tok.kind != itemEOF {
		panic("spoken: parse ended on " + tok.String())
	}
	return &Expr{n: n}, nil
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last item it scans, including EOF.
func parseterm(scan *scanner, p *parsectx, until operator) (*node, error) {
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case itemNum, itemConst, itemFunc:
			// (parsed) x -> (parsed) * (x)
			// a^(parsed) x -> (a^(parsed)) * (x)
			scan.push(tok)
			if !termprec.moreBinding(until) {
				return n, nil
			}
			rhs, err := parseterm(scan, p, termprec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeMul, pos: tok.tok.Pos, left: n, right: rhs}
		case itemOp:
			if tok.tok.Op == OpNeg {
				// "two negative three" multiplies like two adjacent terms.
				scan.push(tok)
				if !termprec.moreBinding(until) {
					return n, nil
				}
				rhs, err := parseterm(scan, p, termprec)
				if err != nil {
					return nil, err
				}
				n = &node{kind: nodeMul, pos: tok.tok.Pos, left: n, right: rhs}
				continue
			}
			prec := binop(tok.tok.Op)
			if prec.op == nodeNone {
				panic("spoken: no binary operator for " + tok.String())
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, pos: tok.tok.Pos, left: n, right: rhs}
		case itemEOF:
			scan.push(tok)
			return n, nil
		default:
			panic("spoken: unknown item: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. Operators other than
// negation are not allowed here.
func parselhs(scan *scanner, p *parsectx, until operator) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case itemNum:
		return &node{kind: nodeNum, pos: tok.tok.Pos, num: tok.val}, nil
	case itemConst:
		return &node{kind: nodeConst, pos: tok.tok.Pos, name: tok.tok.Text, fn: tok.tok.fn}, nil
	case itemFunc:
		return parsecall(scan, p, until, tok.tok)
	case itemOp:
		if tok.tok.Op != OpNeg && tok.tok.Op != OpSub {
			return nil, &MalformedExpressionError{Col: tok.tok.Pos, Word: tok.tok.Text, Reason: "operator where a term is expected"}
		}
		prec := negprec
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, pos: tok.tok.Pos, left: rhs}, nil
	case itemEOF:
		if tok.tok.Pos <= 1 || len(scan.toks) == 0 {
			return nil, &MalformedExpressionError{Col: tok.tok.Pos, Reason: "no expression"}
		}
		return nil, &MalformedExpressionError{Col: tok.tok.Pos, Reason: "sentence ends where a term is expected"}
	default:
		panic("spoken: unknown item: " + tok.String())
	}
}

// parsecall parses the argument to a function word. The argument extends
// through multiplications and divisions but not through additions, so "sine
// two times pi plus one" is sin(2π)+1.
func parsecall(scan *scanner, p *parsectx, until operator, fn Token) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case itemNum, itemConst, itemFunc:
	case itemOp:
		if tok.tok.Op != OpNeg && tok.tok.Op != OpSub {
			return nil, &MalformedExpressionError{Col: tok.tok.Pos, Word: fn.Text, Reason: "function with no argument"}
		}
	case itemEOF:
		return nil, &MalformedExpressionError{Col: fn.Pos, Word: fn.Text, Reason: "function with no argument"}
	default:
		panic("spoken: unknown item: " + tok.String())
	}
	scan.push(tok)
	if argprec.moreBinding(until) {
		until = argprec
	}
	arg, err := parseterm(scan, p, until)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeCall, pos: fn.Pos, name: fn.Text, fn: fn.fn, left: arg}, nil
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the binary operator for an operator word. If there is no such
// binary operator, then the result has an op of nodeNone.
func binop(op Op) operator {
	switch op {
	case OpAdd:
		return operator{1, false, nodeAdd}
	case OpSub:
		return operator{1, false, nodeSub}
	case OpMul:
		return operator{5, false, nodeMul}
	case OpDiv:
		return operator{5, false, nodeDiv}
	case OpMod:
		return operator{5, false, nodeMod}
	case OpPow:
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

var (
	// termprec is the precedence of implicit multiplication. Its prec
	// should match that of multiplication.
	termprec = operator{5, true, nodeMul}
	// argprec is the precedence at which a function argument ends. It is
	// between addition and multiplication.
	argprec = operator{3, true, nodeNone}
	// negprec is the precedence of negation.
	negprec = operator{10, true, nodeNeg}
	// exprprec is the precedence required to parse an entire sentence.
	exprprec = operator{-128, true, nodeNone}
)
