package spoken

import (
	"math/big"
	"strconv"
)

// item is a parser-level token: a whole number phrase, a constant, a
// function, or an operator.
type item struct {
	kind itemKind
	// tok is the token that began the item.
	tok Token
	// val is the value of a number phrase.
	val *big.Rat
}

type itemKind int8

const (
	itemNone itemKind = iota
	itemEOF
	itemNum
	itemConst
	itemFunc
	itemOp
)

func (it item) String() string {
	switch it.kind {
	case itemNone:
		return "none"
	case itemEOF:
		return "EOF@" + strconv.Itoa(it.tok.Pos)
	case itemNum:
		return "num:" + ratText(it.val) + "@" + strconv.Itoa(it.tok.Pos)
	default:
		return it.tok.String()
	}
}

// scanner groups tokens into items.
type scanner struct {
	toks []Token
	i    int
	// p is the pushed item, if any.
	p item
	// operand is set when the last item ended a term.
	operand bool
}

// push pushes an item back to the scanner. At most one item may be pushed.
func (s *scanner) push(it item) {
	if s.p.kind != itemNone {
		panic("spoken: push with item already pushed")
	}
	s.p = it
}

// must returns the pushed item and panics if there is none.
func (s *scanner) must() item {
	if s.p.kind == itemNone {
		panic("spoken: must with no pushed item")
	}
	it := s.p
	s.p = item{}
	return it
}

// next scans the next item. Conjunctions that no number phrase absorbed are
// dropped, except that one joining two terms is an error. Articles and points
// that begin no number are dropped as well.
func (s *scanner) next() (item, error) {
	if s.p.kind != itemNone {
		return s.must(), nil
	}
	for s.i < len(s.toks) {
		tok := s.toks[s.i]
		var it item
		switch tok.Kind {
		case TokenOperator:
			it = item{kind: itemOp, tok: tok}
			s.i++
		case TokenFunction:
			it = item{kind: itemFunc, tok: tok}
			s.i++
		case TokenConstant:
			it = item{kind: itemConst, tok: tok}
			s.i++
		case TokenConjunction:
			s.i++
			if s.operand && s.i < len(s.toks) && s.startsTerm(s.i) {
				return item{}, &MalformedExpressionError{Col: tok.Pos, Word: tok.Text, Reason: "no operator between terms"}
			}
			continue
		default:
			r, n, err := scanNumeral(s.toks[s.i:])
			if err != nil {
				return item{}, err
			}
			if n == 0 {
				s.i++
				continue
			}
			it = item{kind: itemNum, tok: tok, val: r}
			s.i += n
		}
		s.operand = it.kind == itemNum || it.kind == itemConst
		return it, nil
	}
	s.operand = false
	pos := 1
	if len(s.toks) > 0 {
		pos = s.toks[len(s.toks)-1].Pos + 1
	}
	return item{kind: itemEOF, tok: Token{Pos: pos}}, nil
}

// startsTerm reports whether the token at i can begin a term.
func (s *scanner) startsTerm(i int) bool {
	switch s.toks[i].Kind {
	case TokenFunction, TokenConstant:
		return true
	case TokenDigits, TokenWord, TokenFraction, TokenArticle, TokenPoint:
		_, n, err := scanNumeral(s.toks[i:])
		return n > 0 || err != nil
	default:
		return false
	}
}
