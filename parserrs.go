package spoken

import (
	"math/big"
	"strconv"
)

// TokenizeError is an error indicating input that contains no words at all
// or cannot be normalized. It implements InputError.
type TokenizeError struct {
	// Text is the input.
	Text string
}

func (err *TokenizeError) Error() string {
	return errpos(1, "no words in "+strconv.Quote(err.Text))
}

func (err *TokenizeError) Pos() int {
	return 1
}

// UnknownWordError is an error indicating a word next to a number or operator
// that is nearly, but not quite, a known word. It implements InputError.
type UnknownWordError struct {
	// Col is the position of the word.
	Col int
	// Word is the unknown word.
	Word string
	// Suggestion is the known word it resembles.
	Suggestion string
}

func (err *UnknownWordError) Error() string {
	return errpos(err.Col, "unknown word "+strconv.Quote(err.Word)+" (did you mean "+strconv.Quote(err.Suggestion)+"?)")
}

func (err *UnknownWordError) Pos() int {
	return err.Col
}

// NumberParseError is an error indicating a number phrase that does not
// describe a number, like "thousand" with no quantity or "point" with no
// digits. It implements InputError.
type NumberParseError struct {
	// Col is the position of the word that broke the phrase.
	Col int
	// Word is that word. It may be empty.
	Word string
	// Reason describes the problem.
	Reason string
}

func (err *NumberParseError) Error() string {
	return errpos(err.Col, "bad number: "+err.Reason)
}

func (err *NumberParseError) Pos() int {
	return err.Col
}

// MalformedExpressionError is an error indicating a sentence whose numbers
// and operators do not form an expression. It implements InputError.
type MalformedExpressionError struct {
	// Col is the position of the word where the problem was found.
	Col int
	// Word is that word. It is empty at the end of the sentence.
	Word string
	// Reason describes the problem.
	Reason string
}

func (err *MalformedExpressionError) Error() string {
	if err.Word == "" {
		return errpos(err.Col, err.Reason)
	}
	return errpos(err.Col, err.Reason+" at "+strconv.Quote(err.Word))
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating division or remainder by zero
// during evaluation. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// DomainError is an error returned when a function or operator is applied to
// an argument outside its domain.
type DomainError struct {
	// X is the out-of-domain argument. It is nil when no single argument is at
	// fault, e.g. for infinity minus infinity.
	X *big.Float
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	if err.X == nil {
		if err.Func == "" {
			return "undefined result"
		}
		return "undefined result of " + err.Func
	}
	r := err.X.Text('g', 10) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based index of the word that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenizeError)(nil)
	_ InputError = (*UnknownWordError)(nil)
	_ InputError = (*NumberParseError)(nil)
	_ InputError = (*MalformedExpressionError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
