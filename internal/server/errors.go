package server

import (
	"errors"
	"net/http"

	"github.com/zephyrtronium/spoken"
	"github.com/zephyrtronium/spoken/dates"
	"github.com/zephyrtronium/spoken/units"
)

// errorResponse is the body of a failed query.
type errorResponse struct {
	Error string `json:"error"`
	// Kind names the kind of error, e.g. "division_by_zero".
	Kind string `json:"kind"`
	// Pos is the 1-based word position of the problem, when known.
	Pos int `json:"pos,omitempty"`
}

// classify describes an error from answering a query along with the status
// and metrics outcome it gets.
func classify(err error) (int, string, errorResponse) {
	r := errorResponse{Error: err.Error(), Kind: kind(err)}
	if r.Kind == "internal" {
		return http.StatusInternalServerError, OutcomeInternal, r
	}
	var ie spoken.InputError
	if errors.As(err, &ie) {
		r.Pos = ie.Pos()
	}
	return http.StatusUnprocessableEntity, OutcomeInvalid, r
}

func kind(err error) string {
	switch {
	case errors.As(err, new(*spoken.TokenizeError)):
		return "tokenize"
	case errors.As(err, new(*spoken.UnknownWordError)):
		return "unknown_word"
	case errors.As(err, new(*spoken.NumberParseError)):
		return "number_parse"
	case errors.As(err, new(*spoken.MalformedExpressionError)):
		return "malformed_expression"
	case errors.As(err, new(*spoken.DivisionByZeroError)):
		return "division_by_zero"
	case errors.As(err, new(*spoken.DomainError)):
		return "domain"
	case errors.As(err, new(*units.UnknownUnitError)):
		return "unknown_unit"
	case errors.As(err, new(*units.DimensionError)):
		return "dimension"
	case errors.Is(err, units.ErrNoConversion):
		return "no_conversion"
	case errors.As(err, new(*dates.NoDateError)):
		return "no_date"
	default:
		return "internal"
	}
}
