package server

import (
	"math"
	"time"

	"github.com/zephyrtronium/spoken"
)

// EvaluateResponse is the answer to GET /v1/evaluate.
type EvaluateResponse struct {
	// Result is the value, or null if it is too large for a float64.
	Result *float64 `json:"result"`
	// Text is the value at full precision.
	Text string `json:"text"`
	// Expr shows how the query was understood.
	Expr string `json:"expr"`
}

// NumberResponse is the answer to GET /v1/number.
type NumberResponse struct {
	// Result is the value, or null if it is too large for a float64.
	Result *float64 `json:"result"`
	// Exact is the value as an integer or fraction.
	Exact string `json:"exact"`
}

// ConvertResponse is the answer to GET /v1/convert.
type ConvertResponse struct {
	Quantity  string `json:"quantity"`
	From      string `json:"from"`
	To        string `json:"to"`
	Dimension string `json:"dimension"`
	// Result is the amount in the To unit, or null if it is too large for a
	// float64.
	Result *float64 `json:"result"`
	Text   string   `json:"text"`
}

// DateResponse is the answer to GET /v1/date.
type DateResponse struct {
	// Result is the time in RFC 3339 format.
	Result  string `json:"result"`
	Weekday string `json:"weekday"`
}

func (s *Server) evaluate(q string) (any, error) {
	e, err := spoken.Parse(q)
	if err != nil {
		return nil, err
	}
	ctx := spoken.NewContext(spoken.Prec(s.prec))
	r := e.Eval(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, _ := r.Float64()
	return EvaluateResponse{Result: finite(f), Text: r.Text('g', -1), Expr: e.String()}, nil
}

func (s *Server) number(q string) (any, error) {
	r, err := spoken.InterpretRat(q)
	if err != nil {
		return nil, err
	}
	f, _ := r.Float64()
	return NumberResponse{Result: finite(f), Exact: r.RatString()}, nil
}

func (s *Server) convert(q string) (any, error) {
	c, err := s.units.Convert(q)
	if err != nil {
		return nil, err
	}
	return ConvertResponse{
		Quantity:  c.Quantity.RatString(),
		From:      c.From.Name,
		To:        c.To.Name,
		Dimension: c.From.Dimension,
		Result:    finite(c.Value),
		Text:      c.String(),
	}, nil
}

func (s *Server) date(q string) (any, error) {
	t, err := s.dates.Resolve(q)
	if err != nil {
		return nil, err
	}
	return DateResponse{Result: t.Format(time.RFC3339), Weekday: t.Weekday().String()}, nil
}

// finite returns a pointer to f, or nil if JSON cannot represent it.
func finite(f float64) *float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}
