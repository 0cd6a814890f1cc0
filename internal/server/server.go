// Package server answers spoken queries over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zephyrtronium/spoken/dates"
	"github.com/zephyrtronium/spoken/internal/cache"
	"github.com/zephyrtronium/spoken/units"
)

const (
	gracefulShutdownTimeout = 15 * time.Second
	// maxQuery is the longest query in bytes the server accepts.
	maxQuery = 4096
)

// Options configure a Server.
type Options struct {
	// Prec is the bits of precision for evaluation.
	Prec uint
	// CacheSize is the number of answers to remember.
	CacheSize int
	// Units is the unit table for conversions. If nil, the built-in table is
	// used.
	Units *units.Table
	// Now is the clock for dates. If nil, time.Now is used.
	Now func() time.Time
	// Logger receives access and error logs. If nil, slog.Default is used.
	Logger *slog.Logger
}

// Server answers queries.
type Server struct {
	prec    uint
	units   *units.Table
	dates   dates.Resolver
	cache   *cache.Cache[any]
	metrics *Metrics
	reg     *prometheus.Registry
	log     *slog.Logger
	engine  *gin.Engine
}

// New creates a server.
func New(opts Options) (*Server, error) {
	c, err := cache.New[any](opts.CacheSize)
	if err != nil {
		return nil, err
	}
	s := &Server{
		prec:  opts.Prec,
		units: opts.Units,
		dates: dates.Resolver{Now: opts.Now},
		cache: c,
		reg:   prometheus.NewRegistry(),
		log:   opts.Logger,
	}
	if s.prec == 0 {
		s.prec = 64
	}
	if s.units == nil {
		s.units = units.Default()
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	s.metrics = NewMetrics(s.reg)
	s.engine = s.routes()
	return s, nil
}

func (s *Server) routes() *gin.Engine {
	engine := gin.New()
	engine.Use(requestID(), accessLog(s.log), gin.Recovery())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ok",
		})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{Registry: s.reg})))

	v1 := engine.Group("/v1")
	v1.GET("/evaluate", s.query("evaluate", true, s.evaluate))
	v1.GET("/number", s.query("number", true, s.number))
	v1.GET("/convert", s.query("convert", true, s.convert))
	// Dates depend on the current time, so they are never cached.
	v1.GET("/date", s.query("date", false, s.date))
	return engine
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine.Handler()
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}
	errc := make(chan error, 1)
	go func() {
		s.log.InfoContext(ctx, "listening", slog.String("addr", addr))
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	s.log.Info("shutting down HTTP server")
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("HTTP server exited")
	return nil
}

// answer produces the response body for a query.
type answer func(q string) (any, error)

// query wraps an answer with validation, caching, and metrics.
func (s *Server) query(endpoint string, cacheable bool, f answer) gin.HandlerFunc {
	prec := strconv.FormatUint(uint64(s.prec), 10)
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			s.metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		}()

		q := c.Query("q")
		switch {
		case strings.TrimSpace(q) == "":
			s.metrics.RequestsTotal.WithLabelValues(endpoint, OutcomeBadRequest).Inc()
			c.JSON(http.StatusBadRequest, errorResponse{Error: "missing query parameter q", Kind: "request"})
			return
		case len(q) > maxQuery:
			s.metrics.RequestsTotal.WithLabelValues(endpoint, OutcomeBadRequest).Inc()
			c.JSON(http.StatusBadRequest, errorResponse{Error: "query too long", Kind: "request"})
			return
		}

		var (
			body any
			hit  bool
			err  error
		)
		if cacheable {
			body, hit, err = s.cache.Do(cache.Key(q, endpoint, prec), func() (any, error) { return f(q) })
		} else {
			body, err = f(q)
		}
		if err != nil {
			status, outcome, r := classify(err)
			s.metrics.RequestsTotal.WithLabelValues(endpoint, outcome).Inc()
			if outcome == OutcomeInternal {
				s.log.ErrorContext(c.Request.Context(), "query failed", slog.String("endpoint", endpoint), slog.Any("err", err))
			}
			c.JSON(status, r)
			return
		}
		if hit {
			s.metrics.CacheHitsTotal.WithLabelValues(endpoint).Inc()
		}
		s.metrics.RequestsTotal.WithLabelValues(endpoint, OutcomeOK).Inc()
		c.JSON(http.StatusOK, body)
	}
}
