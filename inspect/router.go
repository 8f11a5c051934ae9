// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package inspect

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/jongio/parseurl/logutil"
	"github.com/jongio/parseurl/parseurl"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Report is the response body for every inspected request.
type Report struct {
	URL         *parseurl.URL `json:"url"`
	OriginalURL *parseurl.URL `json:"originalUrl"`
	RequestID   string        `json:"requestId,omitempty"`
}

type apiError struct {
	Error string `json:"error"`
}

// NewRouter builds the inspect handler. Every path not claimed by /health or
// /metrics answers with a Report of its own URL.
func NewRouter(cfg Config) http.Handler {
	log := logutil.NewLogger("inspect")
	parser := parseurl.New(parseurl.Options{
		Base:    cfg.PlaceholderBase,
		Metrics: cfg.Metrics,
		Logger:  log.WithOperation("parse"),
	})

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(logRequests(log))
	router.Use(middleware.Heartbeat("/health"))
	if cfg.RateLimit > 0 {
		router.Use(limit(rate.Limit(cfg.RateLimit), cfg.Burst))
	}
	router.Use(parseurl.Middleware)

	if cfg.Metrics {
		router.Handle("/metrics", promhttp.Handler())
	}

	report := reportHandler(parser)
	if cfg.Prefix != "" {
		stripped := http.StripPrefix(cfg.Prefix, report)
		router.Handle(cfg.Prefix, stripped)
		router.Handle(cfg.Prefix+"/*", stripped)
	}
	router.Handle("/*", report)

	return router
}

func reportHandler(parser *parseurl.Parser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, Report{
			URL:         parser.ParseHTTP(r),
			OriginalURL: parser.OriginalHTTP(r),
			RequestID:   middleware.GetReqID(r.Context()),
		})
	})
}

func limit(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(limit, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, apiError{Error: "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func logRequests(log *logutil.ComponentLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info("request",
					"method", r.Method,
					"uri", r.RequestURI,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
					"requestId", middleware.GetReqID(r.Context()),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
