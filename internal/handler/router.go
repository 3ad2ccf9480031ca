package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/genpass/genpass-go/internal/middleware"
	"github.com/genpass/genpass-go/internal/service"
)

// RouterConfig carries the knobs of the HTTP surface.
type RouterConfig struct {
	JWTSecret string
	RateRPS   float64
	RateBurst int
}

// NewRouter wires the generate API. Background work started by the router
// stops when ctx ends.
func NewRouter(ctx context.Context, svc *service.GeneratorService, cfg RouterConfig) http.Handler {
	genHandler := NewGeneratorHandler(svc)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateRPS, cfg.RateBurst))
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	return r
}
