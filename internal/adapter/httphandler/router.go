package httphandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/niksmo/storefront/internal/core/port"
)

type Deps struct {
	Catalog   port.CatalogBrowser
	Auth      port.Authenticator
	Templates Templates
	Recorder  RequestRecorder
	Metrics   http.Handler
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(Observe(d.Recorder))
	r.Use(middleware.Recoverer)

	RegisterCatalog(r, d.Catalog, d.Templates)
	RegisterLogin(r, d.Auth, d.Templates)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}
	return r
}
