package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET / HTML catalog view, ?category=<id> narrows the grid (200 OK)
// GET /v1/catalog same data as JSON (200 OK)

type CatalogHandler struct {
	browser   port.CatalogBrowser
	templates Templates
}

func RegisterCatalog(r chi.Router, browser port.CatalogBrowser, t Templates) {
	h := CatalogHandler{browser, t}
	r.Get("/", h.GetCatalogPage)
	r.Get("/v1/catalog", h.GetCatalog)
}

func (h CatalogHandler) GetCatalogPage(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCatalogPage"
	log := slog.With("op", op)

	page := h.browser.BrowseCatalog(r.Context(), selection(r, log))
	h.templates.render(w, http.StatusOK, "catalog", newCatalogView(page))

	log.Debug("rendered",
		"nProducts", len(page.Products), "fallback", page.Fallback,
	)
}

func (h CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCatalog"
	log := slog.With("op", op)

	page := h.browser.BrowseCatalog(r.Context(), selection(r, log))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(newCatalogResponse(page)); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

// selection reads ?category. A bad value is logged and ignored.
func selection(r *http.Request, log *slog.Logger) domain.CategorySelection {
	sel, err := domain.ParseCategorySelection(r.URL.Query().Get("category"))
	if err != nil {
		log.Warn("ignoring category selection", "err", err)
	}
	return sel
}
