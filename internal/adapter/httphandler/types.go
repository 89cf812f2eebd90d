package httphandler

import (
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
)

// JSON payloads of GET /v1/catalog. Field names follow the upstream
// catalog service.
type (
	Product struct {
		ID       int      `json:"id"`
		Title    string   `json:"title"`
		Price    float64  `json:"price"`
		Images   []string `json:"images"`
		Category Category `json:"category"`
	}

	Category struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	CatalogResponse struct {
		Products   []Product  `json:"products"`
		Categories []Category `json:"categories"`
	}
)

// View models of the HTML pages.
type (
	catalogView struct {
		Title        string
		HasSelection bool
		Categories   []categoryOption
		Products     []productCard
	}

	categoryOption struct {
		ID       int
		Name     string
		Selected bool
	}

	productCard struct {
		ID         int
		CategoryID int
		Title      string
		Price      string
		Image      string
	}

	loginView struct {
		Title       string
		Email       string
		Error       string
		FieldErrors map[string]string
	}
)

func newCatalogView(page domain.CatalogPage) catalogView {
	_, hasSelection := page.Selected.ID()
	v := catalogView{
		Title:        "My Store",
		HasSelection: hasSelection,
		Categories:   make([]categoryOption, len(page.Categories)),
		Products:     make([]productCard, len(page.Products)),
	}
	for i, c := range page.Categories {
		v.Categories[i] = categoryOption{
			ID:       c.ID,
			Name:     c.Name,
			Selected: page.Selected.Matches(c.ID),
		}
	}
	for i, p := range page.Products {
		v.Products[i] = productCard{
			ID:         p.ID,
			CategoryID: p.Category.ID,
			Title:      p.Title,
			Price:      formatPrice(p.Price),
			Image:      p.FirstImage(),
		}
	}
	return v
}

func newLoginView(email string) loginView {
	return loginView{
		Title:       "Login",
		Email:       email,
		FieldErrors: map[string]string{},
	}
}

// formatPrice prints the shortest representation, so 687 is "687" and
// 19.9 is "19.9".
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newCatalogResponse(page domain.CatalogPage) CatalogResponse {
	resp := CatalogResponse{
		Products:   make([]Product, len(page.Products)),
		Categories: make([]Category, len(page.Categories)),
	}
	for i, c := range page.Categories {
		resp.Categories[i] = Category{ID: c.ID, Name: c.Name}
	}
	for i, p := range page.Products {
		images := p.Images
		if images == nil {
			images = []string{}
		}
		resp.Products[i] = Product{
			ID:     p.ID,
			Title:  p.Title,
			Price:  p.Price,
			Images: images,
			Category: Category{
				ID:   p.Category.ID,
				Name: p.Category.Name,
			},
		}
	}
	return resp
}
