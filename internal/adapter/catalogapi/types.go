package catalogapi

import "github.com/niksmo/storefront/internal/core/domain"

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
)

func (p Product) toDomain() domain.Product {
	images := make([]string, len(p.Images))
	copy(images, p.Images)
	return domain.Product{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		Images:   images,
		Category: p.Category.toDomain(),
	}
}

func (c Category) toDomain() domain.Category {
	return domain.Category{ID: c.ID, Name: c.Name}
}
