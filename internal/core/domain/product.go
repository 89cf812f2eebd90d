package domain

type (
	Product struct {
		ID       int
		Title    string
		Price    float64
		Images   []string
		Category Category
	}

	Category struct {
		ID   int
		Name string
	}
)

// Catalog is what a single page render owns: the fetched products and
// categories.
type Catalog struct {
	Products   []Product
	Categories []Category
}

// CatalogResult is the outcome of loading a catalog.
//
// On failure Err holds the cause and Catalog is empty, so the result can be
// rendered either way.
type CatalogResult struct {
	Catalog Catalog
	Err     error
}

func CatalogLoaded(c Catalog) CatalogResult {
	return CatalogResult{Catalog: c}
}

func CatalogFallback(err error) CatalogResult {
	return CatalogResult{
		Catalog: Catalog{Products: []Product{}, Categories: []Category{}},
		Err:     err,
	}
}

func (r CatalogResult) Failed() bool {
	return r.Err != nil
}

// FirstImage returns the first image URL or an empty string.
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// CatalogPage is the data behind one render of the catalog view.
type CatalogPage struct {
	Products   []Product
	Categories []Category
	Selected   CategorySelection
	Fallback   bool
}
