package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

type CatalogReader interface {
	ReadProducts(context.Context) ([]domain.Product, error)
	ReadCategories(context.Context) ([]domain.Category, error)
}

type CredentialChecker interface {
	CheckCredentials(context.Context, domain.Credentials) (bool, error)
}

type CatalogLoader interface {
	LoadCatalog(context.Context) domain.CatalogResult
}

type CatalogBrowser interface {
	BrowseCatalog(context.Context, domain.CategorySelection) domain.CatalogPage
}

type Authenticator interface {
	Login(context.Context, domain.Credentials) error
}

type OutcomeRecorder interface {
	RecordCatalogLoad(outcome string)
	RecordLogin(outcome string)
}
