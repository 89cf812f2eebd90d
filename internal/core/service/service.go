package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"golang.org/x/sync/errgroup"
)

var _ port.CatalogLoader = (*Service)(nil)
var _ port.CatalogBrowser = (*Service)(nil)
var _ port.Authenticator = (*Service)(nil)

const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeInvalid  = "invalid"
	OutcomeMismatch = "mismatch"
	OutcomeError    = "error"
)

// DefaultCatalogTimeout bounds one catalog load. It stays below the HTTP
// handler timeout so the fallback page is written before the server gives
// up on the request.
const DefaultCatalogTimeout = 4 * time.Second

type Service struct {
	catalogReader  port.CatalogReader
	credentials    port.CredentialChecker
	outcomes       port.OutcomeRecorder
	catalogTimeout time.Duration
}

// New returns the core service. A nil outcomes recorder disables
// outcome recording.
func New(
	catalogReader port.CatalogReader,
	credentials port.CredentialChecker,
	outcomes port.OutcomeRecorder,
) Service {
	if outcomes == nil {
		outcomes = discardOutcomes{}
	}
	return Service{
		catalogReader:  catalogReader,
		credentials:    credentials,
		outcomes:       outcomes,
		catalogTimeout: DefaultCatalogTimeout,
	}
}

// WithCatalogTimeout returns a copy of s whose catalog loads give up after
// d. A non-positive d leaves only the caller's context in charge.
func (s Service) WithCatalogTimeout(d time.Duration) Service {
	s.catalogTimeout = d
	return s
}

// LoadCatalog reads products and categories concurrently and waits for
// both. If either read fails the whole catalog falls back to empty lists.
func (s Service) LoadCatalog(ctx context.Context) domain.CatalogResult {
	const op = "Service.LoadCatalog"
	log := slog.With("op", op)

	var (
		products   []domain.Product
		categories []domain.Category
	)

	if s.catalogTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.catalogTimeout)
		defer cancel()
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ps, err := s.catalogReader.ReadProducts(gCtx)
		if err != nil {
			return fmt.Errorf("read products: %w", err)
		}
		products = ps
		return nil
	})
	g.Go(func() error {
		cs, err := s.catalogReader.ReadCategories(gCtx)
		if err != nil {
			return fmt.Errorf("read categories: %w", err)
		}
		categories = cs
		return nil
	})

	if err := g.Wait(); err != nil {
		err = fmt.Errorf("%s: %w", op, err)
		log.Error("failed to fetch products or categories", "err", err)
		s.outcomes.RecordCatalogLoad(OutcomeFailure)
		return domain.CatalogFallback(err)
	}

	if products == nil {
		products = []domain.Product{}
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	s.outcomes.RecordCatalogLoad(OutcomeSuccess)
	log.Debug("catalog loaded",
		"nProducts", len(products), "nCategories", len(categories),
	)
	return domain.CatalogLoaded(domain.Catalog{
		Products:   products,
		Categories: categories,
	})
}

// BrowseCatalog loads the catalog and narrows its products to sel.
func (s Service) BrowseCatalog(
	ctx context.Context, sel domain.CategorySelection,
) domain.CatalogPage {
	res := s.LoadCatalog(ctx)
	return domain.CatalogPage{
		Products:   domain.FilterProducts(res.Catalog.Products, sel),
		Categories: res.Catalog.Categories,
		Selected:   sel,
		Fallback:   res.Failed(),
	}
}

// Login validates the form and compares it with the configured credential
// pair.
//
// The returned error is a [domain.ValidationErrors] when a field is
// rejected, wraps [domain.ErrInvalidCredentials] on a mismatch, and wraps
// the checker's error otherwise.
func (s Service) Login(ctx context.Context, c domain.Credentials) error {
	const op = "Service.Login"
	log := slog.With("op", op)

	if err := c.Validate(); err != nil {
		s.outcomes.RecordLogin(OutcomeInvalid)
		log.Debug("form rejected", "err", err)
		return err
	}

	if err := ctx.Err(); err != nil {
		s.outcomes.RecordLogin(OutcomeError)
		return fmt.Errorf("%s: %w", op, err)
	}

	ok, err := s.credentials.CheckCredentials(ctx, c)
	if err != nil {
		s.outcomes.RecordLogin(OutcomeError)
		log.Error("failed to check credentials", "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		s.outcomes.RecordLogin(OutcomeMismatch)
		log.Info("login rejected")
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
	}

	s.outcomes.RecordLogin(OutcomeSuccess)
	log.Info("login accepted")
	return nil
}

// IsValidationError reports whether err carries field messages and
// returns them.
func IsValidationError(err error) (domain.ValidationErrors, bool) {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

type discardOutcomes struct{}

func (discardOutcomes) RecordCatalogLoad(string) {}
func (discardOutcomes) RecordLogin(string)       {}
