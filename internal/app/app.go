package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter"
	"github.com/niksmo/storefront/internal/adapter/catalogapi"
	"github.com/niksmo/storefront/internal/adapter/credentials"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/metrics"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
)

type outboundAdapters struct {
	catalogReader port.CatalogReader
	credentials   port.CredentialChecker
}

type coreService struct {
	catalogBrowser port.CatalogBrowser
	authenticator  port.Authenticator
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	metrics    *metrics.Metrics
	outbound   outboundAdapters
	service    coreService
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initMetrics()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initMetrics() {
	app.metrics = metrics.New()
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	tlsConfig, err := adapter.MakeTLSConfig(app.cfg.Catalog.CAFile)
	if err != nil {
		app.fallDown(op, err)
	}

	catalogClient, err := catalogapi.New(
		app.cfg.Catalog.BaseURL,
		catalogapi.WithTLSConfig(tlsConfig),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	checker, err := app.newCredentialChecker()
	if err != nil {
		app.fallDown(op, err)
	}

	app.outbound.catalogReader = catalogClient
	app.outbound.credentials = checker
}

func (app *App) newCredentialChecker() (credentials.StaticChecker, error) {
	l := app.cfg.Login
	if l.PasswordHash != "" {
		return credentials.NewStaticChecker(l.Email, []byte(l.PasswordHash))
	}
	return credentials.NewStaticCheckerFromPassword(l.Email, l.Password)
}

func (app *App) initCoreService() {
	s := service.New(
		app.outbound.catalogReader,
		app.outbound.credentials,
		app.metrics,
	)
	app.service.catalogBrowser = s
	app.service.authenticator = s
}

func (app *App) initInboundAdapters() {
	const op = "App.initInboundAdapters"

	templates, err := httphandler.ParseTemplates()
	if err != nil {
		app.fallDown(op, err)
	}

	handler := httphandler.NewRouter(httphandler.Deps{
		Catalog:   app.service.catalogBrowser,
		Auth:      app.service.authenticator,
		Templates: templates,
		Recorder:  app.metrics,
		Metrics:   app.metrics.Handler(),
	})
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

// Close stops accepting requests and waits for in-flight ones until ctx
// is done.
func (app *App) Close(ctx context.Context) error {
	slog.Info("application is closing...")

	if err := app.httpServer.Close(ctx); err != nil {
		return err
	}

	slog.Info("application is closed")
	return nil
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
