package app

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/niksmo/storefront/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	cfg := config.Config{
		LogLevel:       slog.LevelError,
		HTTPServerAddr: "127.0.0.1:0",
	}
	cfg.Catalog.BaseURL = "http://127.0.0.1:1/api/v1"
	cfg.Login.Email = "test@example.com"
	cfg.Login.Password = "password123"
	return cfg
}

func TestNew(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		var a *App
		require.NotPanics(t, func() {
			a = New(context.Background(), testConfig())
		})
		assert.NotNil(t, a.service.catalogBrowser)
		assert.NotNil(t, a.service.authenticator)
		assert.NotNil(t, a.metrics)
	})

	t.Run("BadCAFile", func(t *testing.T) {
		cfg := testConfig()
		cfg.Catalog.CAFile = filepath.Join(t.TempDir(), "missing.pem")
		assert.Panics(t, func() { New(context.Background(), cfg) })
	})

	t.Run("BadPasswordHash", func(t *testing.T) {
		cfg := testConfig()
		cfg.Login.PasswordHash = "not-bcrypt"
		assert.Panics(t, func() { New(context.Background(), cfg) })
	})

	t.Run("NoPassword", func(t *testing.T) {
		cfg := testConfig()
		cfg.Login.Password = ""
		assert.Panics(t, func() { New(context.Background(), cfg) })
	})
}

func TestRunClose(t *testing.T) {
	a := New(context.Background(), testConfig())

	stopped := make(chan struct{})
	a.Run(func() { close(stopped) })

	require.NoError(t, a.Close(context.Background()))
	<-stopped
}
