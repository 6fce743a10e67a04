package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		debugOn bool
		infoOn  bool
		wantErr bool
	}{
		{name: "debug console", cfg: Config{Level: "debug", Format: "console"}, debugOn: true, infoOn: true},
		{name: "production json", cfg: Config{Level: "info", Format: "json"}, infoOn: true},
		{name: "warn hides info", cfg: Config{Level: "warn", Format: "json"}},
		{name: "empty level defaults to info", cfg: Config{}, infoOn: true},
		{name: "unknown level", cfg: Config{Level: "loud"}, wantErr: true},
		{name: "unknown format", cfg: Config{Level: "info", Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.debugOn, l.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.infoOn, l.Core().Enabled(zapcore.InfoLevel))
		})
	}
}

func TestWithLibrary(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	WithLibrary(zap.New(core), "data/prompt_library.json").Info("opened")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "data/prompt_library.json", logs.All()[0].ContextMap()["library"])
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "ray-123")
		WithRayID(base, c).Info("tagged")
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "ray-123", logs.All()[0].ContextMap()["ray_id"])
}
