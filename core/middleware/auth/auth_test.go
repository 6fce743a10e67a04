package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		path   string
		header string
		want   int
	}{
		{name: "disabled", apiKey: "", path: "/prompts", want: fiber.StatusOK},
		{name: "missing key", apiKey: "secret", path: "/prompts", want: fiber.StatusUnauthorized},
		{name: "wrong key", apiKey: "secret", path: "/prompts", header: "nope", want: fiber.StatusUnauthorized},
		{name: "valid key", apiKey: "secret", path: "/prompts", header: "secret", want: fiber.StatusOK},
		{name: "query key", apiKey: "secret", path: "/prompts?api_key=secret", want: fiber.StatusOK},
		{name: "skipped path", apiKey: "secret", path: "/swagger/index.html", want: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(New(Config{ApiKey: tt.apiKey, Skip: []string{"/swagger"}}))
			app.Get("/*", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(HeaderName, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
