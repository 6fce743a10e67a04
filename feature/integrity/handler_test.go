package integrity

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"prompt-library/core/storage/mocks"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, withStorage bool) (*fiber.App, *mocks.Client, Options) {
	t.Helper()
	root := t.TempDir()
	opts := Options{
		LibraryPath: filepath.Join(root, "data", "prompt_library.json"),
		ExportDir:   filepath.Join(root, "exports"),
		Bucket:      "library",
		Prefix:      "backups/",
	}
	mockClient := new(mocks.Client)
	var svc *Service
	if withStorage {
		svc = NewService(mockClient, opts, zap.NewNop())
	} else {
		svc = NewService(nil, opts, zap.NewNop())
	}
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient, opts
}

func get(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleStructureCheck(t *testing.T) {
	app, _, opts := setupTestApp(t, false)

	status, body := get(t, app, "/integrity/structure")
	assert.Equal(t, 200, status)
	assert.Equal(t, "checked", body["status"])
	assert.Len(t, body["missing"], 2)

	status, body = get(t, app, "/integrity/structure?fix=true")
	assert.Equal(t, 200, status)
	assert.Equal(t, "fixed", body["status"])
	assert.DirExists(t, opts.ExportDir)
}

func TestHandleDocumentCheck(t *testing.T) {
	app, _, opts := setupTestApp(t, false)

	status, _ := get(t, app, "/integrity/document")
	assert.Equal(t, fiber.StatusNotFound, status)

	require.NoError(t, os.MkdirAll(filepath.Dir(opts.LibraryPath), 0o755))
	require.NoError(t, os.WriteFile(opts.LibraryPath, []byte(`{"prompts": "none"}`), 0o644))
	status, _ = get(t, app, "/integrity/document")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	doc := `{"next_id": 1, "prompts": [{"id": 1, "text": "a"}, {"id": 1, "text": "a"}]}`
	require.NoError(t, os.WriteFile(opts.LibraryPath, []byte(doc), 0o644))
	status, body := get(t, app, "/integrity/document")
	assert.Equal(t, 200, status)
	assert.Len(t, body["issues"], 3)
}

func TestHandleStorageCheck(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		app, _, _ := setupTestApp(t, false)
		status, _ := get(t, app, "/integrity/storage")
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
	})

	t.Run("Fix", func(t *testing.T) {
		app, mockClient, _ := setupTestApp(t, true)
		mockClient.On("BucketExists", mock.Anything, "library").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "library", mock.Anything).Return(nil)

		status, body := get(t, app, "/integrity/storage?fix=true")
		assert.Equal(t, 200, status)
		assert.Equal(t, true, body["bucket_exists"])
		mockClient.AssertCalled(t, "MakeBucket", mock.Anything, "library", mock.Anything)
	})
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, _, _ := setupTestApp(t, false)

	status, body := get(t, app, "/integrity")
	assert.Equal(t, 200, status)
	assert.Contains(t, body, "structure")
	assert.Contains(t, body, "document")
	assert.Equal(t, map[string]any{"status": "disabled"}, body["storage"])
}

func TestLoader(t *testing.T) {
	feature := NewFeature(new(mocks.Client), Options{}, zap.NewNop())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
