package mirror

import (
	"context"
	"net/http/httptest"
	"testing"

	"prompt-library/core/database"
	"prompt-library/core/promptdb"
	"prompt-library/feature/library"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*Service, *library.Service, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	lib := library.NewService(promptdb.New(nil, nil), library.Options{}, zap.NewNop())
	return NewService(db, lib, zap.NewNop()), lib, db
}

func TestSync(t *testing.T) {
	svc, lib, db := setup(t)
	ctx := context.Background()

	for _, p := range []promptdb.NewPrompt{
		{Text: "first", Category: "a", Tags: []string{"x", "y"}, Rating: 3},
		{Text: "second"},
	} {
		_, err := lib.Add(p)
		require.NoError(t, err)
	}

	report, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Upserted)
	assert.Zero(t, report.Deleted)

	var row PromptRow
	require.NoError(t, db.First(&row, 1).Error)
	assert.Equal(t, "first", row.Text)
	assert.Equal(t, "a", row.Category)
	assert.Equal(t, "x,y", row.Tags)
	assert.Equal(t, 3, row.Rating)

	// Changes and deletions propagate on the next sync.
	rating := 5
	_, err = lib.Update(1, promptdb.PromptUpdate{Rating: &rating})
	require.NoError(t, err)
	_, err = lib.Delete(2)
	require.NoError(t, err)

	report, err = svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Upserted)
	assert.EqualValues(t, 1, report.Deleted)

	var rows []PromptRow
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Rating)

	// An empty library empties the table.
	_, err = lib.Delete(1)
	require.NoError(t, err)
	report, err = svc.Sync(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, report.Deleted)
}

func TestCheck(t *testing.T) {
	svc, lib, db := setup(t)
	ctx := context.Background()
	_, err := lib.Add(promptdb.NewPrompt{Text: "only"})
	require.NoError(t, err)

	report, err := svc.Check(ctx)
	require.NoError(t, err)
	assert.False(t, report.Exists)
	assert.Equal(t, Columns, report.MissingColumns)
	assert.False(t, report.InSync)

	_, err = svc.Sync(ctx)
	require.NoError(t, err)

	report, err = svc.Check(ctx)
	require.NoError(t, err)
	assert.True(t, report.Exists)
	assert.Empty(t, report.MissingColumns)
	assert.EqualValues(t, 1, report.Rows)
	assert.True(t, report.InSync)

	require.NoError(t, db.Migrator().DropColumn(&PromptRow{}, "notes"))
	report, err = svc.Check(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"notes"}, report.MissingColumns)
	assert.False(t, report.InSync)
}

func TestHandlers(t *testing.T) {
	svc, lib, _ := setup(t)
	_, err := lib.Add(promptdb.NewPrompt{Text: "mirrored"})
	require.NoError(t, err)

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("POST", "/mirror/sync", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/mirror/check", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report CheckReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.True(t, report.InSync)
}

func TestLoader(t *testing.T) {
	assert.False(t, NewFeature(nil, nil, zap.NewNop()).IsEnabled())

	_, lib, db := setup(t)
	feature := NewFeature(db, lib, zap.NewNop())
	assert.Equal(t, "mirror", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
