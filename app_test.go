package realestate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guddy2005/real-estate-app/ai/mock"
	"github.com/guddy2005/real-estate-app/core"
	"github.com/guddy2005/real-estate-app/ingest"
)

const (
	testCatalogPath = "data/property_catalog.json"
	testUsersPath   = "data/user_database.json"
)

func newFileApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(context.Background(), testCatalogPath, testUsersPath,
		WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func TestNewApp(t *testing.T) {
	t.Run("opens shipped data files", func(t *testing.T) {
		app := newFileApp(t)

		assert.NotNil(t, app.Assistant())
		assert.NotNil(t, app.Store())
		assert.NotNil(t, app.ProfileStore())
	})

	t.Run("error with missing catalog file", func(t *testing.T) {
		app, err := NewApp(context.Background(), "data/no_such_file.json", testUsersPath,
			WithProvider(mock.NewMockProvider()))
		assert.Error(t, err)
		assert.Nil(t, app)
	})
}

func TestNewAppFromDB(t *testing.T) {
	ctx := context.Background()
	dbPath := t.TempDir()

	app, err := NewAppFromDB(ctx, dbPath, WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	defer app.Close()

	importer, err := app.NewImporter()
	require.NoError(t, err)
	defer importer.Release()

	report, err := importer.ImportCatalog(ctx, testCatalogPath)
	require.NoError(t, err)
	assert.Equal(t, 5, report.Regions)

	_, err = importer.ImportUsers(ctx, testUsersPath)
	require.NoError(t, err)

	results, err := app.Match(ctx, "villa with a pool", core.UserGuest)
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}

func TestApp_Chat(t *testing.T) {
	app := newFileApp(t)

	reply, err := app.Chat(context.Background(), "Show me a penthouse in Dubai Marina", core.UserRegistered)
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
}

func TestApp_Match(t *testing.T) {
	app := newFileApp(t)

	results, err := app.Match(context.Background(), "sea view penthouse", core.UserGuest)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestApp_NewImporterRequiresBadger(t *testing.T) {
	app := newFileApp(t)

	importer, err := app.NewImporter()
	assert.ErrorIs(t, err, ingest.ErrStoreRequired)
	assert.Nil(t, importer)
}

func TestApp_Close(t *testing.T) {
	app, err := NewApp(context.Background(), testCatalogPath, testUsersPath,
		WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)

	assert.NoError(t, app.Close())
}
