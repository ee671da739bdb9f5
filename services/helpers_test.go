package services_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"surplus-claims-platform/handlers"
	"surplus-claims-platform/services"
	"surplus-claims-platform/store"
	"surplus-claims-platform/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

// seedNow is a day inside the seed dataset's date range; transaction 2 is
// dated to it.
var seedNow = time.Date(2024, 7, 22, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, clock clockwork.Clock) (*fiber.App, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore(store.DefaultDataset())
	uploads, err := utils.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	app := fiber.New()
	handlers.SetupAdminRoutes(app, services.NewAdminService(st, clock))
	handlers.SetupInvestorRoutes(app, services.NewInvestorService(st, clock, uploads))
	return app, st
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func get(t *testing.T, app *fiber.App, path string) (int, []byte) {
	t.Helper()
	return doJSON(t, app, http.MethodGet, path, nil)
}
