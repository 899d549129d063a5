package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mantra-gor/BillSane-Admin/internal/config"
	"github.com/mantra-gor/BillSane-Admin/internal/database"
	"github.com/mantra-gor/BillSane-Admin/internal/keycipher"
	"github.com/mantra-gor/BillSane-Admin/internal/model"
	"github.com/mantra-gor/BillSane-Admin/internal/service"
	"github.com/mantra-gor/BillSane-Admin/internal/util"
)

const (
	testOperator = "root"
	testPassword = "s3cret-pass"
)

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
	h   *Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := database.InitTestDB()
	t.Cleanup(func() { database.CleanTestDB(db) })
	require.NoError(t, database.Seed(db, zap.NewNop()))

	cipher, err := keycipher.New(bytes.Repeat([]byte{0x24}, 32))
	require.NoError(t, err)

	log := zap.NewNop()
	tokens := util.NewTokenManager("test-secret", time.Hour)
	operators := service.NewOperatorService(db, tokens, log)
	_, _, err = operators.EnsureDefault(context.Background(), config.OperatorConfig{
		Username: testOperator, Password: testPassword, Email: "root@example.com",
	})
	require.NoError(t, err)

	h := New(Deps{
		Licenses:   service.NewLicenseService(db, cipher, log),
		Businesses: service.NewBusinessService(db, log),
		Masters:    service.NewMasterService(db),
		Operators:  operators,
		Logs:       service.NewOperationLogService(db),
		Statistics: service.NewStatisticsService(db),
		Tokens:     tokens,
		Log:        log,
	})

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log)})
	h.Register(app)
	return &testEnv{app: app, db: db, h: h}
}

// do sends a JSON request and decodes a JSON object response.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) (int, map[string]interface{}) {
	t.Helper()

	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			r = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/api/admin/login", fiber.Map{
		"username": testOperator, "password": testPassword,
	}, "")
	require.Equal(t, http.StatusOK, status, body)
	return body["token"].(string)
}

func (e *testEnv) business(t *testing.T) model.Business {
	t.Helper()
	b := model.Business{Name: "Acme Traders"}
	require.NoError(t, e.db.Create(&b).Error)
	return b
}
