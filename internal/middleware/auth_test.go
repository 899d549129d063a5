package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mantra-gor/BillSane-Admin/internal/model"
	"github.com/mantra-gor/BillSane-Admin/internal/util"
)

type operatorTable map[uint]model.Operator

func (t operatorTable) Get(_ context.Context, id uint) (*model.Operator, error) {
	op, ok := t[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &op, nil
}

func newTestApp(tokens *util.TokenManager, ops operatorTable) *fiber.App {
	app := fiber.New()
	app.Get("/me", Auth(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": OperatorID(c)})
	})
	app.Get("/admin", Auth(tokens), AdminOnly(ops), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestAuth(t *testing.T) {
	tokens := util.NewTokenManager("secret", time.Hour)
	app := newTestApp(tokens, operatorTable{})

	valid, err := tokens.GenerateToken(7)
	require.NoError(t, err)
	foreign, err := util.NewTokenManager("other", time.Hour).GenerateToken(7)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + valid, fiber.StatusOK},
		{"lowercase scheme", "bearer " + valid, fiber.StatusOK},
		{"missing", "", fiber.StatusUnauthorized},
		{"no scheme", valid, fiber.StatusUnauthorized},
		{"basic", "Basic dXNlcjpwYXNz", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	tokens := util.NewTokenManager("secret", time.Hour)
	app := newTestApp(tokens, operatorTable{
		1: {ID: 1, Role: model.RoleAdmin, Status: model.OperatorActive},
		2: {ID: 2, Role: model.RoleViewer, Status: model.OperatorActive},
		3: {ID: 3, Role: model.RoleAdmin, Status: model.OperatorDisabled},
	})

	for id, want := range map[uint]int{
		1: fiber.StatusNoContent,
		2: fiber.StatusForbidden,
		3: fiber.StatusForbidden,
		4: fiber.StatusForbidden,
	} {
		token, err := tokens.GenerateToken(id)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, "operator %d", id)
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	_, err := app.Test(httptest.NewRequest("GET", "/ok", nil), -1)
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/missing", nil), -1)
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(200), entries[0].ContextMap()["status"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(404), entries[1].ContextMap()["status"])
	assert.Equal(t, "/missing", entries[1].ContextMap()["path"])
}
