package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mpesa-wrap/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func echoApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(RequestID())
	for _, h := range handlers {
		app.Use(h)
	}
	app.Get("/", func(c *fiber.Ctx) error {
		subject, _ := c.Locals("subject").(string)
		return c.SendString(GetRequestID(c) + "|" + subject)
	})
	return app
}

func TestRequestIDGeneratesID(t *testing.T) {
	resp, err := echoApp().Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)

	id := resp.Header.Get(fiber.HeaderXRequestID)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, id+"|", string(body))
}

func TestRequestIDReusesValidHeader(t *testing.T) {
	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, incoming)

	resp, err := echoApp().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, incoming, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRequestIDReplacesInvalidHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "<script>")

	resp, err := echoApp().Test(req, -1)
	require.NoError(t, err)
	assert.NotEqual(t, "<script>", resp.Header.Get(fiber.HeaderXRequestID))
}

func TestAuthMiddleware(t *testing.T) {
	manager := auth.NewJWTManager("secret")
	token, err := manager.GenerateToken(auth.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	require.NoError(t, err)

	tests := []struct {
		name       string
		manager    *auth.JWTManager
		header     string
		wantStatus int
	}{
		{name: "disabled", manager: nil, wantStatus: fiber.StatusOK},
		{name: "missing header", manager: manager, wantStatus: fiber.StatusUnauthorized},
		{name: "bad token", manager: manager, header: "Bearer nope", wantStatus: fiber.StatusUnauthorized},
		{name: "valid token", manager: manager, header: "Bearer " + token, wantStatus: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := echoApp(AuthMiddleware(tt.manager, zap.NewNop())).Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.name == "valid token" {
				body, _ := io.ReadAll(resp.Body)
				assert.Contains(t, string(body), "|user-42")
			}
		})
	}
}
