package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/auth"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "test-secret"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(newTestLogger(t)), Recovery(newTestLogger(t)))

	whoami := func(c *ginext.Context) {
		id, _ := Identity(c)
		c.JSON(http.StatusOK, ginext.H{"userId": id.UserID, "role": id.Role})
	}

	verifier := auth.NewVerifier(testSecret, "eventhub")
	authed := r.Group("/me", Authenticate(verifier))
	authed.GET("", whoami)

	admin := r.Group("/admin", Authenticate(verifier), RequireRole(domain.RoleAdmin))
	admin.GET("", whoami)

	r.GET("/panic", func(c *ginext.Context) { panic("boom") })

	return r
}

func token(t *testing.T, role domain.Role) string {
	t.Helper()
	issuer := auth.NewIssuer(testSecret, "eventhub", time.Hour)
	tok, err := issuer.Issue(domain.Identity{UserID: "u1", Role: role})
	require.NoError(t, err)
	return tok
}

func do(r http.Handler, path, bearer string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_MissingToken(t *testing.T) {
	w := do(setupRouter(t), "/me", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	w := do(setupRouter(t), "/me", "not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_SetsIdentity(t *testing.T) {
	w := do(setupRouter(t), "/me", token(t, domain.RoleStudent))

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp["userId"])
	assert.Equal(t, "STUDENT", resp["role"])
}

func TestRequireRole_Forbidden(t *testing.T) {
	w := do(setupRouter(t), "/admin", token(t, domain.RoleStudent))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	w := do(setupRouter(t), "/admin", token(t, domain.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "/me", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
}

func TestRecovery_ReturnsJSON(t *testing.T) {
	w := do(setupRouter(t), "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp["message"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), resp["requestId"])
}
