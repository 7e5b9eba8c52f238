package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avolkovs/menuboard/internal/auth"
	"github.com/avolkovs/menuboard/internal/config"
	"github.com/avolkovs/menuboard/internal/logging"
	"github.com/avolkovs/menuboard/internal/menu"
	"github.com/avolkovs/menuboard/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()

	ctx := context.Background()
	db, err := storage.Open(ctx, "file:httpapi_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	authStore := auth.NewStore(db, log)
	authStore.Load(ctx)
	menuStore := menu.NewStore(db, log)
	menuStore.Load(ctx)

	cfg := &config.Config{
		EndpointAddr:          ":0",
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
	}
	srv := NewServer(cfg, log, authStore, menuStore)
	return srv, srv.router()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func registerOperator(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":        "alice",
		"password":        "secret1",
		"confirmPassword": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegister_IssuesToken(t *testing.T) {
	_, r := setupServer(t)
	registerOperator(t, r)
}

func TestRegister_ValidationErrors(t *testing.T) {
	_, r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":        "al",
		"password":        "123",
		"confirmPassword": "456",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	errs, ok := decode(t, w)["errors"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Username must be at least 3 characters", errs["username"])
	require.Equal(t, "Password must be at least 6 characters", errs["password"])
	require.Equal(t, "Passwords do not match", errs["confirmPassword"])
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	_, r := setupServer(t)
	registerOperator(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":        "alice",
		"password":        "other1",
		"confirmPassword": "other1",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, auth.MsgUsernameExists, decode(t, w)["error"])
}

func TestLogin_BadCredentialsUnauthorized(t *testing.T) {
	srv, r := setupServer(t)
	registerOperator(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "wrongpass",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, auth.MsgInvalidCredentials, decode(t, w)["error"])

	// The handler consumed and cleared the store error.
	require.Empty(t, srv.auth.Session().Error)
}

func TestLogin_Success(t *testing.T) {
	_, r := setupServer(t)
	registerOperator(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, decode(t, w)["token"])
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	_, r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/menu", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/menu", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_ClosesSessionGateForIssuedTokens(t *testing.T) {
	_, r := setupServer(t)
	token := registerOperator(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The token is still cryptographically valid but the gate is closed.
	w = doJSON(t, r, http.MethodGet, "/api/menu", token, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func itemBody(name, category string) map[string]any {
	return map[string]any{
		"name":        name,
		"description": "A very tasty " + name,
		"price":       9.5,
		"image":       "data:image/png;base64,AAAA",
		"category":    category,
		"available":   true,
		"ingredients": []string{"flour", "salt"},
	}
}

func TestMenuCRUD(t *testing.T) {
	_, r := setupServer(t)
	token := registerOperator(t, r)

	// Category first: item validation requires an existing category.
	w := doJSON(t, r, http.MethodPost, "/api/menu/categories", token, map[string]string{"name": "Pizza"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/menu/items", token, itemBody("Margherita", "Pizza"))
	require.Equal(t, http.StatusCreated, w.Code)
	created, ok := decode(t, w)["item"].(map[string]any)
	require.True(t, ok)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	// Listing and filtering.
	w = doJSON(t, r, http.MethodGet, "/api/menu?q=marg", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["items"].([]any)
	require.Len(t, items, 1)

	w = doJSON(t, r, http.MethodGet, "/api/menu?category=Drinks", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, decode(t, w)["items"])

	// Update.
	body := itemBody("Margherita Extra", "Pizza")
	w = doJSON(t, r, http.MethodPut, "/api/menu/items/"+id, token, body)
	require.Equal(t, http.StatusOK, w.Code)

	// Update of a missing id is 404 at the API even though the store no-ops.
	w = doJSON(t, r, http.MethodPut, "/api/menu/items/does-not-exist", token, body)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Delete.
	w = doJSON(t, r, http.MethodDelete, "/api/menu/items/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/menu", token, nil)
	require.Empty(t, decode(t, w)["items"])
}

func TestCreateItem_ValidationErrors(t *testing.T) {
	_, r := setupServer(t)
	token := registerOperator(t, r)

	body := itemBody("Margherita", "Pizza")
	delete(body, "available")
	body["price"] = 0

	// "Pizza" has not been registered as a category yet.
	w := doJSON(t, r, http.MethodPost, "/api/menu/items", token, body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	errs := decode(t, w)["errors"].(map[string]any)
	require.Equal(t, "Price must be greater than 0", errs["price"])
	require.Equal(t, "Category is required", errs["category"])
	require.Equal(t, "Availability is required", errs["available"])
}

func TestCreateCategory_DuplicateRejected(t *testing.T) {
	_, r := setupServer(t)
	token := registerOperator(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/menu/categories", token, map[string]string{"name": "Pizza"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/menu/categories", token, map[string]string{"name": "Pizza"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decode(t, w)["errors"].(map[string]any)
	require.Equal(t, "Category already exists", errs["name"])
}

func TestDeleteCategory_OrphansItems(t *testing.T) {
	_, r := setupServer(t)
	token := registerOperator(t, r)

	doJSON(t, r, http.MethodPost, "/api/menu/categories", token, map[string]string{"name": "Drinks"})
	w := doJSON(t, r, http.MethodPost, "/api/menu/items", token, itemBody("Cola", "Drinks"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/menu/categories/Drinks", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/menu", token, nil)
	resp := decode(t, w)
	require.Empty(t, resp["categories"])
	items := resp["items"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, "", items[0].(map[string]any)["category"])
}

func TestDashboard_ReportsStatsAndUser(t *testing.T) {
	_, r := setupServer(t)
	token := registerOperator(t, r)

	doJSON(t, r, http.MethodPost, "/api/menu/categories", token, map[string]string{"name": "Pizza"})
	doJSON(t, r, http.MethodPost, "/api/menu/items", token, itemBody("Margherita", "Pizza"))

	w := doJSON(t, r, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	require.Equal(t, "alice", resp["username"])
	stats := resp["stats"].(map[string]any)
	require.Equal(t, float64(1), stats["totalItems"])
	require.Equal(t, float64(1), stats["totalCategories"])
}

func TestSession_PublicEndpoint(t *testing.T) {
	_, r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/session", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.Equal(t, false, resp["isAuthenticated"])
	require.Nil(t, resp["username"])

	registerOperator(t, r)
	w = doJSON(t, r, http.MethodGet, "/api/auth/session", "", nil)
	resp = decode(t, w)
	require.Equal(t, true, resp["isAuthenticated"])
	require.Equal(t, "alice", resp["username"])
}
