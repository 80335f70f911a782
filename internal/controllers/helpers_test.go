package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"fleetops/internal/routes"
	"fleetops/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	return routes.SetupRouter(store.NewMemoryStore())
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createVehicle(t *testing.T, r http.Handler) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/vehicles", gin.H{
		"name": "V1", "status": "active", "location": "Depot",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return uint(decodeMap(t, w)["vehicle_id"].(float64))
}

func registerUser(t *testing.T, r http.Handler, username, email string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": username, "password": "pw1", "email": email,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return uint(decodeMap(t, w)["user_id"].(float64))
}
