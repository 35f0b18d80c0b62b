package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubValidator accepts exactly one token string.
type stubValidator struct {
	accept string
	caller string
}

func (v *stubValidator) ValidateToken(tokenString string) (string, error) {
	if tokenString == v.accept {
		return v.caller, nil
	}
	return "", fmt.Errorf("invalid token")
}

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var caller string
	handler := AuthMiddleware(&stubValidator{accept: "good-token", caller: "test-caller"})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, _ = GetCaller(r)
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/configs", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder, caller
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	recorder, caller := runAuth(t, "Bearer good-token")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "test-caller", caller)
}

func TestAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	recorder, _ := runAuth(t, "bearer good-token")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic good-token"},
		{"no token", "Bearer"},
		{"bad token", "Bearer wrong-token"},
		{"extra parts", "Bearer good token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, _ := runAuth(t, tt.header)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestGetCaller_MissingContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/configs", nil)
	_, err := GetCaller(req)
	require.Error(t, err)
}
