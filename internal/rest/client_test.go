package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"reststate/internal/utils"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "tester",
		"exp": expiresAt.Unix(),
	})
	raw, err := token.SignedString([]byte("test_secret"))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return raw
}

func TestClientSendsJSONBody(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{})
	resp, err := client.Post(context.Background(), "/entities", map[string]any{"name": "thing"})
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/entities", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]any{"name": "thing"}, gotBody)
	assert.JSONEq(t, `{"ok":"true"}`, string(resp))
}

func TestClientMapsStatusToErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nothing here", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{})
	_, err := client.Get(context.Background(), "/entities/missing")

	assert.Error(t, err)
	assert.True(t, utils.IsErrorCode(err, utils.ErrNotFound))
}

func TestClientPrefersServerErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(ErrorResponse{
			Code:    "DUPLICATE",
			Message: "entity already exists",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{})
	_, err := client.Post(context.Background(), "/entities", map[string]any{"name": "dup"})

	assert.Error(t, err)
	assert.True(t, utils.IsErrorCode(err, "DUPLICATE"))
	assert.Contains(t, err.Error(), "entity already exists")
}

func TestClientAttachesLiveBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	token := signedToken(t, time.Now().Add(time.Hour))
	client := NewClient(server.URL, Options{BearerToken: token})

	if _, err := client.Get(context.Background(), "/entities"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	assert.Equal(t, "Bearer "+token, gotAuth)
}

func TestClientSkipsExpiredBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, Options{
		BearerToken: signedToken(t, time.Now().Add(-time.Hour)),
	})

	if _, err := client.Get(context.Background(), "/entities"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	assert.Empty(t, gotAuth)
}

func TestClientRecordsMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	metrics := utils.NewMetricsCollector()
	client := NewClient(server.URL, Options{Metrics: metrics})

	if _, err := client.Get(context.Background(), "/entities"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	_, requests, errCount, _ := metrics.Snapshot()
	assert.Equal(t, uint64(1), requests)
	assert.Equal(t, uint64(0), errCount)
}

func TestTokenExpired(t *testing.T) {
	assert.False(t, tokenExpired("not-a-jwt"))
	assert.False(t, tokenExpired(signedToken(t, time.Now().Add(time.Hour))))
	assert.True(t, tokenExpired(signedToken(t, time.Now().Add(-time.Hour))))
}
