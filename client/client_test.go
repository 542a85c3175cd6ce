package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-riegopanel/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, zap.NewNop())
}

func TestListFarmsSendsBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/farms", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.Farm{{ID: 1, Name: "La Esperanza"}})
	})

	farms, err := c.ListFarms(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Len(t, farms, 1)
	assert.Equal(t, "La Esperanza", farms[0].Name)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestDoMapsStatusCodes(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrUpstream},
		{http.StatusBadRequest, ErrUpstream},
	}

	for _, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})
		_, err := c.ListFarms(context.Background(), "tok")
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)
	}
}

func TestLoginPostsCredentialsWithoutToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "maria", body["username"])
		assert.Equal(t, "secreto", body["password"])

		_ = json.NewEncoder(w).Encode(LoginResult{Token: "jwt-token"})
	})

	result, err := c.Login(context.Background(), "maria", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", result.Token)
}

func TestMonthlyViewsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/farms/7/irrigation/monthly", r.URL.Path)
		assert.Equal(t, "2024", r.URL.Query().Get("year"))
		assert.Equal(t, "2", r.URL.Query().Get("month"))
		_ = json.NewEncoder(w).Encode([]models.MonthlySectorView{{SectorID: 1}})
	})

	views, err := c.MonthlyViews(context.Background(), "tok", 7, 2024, 2)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 1, views[0].SectorID)
}

func TestDeleteDiscardsBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	assert.NoError(t, c.DeleteFarm(context.Background(), "tok", 3))
}

func TestDoWrapsDecodeFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})
	_, err := c.ListFarms(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUpstream)
}
