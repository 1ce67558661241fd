package countdown

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"raahi/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSender_Send(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emergency/panic", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"alertId":"a1","firestorePath":"users/u1/panic_alerts/a1"},"meta":{"request_id":"r"}}`))
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL+"/", Identity{Token: "tok", DisplayName: "Asha"}, nil)
	receipt, err := sender.Send(context.Background(), AlertRequest{
		Location:  entity.Coordinate{Latitude: 28.6, Longitude: 77.2},
		Timestamp: time.Date(2026, 1, 26, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", receipt.AlertID)
	assert.Equal(t, "users/u1/panic_alerts/a1", receipt.Path)

	assert.Equal(t, "Asha", got["displayName"])
	assert.Equal(t, false, got["locationDegraded"])
	location, ok := got["location"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 28.6, location["latitude"], 1e-9)
	assert.NotContains(t, got, "userId")
}

func TestHTTPSender_DegradedSendsPlaceholder(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"alertId":"a2","firestorePath":"p"}}`))
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL, Identity{UserID: "u9"}, server.Client())
	_, err := sender.Send(context.Background(), AlertRequest{
		Location: entity.Coordinate{Latitude: 1, Longitude: 2},
		Degraded: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "u9", got["userId"])
	assert.Equal(t, true, got["locationDegraded"])
	assert.Equal(t, map[string]any{"latitude": 0.0, "longitude": 0.0}, got["location"])
}

func TestHTTPSender_ErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "api error", status: http.StatusBadRequest, body: `{"error":{"code":"INVALID_LOCATION","message":"bad"}}`, wantErr: "INVALID_LOCATION"},
		{name: "plain error", status: http.StatusBadGateway, body: `upstream down`, wantErr: "502"},
		{name: "missing id", status: http.StatusCreated, body: `{"data":{}}`, wantErr: "no alert id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewHTTPSender(server.URL, Identity{}, nil).Send(context.Background(), AlertRequest{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
