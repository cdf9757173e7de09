package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoshare/internal/shared/config"
	apperrors "geoshare/internal/shared/errors"
	"geoshare/internal/shared/logger"
)

func testClient(t *testing.T, handler http.HandlerFunc) *NominatimClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewNominatimClient(config.GeocodingConfig{
		BaseURL:        server.URL,
		UserAgent:      "geoshare-test/1.0",
		TimeoutSeconds: 2,
	}, logger.NewNop())
}

func TestNominatimClient_Reverse(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "fr", r.URL.Query().Get("accept-language"))
		assert.Equal(t, "geoshare-test/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"address":{"postcode":"14000","city":"Caen","state":"Normandie"}}`))
	})

	loc, err := client.Reverse(context.Background(), 49.1829, -0.3707)
	require.NoError(t, err)
	assert.Equal(t, "14000", loc.PostalCode)
	assert.Equal(t, "Caen", loc.Locality)
	assert.Equal(t, "Normandie", loc.Region)
}

func TestNominatimClient_Reverse_LocalityLadder(t *testing.T) {
	t.Run("village", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"address":{"postcode":"14990","village":"Bernières-sur-Mer","state":"Normandie"}}`))
		})

		loc, err := client.Reverse(context.Background(), 49.33, -0.42)
		require.NoError(t, err)
		assert.Equal(t, "Bernières-sur-Mer", loc.Locality)
	})

	t.Run("municipality only", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"address":{"postcode":"14000","municipality":"Caen","state":"Normandie"}}`))
		})

		loc, err := client.Reverse(context.Background(), 49.18, -0.37)
		require.NoError(t, err)
		assert.Equal(t, "Caen", loc.Locality)
	})

	t.Run("city wins over municipality", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"address":{"postcode":"14000","city":"Caen","municipality":"Caen la Mer","state":"Normandie"}}`))
		})

		loc, err := client.Reverse(context.Background(), 49.18, -0.37)
		require.NoError(t, err)
		assert.Equal(t, "Caen", loc.Locality)
	})
}

func TestNominatimClient_Reverse_OutsideCoverage(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	})

	loc, err := client.Reverse(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, loc.PostalCode)
	assert.Empty(t, loc.Locality)
	assert.Empty(t, loc.Region)
}

func TestNominatimClient_Reverse_UpstreamErrors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		_, err := client.Reverse(context.Background(), 49.18, -0.37)
		assert.True(t, apperrors.IsUpstreamUnavailableError(err))
	})

	t.Run("malformed body", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"address":`))
		})
		_, err := client.Reverse(context.Background(), 49.18, -0.37)
		assert.True(t, apperrors.IsUpstreamUnavailableError(err))
	})

	t.Run("unreachable host", func(t *testing.T) {
		client := NewNominatimClient(config.GeocodingConfig{
			BaseURL:        "http://127.0.0.1:1",
			TimeoutSeconds: 1,
		}, logger.NewNop())
		_, err := client.Reverse(context.Background(), 49.18, -0.37)
		assert.True(t, apperrors.IsUpstreamUnavailableError(err))
	})
}
