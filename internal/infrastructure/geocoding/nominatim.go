package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	domain "geoshare/internal/domain/geocoding"
	"geoshare/internal/shared/config"
	"geoshare/internal/shared/errors"
	"geoshare/internal/shared/logger"
)

const (
	defaultTimeout = 5 * time.Second

	// Maximum response body size for the reverse endpoint (256KB)
	maxReverseResponseSize = 256 << 10
)

// nominatimResponse is the subset of the reverse endpoint payload we read.
// Nominatim reports unresolvable coordinates (open sea, poles) through the
// error field with a 200 status.
type nominatimResponse struct {
	Error   string `json:"error"`
	Address struct {
		Postcode     string `json:"postcode"`
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
		State        string `json:"state"`
	} `json:"address"`
}

// NominatimClient resolves coordinates against a Nominatim instance.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     logger.Interface
}

func NewNominatimClient(cfg config.GeocodingConfig, logger logger.Interface) *NominatimClient {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &NominatimClient{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

var _ domain.Reverser = (*NominatimClient)(nil)

// Reverse maps coordinates to an administrative location. Network failures
// and non-200 statuses surface as upstream errors; coordinates Nominatim
// cannot place resolve to an empty location.
func (c *NominatimClient) Reverse(ctx context.Context, lat, lon float64) (*domain.Location, error) {
	endpoint := fmt.Sprintf("%s/reverse?%s", c.baseURL, url.Values{
		"format":          {"json"},
		"lat":             {fmt.Sprintf("%f", lat)},
		"lon":             {fmt.Sprintf("%f", lon)},
		"accept-language": {"fr"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewUpstreamUnavailableError("failed to build geocoding request", err.Error())
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewUpstreamUnavailableError("geocoding service unreachable", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewUpstreamUnavailableError(
			fmt.Sprintf("geocoding service returned status %d", resp.StatusCode))
	}

	var data nominatimResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReverseResponseSize)).Decode(&data); err != nil {
		return nil, errors.NewUpstreamUnavailableError("failed to decode geocoding response", err.Error())
	}

	if data.Error != "" {
		c.logger.Infow("coordinates outside geocoder coverage", "lat", lat, "lon", lon, "detail", data.Error)
		return &domain.Location{}, nil
	}

	return &domain.Location{
		PostalCode: data.Address.Postcode,
		Locality:   pickLocality(data),
		Region:     data.Address.State,
	}, nil
}

// pickLocality follows Nominatim's granularity ladder: city, then town,
// then village, then municipality, whichever is populated first.
func pickLocality(data nominatimResponse) string {
	switch {
	case data.Address.City != "":
		return data.Address.City
	case data.Address.Town != "":
		return data.Address.Town
	case data.Address.Village != "":
		return data.Address.Village
	default:
		return data.Address.Municipality
	}
}
