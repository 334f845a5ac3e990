package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type WaterTempProvider interface {
	FetchLatest(ctx context.Context, stationID string) (float64, error)
}

type coopsWaterTempService struct {
	baseURL string
	client  *http.Client
}

func NewCoopsWaterTempService(baseURL string, timeout time.Duration) WaterTempProvider {
	return &coopsWaterTempService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type coopsWaterTempResponse struct {
	Data []struct {
		V string `json:"v"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// FetchLatest requests the most recent water temperature reading at a station.
// An error (including an empty payload) is non-fatal; the caller substitutes
// a fixed default.
func (s *coopsWaterTempService) FetchLatest(ctx context.Context, stationID string) (float64, error) {
	params := url.Values{}
	params.Set("date", "latest")
	params.Set("station", stationID)
	params.Set("product", "water_temperature")
	params.Set("units", "english")
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/prod/datagetter?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("building water temperature request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("water temperature request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("water temperature provider returned status code: %d", resp.StatusCode)
	}

	var apiResp coopsWaterTempResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return 0, fmt.Errorf("water temperature provider returned malformed JSON: %w", err)
	}

	if apiResp.Error.Message != "" {
		return 0, fmt.Errorf("water temperature provider error: %s", apiResp.Error.Message)
	}

	if len(apiResp.Data) == 0 {
		return 0, fmt.Errorf("water temperature provider returned no readings for station %s", stationID)
	}

	temp, err := strconv.ParseFloat(apiResp.Data[0].V, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing water temperature %q: %w", apiResp.Data[0].V, err)
	}
	return temp, nil
}
