package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"beachday/shorecast/internal/forecast"
)

const (
	coopsDateLayout       = "20060102"
	coopsPredictionLayout = "2006-01-02 15:04"
)

type TideProvider interface {
	FetchPredictions(ctx context.Context, stationID string, begin, end time.Time) ([]forecast.TidePoint, error)
}

type coopsTideService struct {
	baseURL string
	client  *http.Client
}

func NewCoopsTideService(baseURL string, timeout time.Duration) TideProvider {
	return &coopsTideService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type coopsPredictionsResponse struct {
	Predictions []struct {
		T string `json:"t"`
		V string `json:"v"`
	} `json:"predictions"`
	Error struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// FetchPredictions requests hourly MLLW tide predictions for the given window.
// Callers treat any returned error as degradation, not failure; tide data is
// optional.
func (s *coopsTideService) FetchPredictions(ctx context.Context, stationID string, begin, end time.Time) ([]forecast.TidePoint, error) {
	params := url.Values{}
	params.Set("begin_date", begin.Format(coopsDateLayout))
	params.Set("end_date", end.Format(coopsDateLayout))
	params.Set("station", stationID)
	params.Set("product", "predictions")
	params.Set("datum", "MLLW")
	params.Set("interval", "hourly")
	params.Set("units", "english")
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/prod/datagetter?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building tide request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tide request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tide provider returned status code: %d", resp.StatusCode)
	}

	var apiResp coopsPredictionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("tide provider returned malformed JSON: %w", err)
	}

	if apiResp.Error.Message != "" {
		return nil, fmt.Errorf("tide provider error: %s", apiResp.Error.Message)
	}

	points := make([]forecast.TidePoint, 0, len(apiResp.Predictions))
	for _, p := range apiResp.Predictions {
		ts, err := time.Parse(coopsPredictionLayout, p.T)
		if err != nil {
			return nil, fmt.Errorf("parsing tide timestamp %q: %w", p.T, err)
		}
		height, err := strconv.ParseFloat(p.V, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing tide height %q: %w", p.V, err)
		}
		points = append(points, forecast.TidePoint{Time: ts, Height: height})
	}
	return points, nil
}
