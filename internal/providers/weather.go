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
	forecastDays = 7

	hourlyVariables = "temperature_2m,apparent_temperature,relative_humidity_2m,wind_speed_10m,precipitation_probability,uv_index"
	dailyVariables  = "temperature_2m_max,temperature_2m_min,precipitation_probability_max,uv_index_max,sunrise,sunset"

	openMeteoTimeLayout = "2006-01-02T15:04"
	openMeteoDateLayout = "2006-01-02"
)

type ForecastProvider interface {
	FetchForecast(ctx context.Context, lat, lon float64) (forecast.WeatherSeries, error)
}

type openMeteoService struct {
	baseURL string
	client  *http.Client
}

func NewOpenMeteoService(baseURL string, timeout time.Duration) ForecastProvider {
	return &openMeteoService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type openMeteoResponse struct {
	Hourly struct {
		Time                []string  `json:"time"`
		Temperature2M       []float64 `json:"temperature_2m"`
		ApparentTemperature []float64 `json:"apparent_temperature"`
		RelativeHumidity2M  []float64 `json:"relative_humidity_2m"`
		WindSpeed10M        []float64 `json:"wind_speed_10m"`
		PrecipitationProb   []float64 `json:"precipitation_probability"`
		UVIndex             []float64 `json:"uv_index"`
	} `json:"hourly"`
	Daily struct {
		Time                 []string  `json:"time"`
		Temperature2MMax     []float64 `json:"temperature_2m_max"`
		Temperature2MMin     []float64 `json:"temperature_2m_min"`
		PrecipitationProbMax []float64 `json:"precipitation_probability_max"`
		UVIndexMax           []float64 `json:"uv_index_max"`
		Sunrise              []string  `json:"sunrise"`
		Sunset               []string  `json:"sunset"`
	} `json:"daily"`
	Reason string `json:"reason,omitempty"`
}

// FetchForecast requests a 7-day forecast in imperial units with provider-side
// timezone resolution. Any transport or non-2xx failure is returned to the
// caller; weather is required data and there is no retry.
func (s *openMeteoService) FetchForecast(ctx context.Context, lat, lon float64) (forecast.WeatherSeries, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("hourly", hourlyVariables)
	params.Set("daily", dailyVariables)
	params.Set("temperature_unit", "fahrenheit")
	params.Set("wind_speed_unit", "mph")
	params.Set("timezone", "auto")
	params.Set("forecast_days", strconv.Itoa(forecastDays))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/forecast?"+params.Encode(), nil)
	if err != nil {
		return forecast.WeatherSeries{}, fmt.Errorf("building forecast request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return forecast.WeatherSeries{}, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return forecast.WeatherSeries{}, fmt.Errorf("forecast provider returned status code: %d", resp.StatusCode)
	}

	var apiResp openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return forecast.WeatherSeries{}, fmt.Errorf("forecast provider returned malformed JSON: %w", err)
	}

	if apiResp.Reason != "" {
		return forecast.WeatherSeries{}, fmt.Errorf("forecast provider error: %s", apiResp.Reason)
	}

	return apiResp.toSeries()
}

func (r openMeteoResponse) toSeries() (forecast.WeatherSeries, error) {
	hourlyTime, err := parseTimes(openMeteoTimeLayout, r.Hourly.Time)
	if err != nil {
		return forecast.WeatherSeries{}, fmt.Errorf("hourly time: %w", err)
	}
	dailyTime, err := parseTimes(openMeteoDateLayout, r.Daily.Time)
	if err != nil {
		return forecast.WeatherSeries{}, fmt.Errorf("daily time: %w", err)
	}
	sunrise, err := parseTimes(openMeteoTimeLayout, r.Daily.Sunrise)
	if err != nil {
		return forecast.WeatherSeries{}, fmt.Errorf("sunrise: %w", err)
	}
	sunset, err := parseTimes(openMeteoTimeLayout, r.Daily.Sunset)
	if err != nil {
		return forecast.WeatherSeries{}, fmt.Errorf("sunset: %w", err)
	}

	hours := len(hourlyTime)
	if len(r.Hourly.Temperature2M) != hours ||
		len(r.Hourly.ApparentTemperature) != hours ||
		len(r.Hourly.RelativeHumidity2M) != hours ||
		len(r.Hourly.WindSpeed10M) != hours ||
		len(r.Hourly.PrecipitationProb) != hours ||
		len(r.Hourly.UVIndex) != hours {
		return forecast.WeatherSeries{}, fmt.Errorf("hourly arrays are not parallel (time has %d entries)", hours)
	}

	days := len(dailyTime)
	if len(r.Daily.Temperature2MMax) != days ||
		len(r.Daily.Temperature2MMin) != days ||
		len(r.Daily.PrecipitationProbMax) != days ||
		len(r.Daily.UVIndexMax) != days ||
		len(sunrise) != days ||
		len(sunset) != days {
		return forecast.WeatherSeries{}, fmt.Errorf("daily arrays are not parallel (time has %d entries)", days)
	}

	return forecast.WeatherSeries{
		Hourly: forecast.HourlySeries{
			Time:              hourlyTime,
			Temperature:       r.Hourly.Temperature2M,
			ApparentTemp:      r.Hourly.ApparentTemperature,
			Humidity:          r.Hourly.RelativeHumidity2M,
			WindSpeed:         r.Hourly.WindSpeed10M,
			PrecipProbability: r.Hourly.PrecipitationProb,
			UVIndex:           r.Hourly.UVIndex,
		},
		Daily: forecast.DailySeries{
			Time:                 dailyTime,
			TemperatureMax:       r.Daily.Temperature2MMax,
			TemperatureMin:       r.Daily.Temperature2MMin,
			PrecipProbabilityMax: r.Daily.PrecipitationProbMax,
			UVIndexMax:           r.Daily.UVIndexMax,
			Sunrise:              sunrise,
			Sunset:               sunset,
		},
	}, nil
}

func parseTimes(layout string, values []string) ([]time.Time, error) {
	parsed := make([]time.Time, 0, len(values))
	for _, v := range values {
		t, err := time.Parse(layout, v)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", v, err)
		}
		parsed = append(parsed, t)
	}
	return parsed, nil
}
