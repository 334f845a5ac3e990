package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"beachday/shorecast/config"
	"beachday/shorecast/internal/forecast"
)

func TestLoadConfigDefaultThresholds(t *testing.T) {
	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	require.Equal(t, forecast.DefaultThresholds(), cfg.Thresholds)
}

func TestLoadConfigThresholdOverrides(t *testing.T) {
	t.Setenv("SCORE_WIND_MAX_MPH", "12")
	t.Setenv("SCORE_WIND_PENALTY", "25")
	t.Setenv("SCORE_TEMP_MAX_F", "90")
	t.Setenv("SCORE_HEAT_PENALTY", "15")
	t.Setenv("SCORE_TEMP_MIN_F", "50")
	t.Setenv("SCORE_COLD_PENALTY", "5")
	t.Setenv("SCORE_PRECIP_MAX_PCT", "20")
	t.Setenv("SCORE_RAIN_PENALTY", "50")
	t.Setenv("SCORE_MODERATE_OVER", "70")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	require.Equal(t, forecast.Thresholds{
		WindMaxMph:        12,
		WindPenalty:       25,
		TempMaxF:          90,
		HeatPenalty:       15,
		TempMinF:          50,
		ColdPenalty:       5,
		PrecipMaxPct:      20,
		RainPenalty:       50,
		ModerateScoreOver: 70,
	}, cfg.Thresholds)
}
