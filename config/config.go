package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"beachday/shorecast/internal/forecast"
)

type Config struct {
	ServiceName string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env      string
	LogLevel string

	WeatherBaseURL string
	CoopsBaseURL   string
	FetchTimeout   time.Duration

	RefreshInterval  time.Duration
	RunOnce          bool
	DefaultWaterTemp float64

	Thresholds forecast.Thresholds
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "shorecast")
	v.SetDefault("DATABASE_PORT", "5432")

	v.SetDefault("WEATHER_BASE_URL", "https://api.open-meteo.com")
	v.SetDefault("COOPS_BASE_URL", "https://api.tidesandcurrents.noaa.gov")
	v.SetDefault("FETCH_TIMEOUT", 10*time.Second)

	v.SetDefault("REFRESH_INTERVAL", time.Hour)
	v.SetDefault("RUN_ONCE", false)
	v.SetDefault("DEFAULT_WATER_TEMP", 60.0)

	defaults := forecast.DefaultThresholds()
	v.SetDefault("SCORE_WIND_MAX_MPH", defaults.WindMaxMph)
	v.SetDefault("SCORE_WIND_PENALTY", defaults.WindPenalty)
	v.SetDefault("SCORE_TEMP_MAX_F", defaults.TempMaxF)
	v.SetDefault("SCORE_HEAT_PENALTY", defaults.HeatPenalty)
	v.SetDefault("SCORE_TEMP_MIN_F", defaults.TempMinF)
	v.SetDefault("SCORE_COLD_PENALTY", defaults.ColdPenalty)
	v.SetDefault("SCORE_PRECIP_MAX_PCT", defaults.PrecipMaxPct)
	v.SetDefault("SCORE_RAIN_PENALTY", defaults.RainPenalty)
	v.SetDefault("SCORE_MODERATE_OVER", defaults.ModerateScoreOver)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	thresholds := forecast.Thresholds{
		WindMaxMph:        v.GetFloat64("SCORE_WIND_MAX_MPH"),
		WindPenalty:       v.GetInt("SCORE_WIND_PENALTY"),
		TempMaxF:          v.GetFloat64("SCORE_TEMP_MAX_F"),
		HeatPenalty:       v.GetInt("SCORE_HEAT_PENALTY"),
		TempMinF:          v.GetFloat64("SCORE_TEMP_MIN_F"),
		ColdPenalty:       v.GetInt("SCORE_COLD_PENALTY"),
		PrecipMaxPct:      v.GetFloat64("SCORE_PRECIP_MAX_PCT"),
		RainPenalty:       v.GetInt("SCORE_RAIN_PENALTY"),
		ModerateScoreOver: v.GetInt("SCORE_MODERATE_OVER"),
	}

	config := &Config{
		ServiceName:      v.GetString("SERVICE_NAME"),
		DBName:           v.GetString("DATABASE_NAME"),
		DBPassword:       v.GetString("DATABASE_PASSWORD"),
		DBUser:           v.GetString("DATABASE_USER"),
		DBPort:           v.GetString("DATABASE_PORT"),
		DBHost:           v.GetString("DATABASE_HOST"),
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		WeatherBaseURL:   v.GetString("WEATHER_BASE_URL"),
		CoopsBaseURL:     v.GetString("COOPS_BASE_URL"),
		FetchTimeout:     v.GetDuration("FETCH_TIMEOUT"),
		RefreshInterval:  v.GetDuration("REFRESH_INTERVAL"),
		RunOnce:          v.GetBool("RUN_ONCE"),
		DefaultWaterTemp: v.GetFloat64("DEFAULT_WATER_TEMP"),
		Thresholds:       thresholds,
	}

	return config, nil
}
