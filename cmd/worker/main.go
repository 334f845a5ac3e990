package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"beachday/shorecast/config"
	"beachday/shorecast/internal/db/dailysummaries"
	"beachday/shorecast/internal/db/hourlyconditions"
	"beachday/shorecast/internal/db/locations"
	"beachday/shorecast/internal/providers"
	"beachday/shorecast/internal/scheduler"
	"beachday/shorecast/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()

	db, dbErr := initializeDatabase(conf)
	if dbErr != nil {
		logger.Fatal().Err(dbErr).Msg("failed to initialize database")
	}

	locationRepo := locations.NewRepository(db)
	hourlyRepo := hourlyconditions.NewRepository(db)
	dailyRepo := dailysummaries.NewRepository(db)

	weather := providers.NewOpenMeteoService(conf.WeatherBaseURL, conf.FetchTimeout)
	tides := providers.NewCoopsTideService(conf.CoopsBaseURL, conf.FetchTimeout)
	waterTemp := providers.NewCoopsWaterTempService(conf.CoopsBaseURL, conf.FetchTimeout)

	pipeline := service.NewPipeline(
		locationRepo,
		weather,
		tides,
		waterTemp,
		hourlyRepo,
		dailyRepo,
		conf.Thresholds,
		conf.DefaultWaterTemp,
		conf.FetchTimeout,
		logger,
	)

	if conf.RunOnce {
		if _, err := pipeline.Run(context.Background()); err != nil {
			logger.Fatal().Err(err).Msg("pipeline run failed")
		}
		return
	}

	sched := scheduler.New(pipeline, conf.RefreshInterval, logger)
	if err := sched.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start scheduler")
	}

	logger.Info().Dur("interval", conf.RefreshInterval).Msg("scheduler started")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	<-ctx.Done()

	logger.Info().Msg("shutting down")
	sched.Stop()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&locations.Location{},
		&hourlyconditions.HourlyCondition{},
		&dailysummaries.DailySummary{},
	); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}
