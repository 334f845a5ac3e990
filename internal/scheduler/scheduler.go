package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"

	"beachday/shorecast/internal/service"
)

// Scheduler refreshes the rolling forecast window by running the pipeline
// periodically. Runs never overlap; a tick that lands while a run is still in
// flight waits for it.
type Scheduler struct {
	scheduler *gocron.Scheduler
	pipeline  service.Pipeline
	interval  time.Duration
	logger    zerolog.Logger
}

func New(pipeline service.Pipeline, interval time.Duration, logger zerolog.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		pipeline:  pipeline,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the periodic refresh and triggers the first run
// immediately.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %s", s.interval)
	}

	_, err := s.scheduler.Every(s.interval).StartImmediately().Do(func() {
		s.logger.Info().Msg("starting scheduled pipeline run")

		if _, err := s.pipeline.Run(context.Background()); err != nil {
			s.logger.Error().Err(err).Msg("pipeline run failed")
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
