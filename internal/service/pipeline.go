package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"beachday/shorecast/internal/db/dailysummaries"
	"beachday/shorecast/internal/db/hourlyconditions"
	"beachday/shorecast/internal/db/locations"
	"beachday/shorecast/internal/forecast"
	"beachday/shorecast/internal/providers"
)

type Status string

const (
	StatusOK       Status = "ok"
	StatusDegraded Status = "degraded"
	StatusFailed   Status = "failed"
)

// LocationResult is the outcome of one location's pass through the pipeline.
// A failed location never aborts the run.
type LocationResult struct {
	LocationID uint
	Name       string
	Status     Status
	Warnings   []string
	Err        error
}

type RunReport struct {
	Started  time.Time
	Finished time.Time
	Results  []LocationResult
}

func (r RunReport) Counts() (ok, degraded, failed int) {
	for _, res := range r.Results {
		switch res.Status {
		case StatusOK:
			ok++
		case StatusDegraded:
			degraded++
		case StatusFailed:
			failed++
		}
	}
	return ok, degraded, failed
}

type Pipeline interface {
	Run(ctx context.Context) (RunReport, error)
}

type conditionsPipeline struct {
	locationRepo locations.Repository
	weather      providers.ForecastProvider
	tides        providers.TideProvider
	waterTemp    providers.WaterTempProvider
	hourlyRepo   hourlyconditions.Repository
	dailyRepo    dailysummaries.Repository

	thresholds       forecast.Thresholds
	defaultWaterTemp float64
	fetchTimeout     time.Duration
	logger           zerolog.Logger

	now func() time.Time
}

func NewPipeline(
	locationRepo locations.Repository,
	weather providers.ForecastProvider,
	tides providers.TideProvider,
	waterTemp providers.WaterTempProvider,
	hourlyRepo hourlyconditions.Repository,
	dailyRepo dailysummaries.Repository,
	thresholds forecast.Thresholds,
	defaultWaterTemp float64,
	fetchTimeout time.Duration,
	logger zerolog.Logger,
) Pipeline {
	return &conditionsPipeline{
		locationRepo:     locationRepo,
		weather:          weather,
		tides:            tides,
		waterTemp:        waterTemp,
		hourlyRepo:       hourlyRepo,
		dailyRepo:        dailyRepo,
		thresholds:       thresholds,
		defaultWaterTemp: defaultWaterTemp,
		fetchTimeout:     fetchTimeout,
		logger:           logger,
		now:              time.Now,
	}
}

// Run processes every active location sequentially and reports a per-location
// outcome. Only an unreachable location source fails the run as a whole.
func (p *conditionsPipeline) Run(ctx context.Context) (RunReport, error) {
	report := RunReport{Started: p.now()}

	locs, err := p.locationRepo.Active()
	if err != nil {
		return report, fmt.Errorf("loading active locations: %w", err)
	}

	for _, loc := range locs {
		result := p.processLocation(ctx, loc)
		report.Results = append(report.Results, result)

		event := p.logger.Info()
		if result.Status == StatusFailed {
			event = p.logger.Error().Err(result.Err)
		}
		event.
			Uint("location_id", loc.ID).
			Str("location", loc.Name).
			Str("status", string(result.Status)).
			Strs("warnings", result.Warnings).
			Msg("location processed")
	}

	report.Finished = p.now()
	ok, degraded, failed := report.Counts()
	p.logger.Info().
		Int("ok", ok).
		Int("degraded", degraded).
		Int("failed", failed).
		Dur("duration", report.Finished.Sub(report.Started)).
		Msg("pipeline run completed")

	return report, nil
}

type fetchResults struct {
	series     forecast.WeatherSeries
	weatherErr error

	tidePoints []forecast.TidePoint
	tideErr    error

	waterTemp    float64
	waterTempErr error
}

func (p *conditionsPipeline) processLocation(ctx context.Context, loc locations.Location) (result LocationResult) {
	result = LocationResult{LocationID: loc.ID, Name: loc.Name, Status: StatusOK}

	// The location boundary: a panic in fusion or rollup becomes a failed
	// result instead of taking down the run.
	defer func() {
		if r := recover(); r != nil {
			result.Status = StatusFailed
			result.Err = fmt.Errorf("panic processing location %s: %v", loc.Name, r)
		}
	}()

	runStart := p.now()
	windowStart, windowEnd := forecast.RunWindow(runStart, 7)

	fetched := p.fetchAll(ctx, loc, windowStart, windowEnd)

	// Weather is required; without it there is nothing to fuse or score.
	if fetched.weatherErr != nil {
		result.Status = StatusFailed
		result.Err = fmt.Errorf("weather fetch: %w", fetched.weatherErr)
		return result
	}

	if fetched.tideErr != nil {
		p.logger.Warn().Err(fetched.tideErr).Str("location", loc.Name).
			Msg("tide fetch failed, tide heights default to 0")
		result.Warnings = append(result.Warnings, "tide data unavailable")
	}

	waterTemp := fetched.waterTemp
	if fetched.waterTempErr != nil {
		p.logger.Warn().Err(fetched.waterTempErr).Str("location", loc.Name).
			Float64("default", p.defaultWaterTemp).
			Msg("water temperature fetch failed, using default")
		result.Warnings = append(result.Warnings, "water temperature unavailable")
		waterTemp = p.defaultWaterTemp
	}

	hourly := forecast.MergeHourly(loc.ID, fetched.series, fetched.tidePoints)
	daily := forecast.BuildDailySummaries(loc.ID, fetched.series, waterTemp, hourly, p.thresholds)

	// Persistence failures are logged per table and never abort the
	// location's remaining writes. The delete filter must cover every row
	// about to be inserted: the weather timeline is the location's local
	// wall-clock, which for locations west of UTC can start before the
	// server's UTC day boundary. Anchoring at the earlier of the two keeps
	// re-runs from leaving stale rows behind and duplicating them.
	deleteFrom := windowStart
	if len(fetched.series.Hourly.Time) > 0 && fetched.series.Hourly.Time[0].Before(deleteFrom) {
		deleteFrom = fetched.series.Hourly.Time[0]
	}
	if err := p.hourlyRepo.ReplaceWindow(loc.ID, deleteFrom, hourly); err != nil {
		p.logger.Error().Err(err).Str("location", loc.Name).Msg("failed to replace hourly window")
		result.Warnings = append(result.Warnings, "hourly persist failed")
	}
	if err := p.dailyRepo.Upsert(daily); err != nil {
		p.logger.Error().Err(err).Str("location", loc.Name).Msg("failed to upsert daily summaries")
		result.Warnings = append(result.Warnings, "daily persist failed")
	}

	if len(result.Warnings) > 0 {
		result.Status = StatusDegraded
	}
	return result
}

// fetchAll runs the three provider fetches concurrently and joins before
// returning. Each fetch gets its own bounded timeout; a timeout is treated
// exactly like any other fetch failure.
func (p *conditionsPipeline) fetchAll(ctx context.Context, loc locations.Location, begin, end time.Time) fetchResults {
	var fetched fetchResults
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
		defer cancel()
		fetched.series, fetched.weatherErr = p.weather.FetchForecast(fetchCtx, loc.Latitude, loc.Longitude)
	}()

	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
		defer cancel()
		fetched.tidePoints, fetched.tideErr = p.tides.FetchPredictions(fetchCtx, loc.TideStationID, begin, end)
	}()

	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
		defer cancel()
		fetched.waterTemp, fetched.waterTempErr = p.waterTemp.FetchLatest(fetchCtx, loc.TideStationID)
	}()

	wg.Wait()
	return fetched
}
