package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"beachday/shorecast/internal/db/locations"
	"beachday/shorecast/internal/forecast"
	"beachday/shorecast/internal/mocks"
	"beachday/shorecast/internal/service"
)

type PipelineTestSuite struct {
	suite.Suite
	locationRepo *mocks.MockLocationRepository
	weather      *mocks.MockForecastProvider
	tides        *mocks.MockTideProvider
	waterTemp    *mocks.MockWaterTempProvider
	hourlyRepo   *mocks.MockHourlyRepository
	dailyRepo    *mocks.MockDailyRepository
	pipeline     service.Pipeline
	ctx          context.Context
}

func (s *PipelineTestSuite) SetupTest() {
	s.locationRepo = mocks.NewMockLocationRepository(s.T())
	s.weather = mocks.NewMockForecastProvider(s.T())
	s.tides = mocks.NewMockTideProvider(s.T())
	s.waterTemp = mocks.NewMockWaterTempProvider(s.T())
	s.hourlyRepo = mocks.NewMockHourlyRepository(s.T())
	s.dailyRepo = mocks.NewMockDailyRepository(s.T())

	s.pipeline = service.NewPipeline(
		s.locationRepo,
		s.weather,
		s.tides,
		s.waterTemp,
		s.hourlyRepo,
		s.dailyRepo,
		forecast.DefaultThresholds(),
		60,
		5*time.Second,
		zerolog.Nop(),
	)
	s.ctx = context.Background()
}

func (s *PipelineTestSuite) location(id uint, name string) locations.Location {
	return locations.Location{
		ID:            id,
		Name:          name,
		Latitude:      36.9622,
		Longitude:     -122.0245,
		TideStationID: "9413745",
		IsActive:      true,
	}
}

func (s *PipelineTestSuite) weatherSeries(day time.Time, hours int) forecast.WeatherSeries {
	ws := forecast.WeatherSeries{}
	for i := 0; i < hours; i++ {
		ws.Hourly.Time = append(ws.Hourly.Time, day.Add(time.Duration(i)*time.Hour))
		ws.Hourly.Temperature = append(ws.Hourly.Temperature, 72)
		ws.Hourly.ApparentTemp = append(ws.Hourly.ApparentTemp, 74)
		ws.Hourly.Humidity = append(ws.Hourly.Humidity, 60)
		ws.Hourly.WindSpeed = append(ws.Hourly.WindSpeed, 8)
		ws.Hourly.PrecipProbability = append(ws.Hourly.PrecipProbability, 5)
		ws.Hourly.UVIndex = append(ws.Hourly.UVIndex, 4)
	}
	ws.Daily.Time = []time.Time{day}
	ws.Daily.TemperatureMax = []float64{78}
	ws.Daily.TemperatureMin = []float64{61}
	ws.Daily.PrecipProbabilityMax = []float64{5}
	ws.Daily.UVIndexMax = []float64{7}
	ws.Daily.Sunrise = []time.Time{day.Add(6 * time.Hour)}
	ws.Daily.Sunset = []time.Time{day.Add(20 * time.Hour)}
	return ws
}

func (s *PipelineTestSuite) TestRunHappyPath() {
	loc := s.location(1, "Cowell Beach")
	day := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 1)
	series := s.weatherSeries(day, 3)

	s.locationRepo.On("Active").Return([]locations.Location{loc}, nil)
	s.weather.On("FetchForecast", mock.Anything, loc.Latitude, loc.Longitude).Return(series, nil)
	s.tides.On("FetchPredictions", mock.Anything, "9413745", mock.Anything, mock.Anything).
		Return([]forecast.TidePoint{{Time: day, Height: 2.1}}, nil)
	s.waterTemp.On("FetchLatest", mock.Anything, "9413745").Return(58.6, nil)

	s.hourlyRepo.On("ReplaceWindow", loc.ID, mock.Anything, mock.MatchedBy(func(recs []forecast.HourlyRecord) bool {
		return len(recs) == 3 && recs[0].TideHeight == 2.1
	})).Return(nil)
	s.dailyRepo.On("Upsert", mock.MatchedBy(func(sums []forecast.DailySummary) bool {
		return len(sums) == 1 && sums[0].WaterTemp == 58.6
	})).Return(nil)

	report, err := s.pipeline.Run(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(report.Results, 1)
	s.Equal(service.StatusOK, report.Results[0].Status)
	s.Empty(report.Results[0].Warnings)
}

func (s *PipelineTestSuite) TestRunDeleteWindowCoversLocalDaySkew() {
	loc := s.location(1, "Cowell Beach")
	// A location west of UTC during local evening: the provider's local
	// wall-clock timeline starts a calendar day before the server's UTC
	// day boundary. The delete anchor has to reach back to the series
	// start or those rows would survive every re-run and duplicate.
	windowStart := time.Now().UTC().Truncate(24 * time.Hour)
	seriesStart := windowStart.AddDate(0, 0, -1)
	series := s.weatherSeries(seriesStart, 3)

	s.locationRepo.On("Active").Return([]locations.Location{loc}, nil)
	s.weather.On("FetchForecast", mock.Anything, loc.Latitude, loc.Longitude).Return(series, nil)
	s.tides.On("FetchPredictions", mock.Anything, "9413745", mock.Anything, mock.Anything).
		Return([]forecast.TidePoint{}, nil)
	s.waterTemp.On("FetchLatest", mock.Anything, "9413745").Return(58.6, nil)

	s.hourlyRepo.On("ReplaceWindow", loc.ID, mock.MatchedBy(func(from time.Time) bool {
		return from.Equal(seriesStart)
	}), mock.Anything).Return(nil)
	s.dailyRepo.On("Upsert", mock.Anything).Return(nil)

	report, err := s.pipeline.Run(s.ctx)

	s.Require().NoError(err)
	s.Equal(service.StatusOK, report.Results[0].Status)
}

func (s *PipelineTestSuite) TestRunWeatherFailureSkipsLocationButContinues() {
	broken := s.location(1, "Broken Beach")
	healthy := s.location(2, "Healthy Beach")
	day := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 1)
	series := s.weatherSeries(day, 2)

	s.locationRepo.On("Active").Return([]locations.Location{broken, healthy}, nil)

	s.weather.On("FetchForecast", mock.Anything, broken.Latitude, broken.Longitude).
		Return(forecast.WeatherSeries{}, errors.New("provider down")).Once()
	s.weather.On("FetchForecast", mock.Anything, healthy.Latitude, healthy.Longitude).
		Return(series, nil).Once()

	s.tides.On("FetchPredictions", mock.Anything, "9413745", mock.Anything, mock.Anything).
		Return([]forecast.TidePoint{}, nil)
	s.waterTemp.On("FetchLatest", mock.Anything, "9413745").Return(58.6, nil)

	s.hourlyRepo.On("ReplaceWindow", healthy.ID, mock.Anything, mock.Anything).Return(nil)
	s.dailyRepo.On("Upsert", mock.Anything).Return(nil)

	report, err := s.pipeline.Run(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(report.Results, 2)
	s.Equal(service.StatusFailed, report.Results[0].Status)
	s.ErrorContains(report.Results[0].Err, "provider down")
	s.Equal(service.StatusOK, report.Results[1].Status)

	s.hourlyRepo.AssertNotCalled(s.T(), "ReplaceWindow", broken.ID, mock.Anything, mock.Anything)
}

func (s *PipelineTestSuite) TestRunTideFailureDegrades() {
	loc := s.location(1, "Cowell Beach")
	day := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 1)
	series := s.weatherSeries(day, 2)

	s.locationRepo.On("Active").Return([]locations.Location{loc}, nil)
	s.weather.On("FetchForecast", mock.Anything, loc.Latitude, loc.Longitude).Return(series, nil)
	s.tides.On("FetchPredictions", mock.Anything, "9413745", mock.Anything, mock.Anything).
		Return(nil, errors.New("station offline"))
	s.waterTemp.On("FetchLatest", mock.Anything, "9413745").Return(58.6, nil)

	s.hourlyRepo.On("ReplaceWindow", loc.ID, mock.Anything, mock.MatchedBy(func(recs []forecast.HourlyRecord) bool {
		for _, r := range recs {
			if r.TideHeight != 0 {
				return false
			}
		}
		return len(recs) == 2
	})).Return(nil)
	s.dailyRepo.On("Upsert", mock.Anything).Return(nil)

	report, err := s.pipeline.Run(s.ctx)

	s.Require().NoError(err)
	s.Equal(service.StatusDegraded, report.Results[0].Status)
	s.Contains(report.Results[0].Warnings, "tide data unavailable")
}

func (s *PipelineTestSuite) TestRunWaterTempFailureUsesDefault() {
	loc := s.location(1, "Cowell Beach")
	day := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 1)
	series := s.weatherSeries(day, 2)

	s.locationRepo.On("Active").Return([]locations.Location{loc}, nil)
	s.weather.On("FetchForecast", mock.Anything, loc.Latitude, loc.Longitude).Return(series, nil)
	s.tides.On("FetchPredictions", mock.Anything, "9413745", mock.Anything, mock.Anything).
		Return([]forecast.TidePoint{}, nil)
	s.waterTemp.On("FetchLatest", mock.Anything, "9413745").
		Return(0.0, errors.New("no readings"))

	s.hourlyRepo.On("ReplaceWindow", loc.ID, mock.Anything, mock.Anything).Return(nil)
	s.dailyRepo.On("Upsert", mock.MatchedBy(func(sums []forecast.DailySummary) bool {
		return len(sums) == 1 && sums[0].WaterTemp == 60
	})).Return(nil)

	report, err := s.pipeline.Run(s.ctx)

	s.Require().NoError(err)
	s.Equal(service.StatusDegraded, report.Results[0].Status)
	s.Contains(report.Results[0].Warnings, "water temperature unavailable")
}

func (s *PipelineTestSuite) TestRunPersistFailureDoesNotBlockOtherTables() {
	loc := s.location(1, "Cowell Beach")
	day := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 1)
	series := s.weatherSeries(day, 2)

	s.locationRepo.On("Active").Return([]locations.Location{loc}, nil)
	s.weather.On("FetchForecast", mock.Anything, loc.Latitude, loc.Longitude).Return(series, nil)
	s.tides.On("FetchPredictions", mock.Anything, "9413745", mock.Anything, mock.Anything).
		Return([]forecast.TidePoint{}, nil)
	s.waterTemp.On("FetchLatest", mock.Anything, "9413745").Return(58.6, nil)

	s.hourlyRepo.On("ReplaceWindow", loc.ID, mock.Anything, mock.Anything).
		Return(errors.New("insert failed"))
	s.dailyRepo.On("Upsert", mock.Anything).Return(nil)

	report, err := s.pipeline.Run(s.ctx)

	s.Require().NoError(err)
	s.Equal(service.StatusDegraded, report.Results[0].Status)
	s.Contains(report.Results[0].Warnings, "hourly persist failed")
	s.dailyRepo.AssertCalled(s.T(), "Upsert", mock.Anything)
}

func (s *PipelineTestSuite) TestRunLocationSourceFailureIsFatal() {
	s.locationRepo.On("Active").Return(nil, errors.New("connection refused"))

	_, err := s.pipeline.Run(s.ctx)

	s.Require().Error(err)
	s.ErrorContains(err, "loading active locations")
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}
