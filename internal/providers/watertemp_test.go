package providers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"beachday/shorecast/internal/providers"
)

type CoopsWaterTempServiceTestSuite struct {
	suite.Suite
	server  *httptest.Server
	service providers.WaterTempProvider
	ctx     context.Context

	scenario string
}

func (s *CoopsWaterTempServiceTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("latest", r.URL.Query().Get("date"))
		s.Equal("water_temperature", r.URL.Query().Get("product"))
		s.Equal("english", r.URL.Query().Get("units"))

		switch s.scenario {
		case "empty":
			w.Write([]byte(`{"data": []}`))
		case "station_error":
			w.Write([]byte(`{"error": {"message": "Station not found"}}`))
		case "malformed":
			w.Write([]byte("{malformed json"))
		case "server_error":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.Write([]byte(`{"data": [{"v": "58.6"}]}`))
		}
	}))

	s.service = providers.NewCoopsWaterTempService(s.server.URL, 5*time.Second)
	s.ctx = context.Background()
	s.scenario = ""
}

func (s *CoopsWaterTempServiceTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *CoopsWaterTempServiceTestSuite) TestFetchLatestSuccess() {
	temp, err := s.service.FetchLatest(s.ctx, "9413745")

	s.NoError(err)
	s.Equal(58.6, temp)
}

func (s *CoopsWaterTempServiceTestSuite) TestFetchLatestEmptyPayload() {
	s.scenario = "empty"

	_, err := s.service.FetchLatest(s.ctx, "9413745")

	s.Error(err)
	s.Contains(err.Error(), "no readings")
}

func (s *CoopsWaterTempServiceTestSuite) TestFetchLatestStationError() {
	s.scenario = "station_error"

	_, err := s.service.FetchLatest(s.ctx, "0000000")

	s.Error(err)
	s.Contains(err.Error(), "Station not found")
}

func (s *CoopsWaterTempServiceTestSuite) TestFetchLatestMalformedJSON() {
	s.scenario = "malformed"

	_, err := s.service.FetchLatest(s.ctx, "9413745")

	s.Error(err)
	s.Contains(err.Error(), "malformed JSON")
}

func (s *CoopsWaterTempServiceTestSuite) TestFetchLatestServerError() {
	s.scenario = "server_error"

	_, err := s.service.FetchLatest(s.ctx, "9413745")

	s.Error(err)
	s.Contains(err.Error(), "status code")
}

func TestCoopsWaterTempServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CoopsWaterTempServiceTestSuite))
}
