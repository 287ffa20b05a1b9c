package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/parking-atlas/pkg/models/api"
	"github.com/de-tools/parking-atlas/pkg/services/currency"
	"github.com/de-tools/parking-atlas/pkg/services/parking"
	"github.com/de-tools/parking-atlas/pkg/store/dataset"
	"github.com/de-tools/parking-atlas/pkg/store/pricing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ds, err := dataset.Sample()
	require.NoError(t, err)
	catalog, err := parking.NewCatalog(ds)
	require.NoError(t, err)

	router := ConfigureRouter(Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Reporter: parking.NewService(catalog, pricing.NewStore(pricing.Settings{})),
			Money:    currency.Default(),
			Logger:   zerolog.New(zerolog.NewTestWriter(t)),
		},
	})
	testServer := httptest.NewServer(router)
	t.Cleanup(testServer.Close)
	return testServer
}

func TestWebAPI_Endpoints(t *testing.T) {
	testServer := newTestServer(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:           "Dashboard",
			path:           "/api/v1/dashboard",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				resp := unmarshal[api.Dashboard](t, body)
				assert.Equal(t, int64(11075), resp.TotalMinutes)
				assert.Equal(t, "$719,875", resp.TotalCost.Display)
				require.NotNil(t, resp.MostUsedAirport)
				assert.Equal(t, "LHR", resp.MostUsedAirport.Airport.Code)
			},
		},
		{
			name:           "Fleet",
			path:           "/api/v1/fleet",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				resp := unmarshal[api.Fleet](t, body)
				require.Len(t, resp.Aircraft, 5)
				assert.Equal(t, "a380-1", resp.Aircraft[0].Aircraft.ID)
				require.NotNil(t, resp.LeastParked)
				assert.Equal(t, "a350-1", resp.LeastParked.Aircraft.ID)
			},
		},
		{
			name:           "AnalyticsByAirport",
			path:           "/api/v1/analytics?airport=jfk",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				resp := unmarshal[api.Analytics](t, body)
				assert.Equal(t, int64(1395), resp.TotalMinutes)
				assert.Equal(t, 5, resp.RecordCount)
				assert.Equal(t, "$90,675", resp.TotalCost.Display)
			},
		},
		{
			name:           "AnalyticsTwoRecordScenario",
			path:           "/api/v1/analytics?aircraft=b777-1&airport=lhr",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				resp := unmarshal[api.Analytics](t, body)
				assert.Equal(t, int64(450), resp.TotalMinutes)
				assert.Equal(t, []api.DateTotal{
					{Date: "2023-06-11", Minutes: 210},
					{Date: "2023-06-18", Minutes: 240},
				}, resp.Dates)
			},
		},
		{
			name:           "AnalyticsUnknownAircraft",
			path:           "/api/v1/analytics?aircraft=concorde",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "GlobalEurope",
			path:           "/api/v1/global?continent=Europe",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				resp := unmarshal[api.Global](t, body)
				assert.Equal(t, int64(3740), resp.TotalMinutes)
				require.Len(t, resp.Airports, 3)
				assert.Equal(t, "lhr", resp.Airports[0].Airport.ID)
			},
		},
		{
			name:           "Aircraft",
			path:           "/api/v1/aircraft/b747-1",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				resp := unmarshal[api.Aircraft](t, body)
				assert.Equal(t, "LN-A102", resp.RegistrationNumber)
			},
		},
		{
			name:           "AirportNotFound",
			path:           "/api/v1/airports/atl",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Continent",
			path:           "/api/v1/continents/South%20Korea",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				assert.Equal(t, api.Continent{Country: "South Korea", Continent: "Asia"}, unmarshal[api.Continent](t, body))
			},
		},
		{
			name:           "UnknownRoute",
			path:           "/api/v1/workspaces",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			if tc.check != nil {
				tc.check(t, body)
			}
		})
	}
}

func TestNewWebAPI_DefaultShutdownTimeout(t *testing.T) {
	w := NewWebAPI(Config{Addr: "localhost:0"})
	assert.Equal(t, defaultShutdownTimeout, w.shutdownTimeout)
	assert.Equal(t, "localhost:0", w.server.Addr)
}

func unmarshal[T any](t *testing.T, data []byte) T {
	t.Helper()
	var response T
	require.NoError(t, json.Unmarshal(data, &response))
	return response
}
