package utils

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srinitha06/Water-monitoring-system/models"
)

func newTestClient(serverURL string) *ThingSpeakClient {
	client := NewThingSpeakClient()
	client.BaseURL = serverURL
	return client
}

func feedServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/channels/3129473/feeds.json", r.URL.Path)
		assert.Equal(t, ThingSpeakReadKey, r.URL.Query().Get("api_key"))
		assert.Equal(t, "1", r.URL.Query().Get("results"))
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

func TestLatestReadingDecoding(t *testing.T) {
	tests := []struct {
		name     string
		field1   string
		field2   string
		field3   string
		field4   string
		expected models.SensorReading
	}{
		{
			name:   "tank low rain detected relay on",
			field1: "2.75",
			field2: "0",
			field3: "1",
			field4: "1",
			expected: models.SensorReading{
				FlowRate:   2.75,
				TankStatus: "LOW",
				RainStatus: "Rain Detected",
				RelayState: "ON",
				Timestamp:  "2025-10-01T08:30:00Z",
			},
		},
		{
			name:   "tank full no rain relay off",
			field1: "0.5",
			field2: "1",
			field3: "0",
			field4: "0",
			expected: models.SensorReading{
				FlowRate:   0.5,
				TankStatus: "FULL",
				RainStatus: "No Rain",
				RelayState: "OFF",
				Timestamp:  "2025-10-01T08:30:00Z",
			},
		},
		{
			name:   "unparsable flow rate reads as zero",
			field1: "abc",
			field2: "0",
			field3: "0",
			field4: "0",
			expected: models.SensorReading{
				FlowRate:   0,
				TankStatus: "LOW",
				RainStatus: "No Rain",
				RelayState: "OFF",
				Timestamp:  "2025-10-01T08:30:00Z",
			},
		},
		{
			name:   "flow rate keeps leading numeric prefix",
			field1: "3.1abc",
			field2: "1",
			field3: "0",
			field4: "0",
			expected: models.SensorReading{
				FlowRate:   3.1,
				TankStatus: "FULL",
				RainStatus: "No Rain",
				RelayState: "OFF",
				Timestamp:  "2025-10-01T08:30:00Z",
			},
		},
		{
			name:   "flow rate with unit suffix",
			field1: " 2.5 L/min",
			field2: "1",
			field3: "0",
			field4: "0",
			expected: models.SensorReading{
				FlowRate:   2.5,
				TankStatus: "FULL",
				RainStatus: "No Rain",
				RelayState: "OFF",
				Timestamp:  "2025-10-01T08:30:00Z",
			},
		},
		{
			name:   "missing fields map to full no-rain off",
			field1: "",
			field2: "",
			field3: "",
			field4: "",
			expected: models.SensorReading{
				FlowRate:   0,
				TankStatus: "FULL",
				RainStatus: "No Rain",
				RelayState: "OFF",
				Timestamp:  "2025-10-01T08:30:00Z",
			},
		},
		{
			name:   "any non-zero tank value is full",
			field1: "1.2",
			field2: "7",
			field3: "2",
			field4: "2",
			expected: models.SensorReading{
				FlowRate:   1.2,
				TankStatus: "FULL",
				RainStatus: "No Rain",
				RelayState: "OFF",
				Timestamp:  "2025-10-01T08:30:00Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := fmt.Sprintf(`{"feeds":[{"created_at":"2025-10-01T08:30:00Z","field1":%q,"field2":%q,"field3":%q,"field4":%q}]}`,
				tt.field1, tt.field2, tt.field3, tt.field4)
			server := feedServer(t, body, http.StatusOK)
			defer server.Close()

			reading, err := newTestClient(server.URL).LatestReading(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, reading)
		})
	}
}

func TestLatestReadingNoEntries(t *testing.T) {
	server := feedServer(t, `{"feeds":[]}`, http.StatusOK)
	defer server.Close()

	_, err := newTestClient(server.URL).LatestReading(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no feed entries")
}

func TestLatestReadingUpstreamError(t *testing.T) {
	server := feedServer(t, `{"error":"channel unavailable"}`, http.StatusBadGateway)
	defer server.Close()

	_, err := newTestClient(server.URL).LatestReading(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestLatestReadingMalformedBody(t *testing.T) {
	server := feedServer(t, `not json`, http.StatusOK)
	defer server.Close()

	_, err := newTestClient(server.URL).LatestReading(context.Background())
	require.Error(t, err)
}

func TestLatestReadingUnreachable(t *testing.T) {
	server := feedServer(t, `{}`, http.StatusOK)
	server.Close()

	_, err := newTestClient(server.URL).LatestReading(context.Background())
	require.Error(t, err)
}
