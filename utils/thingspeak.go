package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/srinitha06/Water-monitoring-system/models"
)

const (
	thingSpeakBaseURL   = "https://api.thingspeak.com"
	ThingSpeakChannelID = "3129473"
	ThingSpeakReadKey   = "PACOABSY0TLV6NDY"
)

// ThingSpeakClient fetches the most recent sample from a ThingSpeak channel.
type ThingSpeakClient struct {
	BaseURL    string
	ChannelID  string
	ReadAPIKey string
	HTTPClient *http.Client
}

// NewThingSpeakClient returns a client bound to the dispenser telemetry channel.
func NewThingSpeakClient() *ThingSpeakClient {
	return &ThingSpeakClient{
		BaseURL:    thingSpeakBaseURL,
		ChannelID:  ThingSpeakChannelID,
		ReadAPIKey: ThingSpeakReadKey,
		HTTPClient: http.DefaultClient,
	}
}

type feedEntry struct {
	CreatedAt string `json:"created_at"`
	Field1    string `json:"field1"`
	Field2    string `json:"field2"`
	Field3    string `json:"field3"`
	Field4    string `json:"field4"`
}

type feedResponse struct {
	Feeds []feedEntry `json:"feeds"`
}

// LatestReading fetches exactly one sample and decodes the four raw fields.
// Field thresholds match the channel's firmware: field2 is the tank float
// switch ("0" means low), field3 the rain sensor, field4 the pump relay.
func (t *ThingSpeakClient) LatestReading(ctx context.Context) (models.SensorReading, error) {
	var reading models.SensorReading

	url := fmt.Sprintf("%s/channels/%s/feeds.json?api_key=%s&results=1", t.BaseURL, t.ChannelID, t.ReadAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return reading, err
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return reading, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return reading, fmt.Errorf("thingspeak returned status %d", resp.StatusCode)
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return reading, fmt.Errorf("decoding thingspeak response: %w", err)
	}
	if len(feed.Feeds) == 0 {
		return reading, fmt.Errorf("no feed entries for channel %s", t.ChannelID)
	}

	latest := feed.Feeds[0]

	reading = models.SensorReading{
		FlowRate:   parseFlowRate(latest.Field1),
		TankStatus: "FULL",
		RainStatus: "No Rain",
		RelayState: "OFF",
		Timestamp:  latest.CreatedAt,
	}
	if latest.Field2 == "0" {
		reading.TankStatus = "LOW"
	}
	if latest.Field3 == "1" {
		reading.RainStatus = "Rain Detected"
	}
	if latest.Field4 == "1" {
		reading.RelayState = "ON"
	}
	return reading, nil
}

// parseFlowRate decodes the longest leading numeric prefix of the raw field,
// so a trailing unit suffix still yields its value. Anything without a numeric
// prefix reads as 0, not as an error.
func parseFlowRate(raw string) float64 {
	s := strings.TrimSpace(raw)
	for i := len(s); i > 0; i-- {
		if v, err := strconv.ParseFloat(s[:i], 64); err == nil && !math.IsNaN(v) {
			return v
		}
	}
	return 0
}
