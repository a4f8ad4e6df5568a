package models

// SensorReading is the decoded latest sample from the ThingSpeak channel.
// It is built fresh on every request and never persisted.
type SensorReading struct {
	FlowRate   float64 `json:"flowRate"`
	TankStatus string  `json:"tankStatus"`
	RainStatus string  `json:"rainStatus"`
	RelayState string  `json:"relayState"`
	Timestamp  string  `json:"timestamp"`
}
