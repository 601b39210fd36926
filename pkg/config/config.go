package config

import "time"

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	LogLevel          string        // sets the log level (zap log level values)
	LogFormat         string        // text vs json
	EnableTelemetry   bool          // enable telemetry
	TelemetryInterval time.Duration // interval for exporting metrics
	TickRate          float64       // simulation updates per second
	Speed             float64       // playback speed multiplier (0 means: go as fast as possible)
	EngineMaxSpeed    float64       // engine max speed of the kart in m/s
	LowestPoint       float64       // lowest point of the kart model
	KartLength        float64       // length of the kart model
)
