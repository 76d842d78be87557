// Package telemetry mirrors sensor readings into InfluxDB.
//
// The relational store stays the source of truth. The mirror is
// best-effort: writes are batched and sent asynchronously, and failures
// are reported through the error callback only.
package telemetry

import (
	"errors"
	"strconv"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/hamstech/backend/internal/models"
)

var (
	ErrDisabled         = errors.New("telemetry disabled")
	ErrConnectionFailed = errors.New("influxdb connection failed")
	ErrNotConnected     = errors.New("influxdb not connected")
)

const measurement = "sensor_readings"

// Mirror receives every stored sensor reading.
type Mirror interface {
	RecordReading(r models.SensorReading)
}

// Nop is the mirror used when InfluxDB is not configured.
type Nop struct{}

func (Nop) RecordReading(models.SensorReading) {}

func readingPoint(r models.SensorReading) *write.Point {
	return write.NewPoint(
		measurement,
		map[string]string{
			"device_id": strconv.FormatUint(uint64(r.DeviceID), 10),
		},
		map[string]interface{}{
			"temperature": r.Temperature,
			"humidity":    r.Humidity,
			"reading_id":  int64(r.ID),
		},
		r.Timestamp,
	)
}
