package domain

import (
	"time"

	"github.com/google/uuid"
)

type SpotStatus string

const (
	SpotActive   SpotStatus = "active"
	SpotResolved SpotStatus = "resolved"
	SpotRemoved  SpotStatus = "removed"
)

func (s SpotStatus) Valid() bool {
	switch s {
	case SpotActive, SpotResolved, SpotRemoved:
		return true
	}
	return false
}

// Spot is a physical location aggregating one or more hazard reports.
// ReportsCount, DangerScore and LastReportAt are derived from the reports
// and only mutated inside the storage transaction that attaches a report.
type Spot struct {
	ID           uuid.UUID  `json:"id"`
	Lat          float64    `json:"lat" validate:"lat"` // -90..90
	Lng          float64    `json:"lng" validate:"lng"` // -180..180
	Title        string     `json:"title"`
	Address      *string    `json:"address,omitempty"`
	ReportsCount int        `json:"reports_count"`
	DangerScore  float64    `json:"danger_score"`
	LastReportAt time.Time  `json:"last_report_at"`
	Status       SpotStatus `json:"status"`
	CreatedBy    uuid.UUID  `json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CachedSpot is the slim projection kept in the active-spot cache and
// consumed by the resolver's fallback path.
type CachedSpot struct {
	ID           uuid.UUID `json:"id"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Title        string    `json:"title"`
	DangerScore  float64   `json:"danger_score"`
	ReportsCount int       `json:"reports_count"`
	LastReportAt time.Time `json:"last_report_at"`
}

// BBox is a map viewport, corners in degrees.
type BBox struct {
	MinLng float64
	MinLat float64
	MaxLng float64
	MaxLat float64
}
