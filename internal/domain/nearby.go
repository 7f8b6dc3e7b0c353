package domain

import (
	"time"

	"github.com/google/uuid"
)

// NearbyCandidate is a spot within the search radius of a query point,
// with its exact great-circle distance. Produced fresh per query, never
// persisted.
type NearbyCandidate struct {
	ID           uuid.UUID `json:"id"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Title        string    `json:"title"`
	DangerScore  float64   `json:"danger_score"`
	ReportsCount int       `json:"reports_count"`
	DistanceM    float64   `json:"distance_m"`
	LastReportAt time.Time `json:"last_report_at"`
}
