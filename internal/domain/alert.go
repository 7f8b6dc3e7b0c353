package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertPayload is queued when a submission pushes a spot into the
// Critico band and delivered to the configured webhook.
type AlertPayload struct {
	SpotID       uuid.UUID `json:"spot_id"`
	Title        string    `json:"title"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	DangerScore  float64   `json:"danger_score"`
	ReportsCount int       `json:"reports_count"`
	TriggeredAt  time.Time `json:"triggered_at"`
}
