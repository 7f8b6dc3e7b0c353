package public

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/vietts/insicuri/internal/domain"
	"github.com/vietts/insicuri/internal/scoring"
	"github.com/vietts/insicuri/pkg/e"
)

type nearbyCandidateResponse struct {
	ID           uuid.UUID `json:"id"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Title        string    `json:"title"`
	DangerScore  float64   `json:"danger_score"`
	DangerLabel  string    `json:"danger_label"`
	ReportsCount int       `json:"reports_count"`
	DistanceM    float64   `json:"distance_m"`
}

type nearbyResponse struct {
	Candidates []nearbyCandidateResponse `json:"candidates"`
}

func toNearbyResponse(candidates []domain.NearbyCandidate) nearbyResponse {
	out := make([]nearbyCandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, nearbyCandidateResponse{
			ID:           c.ID,
			Lat:          c.Lat,
			Lng:          c.Lng,
			Title:        c.Title,
			DangerScore:  c.DangerScore,
			DangerLabel:  scoring.Label(c.DangerScore),
			ReportsCount: c.ReportsCount,
			DistanceM:    c.DistanceM,
		})
	}
	return nearbyResponse{Candidates: out}
}

type spotResponse struct {
	ID           uuid.UUID         `json:"id"`
	Lat          float64           `json:"lat"`
	Lng          float64           `json:"lng"`
	Title        string            `json:"title"`
	Address      *string           `json:"address,omitempty"`
	ReportsCount int               `json:"reports_count"`
	DangerScore  float64           `json:"danger_score"`
	DangerLabel  string            `json:"danger_label"`
	DangerColor  string            `json:"danger_color"`
	LastReportAt time.Time         `json:"last_report_at"`
	Status       domain.SpotStatus `json:"status"`
}

func toSpotResponse(sp *domain.Spot) spotResponse {
	return spotResponse{
		ID:           sp.ID,
		Lat:          sp.Lat,
		Lng:          sp.Lng,
		Title:        sp.Title,
		Address:      sp.Address,
		ReportsCount: sp.ReportsCount,
		DangerScore:  sp.DangerScore,
		DangerLabel:  scoring.Label(sp.DangerScore),
		DangerColor:  scoring.Color(sp.DangerScore),
		LastReportAt: sp.LastReportAt,
		Status:       sp.Status,
	}
}

type spotDetailResponse struct {
	Spot    spotResponse     `json:"spot"`
	Reports []*domain.Report `json:"reports"`
}

func toSpotDetailResponse(sp *domain.Spot, reports []*domain.Report) spotDetailResponse {
	if reports == nil {
		reports = []*domain.Report{}
	}
	return spotDetailResponse{Spot: toSpotResponse(sp), Reports: reports}
}

type spotListResponse struct {
	Spots []spotResponse `json:"spots"`
}

func toSpotListResponse(spots []*domain.Spot) spotListResponse {
	out := make([]spotResponse, 0, len(spots))
	for _, sp := range spots {
		out = append(out, toSpotResponse(sp))
	}
	return spotListResponse{Spots: out}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, e.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidCoordinates):
		status = http.StatusBadRequest
	case errors.Is(err, e.ErrConflict), errors.Is(err, e.ErrUniqueViolation):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
		h.log(r).Error("request failed", slog.Any("error", err))
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func parseBBox(raw string) (domain.BBox, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return domain.BBox{}, e.ErrInvalidInput
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return domain.BBox{}, e.ErrInvalidInput
		}
		vals[i] = f
	}
	return domain.BBox{MinLng: vals[0], MinLat: vals[1], MaxLng: vals[2], MaxLat: vals[3]}, nil
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
