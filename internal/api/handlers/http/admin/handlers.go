package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/vietts/insicuri/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AdminSpots interface {
	List(ctx context.Context, page, limit int) ([]*domain.Spot, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Spot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SpotStatus) error
	Remove(ctx context.Context, id uuid.UUID) error
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportingStats, error)
}

type Handler struct {
	logger *slog.Logger
	Admin  AdminSpots
	Stats  StatsGetter
}

func NewHandler(logger *slog.Logger, admin AdminSpots, stats StatsGetter) *Handler {
	return &Handler{
		logger: logger,
		Admin:  admin,
		Stats:  stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminSpotList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
	}

	spots, total, err := h.Admin.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("spots listed", slog.Int("count", len(spots)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"spots": spots,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *Handler) AdminSpotGet(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	spot, err := h.Admin.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, spot)
}

func (h *Handler) AdminSpotUpdateStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateSpotStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if !req.Status.Valid() {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "status must be active, resolved or removed"})
		return
	}

	if err := h.Admin.UpdateStatus(r.Context(), id, req.Status); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("spot status updated", slog.String("id", id.String()), slog.String("status", string(req.Status)))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminSpotRemove(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Admin.Remove(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	minutesStr := r.URL.Query().Get("minutes")
	if minutesStr == "" {
		minutesStr = "60"
	}

	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes <= 0 || minutes > 1440 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minutes must be 1-1440"})
		return
	}

	stats, err := h.Stats.GetStats(r.Context(), domain.StatsRequest{Minutes: minutes})
	if err != nil {
		l.Error("Stats.GetStats failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
