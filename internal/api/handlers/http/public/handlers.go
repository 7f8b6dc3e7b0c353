package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vietts/insicuri/internal/auth"
	"github.com/vietts/insicuri/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type NearbyResolver interface {
	FindNearby(ctx context.Context, req domain.NearbyRequest) ([]domain.NearbyCandidate, error)
}

type SubmissionService interface {
	CreateSpotWithReport(ctx context.Context, req domain.CreateSpotRequest) (uuid.UUID, error)
	AddReportToSpot(ctx context.Context, spotID uuid.UUID, req domain.AddReportRequest) error
}

type SpotReader interface {
	GetSpot(ctx context.Context, id uuid.UUID) (*domain.Spot, []*domain.Report, error)
	ListInBBox(ctx context.Context, box domain.BBox, limit int) ([]*domain.Spot, error)
}

type PhotoStorage interface {
	UploadReportPhoto(ctx context.Context, r io.Reader, size int64, contentType string) (string, error)
}

type Handler struct {
	logger      *slog.Logger
	Nearby      NearbyResolver
	Submissions SubmissionService
	Spots       SpotReader
	Photos      PhotoStorage
}

func NewHandler(logger *slog.Logger, nearby NearbyResolver, submissions SubmissionService, spots SpotReader, photos PhotoStorage) *Handler {
	return &Handler{
		logger:      logger,
		Nearby:      nearby,
		Submissions: submissions,
		Spots:       spots,
		Photos:      photos,
	}
}

// SpotNearby answers the dedup question for a dropped pin: which
// existing spots within the merge radius could this report attach to.
func (h *Handler) SpotNearby(w http.ResponseWriter, r *http.Request) {
	var req domain.NearbyRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	candidates, err := h.Nearby.FindNearby(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Debug("nearby query served", slog.Int("candidates", len(candidates)))
	h.writeJSON(w, http.StatusOK, toNearbyResponse(candidates))
}

func (h *Handler) SpotCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateSpotRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	id, err := h.Submissions.CreateSpotWithReport(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("spot created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) SpotAddReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.AddReportRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Submissions.AddReportToSpot(r.Context(), id, req); err != nil {
		// SpotNotFound maps to 404: the client falls back to creating a
		// new spot instead of failing the submission.
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SpotGet(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	spot, reports, err := h.Spots.GetSpot(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toSpotDetailResponse(spot, reports))
}

func (h *Handler) SpotList(w http.ResponseWriter, r *http.Request) {
	box, err := parseBBox(r.URL.Query().Get("bbox"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bbox must be minLng,minLat,maxLng,maxLat"})
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 200)

	spots, err := h.Spots.ListInBBox(r.Context(), box, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toSpotListResponse(spots))
}

const maxPhotoBytes = 10 << 20

func (h *Handler) PhotoUpload(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	if _, ok := auth.UserID(r.Context()); !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		return
	}

	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart body"})
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "photo field required"})
		return
	}
	defer file.Close()

	url, err := h.Photos.UploadReportPhoto(r.Context(), file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("photo uploaded", slog.Int64("size", header.Size))
	h.writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
