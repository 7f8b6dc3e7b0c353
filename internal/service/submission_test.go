package service_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/vietts/insicuri/internal/domain"
	"github.com/vietts/insicuri/internal/scoring"
	"github.com/vietts/insicuri/internal/service"
	mock_service "github.com/vietts/insicuri/internal/service/mocks"
	"github.com/vietts/insicuri/pkg/e"
)

func validCreateRequest() domain.CreateSpotRequest {
	return domain.CreateSpotRequest{
		Lat:      46.0711,
		Lng:      13.2346,
		Title:    "Buca pericolosa",
		Category: domain.CategoryBucaDissesto,
		Severity: 4,
	}
}

func TestSubmission_CreateSpot_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportRepository(ctrl)
	identity := mock_service.NewMockIdentity(ctrl)
	alerts := mock_service.NewMockAlertQueue(ctrl)

	userID := uuid.New()
	identity.EXPECT().CurrentUser(gomock.Any()).Return(userID, nil).Times(1)

	var gotSpot *domain.Spot
	var gotReport *domain.Report
	reports.EXPECT().
		CreateSpotWithReport(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spot *domain.Spot, report *domain.Report) error {
			gotSpot, gotReport = spot, report
			return nil
		}).
		Times(1)

	svc := service.NewSubmissionService(reports, identity, alerts, discardLogger())

	id, err := svc.CreateSpotWithReport(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("returned nil spot id")
	}

	if gotSpot.ID != id {
		t.Fatalf("spot id mismatch: returned %s, persisted %s", id, gotSpot.ID)
	}
	if gotSpot.ReportsCount != 1 {
		t.Fatalf("ReportsCount = %d, want 1", gotSpot.ReportsCount)
	}
	if gotSpot.Status != domain.SpotActive {
		t.Fatalf("Status = %q, want active", gotSpot.Status)
	}
	if gotSpot.CreatedBy != userID {
		t.Fatalf("CreatedBy = %s, want %s", gotSpot.CreatedBy, userID)
	}
	// single severity-4 report
	if gotSpot.DangerScore != 4.8 {
		t.Fatalf("DangerScore = %v, want 4.8", gotSpot.DangerScore)
	}
	if gotReport.SpotID != gotSpot.ID || gotReport.UserID != userID {
		t.Fatalf("report not linked: %+v", gotReport)
	}
	if gotReport.Severity != 4 || gotReport.Category != domain.CategoryBucaDissesto {
		t.Fatalf("report fields lost: %+v", gotReport)
	}
}

func TestSubmission_CreateSpot_Unauthenticated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportRepository(ctrl)
	identity := mock_service.NewMockIdentity(ctrl)
	alerts := mock_service.NewMockAlertQueue(ctrl)

	identity.EXPECT().CurrentUser(gomock.Any()).Return(uuid.Nil, e.ErrUnauthenticated).Times(1)
	// the repository must never be touched

	svc := service.NewSubmissionService(reports, identity, alerts, discardLogger())

	_, err := svc.CreateSpotWithReport(context.Background(), validCreateRequest())
	if !errors.Is(err, e.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
}

func TestSubmission_AddReport_Unauthenticated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportRepository(ctrl)
	identity := mock_service.NewMockIdentity(ctrl)
	alerts := mock_service.NewMockAlertQueue(ctrl)

	identity.EXPECT().CurrentUser(gomock.Any()).Return(uuid.Nil, e.ErrUnauthenticated).Times(1)
	// the repository must never be touched

	svc := service.NewSubmissionService(reports, identity, alerts, discardLogger())

	err := svc.AddReportToSpot(context.Background(), uuid.New(), domain.AddReportRequest{
		Category: domain.CategoryBucaDissesto,
		Severity: 3,
	})
	if !errors.Is(err, e.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
}

func TestSubmission_CreateSpot_Validation(t *testing.T) {
	t.Parallel()

	longTitle := make([]byte, 101)
	for i := range longTitle {
		longTitle[i] = 'a'
	}

	cases := []struct {
		name    string
		mutate  func(*domain.CreateSpotRequest)
		wantErr error
	}{
		{"lat out of range", func(r *domain.CreateSpotRequest) { r.Lat = 91 }, e.ErrInvalidCoordinates},
		{"lng out of range", func(r *domain.CreateSpotRequest) { r.Lng = -181 }, e.ErrInvalidCoordinates},
		{"empty title", func(r *domain.CreateSpotRequest) { r.Title = "" }, e.ErrInvalidInput},
		{"title too long", func(r *domain.CreateSpotRequest) { r.Title = string(longTitle) }, e.ErrInvalidInput},
		{"unknown category", func(r *domain.CreateSpotRequest) { r.Category = "voragine" }, e.ErrInvalidInput},
		{"severity zero", func(r *domain.CreateSpotRequest) { r.Severity = 0 }, e.ErrInvalidInput},
		{"severity too high", func(r *domain.CreateSpotRequest) { r.Severity = 6 }, e.ErrInvalidInput},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reports := mock_service.NewMockReportRepository(ctrl)
			identity := mock_service.NewMockIdentity(ctrl)
			alerts := mock_service.NewMockAlertQueue(ctrl)

			identity.EXPECT().CurrentUser(gomock.Any()).Return(uuid.New(), nil).Times(1)

			svc := service.NewSubmissionService(reports, identity, alerts, discardLogger())

			req := validCreateRequest()
			tc.mutate(&req)

			_, err := svc.CreateSpotWithReport(context.Background(), req)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestSubmission_AddReport_SpotNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportRepository(ctrl)
	identity := mock_service.NewMockIdentity(ctrl)
	alerts := mock_service.NewMockAlertQueue(ctrl)

	identity.EXPECT().CurrentUser(gomock.Any()).Return(uuid.New(), nil).Times(1)
	reports.EXPECT().
		AddReport(gomock.Any(), gomock.Any()).
		Return(nil, 0.0, e.ErrNotFound).
		Times(1)

	svc := service.NewSubmissionService(reports, identity, alerts, discardLogger())

	err := svc.AddReportToSpot(context.Background(), uuid.New(), domain.AddReportRequest{
		Category: domain.CategoryIncrocioPericoloso,
		Severity: 3,
	})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSubmission_AddReport_NilSpotID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportRepository(ctrl)
	identity := mock_service.NewMockIdentity(ctrl)
	alerts := mock_service.NewMockAlertQueue(ctrl)

	identity.EXPECT().CurrentUser(gomock.Any()).Return(uuid.New(), nil).Times(1)

	svc := service.NewSubmissionService(reports, identity, alerts, discardLogger())

	err := svc.AddReportToSpot(context.Background(), uuid.Nil, domain.AddReportRequest{
		Category: domain.CategoryBucaDissesto,
		Severity: 3,
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestSubmission_AddReport_AlertOnUpwardCriticoCrossing(t *testing.T) {
	t.Parallel()

	spotID := uuid.New()
	spot := &domain.Spot{
		ID: spotID, Lat: 46.0711, Lng: 13.2346, Title: "Incrocio cieco",
		ReportsCount: 3, DangerScore: 9.0, Status: domain.SpotActive,
	}

	cases := []struct {
		name      string
		prevScore float64
		newScore  float64
		wantAlert bool
	}{
		{"crosses upward", 7.5, 9.0, true},
		{"already critico", 9.0, 9.6, false},
		{"stays below", 6.0, 7.5, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reports := mock_service.NewMockReportRepository(ctrl)
			identity := mock_service.NewMockIdentity(ctrl)
			alerts := mock_service.NewMockAlertQueue(ctrl)

			identity.EXPECT().CurrentUser(gomock.Any()).Return(uuid.New(), nil).Times(1)

			updated := *spot
			updated.DangerScore = tc.newScore
			reports.EXPECT().
				AddReport(gomock.Any(), gomock.Any()).
				Return(&updated, tc.prevScore, nil).
				Times(1)

			if tc.wantAlert {
				alerts.EXPECT().
					Enqueue(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p domain.AlertPayload) error {
						if p.SpotID != spotID {
							t.Errorf("alert spot id = %s, want %s", p.SpotID, spotID)
						}
						if p.DangerScore < scoring.ThresholdCritico {
							t.Errorf("alert score = %v, below Critico", p.DangerScore)
						}
						return nil
					}).
					Times(1)
			}

			svc := service.NewSubmissionService(reports, identity, alerts, discardLogger())

			err := svc.AddReportToSpot(context.Background(), spotID, domain.AddReportRequest{
				Category: domain.CategoryIncrocioPericoloso,
				Severity: 5,
			})
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
		})
	}
}

func TestSubmission_AddReport_AlertFailureDoesNotFailSubmission(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mock_service.NewMockReportRepository(ctrl)
	identity := mock_service.NewMockIdentity(ctrl)
	alerts := mock_service.NewMockAlertQueue(ctrl)

	identity.EXPECT().CurrentUser(gomock.Any()).Return(uuid.New(), nil).Times(1)
	reports.EXPECT().
		AddReport(gomock.Any(), gomock.Any()).
		Return(&domain.Spot{ID: uuid.New(), DangerScore: 9.0, ReportsCount: 3}, 7.5, nil).
		Times(1)
	alerts.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down")).
		Times(1)

	svc := service.NewSubmissionService(reports, identity, alerts, discardLogger())

	err := svc.AddReportToSpot(context.Background(), uuid.New(), domain.AddReportRequest{
		Category: domain.CategoryBucaDissesto,
		Severity: 5,
	})
	if err != nil {
		t.Fatalf("submission must survive alert failure, got %v", err)
	}
}

// lockedReportRepo mimics the row-lock semantics of the Postgres
// transaction: concurrent AddReport calls serialize on the spot and
// neither severity is lost.
type lockedReportRepo struct {
	mu         sync.Mutex
	severities []int
	spot       domain.Spot
}

func (r *lockedReportRepo) CreateSpotWithReport(ctx context.Context, spot *domain.Spot, report *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spot = *spot
	r.severities = []int{report.Severity}
	return nil
}

func (r *lockedReportRepo) AddReport(ctx context.Context, report *domain.Report) (*domain.Spot, float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.spot.DangerScore
	r.severities = append(r.severities, report.Severity)

	score, err := scoring.Compute(r.severities)
	if err != nil {
		return nil, 0, err
	}
	r.spot.ReportsCount = len(r.severities)
	r.spot.DangerScore = score
	r.spot.LastReportAt = report.CreatedAt

	out := r.spot
	return &out, prev, nil
}

func (r *lockedReportRepo) ListBySpot(ctx context.Context, spotID uuid.UUID) ([]*domain.Report, error) {
	return nil, nil
}

type fixedIdentity struct{ id uuid.UUID }

func (f fixedIdentity) CurrentUser(ctx context.Context) (uuid.UUID, error) { return f.id, nil }

type nopAlerts struct{}

func (nopAlerts) Enqueue(ctx context.Context, payload domain.AlertPayload) error { return nil }

func TestSubmission_ConcurrentAddReports_NoLostUpdate(t *testing.T) {
	t.Parallel()

	repo := &lockedReportRepo{}
	svc := service.NewSubmissionService(repo, fixedIdentity{id: uuid.New()}, nopAlerts{}, discardLogger())

	id, err := svc.CreateSpotWithReport(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var wg sync.WaitGroup
	for _, sev := range []int{3, 5} {
		sev := sev
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := svc.AddReportToSpot(context.Background(), id, domain.AddReportRequest{
				Category: domain.CategoryBucaDissesto,
				Severity: sev,
			})
			if err != nil {
				t.Errorf("add severity %d: %v", sev, err)
			}
		}()
	}
	wg.Wait()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.spot.ReportsCount != 3 {
		t.Fatalf("ReportsCount = %d, want 3 (first report plus two concurrent adds)", repo.spot.ReportsCount)
	}
	// severities {4,3,5}: avg 4, damp(3) = 0.9
	if math.Abs(repo.spot.DangerScore-7.2) > 1e-9 {
		t.Fatalf("DangerScore = %v, want 7.2", repo.spot.DangerScore)
	}
}
