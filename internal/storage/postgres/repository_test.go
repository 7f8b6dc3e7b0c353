//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vietts/insicuri/internal/domain"
	"github.com/vietts/insicuri/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS postgis;

		CREATE TABLE IF NOT EXISTS spots (
			id uuid PRIMARY KEY,
			geo_point geography(Point, 4326) NOT NULL,
			title text NOT NULL,
			address text,
			reports_count integer NOT NULL,
			danger_score double precision NOT NULL,
			last_report_at timestamptz NOT NULL,
			status text NOT NULL,
			created_by uuid NOT NULL,
			created_at timestamptz NOT NULL
		);

		CREATE INDEX IF NOT EXISTS spots_geo_idx ON spots USING gist (geo_point);

		CREATE TABLE IF NOT EXISTS reports (
			id uuid PRIMARY KEY,
			spot_id uuid NOT NULL REFERENCES spots (id),
			user_id uuid NOT NULL,
			category text NOT NULL,
			severity integer NOT NULL CHECK (severity BETWEEN 1 AND 5),
			description text,
			photo_url text,
			created_at timestamptz NOT NULL
		);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE reports, spots`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func newSpot(lat, lng float64, title string) (*domain.Spot, *domain.Report) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	spotID := uuid.New()
	userID := uuid.New()
	spot := &domain.Spot{
		ID:           spotID,
		Lat:          lat,
		Lng:          lng,
		Title:        title,
		ReportsCount: 1,
		DangerScore:  4.8,
		LastReportAt: now,
		Status:       domain.SpotActive,
		CreatedBy:    userID,
		CreatedAt:    now,
	}
	report := &domain.Report{
		ID:        uuid.New(),
		SpotID:    spotID,
		UserID:    userID,
		Category:  domain.CategoryBucaDissesto,
		Severity:  4,
		CreatedAt: now,
	}
	return spot, report
}

func mustCreate(t *testing.T, reports *ReportStore, lat, lng float64, title string) *domain.Spot {
	t.Helper()
	spot, report := newSpot(lat, lng, title)
	if err := reports.CreateSpotWithReport(context.Background(), spot, report); err != nil {
		t.Fatalf("CreateSpotWithReport(%s): %v", title, err)
	}
	return spot
}

func TestCreateSpotWithReport_RoundTrip(t *testing.T) {
	truncateAll(t)

	spots := NewSpotStore(testPool, testLogger())
	reports := NewReportStore(testPool, testLogger())

	created := mustCreate(t, reports, 46.0711, 13.2346, "Buca pericolosa")

	got, err := spots.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got.Lat != created.Lat || got.Lng != created.Lng {
		t.Fatalf("lat/lng mismatch got=(%v,%v) want=(%v,%v)", got.Lat, got.Lng, created.Lat, created.Lng)
	}
	if got.Title != "Buca pericolosa" || got.ReportsCount != 1 || got.Status != domain.SpotActive {
		t.Fatalf("unexpected row: %+v", got)
	}

	list, err := reports.ListBySpot(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("ListBySpot: %v", err)
	}
	if len(list) != 1 || list[0].Severity != 4 {
		t.Fatalf("unexpected reports: %+v", list)
	}
}

func TestFindNearby_RadiusAndOrder(t *testing.T) {
	truncateAll(t)

	spots := NewSpotStore(testPool, testLogger())
	reports := NewReportStore(testPool, testLogger())

	// Query point in the Udine city center.
	lat, lng := 46.0711, 13.2346

	near := mustCreate(t, reports, 46.07115, 13.23465, "vicino")      // ~7m
	mid := mustCreate(t, reports, 46.07135, 13.2346, "più in là")     // ~28m
	_ = mustCreate(t, reports, 46.0720, 13.2346, "fuori raggio")      // ~100m
	_ = mustCreate(t, reports, 46.0632, 13.2431, "altro quartiere")   // ~1.1km

	got, err := spots.FindNearby(context.Background(), lat, lng, 50, 5)
	if err != nil {
		t.Fatalf("FindNearby: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates got %d: %+v", len(got), got)
	}
	if got[0].ID != near.ID || got[1].ID != mid.ID {
		t.Fatalf("wrong order: %+v", got)
	}
	if got[0].DistanceM >= got[1].DistanceM {
		t.Fatalf("distances not ascending: %v >= %v", got[0].DistanceM, got[1].DistanceM)
	}
	if got[0].DistanceM <= 0 || got[0].DistanceM > 50 {
		t.Fatalf("DistanceM out of range: %v", got[0].DistanceM)
	}
}

func TestFindNearby_ZeroRadiusMatchesSameCoordinate(t *testing.T) {
	truncateAll(t)

	spots := NewSpotStore(testPool, testLogger())
	reports := NewReportStore(testPool, testLogger())

	same := mustCreate(t, reports, 46.0711, 13.2346, "stesso punto")
	_ = mustCreate(t, reports, 46.0712, 13.2346, "a pochi metri")

	got, err := spots.FindNearby(context.Background(), 46.0711, 13.2346, 0, 5)
	if err != nil {
		t.Fatalf("FindNearby: %v", err)
	}
	if len(got) != 1 || got[0].ID != same.ID {
		t.Fatalf("zero radius: %+v", got)
	}
}

func TestFindNearby_ExcludesRemovedSpots(t *testing.T) {
	truncateAll(t)

	spots := NewSpotStore(testPool, testLogger())
	reports := NewReportStore(testPool, testLogger())

	removed := mustCreate(t, reports, 46.0711, 13.2346, "rimosso")
	if err := spots.UpdateStatus(context.Background(), removed.ID, domain.SpotRemoved); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, err := spots.FindNearby(context.Background(), 46.0711, 13.2346, 50, 5)
	if err != nil {
		t.Fatalf("FindNearby: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("removed spot surfaced: %+v", got)
	}
}

func TestFindNearby_LimitCapsCandidates(t *testing.T) {
	truncateAll(t)

	spots := NewSpotStore(testPool, testLogger())
	reports := NewReportStore(testPool, testLogger())

	for i := 0; i < 8; i++ {
		mustCreate(t, reports, 46.0711+float64(i)*0.00002, 13.2346, fmt.Sprintf("spot %d", i))
	}

	got, err := spots.FindNearby(context.Background(), 46.0711, 13.2346, 100, 5)
	if err != nil {
		t.Fatalf("FindNearby: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 candidates got %d", len(got))
	}
}

func TestAddReport_RecomputesAggregates(t *testing.T) {
	truncateAll(t)

	spots := NewSpotStore(testPool, testLogger())
	reports := NewReportStore(testPool, testLogger())

	created := mustCreate(t, reports, 46.0711, 13.2346, "Buca pericolosa")

	add := &domain.Report{
		ID:        uuid.New(),
		SpotID:    created.ID,
		UserID:    uuid.New(),
		Category:  domain.CategoryBucaDissesto,
		Severity:  5,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	updated, prevScore, err := reports.AddReport(context.Background(), add)
	if err != nil {
		t.Fatalf("AddReport: %v", err)
	}

	if prevScore != created.DangerScore {
		t.Fatalf("prevScore = %v, want %v", prevScore, created.DangerScore)
	}
	if updated.ReportsCount != 2 {
		t.Fatalf("ReportsCount = %d, want 2", updated.ReportsCount)
	}
	// severities {4,5}: avg 4.5, damp(2) = 0.75
	if updated.DangerScore < 6.7 || updated.DangerScore > 6.8 {
		t.Fatalf("DangerScore = %v, want ~6.75", updated.DangerScore)
	}
	if updated.LastReportAt.Before(created.LastReportAt) {
		t.Fatalf("LastReportAt not advanced: %v", updated.LastReportAt)
	}

	got, err := spots.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ReportsCount != 2 || got.DangerScore != updated.DangerScore {
		t.Fatalf("persisted aggregates mismatch: %+v", got)
	}
}

func TestAddReport_UnknownSpot_NotFound(t *testing.T) {
	truncateAll(t)

	reports := NewReportStore(testPool, testLogger())

	add := &domain.Report{
		ID:        uuid.New(),
		SpotID:    uuid.New(),
		UserID:    uuid.New(),
		Category:  domain.CategoryBucaDissesto,
		Severity:  3,
		CreatedAt: time.Now().UTC(),
	}

	_, _, err := reports.AddReport(context.Background(), add)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestAddReport_RemovedSpot_NotFound(t *testing.T) {
	truncateAll(t)

	spots := NewSpotStore(testPool, testLogger())
	reports := NewReportStore(testPool, testLogger())

	created := mustCreate(t, reports, 46.0711, 13.2346, "rimosso")
	if err := spots.UpdateStatus(context.Background(), created.ID, domain.SpotRemoved); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	add := &domain.Report{
		ID:        uuid.New(),
		SpotID:    created.ID,
		UserID:    uuid.New(),
		Category:  domain.CategoryBucaDissesto,
		Severity:  3,
		CreatedAt: time.Now().UTC(),
	}

	_, _, err := reports.AddReport(context.Background(), add)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestAddReport_Concurrent_NoLostUpdate(t *testing.T) {
	truncateAll(t)

	spots := NewSpotStore(testPool, testLogger())
	reports := NewReportStore(testPool, testLogger())

	created := mustCreate(t, reports, 46.0711, 13.2346, "Buca pericolosa")

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			add := &domain.Report{
				ID:        uuid.New(),
				SpotID:    created.ID,
				UserID:    uuid.New(),
				Category:  domain.CategoryBucaDissesto,
				Severity:  5,
				CreatedAt: time.Now().UTC(),
			}
			if _, _, err := reports.AddReport(context.Background(), add); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent AddReport: %v", err)
	}

	got, err := spots.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ReportsCount != workers+1 {
		t.Fatalf("ReportsCount = %d, want %d (row lock must serialize the recompute)", got.ReportsCount, workers+1)
	}

	var inserted int
	if err := testPool.QueryRow(context.Background(), `SELECT COUNT(*) FROM reports WHERE spot_id = $1`, created.ID).Scan(&inserted); err != nil {
		t.Fatalf("count reports: %v", err)
	}
	if inserted != workers+1 {
		t.Fatalf("reports rows = %d, want %d", inserted, workers+1)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	truncateAll(t)

	spots := NewSpotStore(testPool, testLogger())

	err := spots.UpdateStatus(context.Background(), uuid.New(), domain.SpotResolved)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestListBBox_FiltersViewport(t *testing.T) {
	truncateAll(t)

	spots := NewSpotStore(testPool, testLogger())
	reports := NewReportStore(testPool, testLogger())

	inside := mustCreate(t, reports, 46.0711, 13.2346, "in centro")
	_ = mustCreate(t, reports, 46.2000, 13.5000, "fuori mappa")

	box := domain.BBox{MinLng: 13.20, MinLat: 46.05, MaxLng: 13.26, MaxLat: 46.09}
	got, err := spots.ListBBox(context.Background(), box, 100)
	if err != nil {
		t.Fatalf("ListBBox: %v", err)
	}
	if len(got) != 1 || got[0].ID != inside.ID {
		t.Fatalf("viewport filter: %+v", got)
	}
}

func TestListActive_ExcludesRemoved(t *testing.T) {
	truncateAll(t)

	spots := NewSpotStore(testPool, testLogger())
	reports := NewReportStore(testPool, testLogger())

	active := mustCreate(t, reports, 46.0711, 13.2346, "attivo")
	removed := mustCreate(t, reports, 46.0712, 13.2346, "rimosso")
	if err := spots.UpdateStatus(context.Background(), removed.ID, domain.SpotRemoved); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, err := spots.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(got) != 1 || got[0].ID != active.ID {
		t.Fatalf("ListActive: %+v", got)
	}
}
