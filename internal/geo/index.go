package geo

import (
	"fmt"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/vietts/insicuri/internal/domain"
	"github.com/vietts/insicuri/pkg/e"
)

// metersPerDegreeLat is close enough for bounding boxes at urban scale.
const metersPerDegreeLat = 111320.0

type spotEntry struct {
	spot domain.CachedSpot
	rect rtreego.Rect
}

func (s *spotEntry) Bounds() rtreego.Rect { return s.rect }

// Index is an in-memory spatial index over cached spots. It backs the
// resolver's best-effort fallback: a coarse bounding-box prefilter over
// the r-tree followed by exact haversine refinement, so the exact
// distance never runs against every spot.
type Index struct {
	tree *rtreego.Rtree
}

func NewIndex(spots []domain.CachedSpot) *Index {
	tree := rtreego.NewTree(2, 4, 16)
	for _, s := range spots {
		p := rtreego.Point{s.Lng, s.Lat}
		entry := &spotEntry{spot: s, rect: p.ToRect(1e-9)}
		tree.Insert(entry)
	}
	return &Index{tree: tree}
}

// Within returns the spots at most radiusM meters from center, ascending
// by distance, ties broken by most recent report first.
func (ix *Index) Within(center Point, radiusM float64) ([]domain.NearbyCandidate, error) {
	if !center.Valid() {
		return nil, fmt.Errorf("geo.Index.Within: %w", e.ErrInvalidCoordinates)
	}
	if radiusM < 0 || math.IsNaN(radiusM) {
		return nil, fmt.Errorf("geo.Index.Within: %w", e.ErrInvalidInput)
	}

	dLat := radiusM / metersPerDegreeLat
	cosLat := math.Cos(deg2rad(center.Lat))
	if cosLat < 1e-6 {
		cosLat = 1e-6
	}
	dLng := radiusM / (metersPerDegreeLat * cosLat)

	// rtreego rejects zero-area rects; a radius of zero still has to
	// match a spot at the identical coordinate.
	const minDelta = 1e-7
	dLat = math.Max(dLat, minDelta)
	dLng = math.Max(dLng, minDelta)

	bbox, err := rtreego.NewRect(
		rtreego.Point{center.Lng - dLng, center.Lat - dLat},
		[]float64{2 * dLng, 2 * dLat},
	)
	if err != nil {
		return nil, err
	}

	var out []domain.NearbyCandidate
	for _, hit := range ix.tree.SearchIntersect(bbox) {
		entry := hit.(*spotEntry)
		dist, err := DistanceMeters(center, Point{Lat: entry.spot.Lat, Lng: entry.spot.Lng})
		if err != nil {
			continue
		}
		if dist > radiusM {
			continue
		}
		out = append(out, domain.NearbyCandidate{
			ID:           entry.spot.ID,
			Lat:          entry.spot.Lat,
			Lng:          entry.spot.Lng,
			Title:        entry.spot.Title,
			DangerScore:  entry.spot.DangerScore,
			ReportsCount: entry.spot.ReportsCount,
			DistanceM:    dist,
			LastReportAt: entry.spot.LastReportAt,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].DistanceM != out[j].DistanceM {
			return out[i].DistanceM < out[j].DistanceM
		}
		return out[i].LastReportAt.After(out[j].LastReportAt)
	})

	return out, nil
}
