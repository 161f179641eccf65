package derive

import "atlas/internal/model"

// Graticule lines for the map view, fixed intervals.
var (
	GraticuleLats = []float64{-60, -30, 0, 30, 60}
	GraticuleLngs = []float64{-120, -60, 0, 60, 120, 180}
)

// MapPoint is a located topic with its projected position in [0,1]x[0,1].
type MapPoint struct {
	FlatTopic
	X, Y float64
}

// ProjectX maps longitude onto [0,1] with a plain equirectangular mapping.
// Explicitly not a geodesically accurate basemap.
func ProjectX(lng float64) float64 { return (lng + 180) / 360 }

// ProjectY maps latitude onto [0,1], north at the top.
func ProjectY(lat float64) float64 { return (90 - lat) / 180 }

// BuildMap restricts to topics with both coordinates and projects them.
// Returns nil when no topic qualifies.
func BuildMap(cats []model.Category) []MapPoint {
	var points []MapPoint
	for _, t := range Flatten(cats) {
		if !t.HasCoords() {
			continue
		}
		points = append(points, MapPoint{
			FlatTopic: t,
			X:         ProjectX(*t.Lng),
			Y:         ProjectY(*t.Lat),
		})
	}
	return points
}
