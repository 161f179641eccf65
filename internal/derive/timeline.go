package derive

import (
	"math"
	"sort"

	"atlas/internal/model"
)

// TimelineLanes is the fixed number of vertical lanes labels cycle through.
// Lane assignment is round-robin by sort index, purely to reduce overlap.
const TimelineLanes = 5

// tickSteps are the candidate "nice" tick magnitudes, largest first.
var tickSteps = []int{1000000, 100000, 10000, 5000, 2000, 1000, 500, 200, 100, 50, 20, 10, 5, 2, 1}

// TimelinePoint is a dated topic placed on the linear year domain.
// X is the proportional position in [0,1]; Lane cycles over TimelineLanes.
type TimelinePoint struct {
	FlatTopic
	X    float64
	Lane int
}

// Timeline is the layout for the timeline view.
type Timeline struct {
	Min, Max int     // observed year extremes
	Lo, Hi   float64 // padded domain
	Ticks    []int
	Points   []TimelinePoint // sorted ascending by year
}

// BuildTimeline restricts to topics with a defined year and lays them out on
// a padded linear domain: pad = 5% of the span, minimum 10 (a zero span still
// yields a usable domain). Returns nil when no topic qualifies.
func BuildTimeline(cats []model.Category) *Timeline {
	var items []FlatTopic
	for _, t := range Flatten(cats) {
		if t.HasYear() {
			items = append(items, t)
		}
	}
	if len(items) == 0 {
		return nil
	}

	sort.SliceStable(items, func(i, j int) bool { return *items[i].Year < *items[j].Year })

	min, max := *items[0].Year, *items[len(items)-1].Year
	pad := float64(max-min) * 0.05
	if pad == 0 {
		pad = 10
	}
	tl := &Timeline{
		Min: min,
		Max: max,
		Lo:  float64(min) - pad,
		Hi:  float64(max) + pad,
	}
	tl.Ticks = Ticks(tl.Lo, tl.Hi)

	for i, t := range items {
		tl.Points = append(tl.Points, TimelinePoint{
			FlatTopic: t,
			X:         tl.ScaleX(float64(*t.Year)),
			Lane:      i % TimelineLanes,
		})
	}
	return tl
}

// ScaleX maps a year to its proportional position in [0,1] on the padded
// domain.
func (tl *Timeline) ScaleX(year float64) float64 {
	return (year - tl.Lo) / (tl.Hi - tl.Lo)
}

// Ticks picks the largest step from the fixed magnitude list such that the
// domain spans at most 10 ticks, then emits multiples of it from
// ceil(lo/step)*step up to hi. When no step keeps the count at 10 (spans
// beyond ten million years) the largest magnitude wins; a sparse axis beats
// an unbounded one. May return no ticks for narrow domains away from zero.
func Ticks(lo, hi float64) []int {
	span := math.Abs(hi - lo)
	step := tickSteps[0]
	for _, s := range tickSteps {
		if span/float64(s) <= 10 {
			step = s
			break
		}
	}
	start := int(math.Ceil(lo/float64(step))) * step
	var out []int
	for x := start; float64(x) <= hi; x += step {
		out = append(out, x)
	}
	return out
}
