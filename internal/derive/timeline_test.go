package derive

import (
	"testing"

	"atlas/internal/model"
)

func yearTree(years ...int) []model.Category {
	c := model.Category{ID: "c", Name: "C"}
	for i, y := range years {
		yy := y
		c.Topics = append(c.Topics, model.Topic{
			ID:    string(rune('a' + i)),
			Title: "T",
			Year:  &yy,
		})
	}
	// One undated topic that must be excluded.
	c.Topics = append(c.Topics, model.Topic{ID: "undated", Title: "No year"})
	return []model.Category{c}
}

func TestTimelineDomainAndProjection(t *testing.T) {
	tl := BuildTimeline(yearTree(-1200, -315000, -100))
	if tl == nil {
		t.Fatal("expected a timeline")
	}
	if tl.Min != -315000 || tl.Max != -100 {
		t.Fatalf("min/max=%d/%d", tl.Min, tl.Max)
	}
	wantPad := float64(-100-(-315000)) * 0.05
	if got := float64(tl.Min) - tl.Lo; got != wantPad {
		t.Fatalf("pad=%v want %v", got, wantPad)
	}
	if tl.Hi != float64(tl.Max)+wantPad {
		t.Fatalf("hi=%v", tl.Hi)
	}
	if len(tl.Points) != 3 {
		t.Fatalf("points=%d want 3 (undated excluded)", len(tl.Points))
	}
	// Sorted ascending, all strictly inside the padded domain.
	last := tl.Lo
	for _, p := range tl.Points {
		if float64(*p.Year) < last {
			t.Fatalf("points not sorted ascending")
		}
		last = float64(*p.Year)
		if p.X <= 0 || p.X >= 1 {
			t.Fatalf("point %s projects to %v, want strictly within (0,1)", p.ID, p.X)
		}
	}
}

func TestTimelineZeroSpanPad(t *testing.T) {
	tl := BuildTimeline(yearTree(-100))
	if tl == nil {
		t.Fatal("expected a timeline")
	}
	if tl.Lo != -110 || tl.Hi != -90 {
		t.Fatalf("zero-span domain=[%v,%v] want [-110,-90]", tl.Lo, tl.Hi)
	}
}

func TestTimelineNilWhenNoYears(t *testing.T) {
	cats := []model.Category{{ID: "c", Name: "C", Topics: []model.Topic{
		{ID: "a", Title: "A"},
	}}}
	if BuildTimeline(cats) != nil {
		t.Fatal("timeline should be nil with no dated topics")
	}
}

func TestTimelineLanesCycle(t *testing.T) {
	tl := BuildTimeline(yearTree(1, 2, 3, 4, 5, 6, 7))
	for i, p := range tl.Points {
		if p.Lane != i%TimelineLanes {
			t.Fatalf("point %d lane=%d want %d", i, p.Lane, i%TimelineLanes)
		}
	}
}

func TestTicks(t *testing.T) {
	// The selection rule is monotone over the descending magnitude list, so
	// any domain within ten million years resolves to the 1,000,000 step.
	for _, tc := range []struct {
		lo, hi float64
		want   []int
	}{
		{0, 9, []int{0}},
		{-330750, 15655, []int{0}},
		{-110, -90, nil}, // no multiple of the step falls in a narrow domain
		{-2100000, 2100000, []int{-2000000, -1000000, 0, 1000000, 2000000}},
	} {
		got := Ticks(tc.lo, tc.hi)
		if len(got) != len(tc.want) {
			t.Fatalf("Ticks(%v,%v)=%v want %v", tc.lo, tc.hi, got, tc.want)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("Ticks(%v,%v)=%v want %v", tc.lo, tc.hi, got, tc.want)
			}
		}
	}
}

func TestTicksHugeSpanStaysBounded(t *testing.T) {
	// Spans beyond ten million years fall back to the largest magnitude
	// rather than flooding the axis.
	ticks := Ticks(-42000000, 2000000)
	if len(ticks) == 0 || len(ticks) > 50 {
		t.Fatalf("huge-span tick count=%d", len(ticks))
	}
	for _, x := range ticks {
		if x%1000000 != 0 {
			t.Fatalf("tick %d not a multiple of 1000000", x)
		}
	}
}
