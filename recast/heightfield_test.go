package recast

import (
	"testing"

	"github.com/arl/gogeo/f32/d3"
)

func buildGrid(t *testing.T, w, h, d int32, solidCells [][3]int32) *Grid {
	t.Helper()
	g, err := NewGrid(d3.NewVec3XYZ(0, 0, 0), d3.NewVec3XYZ(float32(w), float32(h), float32(d)), 1, 1)
	if err != nil {
		t.Fatalf("NewGrid() err = %v", err)
	}
	for _, c := range solidCells {
		g.Set(c[0], c[1], c[2])
	}
	return g
}

func TestBuildHeightfieldSingleColumn(t *testing.T) {
	// One solid run from y=1..3 in column (0,0): one span expected.
	g := buildGrid(t, 4, 8, 4, [][3]int32{{0, 1, 0}, {0, 2, 0}, {0, 3, 0}})
	ctx := NewContext(false)
	hf := BuildHeightfield(ctx, g)

	head := hf.ColumnHead(0, 0)
	if head == noSpan {
		t.Fatalf("column (0,0) has no spans, want one")
	}
	s := hf.Span(head)
	if s.SpanMin != 1 || s.SpanMax != 3 {
		t.Errorf("span = [%d,%d], want [1,3]", s.SpanMin, s.SpanMax)
	}
	if hf.Next(s) != noSpan {
		t.Errorf("expected exactly one span in column, found a second")
	}
}

func TestBuildHeightfieldTwoSpansWithGap(t *testing.T) {
	// Two disjoint solid runs in the same column: y=0..1 and y=4..5.
	g := buildGrid(t, 2, 8, 2, [][3]int32{
		{0, 0, 0}, {0, 1, 0},
		{0, 4, 0}, {0, 5, 0},
	})
	ctx := NewContext(false)
	hf := BuildHeightfield(ctx, g)

	var spans []*Span
	for i := hf.ColumnHead(0, 0); i != noSpan; i = hf.Next(hf.Span(i)) {
		spans = append(spans, hf.Span(i))
	}
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if spans[0].SpanMin != 0 || spans[0].SpanMax != 1 {
		t.Errorf("first span = [%d,%d], want [0,1]", spans[0].SpanMin, spans[0].SpanMax)
	}
	if spans[1].SpanMin != 4 || spans[1].SpanMax != 5 {
		t.Errorf("second span = [%d,%d], want [4,5]", spans[1].SpanMin, spans[1].SpanMax)
	}

	if err := hf.checkColumnOrder(0, 0); err != nil {
		t.Errorf("checkColumnOrder() = %v, want nil", err)
	}
}

func TestBuildHeightfieldEmptyColumn(t *testing.T) {
	g := buildGrid(t, 2, 4, 2, nil)
	ctx := NewContext(false)
	hf := BuildHeightfield(ctx, g)

	if hf.ColumnHead(0, 0) != noSpan {
		t.Errorf("empty column has a span, want noSpan")
	}
	if len(hf.spans) != 0 {
		t.Errorf("got %d spans total, want 0", len(hf.spans))
	}
}

func TestBuildHeightfieldAllSolidColumn(t *testing.T) {
	h := int32(4)
	var cells [][3]int32
	for y := int32(0); y < h; y++ {
		cells = append(cells, [3]int32{0, y, 0})
	}
	g := buildGrid(t, 1, h, 1, cells)
	ctx := NewContext(false)
	hf := BuildHeightfield(ctx, g)

	head := hf.ColumnHead(0, 0)
	if head == noSpan {
		t.Fatalf("all-solid column has no spans")
	}
	s := hf.Span(head)
	if s.SpanMin != 0 || s.SpanMax != h-1 {
		t.Errorf("span = [%d,%d], want [0,%d]", s.SpanMin, s.SpanMax, h-1)
	}
	if hf.Next(s) != noSpan {
		t.Errorf("all-solid column produced more than one span")
	}
}
