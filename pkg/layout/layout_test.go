package layout

import (
	stderrors "errors"
	"slices"
	"testing"

	"github.com/go-drift/framekit/pkg/errors"
	"github.com/go-drift/framekit/pkg/graphics"
	"github.com/go-drift/framekit/pkg/widgets"
)

func size(w, h int) graphics.Size { return graphics.Size{Width: w, Height: h} }

func pt(x, y int) graphics.Point { return graphics.Point{X: x, Y: y} }

func TestSizeIn_RowOfFlexibleChildren(t *testing.T) {
	l := widgets.RowOf(&widgets.Surface{}, &widgets.Surface{})

	got := SizeIn(l, size(300, 100))
	want := []graphics.Size{size(300, 100), size(150, 100), size(150, 100)}
	if !slices.Equal(got, want) {
		t.Errorf("SizeIn = %v, want %v", got, want)
	}
}

func TestSizeIn_ColumnWithContainer(t *testing.T) {
	l := widgets.ColumnOf(
		&widgets.Container{Size: size(100, 50)},
		&widgets.Label{Text: "flex"},
	)

	got := SizeIn(l, size(200, 200))
	want := []graphics.Size{size(200, 200), size(100, 50), size(200, 150)}
	if !slices.Equal(got, want) {
		t.Errorf("SizeIn = %v, want %v", got, want)
	}
}

func TestSizeIn_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		layout *widgets.Layout
		zone   graphics.Size
		want   []graphics.Size
	}{
		{
			name:   "no children",
			layout: widgets.RowOf(),
			zone:   size(40, 30),
			want:   []graphics.Size{size(40, 30)},
		},
		{
			name: "only containers",
			layout: widgets.RowOf(
				&widgets.Container{Size: size(10, 20)},
				&widgets.Container{Size: size(30, 40)},
			),
			zone: size(100, 100),
			want: []graphics.Size{size(100, 100), size(10, 20), size(30, 40)},
		},
		{
			name: "oversubscribed containers",
			layout: widgets.RowOf(
				&widgets.Container{Size: size(80, 10)},
				&widgets.Container{Size: size(80, 10)},
				&widgets.Surface{},
			),
			zone: size(100, 50),
			want: []graphics.Size{size(100, 50), size(80, 10), size(80, 10), size(0, 50)},
		},
		{
			name:   "rounded down",
			layout: widgets.ColumnOf(&widgets.Surface{}, &widgets.Surface{}, &widgets.Surface{}),
			zone:   size(10, 100),
			want:   []graphics.Size{size(10, 100), size(10, 33), size(10, 33), size(10, 33)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SizeIn(tt.layout, tt.zone); !slices.Equal(got, tt.want) {
				t.Errorf("SizeIn = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSizeIn_Conservation(t *testing.T) {
	for flex := 1; flex <= 7; flex++ {
		children := []widgets.Widget{&widgets.Container{Size: size(17, 5)}}
		for i := 0; i < flex; i++ {
			children = append(children, &widgets.Surface{})
		}
		l := widgets.RowOf(children...)

		sizes := SizeIn(l, size(211, 40))
		sum := 0
		for _, s := range sizes[2:] {
			sum += s.Width
		}
		if avail := 211 - 17; sum > avail || avail-sum >= flex {
			t.Errorf("flex=%d: flexible widths sum to %d for %d available", flex, sum, avail)
		}
	}
}

func TestAlignAt_RowCentered(t *testing.T) {
	l := widgets.RowOf(&widgets.Surface{}, &widgets.Surface{})
	sizes := SizeIn(l, size(300, 100))

	got, err := AlignAt(l, pt(0, 0), sizes)
	if err != nil {
		t.Fatalf("AlignAt: %v", err)
	}
	want := []graphics.Point{pt(0, 0), pt(0, 0), pt(150, 0)}
	if !slices.Equal(got, want) {
		t.Errorf("AlignAt = %v, want %v", got, want)
	}
}

func TestAlignAt_MainAxis(t *testing.T) {
	sizes := []graphics.Size{size(100, 60), size(20, 10), size(30, 20)}

	tests := []struct {
		name   string
		layout *widgets.Layout
		want   []graphics.Point
	}{
		{
			name:   "row left top",
			layout: widgets.RowOf(nil, nil).WithAlign(widgets.AlignLeft, widgets.AlignTop),
			want:   []graphics.Point{pt(5, 5), pt(5, 5), pt(25, 5)},
		},
		{
			name:   "row center center",
			layout: widgets.RowOf(nil, nil),
			want:   []graphics.Point{pt(5, 5), pt(30, 30), pt(50, 25)},
		},
		{
			name:   "row right bottom",
			layout: widgets.RowOf(nil, nil).WithAlign(widgets.AlignRight, widgets.AlignBottom),
			want:   []graphics.Point{pt(5, 5), pt(55, 55), pt(75, 45)},
		},
		{
			name:   "column top left",
			layout: widgets.ColumnOf(nil, nil).WithAlign(widgets.AlignLeft, widgets.AlignTop),
			want:   []graphics.Point{pt(5, 5), pt(5, 5), pt(5, 15)},
		},
		{
			name:   "column bottom right",
			layout: widgets.ColumnOf(nil, nil).WithAlign(widgets.AlignRight, widgets.AlignBottom),
			want:   []graphics.Point{pt(5, 5), pt(85, 35), pt(75, 45)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AlignAt(tt.layout, pt(5, 5), sizes)
			if err != nil {
				t.Fatalf("AlignAt: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("AlignAt = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlignAt_CenterSymmetry(t *testing.T) {
	for _, parent := range []int{100, 101, 57} {
		l := widgets.ColumnOf(nil, nil, nil)
		sizes := []graphics.Size{size(10, parent), size(10, 7), size(10, 11), size(10, 13)}

		got, err := AlignAt(l, pt(0, 0), sizes)
		if err != nil {
			t.Fatalf("AlignAt: %v", err)
		}
		before := got[1].Y
		last := got[len(got)-1].Y + sizes[len(sizes)-1].Height
		after := parent - last
		if d := before - after; d < -1 || d > 1 {
			t.Errorf("parent=%d: space before %d, after %d", parent, before, after)
		}
	}
}

func TestAlignAt_Overflow(t *testing.T) {
	l := widgets.RowOf(nil).WithAlign(widgets.AlignRight, widgets.AlignBottom)
	sizes := []graphics.Size{size(10, 10), size(40, 40)}

	got, err := AlignAt(l, pt(3, 4), sizes)
	if err != nil {
		t.Fatalf("AlignAt: %v", err)
	}
	if got[1] != pt(3, 4) {
		t.Errorf("oversized child should be clamped at the anchor, got %s", got[1])
	}
}

func TestAlignAt_OverflowKeepsChildrenContiguous(t *testing.T) {
	tests := []struct {
		name string
		l    *widgets.Layout
		want []graphics.Point
	}{
		{"row right", widgets.RowOf().WithAlign(widgets.AlignRight, widgets.AlignTop), []graphics.Point{pt(0, 0), pt(0, 0), pt(80, 0)}},
		{"row center", widgets.RowOf().WithAlign(widgets.AlignCenter, widgets.AlignTop), []graphics.Point{pt(0, 0), pt(0, 0), pt(80, 0)}},
		{"row left", widgets.RowOf().WithAlign(widgets.AlignLeft, widgets.AlignTop), []graphics.Point{pt(0, 0), pt(0, 0), pt(80, 0)}},
		{"column bottom", widgets.ColumnOf().WithAlign(widgets.AlignLeft, widgets.AlignBottom), []graphics.Point{pt(0, 0), pt(0, 0), pt(0, 80)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := size(100, 100)
			child := size(80, 80)
			got, err := AlignAt(tt.l, pt(0, 0), []graphics.Size{parent, child, child})
			if err != nil {
				t.Fatalf("AlignAt: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("AlignAt = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlignAt_RightBandFits(t *testing.T) {
	l := widgets.RowOf().WithAlign(widgets.AlignRight, widgets.AlignTop)
	got, err := AlignAt(l, pt(5, 0), []graphics.Size{size(100, 10), size(20, 10), size(30, 10)})
	if err != nil {
		t.Fatalf("AlignAt: %v", err)
	}
	want := []graphics.Point{pt(5, 0), pt(55, 0), pt(75, 0)}
	if !slices.Equal(got, want) {
		t.Errorf("AlignAt = %v, want %v", got, want)
	}
}

func TestAlignAt_NoChildren(t *testing.T) {
	got, err := AlignAt(widgets.RowOf(), pt(7, 8), []graphics.Size{size(1, 1)})
	if err != nil {
		t.Fatalf("AlignAt: %v", err)
	}
	if !slices.Equal(got, []graphics.Point{pt(7, 8)}) {
		t.Errorf("AlignAt = %v", got)
	}
}

func TestAlignAt_InvalidAlign(t *testing.T) {
	tests := []struct {
		name  string
		x, y  widgets.Align
		axis  string
		field string
	}{
		{"top on x", widgets.AlignTop, widgets.AlignCenter, "x", "XAlign"},
		{"bottom on x", widgets.AlignBottom, widgets.AlignTop, "x", "XAlign"},
		{"left on y", widgets.AlignCenter, widgets.AlignLeft, "y", "YAlign"},
		{"right on y", widgets.AlignRight, widgets.AlignRight, "y", "YAlign"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := widgets.RowOf(&widgets.Surface{}).WithAlign(tt.x, tt.y)
			got, err := AlignAt(l, pt(0, 0), SizeIn(l, size(10, 10)))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got != nil {
				t.Errorf("expected no positions, got %v", got)
			}
			if !stderrors.Is(err, errors.ErrInvalidAlign) {
				t.Errorf("expected ErrInvalidAlign, got %v", err)
			}
			if errors.KindOf(err) != errors.KindConfig {
				t.Errorf("kind = %s, want config", errors.KindOf(err))
			}
			var ae *errors.AlignError
			if !stderrors.As(err, &ae) {
				t.Fatalf("expected *AlignError in chain")
			}
			if ae.Axis != tt.axis || ae.Field != tt.field {
				t.Errorf("axis/field = %s/%s, want %s/%s", ae.Axis, ae.Field, tt.axis, tt.field)
			}
		})
	}
}
