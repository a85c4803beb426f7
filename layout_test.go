package code2pdf

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPlanSideBySide - Page layout
// ---------------------------------------------------------------------------

func TestPlanSideBySide(t *testing.T) {
	t.Parallel()

	a := PageDim{Width: 396, Height: 612}
	b := PageDim{Width: 396, Height: 600}
	tall := PageDim{Width: 264, Height: 700}

	tests := []struct {
		name string
		dims [][]PageDim
		want []Sheet
	}{
		{
			name: "no inputs",
			dims: nil,
			want: nil,
		},
		{
			name: "only empty inputs",
			dims: [][]PageDim{{}, {}},
			want: nil,
		},
		{
			name: "equal page counts",
			dims: [][]PageDim{{a}, {b}},
			want: []Sheet{
				{Width: 792, Height: 612, Placements: []Placement{
					{Input: 0, Page: 0, X: 0, Width: 396, Height: 612},
					{Input: 1, Page: 0, X: 396, Width: 396, Height: 600},
				}},
			},
		},
		{
			name: "first input shorter gets filler",
			dims: [][]PageDim{{a}, {b, b}},
			want: []Sheet{
				{Width: 792, Height: 612, Placements: []Placement{
					{Input: 0, Page: 0, X: 0, Width: 396, Height: 612},
					{Input: 1, Page: 0, X: 396, Width: 396, Height: 600},
				}},
				{Width: 792, Height: 612, Placements: []Placement{
					{Input: 0, Page: -1, X: 0, Width: 396, Height: 612},
					{Input: 1, Page: 1, X: 396, Width: 396, Height: 600},
				}},
			},
		},
		{
			name: "filler takes first input's first page size",
			dims: [][]PageDim{{a, a}, {tall}},
			want: []Sheet{
				{Width: 660, Height: 700, Placements: []Placement{
					{Input: 0, Page: 0, X: 0, Width: 396, Height: 612},
					{Input: 1, Page: 0, X: 396, Width: 264, Height: 700},
				}},
				{Width: 792, Height: 612, Placements: []Placement{
					{Input: 0, Page: 1, X: 0, Width: 396, Height: 612},
					{Input: 1, Page: -1, X: 396, Width: 396, Height: 612},
				}},
			},
		},
		{
			name: "empty first input borrows the next size",
			dims: [][]PageDim{{}, {b}},
			want: []Sheet{
				{Width: 792, Height: 600, Placements: []Placement{
					{Input: 0, Page: -1, X: 0, Width: 396, Height: 600},
					{Input: 1, Page: 0, X: 396, Width: 396, Height: 600},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := PlanSideBySide(tt.dims)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PlanSideBySide() =\n%+v\nwant\n%+v", got, tt.want)
			}
		})
	}
}

func TestPlanSideBySide_WidthIsSumOfColumns(t *testing.T) {
	t.Parallel()

	col := PageDim{Width: 264, Height: 612}
	dims := [][]PageDim{
		{col, col, col},
		{col},
		{col, col},
	}

	sheets := PlanSideBySide(dims)
	if len(sheets) != 3 {
		t.Fatalf("len(sheets) = %d, want 3 (longest input)", len(sheets))
	}
	for i, sheet := range sheets {
		if sheet.Width != 3*col.Width {
			t.Errorf("sheet %d width = %v, want %v", i, sheet.Width, 3*col.Width)
		}
		if len(sheet.Placements) != 3 {
			t.Errorf("sheet %d has %d placements, want 3", i, len(sheet.Placements))
		}
		for j, p := range sheet.Placements {
			if p.Input != j {
				t.Errorf("sheet %d placement %d input = %d, want left-to-right order", i, j, p.Input)
			}
		}
	}

	fillers := 0
	for _, sheet := range sheets {
		for _, p := range sheet.Placements {
			if p.Filler() {
				fillers++
			}
		}
	}
	if fillers != 3 {
		t.Errorf("fillers = %d, want 3", fillers)
	}
}
