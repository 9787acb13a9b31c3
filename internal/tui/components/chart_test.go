package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLayoutRowSumsExactly(t *testing.T) {
	cases := []struct{ total, n int }{
		{100, 4},
		{101, 4},
		{7, 3},
		{1, 2},
	}
	for _, c := range cases {
		widths := LayoutRow(c.total, c.n)
		if len(widths) != c.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", c.total, c.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != c.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", c.total, c.n, sum)
		}
	}
}

func TestSliceWidthsProportionalAndExact(t *testing.T) {
	slices := []ChartSlice{
		{Label: "Expenses", Value: 30000, Color: lipgloss.Color("1")},
		{Label: "Savings Capacity", Value: 20000, Color: lipgloss.Color("2")},
	}

	widths := SliceWidths(slices, 50)
	if widths[0]+widths[1] != 50 {
		t.Fatalf("widths %v do not fill the bar", widths)
	}
	if widths[0] <= widths[1] {
		t.Errorf("larger slice got narrower segment: %v", widths)
	}
}

func TestSliceWidthsSkipsZeroAndGuaranteesMinimum(t *testing.T) {
	slices := []ChartSlice{
		{Label: "big", Value: 9990},
		{Label: "tiny", Value: 10},
		{Label: "none", Value: 0},
	}

	widths := SliceWidths(slices, 40)
	if widths[2] != 0 {
		t.Errorf("zero-value slice got width %d", widths[2])
	}
	if widths[1] < 1 {
		t.Errorf("tiny positive slice got no cell: %v", widths)
	}
	if widths[0]+widths[1] != 40 {
		t.Errorf("widths %v do not fill the bar", widths)
	}
}

func TestSliceWidthsAllZero(t *testing.T) {
	widths := SliceWidths([]ChartSlice{{Value: 0}, {Value: 0}}, 40)
	for i, w := range widths {
		if w != 0 {
			t.Errorf("widths[%d] = %d for all-zero input", i, w)
		}
	}
}
