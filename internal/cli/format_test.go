package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{50000, "50,000"},
		{1234567, "1,234,567"},
		{-1234567, "-1,234,567"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		symbol string
		in     float64
		want   string
	}{
		{"$", 50000, "$50,000"},
		{"$", 1234.5, "$1,234.50"},
		{"$", 0, "$0"},
		{"₹", 20000, "₹20,000"},
		{"", 5, "$5"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.symbol, c.in); got != c.want {
			t.Errorf("FormatMoney(%q, %.2f) = %q, want %q", c.symbol, c.in, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.4); got != "40%" {
		t.Errorf("FormatPercent(0.4) = %q", got)
	}
	if got := FormatPercent(1); got != "100%" {
		t.Errorf("FormatPercent(1) = %q", got)
	}
}
