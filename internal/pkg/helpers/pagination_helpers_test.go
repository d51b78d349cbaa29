package helpers

import (
	"math"
	"testing"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"3abc", 0, false},
		{"", 0, false},
		{"1.5", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParsePage(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParsePage(%q) = %d,%v want %d,%v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, ok := ParseID("17"); !ok || id != 17 {
		t.Fatalf("expected 17, got %d %v", id, ok)
	}
	for _, raw := range []string{"0", "-1", "x", "9223372036854775808", " 1"} {
		if _, ok := ParseID(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		page, size            int
		wantOffset, wantLimit uint64
	}{
		{1, 12, 0, 12},
		{2, 12, 12, 12},
		{3, 5, 10, 5},
		{0, 12, 0, 12},
		{2, 0, 12, 12},
		{1, MaxPageSize + 1, 0, DefaultPageSize},
	}

	for _, tt := range tests {
		offset, limit, ok := CalculateOffsetLimit(tt.page, tt.size)
		if !ok || offset != tt.wantOffset || limit != tt.wantLimit {
			t.Fatalf("CalculateOffsetLimit(%d,%d) = %d,%d,%v want %d,%d,true",
				tt.page, tt.size, offset, limit, ok, tt.wantOffset, tt.wantLimit)
		}
	}
}

func TestCalculateOffsetLimit_OffsetOverflow(t *testing.T) {
	// (p-1)*12 == 3*2^64 wraps to zero in uint64
	wrapsToZero := 4611686018427387905
	for _, page := range []int{wrapsToZero, math.MaxInt64, math.MaxInt64/12 + 2} {
		if _, _, ok := CalculateOffsetLimit(page, 12); ok {
			t.Fatalf("expected page %d to overflow the offset", page)
		}
	}

	// largest page whose offset still fits
	last := math.MaxInt64/12 + 1
	offset, _, ok := CalculateOffsetLimit(last, 12)
	if !ok || offset != uint64(math.MaxInt64/12)*12 {
		t.Fatalf("expected page %d to fit, got offset %d ok=%v", last, offset, ok)
	}
	if offset > math.MaxInt64 {
		t.Fatalf("offset %d exceeds MaxInt64", offset)
	}
}
