package port

import (
	"math"
	"testing"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		want        Page
	}{
		{"defaults", 0, 0, Page{Page: 1, Limit: DefaultPageLimit}},
		{"negative", -3, -1, Page{Page: 1, Limit: DefaultPageLimit}},
		{"limit capped", 2, 500, Page{Page: 2, Limit: MaxPageLimit}},
		{"page capped", math.MaxInt, 10, Page{Page: MaxPage, Limit: 10}},
		{"in range", 3, 20, Page{Page: 3, Limit: 20}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewPage(tc.page, tc.limit); got != tc.want {
				t.Errorf("NewPage(%d, %d) = %+v; want %+v", tc.page, tc.limit, got, tc.want)
			}
		})
	}
}

func TestPage_Offset(t *testing.T) {
	if got := NewPage(2, 10).Offset(); got != 10 {
		t.Errorf("Offset() = %d; want 10", got)
	}
	if got := NewPage(math.MaxInt, MaxPageLimit).Offset(); got < 0 || got > math.MaxInt32 {
		t.Errorf("Offset() = %d; want within [0, MaxInt32]", got)
	}
}
