package utils

import (
	"strings"
	"testing"
)

func TestSeatCode(t *testing.T) {
	cases := []struct {
		row, col int
		want     string
	}{
		{1, 1, "A1"},
		{2, 4, "B4"},
		{26, 20, "Z20"},
	}
	for _, tc := range cases {
		if got := SeatCode(tc.row, tc.col); got != tc.want {
			t.Errorf("SeatCode(%d, %d) = %q, want %q", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestSeatCodesEnumeratesGrid(t *testing.T) {
	codes := SeatCodes(2, 4)
	if len(codes) != 8 {
		t.Fatalf("len = %d, want 8", len(codes))
	}
	want := []string{"A1", "A2", "A3", "A4", "B1", "B2", "B3", "B4"}
	for i, code := range codes {
		if code != want[i] {
			t.Errorf("codes[%d] = %q, want %q", i, code, want[i])
		}
	}
}

func TestSeatTypeForPriority(t *testing.T) {
	vip := map[string]struct{}{"A1": {}, "A2": {}}
	disabled := map[string]struct{}{"A1": {}, "B4": {}}

	if got := SeatTypeFor("A1", vip, disabled); got != "blocked" {
		t.Errorf("A1 = %q, want blocked (disabled wins)", got)
	}
	if got := SeatTypeFor("A2", vip, disabled); got != "vip" {
		t.Errorf("A2 = %q, want vip", got)
	}
	if got := SeatTypeFor("B1", vip, disabled); got != "standard" {
		t.Errorf("B1 = %q, want standard", got)
	}
}

func TestApplyPromo(t *testing.T) {
	cases := []struct {
		code string
		want float64
	}{
		{"DISCOUNT10", 10000},
		{"discount10", 10000},
		{"STUDENT20", 20000},
		{"UNKNOWN", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := ApplyPromo(100000, tc.code); got != tc.want {
			t.Errorf("ApplyPromo(100000, %q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestNewBookingCodeFormat(t *testing.T) {
	code := NewBookingCode()
	if !strings.HasPrefix(code, "BKG-") {
		t.Fatalf("code = %q, want BKG- prefix", code)
	}
	if len(code) != len("BKG-")+10 {
		t.Errorf("code length = %d, want %d", len(code), len("BKG-")+10)
	}
	if code != strings.ToUpper(code) {
		t.Errorf("code = %q, want uppercase", code)
	}
}

func TestNewCartItemIDLength(t *testing.T) {
	id := NewCartItemID()
	if len(id) != 8 {
		t.Errorf("id length = %d, want 8", len(id))
	}
	if id == NewCartItemID() {
		t.Errorf("two generated ids should differ")
	}
}
