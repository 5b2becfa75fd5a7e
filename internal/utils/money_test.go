package utils

import "testing"

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"75.00", 7500, false},
		{"75", 7500, false},
		{"0.5", 50, false},
		{".25", 25, false},
		{"-3.10", -310, false},
		{" 12.34 ", 1234, false},
		{"", 0, true},
		{"1.234", 0, true},
		{"abc", 0, true},
		{"1.2c", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseMoney(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseMoney(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMoney(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMoney(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(7500); got != "75.00" {
		t.Fatalf("FormatMoney(7500) = %s", got)
	}
	if got := FormatMoney(5); got != "0.05" {
		t.Fatalf("FormatMoney(5) = %s", got)
	}
	if got := FormatMoney(-310); got != "-3.10" {
		t.Fatalf("FormatMoney(-310) = %s", got)
	}
}

func TestAddMoney(t *testing.T) {
	got, err := AddMoney("75.00", "10.00", "5.00")
	if err != nil {
		t.Fatalf("AddMoney error: %v", err)
	}
	if got != "90.00" {
		t.Fatalf("AddMoney = %s, want 90.00", got)
	}

	if _, err := AddMoney("75.00", "oops"); err == nil {
		t.Fatalf("expected error on malformed amount")
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone(" (98111) 11-111 "); got != "9811111111" {
		t.Fatalf("NormalizePhone = %s", got)
	}
}
