package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"0.01", 1, true},
		{"0", 0, true},
		{"1.005", 101, true}, // half-up rounding
		{"1.004", 100, true},
		{" 2.50 ", 250, true},
		{"-1", -100, true},
		{"-0.05", -5, true},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"12,34", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got.Cents != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got.Cents, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		out   string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{1230, "12.30"},
		{100000, "1000.00"},
		{-5, "-0.05"},
		{-1250, "-12.50"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.out {
			t.Fatalf("%d cents expected %q, got %q", tc.cents, tc.out, got)
		}
	}
}

func TestMoneyAddExact(t *testing.T) {
	// 10000 additions of 0.10 must be exactly 1000.00, untouched by binary
	// float error.
	var sum Money
	dime, err := ParseAmount("0.10")
	if err != nil {
		t.Fatalf("parse dime: %v", err)
	}
	for i := 0; i < 10000; i++ {
		sum = sum.Add(dime)
	}
	if sum.Cents != 100000 || sum.String() != "1000.00" {
		t.Fatalf("expected 1000.00, got %s (%d cents)", sum, sum.Cents)
	}
}
