package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"0", 0, true}, // zero price is a valid unit price
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"4.50", 450, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyBRL(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "R$ 0.00"},
		{1, "R$ 0.01"},
		{450, "R$ 4.50"},
		{2275, "R$ 22.75"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).BRL(); got != tc.want {
			t.Fatalf("%d cents expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestMoneyReais(t *testing.T) {
	if got := (Money{Cents: 1234}).Reais(); got != 12.34 {
		t.Fatalf("expected 12.34, got %v", got)
	}
}
