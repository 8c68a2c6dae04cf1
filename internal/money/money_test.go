package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "R$ 0,00"},
		{"4.5", "R$ 4,50"},
		{"9", "R$ 9,00"},
		{"14", "R$ 14,00"},
		{"189", "R$ 189,00"},
		{"350", "R$ 350,00"},
		{"1234.56", "R$ 1.234,56"},
		{"1000000", "R$ 1.000.000,00"},
		{"-12.3", "-R$ 12,30"},
	}

	for _, tc := range cases {
		amount, err := decimal.NewFromString(tc.amount)
		if err != nil {
			t.Fatalf("bad test amount %q: %v", tc.amount, err)
		}
		if got := FormatBRL(amount); got != tc.want {
			t.Errorf("FormatBRL(%s) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
