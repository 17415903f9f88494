package types

import (
	"testing"

	"github.com/pizzadelight/storefront/pkg/enums"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0.00"},
		{12.5, "12.50"},
		{9.99, "9.99"},
		{35, "35.00"},
		{11.666666666666666, "11.67"},
	}
	for _, tt := range cases {
		if got := FormatAmount(tt.amount); got != tt.want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestSizePricesFor(t *testing.T) {
	prices := SizePrices{Small: 8.99, Medium: 11.99, Large: 14.99}

	if got := prices.For(enums.PizzaSizeSmall); got != 8.99 {
		t.Fatalf("small price = %v", got)
	}
	if got := prices.For(enums.PizzaSizeMedium); got != 11.99 {
		t.Fatalf("medium price = %v", got)
	}
	if got := prices.For(enums.PizzaSizeLarge); got != 14.99 {
		t.Fatalf("large price = %v", got)
	}
	if got := prices.For(enums.PizzaSize("extra-large")); got != 0 {
		t.Fatalf("unknown size should price to zero, got %v", got)
	}
}
