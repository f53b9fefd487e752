package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		price float64
		want  string
	}{
		{8_000_000, "₹80.00 L"},
		{12_500_000, "₹1.25 Cr"},
		{10_000_000, "₹1.00 Cr"},
		{100_000, "₹1.00 L"},
		{99_999, "₹99999"},
		{0, "₹0"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatINR(tc.price), "price %v", tc.price)
	}
}
