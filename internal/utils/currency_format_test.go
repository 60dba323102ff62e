package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "Rp 0"},
		{"999", "Rp 999"},
		{"1000", "Rp 1.000"},
		{"1520000", "Rp 1.520.000"},
		{"123456789.4", "Rp 123.456.789"},
		{"-2500.6", "-Rp 2.501"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupiah(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
}
