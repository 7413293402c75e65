package remittance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/remesahq/remesa/internal/remittance"
)

func TestComputeFee(t *testing.T) {
	type testCase struct {
		name    string
		amount  string
		baseFee string
		express bool
		want    string
	}

	tests := []testCase{
		{name: "Standard", amount: "500", baseFee: "3.5", want: "17.50"},
		{name: "Express", amount: "500", baseFee: "3.5", express: true, want: "27.50"},
		{name: "RoundsToTwoDecimals", amount: "333.33", baseFee: "3.5", want: "11.67"},
		{name: "TinyAmountRoundsToZero", amount: "0.01", baseFee: "3.5", want: "0"},
		{name: "HighestBaseFee", amount: "10000", baseFee: "15", want: "1500"},
		{name: "ExpressOnTopOfHighestBase", amount: "1000", baseFee: "15", express: true, want: "170"},
		{name: "SeededExpressExample", amount: "2000", baseFee: "3.5", express: true, want: "110"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := remittance.ComputeFee(
				decimal.RequireFromString(tt.amount),
				decimal.RequireFromString(tt.baseFee),
				tt.express,
			)

			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}
