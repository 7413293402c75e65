package remittance

import "github.com/shopspring/decimal"

// Express deliveries pay a 2 percentage point surcharge on top of the
// corridor's base fee.
var expressSurcharge = decimal.NewFromInt(2)

var hundred = decimal.NewFromInt(100)

// ComputeFee derives the fee from the amount and the corridor's base fee
// percentage, rounded to 2 decimal places. Fees are never taken from client
// input; the store recomputes them whenever amount, corridor or express
// delivery change.
func ComputeFee(amount, baseFeePercentage decimal.Decimal, express bool) decimal.Decimal {
	pct := baseFeePercentage
	if express {
		pct = pct.Add(expressSurcharge)
	}

	return amount.Mul(pct).Div(hundred).Round(2)
}
