package remittance

import (
	"github.com/shopspring/decimal"

	"github.com/remesahq/remesa/internal/corridor"
)

// Summary aggregates every remittance in the store.
type Summary struct {
	TotalRemittances   int
	TotalAmount        decimal.Decimal
	AverageAmount      decimal.Decimal
	TotalFeesCollected decimal.Decimal
	ActiveCorridors    int
}

// CorridorStats aggregates the remittances of a single corridor. Corridors
// without remittances still get an entry with zeroed totals.
type CorridorStats struct {
	CorridorName     string
	CorridorID       int
	IsActive         bool
	TotalRemittances int
	TotalAmount      decimal.Decimal
	AverageAmount    decimal.Decimal
	TotalFees        decimal.Decimal
	ByStatus         map[Status]int
}

type Stats struct {
	Summary    Summary
	ByCorridor map[string]CorridorStats
}

// Aggregate computes global and per-corridor statistics over one consistent
// snapshot. Monetary totals and averages are rounded to 2 decimal places;
// an empty store yields zeros, never a division by zero.
func Aggregate(corridors []*corridor.Corridor, items []*Remittance) *Stats {
	byCorridor := make(map[string]CorridorStats, len(corridors))
	byID := make(map[int]*corridor.Corridor, len(corridors))
	active := 0

	for _, c := range corridors {
		if c.IsActive {
			active++
		}

		byID[c.ID] = c
		byCorridor[c.Code] = CorridorStats{
			CorridorName: c.Name,
			CorridorID:   c.ID,
			IsActive:     c.IsActive,
			ByStatus:     map[Status]int{},
		}
	}

	var totalAmount, totalFees decimal.Decimal

	for _, r := range items {
		totalAmount = totalAmount.Add(r.Amount)
		totalFees = totalFees.Add(r.Fee)

		c, ok := byID[r.CorridorID]
		if !ok {
			// Counted in the summary but unattributable per corridor.
			continue
		}

		cs := byCorridor[c.Code]
		cs.TotalRemittances++
		cs.TotalAmount = cs.TotalAmount.Add(r.Amount)
		cs.TotalFees = cs.TotalFees.Add(r.Fee)
		cs.ByStatus[r.Status]++
		byCorridor[c.Code] = cs
	}

	for code, cs := range byCorridor {
		if cs.TotalRemittances > 0 {
			cs.AverageAmount = cs.TotalAmount.Div(decimal.NewFromInt(int64(cs.TotalRemittances))).Round(2)
		}

		cs.TotalAmount = cs.TotalAmount.Round(2)
		cs.TotalFees = cs.TotalFees.Round(2)
		byCorridor[code] = cs
	}

	summary := Summary{
		TotalRemittances:   len(items),
		TotalAmount:        totalAmount.Round(2),
		TotalFeesCollected: totalFees.Round(2),
		ActiveCorridors:    active,
	}
	if len(items) > 0 {
		summary.AverageAmount = totalAmount.Div(decimal.NewFromInt(int64(len(items)))).Round(2)
	}

	return &Stats{Summary: summary, ByCorridor: byCorridor}
}
