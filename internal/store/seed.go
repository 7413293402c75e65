package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/remesahq/remesa/internal/corridor"
	"github.com/remesahq/remesa/internal/remittance"
)

// Seed loads the demo dataset: five corridors and eight remittances with
// fixed IDs, covering every status, both express flags and one inactive
// corridor. Counters continue after the highest seeded ID.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range seedCorridors() {
		s.corridors[c.ID] = c
	}
	s.nextCorridorID = 6

	for _, r := range seedRemittances() {
		s.remittances[r.ID] = r
	}
	s.nextRemittanceID = 9
}

func seedCorridors() []*corridor.Corridor {
	return []*corridor.Corridor{
		{
			ID:                 1,
			Name:               "Estados Unidos a México",
			Code:               "US-MX",
			OriginCountry:      "Estados Unidos",
			DestinationCountry: "México",
			BaseFeePercentage:  d("3.5"),
			IsActive:           true,
			CreatedAt:          at(2024, 1, 1, 10, 0),
		},
		{
			ID:                 2,
			Name:               "Estados Unidos a Colombia",
			Code:               "US-CO",
			OriginCountry:      "Estados Unidos",
			DestinationCountry: "Colombia",
			BaseFeePercentage:  d("4.0"),
			IsActive:           true,
			CreatedAt:          at(2024, 1, 1, 10, 0),
		},
		{
			ID:                 3,
			Name:               "Estados Unidos a Guatemala",
			Code:               "US-GT",
			OriginCountry:      "Estados Unidos",
			DestinationCountry: "Guatemala",
			BaseFeePercentage:  d("4.5"),
			IsActive:           true,
			CreatedAt:          at(2024, 1, 15, 8, 0),
		},
		{
			ID:                 4,
			Name:               "España a Ecuador",
			Code:               "ES-EC",
			OriginCountry:      "España",
			DestinationCountry: "Ecuador",
			BaseFeePercentage:  d("3.8"),
			IsActive:           true,
			CreatedAt:          at(2024, 2, 1, 9, 0),
		},
		{
			ID:                 5,
			Name:               "Reino Unido a India",
			Code:               "UK-IN",
			OriginCountry:      "Reino Unido",
			DestinationCountry: "India",
			BaseFeePercentage:  d("2.5"),
			IsActive:           false,
			CreatedAt:          at(2024, 2, 15, 11, 0),
		},
	}
}

func seedRemittances() []*remittance.Remittance {
	return []*remittance.Remittance{
		{
			ID:            1,
			ReferenceCode: "REM-20240115-001",
			SenderName:    "Carlos García",
			RecipientName: "María García López",
			CorridorID:    1,
			Amount:        d("500.00"),
			Currency:      remittance.CurrencyUSD,
			ExchangeRate:  d("17.45"),
			Fee:           d("17.50"),
			PaymentMethod: remittance.PaymentBankTransfer,
			Status:        remittance.StatusCompleted,
			IsExpress:     false,
			CreatedAt:     at(2024, 1, 15, 9, 0),
		},
		{
			ID:            2,
			ReferenceCode: "REM-20240120-002",
			SenderName:    "Juan Pérez",
			RecipientName: "Ana Pérez Muñoz",
			CorridorID:    2,
			Amount:        d("1200.00"),
			Currency:      remittance.CurrencyUSD,
			ExchangeRate:  d("4185.50"),
			Fee:           d("48.00"),
			PaymentMethod: remittance.PaymentDebitCard,
			Status:        remittance.StatusCompleted,
			IsExpress:     false,
			CreatedAt:     at(2024, 1, 20, 14, 0),
		},
		{
			ID:            3,
			ReferenceCode: "REM-20240201-003",
			SenderName:    "Miguel Torres",
			RecipientName: "Pedro Torres Ruiz",
			CorridorID:    3,
			Amount:        d("300.00"),
			Currency:      remittance.CurrencyUSD,
			ExchangeRate:  d("7.82"),
			Fee:           d("19.50"),
			PaymentMethod: remittance.PaymentCash,
			Status:        remittance.StatusProcessing,
			IsExpress:     true,
			CreatedAt:     at(2024, 2, 1, 10, 0),
		},
		{
			ID:            4,
			ReferenceCode: "REM-20240210-004",
			SenderName:    "Roberto Sánchez",
			RecipientName: "Lucía Sánchez Vega",
			CorridorID:    4,
			Amount:        d("800.00"),
			Currency:      remittance.CurrencyEUR,
			ExchangeRate:  d("1.08"),
			Fee:           d("30.40"),
			PaymentMethod: remittance.PaymentBankTransfer,
			Status:        remittance.StatusPending,
			IsExpress:     false,
			CreatedAt:     at(2024, 2, 10, 8, 30),
		},
		{
			ID:            5,
			ReferenceCode: "REM-20240215-005",
			SenderName:    "Laura Martínez",
			RecipientName: "Carmen Díaz Martínez",
			CorridorID:    1,
			Amount:        d("2000.00"),
			Currency:      remittance.CurrencyUSD,
			ExchangeRate:  d("17.52"),
			Fee:           d("110.00"),
			PaymentMethod: remittance.PaymentMobileWallet,
			Status:        remittance.StatusCompleted,
			IsExpress:     true,
			CreatedAt:     at(2024, 2, 15, 11, 0),
		},
		{
			ID:            6,
			ReferenceCode: "REM-20240301-006",
			SenderName:    "Andrés López",
			RecipientName: "Felipe López Herrera",
			CorridorID:    2,
			Amount:        d("150.00"),
			Currency:      remittance.CurrencyUSD,
			ExchangeRate:  d("4192.30"),
			Fee:           d("6.00"),
			PaymentMethod: remittance.PaymentCash,
			Status:        remittance.StatusFailed,
			IsExpress:     false,
			CreatedAt:     at(2024, 3, 1, 16, 0),
		},
		{
			ID:            7,
			ReferenceCode: "REM-20240305-007",
			SenderName:    "Diana Ramírez",
			RecipientName: "Jorge Ramírez Solano",
			CorridorID:    1,
			Amount:        d("750.00"),
			Currency:      remittance.CurrencyUSD,
			ExchangeRate:  d("17.48"),
			Fee:           d("26.25"),
			PaymentMethod: remittance.PaymentDebitCard,
			Status:        remittance.StatusPending,
			IsExpress:     false,
			CreatedAt:     at(2024, 3, 5, 9, 0),
		},
		{
			ID:            8,
			ReferenceCode: "REM-20240310-008",
			SenderName:    "Patricia Flores",
			RecipientName: "Rosa Flores Morales",
			CorridorID:    3,
			Amount:        d("450.00"),
			Currency:      remittance.CurrencyUSD,
			ExchangeRate:  d("7.85"),
			Fee:           d("20.25"),
			PaymentMethod: remittance.PaymentBankTransfer,
			Status:        remittance.StatusCancelled,
			IsExpress:     false,
			CreatedAt:     at(2024, 3, 10, 10, 0),
		},
	}
}

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
