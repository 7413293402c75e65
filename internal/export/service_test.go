package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remesahq/remesa/internal/corridor"
	"github.com/remesahq/remesa/internal/remittance"
)

type stubRepo struct {
	items []*remittance.Remittance
}

func (s *stubRepo) CreateRemittance(ctx context.Context, params remittance.CreateParams) (*remittance.Remittance, error) {
	return nil, nil
}

func (s *stubRepo) CreateRemittances(ctx context.Context, params []remittance.CreateParams) ([]*remittance.Remittance, error) {
	return nil, nil
}

func (s *stubRepo) GetRemittance(ctx context.Context, id int) (*remittance.Remittance, error) {
	return nil, nil
}

func (s *stubRepo) ListRemittances(ctx context.Context) ([]*remittance.Remittance, error) {
	return s.items, nil
}

func (s *stubRepo) ReplaceRemittance(ctx context.Context, id int, params remittance.CreateParams) (*remittance.Remittance, error) {
	return nil, nil
}

func (s *stubRepo) UpdateRemittance(ctx context.Context, id int, params remittance.UpdateParams) (*remittance.Remittance, error) {
	return nil, nil
}

func (s *stubRepo) DeleteRemittance(ctx context.Context, id int) error { return nil }

func (s *stubRepo) Stats(ctx context.Context) (*remittance.Stats, error) { return nil, nil }

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func ptr[T any](v T) *T { return &v }

func exportFixture() []*remittance.Remittance {
	usMX := &corridor.Corridor{ID: 1, Code: "US-MX", Name: "Estados Unidos a México", IsActive: true}

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
			Corridor:      usMX,
			CreatedAt:     time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:            2,
			ReferenceCode: "REM-20240201-002",
			SenderName:    "Miguel Torres",
			RecipientName: "Pedro Torres Ruiz",
			CorridorID:    9,
			Amount:        d("300.00"),
			Currency:      remittance.CurrencyUSD,
			ExchangeRate:  d("7.82"),
			Fee:           d("19.50"),
			PaymentMethod: remittance.PaymentCash,
			Status:        remittance.StatusProcessing,
			IsExpress:     true,
			Corridor:      nil,
			CreatedAt:     time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	svc := NewService(remittance.NewService(&stubRepo{items: exportFixture()}))

	var buf bytes.Buffer
	err := svc.WriteCSV(context.Background(), &buf, remittance.ListFilter{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t,
		"reference_code,sender_name,recipient_name,corridor_code,amount,currency,exchange_rate,fee,payment_method,status,is_express,created_at",
		lines[0])
	assert.Equal(t,
		"REM-20240115-001,Carlos García,María García López,US-MX,500.00,USD,17.45,17.50,bank_transfer,completed,false,2024-01-15T09:00:00Z",
		lines[1])

	// A remittance whose corridor is unknown exports with an empty code.
	assert.Equal(t,
		"REM-20240201-002,Miguel Torres,Pedro Torres Ruiz,,300.00,USD,7.82,19.50,cash,processing,true,2024-02-01T10:00:00Z",
		lines[2])
}

func TestWriteCSV_Filtered(t *testing.T) {
	svc := NewService(remittance.NewService(&stubRepo{items: exportFixture()}))

	var buf bytes.Buffer
	err := svc.WriteCSV(context.Background(), &buf, remittance.ListFilter{
		Status: ptr(remittance.StatusCompleted),
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "REM-20240115-001")
}

func TestWriteCSV_InvalidFilter(t *testing.T) {
	svc := NewService(remittance.NewService(&stubRepo{items: exportFixture()}))

	var buf bytes.Buffer
	err := svc.WriteCSV(context.Background(), &buf, remittance.ListFilter{
		Search: ptr("x"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 characters")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "remittances-20240315.csv",
		Filename(time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)))
}
