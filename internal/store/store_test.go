package store_test

import (
	"context"
	"regexp"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remesahq/remesa/internal/apperror"
	"github.com/remesahq/remesa/internal/corridor"
	"github.com/remesahq/remesa/internal/remittance"
	"github.com/remesahq/remesa/internal/store"
)

func seeded(t *testing.T) *store.Store {
	t.Helper()

	s := store.New()
	s.Seed()

	return s
}

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func ptr[T any](v T) *T { return &v }

func corridorParams() corridor.CreateParams {
	return corridor.CreateParams{
		Name:               "Estados Unidos a Perú",
		Code:               "US-PE",
		OriginCountry:      "Estados Unidos",
		DestinationCountry: "Perú",
		BaseFeePercentage:  d("4.2"),
		IsActive:           true,
	}
}

func remittanceParams() remittance.CreateParams {
	return remittance.CreateParams{
		SenderName:    "Elena Vargas",
		RecipientName: "Sofía Vargas Luna",
		CorridorID:    1,
		Amount:        d("600.00"),
		Currency:      remittance.CurrencyUSD,
		ExchangeRate:  d("17.40"),
		PaymentMethod: remittance.PaymentCash,
		IsExpress:     false,
	}
}

func TestSeed(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	corridors, err := s.ListCorridors(ctx, corridor.ListFilter{})
	require.NoError(t, err)
	require.Len(t, corridors, 5)

	items, err := s.ListRemittances(ctx)
	require.NoError(t, err)
	require.Len(t, items, 8)

	for i, r := range items {
		assert.Equal(t, i+1, r.ID)
	}

	first := items[0]
	assert.Equal(t, "REM-20240115-001", first.ReferenceCode)
	require.NotNil(t, first.Corridor)
	assert.Equal(t, "US-MX", first.Corridor.Code)

	// Counters continue after the seeded IDs.
	c, err := s.CreateCorridor(ctx, corridorParams())
	require.NoError(t, err)
	assert.Equal(t, 6, c.ID)

	r, err := s.CreateRemittance(ctx, remittanceParams())
	require.NoError(t, err)
	assert.Equal(t, 9, r.ID)
}

func TestCreateRemittance(t *testing.T) {
	s := seeded(t)

	got, err := s.CreateRemittance(context.Background(), remittanceParams())
	require.NoError(t, err)

	assert.Equal(t, 9, got.ID)
	assert.Regexp(t, regexp.MustCompile(`^REM-\d{8}-009$`), got.ReferenceCode)
	assert.Equal(t, remittance.StatusPending, got.Status)
	assert.True(t, got.Fee.Equal(d("21.00")), "fee of 3.5%% on 600.00, got %s", got.Fee)
	require.NotNil(t, got.Corridor)
	assert.Equal(t, 1, got.Corridor.ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreateRemittance_ExpressSurcharge(t *testing.T) {
	s := seeded(t)

	params := remittanceParams()
	params.IsExpress = true

	got, err := s.CreateRemittance(context.Background(), params)
	require.NoError(t, err)

	// 3.5% base plus the 2% express surcharge.
	assert.True(t, got.Fee.Equal(d("33.00")), "got %s", got.Fee)
}

func TestCreateRemittance_CorridorChecks(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	params := remittanceParams()
	params.CorridorID = 99

	_, err := s.CreateRemittance(ctx, params)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, err.Error(), "corridor with id 99 does not exist")

	// Corridor 5 is seeded inactive.
	params.CorridorID = 5

	_, err = s.CreateRemittance(ctx, params)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, err.Error(), "is not active")

	// Failed attempts must not burn IDs.
	got, err := s.CreateRemittance(ctx, remittanceParams())
	require.NoError(t, err)
	assert.Equal(t, 9, got.ID)
}

func TestCreateRemittances_AllOrNothing(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	bad := remittanceParams()
	bad.CorridorID = 99

	_, err := s.CreateRemittances(ctx, []remittance.CreateParams{remittanceParams(), bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, err.Error(), "row 2")

	items, err := s.ListRemittances(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 8, "a failing batch must not insert anything")

	created, err := s.CreateRemittances(ctx, []remittance.CreateParams{remittanceParams(), remittanceParams()})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, 9, created[0].ID)
	assert.Equal(t, 10, created[1].ID)
}

func TestCreateCorridor_DuplicateCode(t *testing.T) {
	s := seeded(t)

	params := corridorParams()
	params.Code = "US-MX"

	_, err := s.CreateCorridor(context.Background(), params)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Contains(t, err.Error(), "US-MX")
}

func TestReplaceCorridor(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	before, err := s.GetCorridor(ctx, 1)
	require.NoError(t, err)

	params := corridorParams()
	params.Code = "US-MX" // keeping its own code is not a conflict

	got, err := s.ReplaceCorridor(ctx, 1, params)
	require.NoError(t, err)

	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "Estados Unidos a Perú", got.Name)
	assert.Equal(t, before.CreatedAt, got.CreatedAt)

	// Taking another corridor's code is.
	_, err = s.ReplaceCorridor(ctx, 2, params)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestUpdateCorridor_DeactivationBlocksNewTraffic(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	got, err := s.UpdateCorridor(ctx, 1, corridor.UpdateParams{IsActive: ptr(false)})
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = s.CreateRemittance(ctx, remittanceParams())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestDeleteCorridor(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	// Corridor 5 has no remittances.
	require.NoError(t, s.DeleteCorridor(ctx, 5))

	_, err := s.GetCorridor(ctx, 5)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// Corridor 1 is referenced by seeded remittances.
	err = s.DeleteCorridor(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	err = s.DeleteCorridor(ctx, 99)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestReplaceRemittance(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	before, err := s.GetRemittance(ctx, 4)
	require.NoError(t, err)

	params := remittance.CreateParams{
		SenderName:    "Roberto Sánchez",
		RecipientName: "Lucía Sánchez Vega",
		CorridorID:    1,
		Amount:        d("900.00"),
		Currency:      remittance.CurrencyUSD,
		ExchangeRate:  d("17.41"),
		PaymentMethod: remittance.PaymentCash,
		IsExpress:     false,
	}

	got, err := s.ReplaceRemittance(ctx, 4, params)
	require.NoError(t, err)

	assert.Equal(t, before.ReferenceCode, got.ReferenceCode)
	assert.Equal(t, before.Status, got.Status)
	assert.Equal(t, before.CreatedAt, got.CreatedAt)
	assert.Equal(t, 1, got.CorridorID)
	assert.True(t, got.Fee.Equal(d("31.50")), "3.5%% of 900.00, got %s", got.Fee)
}

func TestReplaceRemittance_InactiveCorridor(t *testing.T) {
	s := seeded(t)

	params := remittanceParams()
	params.CorridorID = 5

	_, err := s.ReplaceRemittance(context.Background(), 4, params)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestUpdateRemittance_Transitions(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	// Remittance 1 is completed, a terminal status.
	_, err := s.UpdateRemittance(ctx, 1, remittance.UpdateParams{Status: ptr(remittance.StatusProcessing)})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Contains(t, err.Error(), "cannot transition remittance from 'completed' to 'processing'")

	// Remittance 4 is pending.
	got, err := s.UpdateRemittance(ctx, 4, remittance.UpdateParams{Status: ptr(remittance.StatusProcessing)})
	require.NoError(t, err)
	assert.Equal(t, remittance.StatusProcessing, got.Status)

	// Repeating the current status is a no-op.
	got, err = s.UpdateRemittance(ctx, 4, remittance.UpdateParams{Status: ptr(remittance.StatusProcessing)})
	require.NoError(t, err)
	assert.Equal(t, remittance.StatusProcessing, got.Status)
}

func TestUpdateRemittance_FeeRecompute(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	// Remittance 4 sits on corridor 4 at 3.8%.
	got, err := s.UpdateRemittance(ctx, 4, remittance.UpdateParams{Amount: ptr(d("1000.00"))})
	require.NoError(t, err)
	assert.True(t, got.Fee.Equal(d("38.00")), "got %s", got.Fee)

	got, err = s.UpdateRemittance(ctx, 4, remittance.UpdateParams{IsExpress: ptr(true)})
	require.NoError(t, err)
	assert.True(t, got.Fee.Equal(d("58.00")), "3.8%%+2%% of 1000.00, got %s", got.Fee)

	// Moving corridors reprices against the new base fee.
	got, err = s.UpdateRemittance(ctx, 4, remittance.UpdateParams{CorridorID: ptr(1)})
	require.NoError(t, err)
	assert.True(t, got.Fee.Equal(d("55.00")), "3.5%%+2%% of 1000.00, got %s", got.Fee)

	// Fields outside the fee inputs leave it alone.
	got, err = s.UpdateRemittance(ctx, 4, remittance.UpdateParams{SenderName: ptr("Roberto S. Vega")})
	require.NoError(t, err)
	assert.True(t, got.Fee.Equal(d("55.00")), "got %s", got.Fee)
}

func TestUpdateRemittance_NotFound(t *testing.T) {
	s := seeded(t)

	_, err := s.UpdateRemittance(context.Background(), 99, remittance.UpdateParams{SenderName: ptr("Nadie")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteRemittance(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	// Remittance 8 is cancelled, 4 is pending: both deletable.
	require.NoError(t, s.DeleteRemittance(ctx, 8))
	require.NoError(t, s.DeleteRemittance(ctx, 4))

	_, err := s.GetRemittance(ctx, 8)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// Completed and processing are not.
	err = s.DeleteRemittance(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Contains(t, err.Error(), "current status is 'completed'")

	err = s.DeleteRemittance(ctx, 3)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	err = s.DeleteRemittance(ctx, 99)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListRemittances_CloneIsolation(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	items, err := s.ListRemittances(ctx)
	require.NoError(t, err)

	items[0].SenderName = "Mallory"
	items[0].Corridor.Code = "XX-XX"

	again, err := s.GetRemittance(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Carlos García", again.SenderName)
	assert.Equal(t, "US-MX", again.Corridor.Code)
}

func TestStats_Seeded(t *testing.T) {
	s := seeded(t)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, stats.Summary.TotalRemittances)
	assert.True(t, stats.Summary.TotalAmount.Equal(d("6150.00")), "got %s", stats.Summary.TotalAmount)
	assert.True(t, stats.Summary.AverageAmount.Equal(d("768.75")), "got %s", stats.Summary.AverageAmount)
	assert.True(t, stats.Summary.TotalFeesCollected.Equal(d("277.90")), "got %s", stats.Summary.TotalFeesCollected)
	assert.Equal(t, 4, stats.Summary.ActiveCorridors)

	require.Len(t, stats.ByCorridor, 5)

	usmx := stats.ByCorridor["US-MX"]
	assert.Equal(t, 3, usmx.TotalRemittances)
	assert.True(t, usmx.TotalAmount.Equal(d("3250.00")), "got %s", usmx.TotalAmount)
	assert.True(t, usmx.TotalFees.Equal(d("153.75")), "got %s", usmx.TotalFees)
	assert.Equal(t, map[remittance.Status]int{
		remittance.StatusCompleted: 2,
		remittance.StatusPending:   1,
	}, usmx.ByStatus)

	// The inactive UK-IN corridor still reports, with zeroes.
	ukin := stats.ByCorridor["UK-IN"]
	assert.Equal(t, 0, ukin.TotalRemittances)
	assert.False(t, ukin.IsActive)
	assert.True(t, ukin.TotalAmount.IsZero())
}

func TestConcurrentAccess(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	const (
		writers = 8
		perEach = 5
	)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < perEach; j++ {
				_, err := s.CreateRemittance(ctx, remittanceParams())
				assert.NoError(t, err)

				_, err = s.ListRemittances(ctx)
				assert.NoError(t, err)

				_, err = s.Stats(ctx)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	items, err := s.ListRemittances(ctx)
	require.NoError(t, err)
	require.Len(t, items, 8+writers*perEach)

	seen := map[int]bool{}
	for _, r := range items {
		assert.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
	}
}
