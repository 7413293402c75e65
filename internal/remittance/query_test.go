package remittance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remesahq/remesa/internal/corridor"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

func day(month, dom int) time.Time {
	return time.Date(2024, time.Month(month), dom, 10, 0, 0, 0, time.UTC)
}

// queryFixture mirrors a slice of the demo dataset, in creation order.
func queryFixture() []*Remittance {
	usMX := &corridor.Corridor{ID: 1, Name: "Estados Unidos a México", Code: "US-MX", OriginCountry: "Estados Unidos", DestinationCountry: "México", IsActive: true}
	usCO := &corridor.Corridor{ID: 2, Name: "Estados Unidos a Colombia", Code: "US-CO", OriginCountry: "Estados Unidos", DestinationCountry: "Colombia", IsActive: true}
	esEC := &corridor.Corridor{ID: 4, Name: "España a Ecuador", Code: "ES-EC", OriginCountry: "España", DestinationCountry: "Ecuador", IsActive: true}

	return []*Remittance{
		{
			ID: 1, ReferenceCode: "REM-20240115-001",
			SenderName: "Carlos García", RecipientName: "María García López",
			CorridorID: 1, Corridor: usMX,
			Amount: d("500.00"), Currency: CurrencyUSD, Fee: d("17.50"),
			PaymentMethod: PaymentBankTransfer, Status: StatusCompleted,
			CreatedAt: day(1, 15),
		},
		{
			ID: 2, ReferenceCode: "REM-20240120-002",
			SenderName: "Juan Pérez", RecipientName: "Ana Pérez Muñoz",
			CorridorID: 2, Corridor: usCO,
			Amount: d("1200.00"), Currency: CurrencyUSD, Fee: d("48.00"),
			PaymentMethod: PaymentDebitCard, Status: StatusCompleted,
			CreatedAt: day(1, 20),
		},
		{
			ID: 3, ReferenceCode: "REM-20240201-003",
			SenderName: "Miguel Torres", RecipientName: "Pedro Torres Ruiz",
			CorridorID: 2, Corridor: usCO,
			Amount: d("300.00"), Currency: CurrencyUSD, Fee: d("19.50"),
			PaymentMethod: PaymentCash, Status: StatusProcessing, IsExpress: true,
			CreatedAt: day(2, 1),
		},
		{
			ID: 4, ReferenceCode: "REM-20240210-004",
			SenderName: "Roberto Sánchez", RecipientName: "Lucía Sánchez Vega",
			CorridorID: 4, Corridor: esEC,
			Amount: d("800.00"), Currency: CurrencyEUR, Fee: d("30.40"),
			PaymentMethod: PaymentBankTransfer, Status: StatusPending,
			CreatedAt: day(2, 10),
		},
		{
			ID: 5, ReferenceCode: "REM-20240215-005",
			SenderName: "Laura Martínez", RecipientName: "Carmen Díaz Martínez",
			CorridorID: 1, Corridor: usMX,
			Amount: d("500.00"), Currency: CurrencyUSD, Fee: d("110.00"),
			PaymentMethod: PaymentMobileWallet, Status: StatusCompleted, IsExpress: true,
			CreatedAt: day(2, 15),
		},
	}
}

func ids(items []*Remittance) []int {
	out := make([]int, len(items))
	for i, r := range items {
		out[i] = r.ID
	}

	return out
}

func TestApplyFilter_NoPredicates(t *testing.T) {
	items := queryFixture()
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(applyFilter(items, ListFilter{})))
}

func TestApplyFilter_CombinesWithAnd(t *testing.T) {
	items := queryFixture()

	f := ListFilter{
		Status:    ptr(StatusCompleted),
		Currency:  ptr(CurrencyUSD),
		MinAmount: ptr(d("600")),
	}

	assert.Equal(t, []int{2}, ids(applyFilter(items, f)))
}

func TestApplyFilter_AmountBoundsAreInclusive(t *testing.T) {
	items := queryFixture()

	f := ListFilter{MinAmount: ptr(d("500")), MaxAmount: ptr(d("500"))}

	assert.Equal(t, []int{1, 5}, ids(applyFilter(items, f)))
}

func TestApplyFilter_SearchIgnoresCorridorFields(t *testing.T) {
	items := queryFixture()

	// "garcía" hits sender and recipient names, case-insensitively.
	assert.Equal(t, []int{1}, ids(applyFilter(items, ListFilter{Search: ptr("garcía")})))

	// Corridor countries are out of scope for the list filter.
	assert.Empty(t, ids(applyFilter(items, ListFilter{Search: ptr("ecuador")})))

	// Reference codes match too.
	assert.Equal(t, []int{3}, ids(applyFilter(items, ListFilter{Search: ptr("240201")})))
}

func TestApplyFilter_ExpressAndCorridor(t *testing.T) {
	items := queryFixture()

	assert.Equal(t, []int{3, 5}, ids(applyFilter(items, ListFilter{IsExpress: ptr(true)})))
	assert.Equal(t, []int{2, 3}, ids(applyFilter(items, ListFilter{CorridorID: ptr(2)})))
	assert.Equal(t, []int{4}, ids(applyFilter(items, ListFilter{PaymentMethod: ptr(PaymentBankTransfer), Currency: ptr(CurrencyEUR)})))
}

func TestMatchesSearch_CorridorFallback(t *testing.T) {
	items := queryFixture()

	// Own fields win without consulting the corridor.
	assert.True(t, matchesSearch(items[0], "CARLOS"))
	assert.True(t, matchesSearch(items[0], "rem-20240115"))

	// Falls back to corridor countries and code.
	assert.True(t, matchesSearch(items[3], "ecuador"))
	assert.True(t, matchesSearch(items[1], "us-co"))
	assert.False(t, matchesSearch(items[0], "colombia"))

	// A dangling corridor reference cannot match the fallback stage.
	orphan := &Remittance{ID: 9, SenderName: "Else Someone", RecipientName: "Nobody Here"}
	assert.False(t, matchesSearch(orphan, "ecuador"))
}

func TestSortItems_StableOnEqualKeys(t *testing.T) {
	items := queryFixture()

	// IDs 1 and 5 share the amount 500.00; ascending keeps 1 before 5.
	sortItems(items, SortByAmount, OrderAsc)
	assert.Equal(t, []int{3, 1, 5, 4, 2}, ids(items))

	// Descending reverses groups but not the tie order.
	items = queryFixture()
	sortItems(items, SortByAmount, OrderDesc)
	assert.Equal(t, []int{2, 4, 1, 5, 3}, ids(items))
}

func TestSortItems_CreatedAtAndSenderName(t *testing.T) {
	items := queryFixture()
	sortItems(items, SortByCreatedAt, OrderDesc)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, ids(items))

	items = queryFixture()
	sortItems(items, SortBySenderName, OrderAsc)
	assert.Equal(t, "Carlos García", items[0].SenderName)
	assert.Equal(t, "Roberto Sánchez", items[len(items)-1].SenderName)

	items = queryFixture()
	sortItems(items, SortByFee, OrderDesc)
	assert.Equal(t, []int{5, 2, 4, 3, 1}, ids(items))
}

func TestPaginate(t *testing.T) {
	type testCase struct {
		name        string
		total       int
		page        int
		perPage     int
		wantLen     int
		wantPages   int
		wantHasNext bool
		wantHasPrev bool
	}

	tests := []testCase{
		{name: "FirstOfThree", total: 5, page: 1, perPage: 2, wantLen: 2, wantPages: 3, wantHasNext: true},
		{name: "MiddlePage", total: 5, page: 2, perPage: 2, wantLen: 2, wantPages: 3, wantHasNext: true, wantHasPrev: true},
		{name: "ShortLastPage", total: 5, page: 3, perPage: 2, wantLen: 1, wantPages: 3, wantHasPrev: true},
		{name: "PastTheEnd", total: 5, page: 9, perPage: 2, wantLen: 0, wantPages: 3, wantHasPrev: true},
		{name: "EmptyInput", total: 0, page: 1, perPage: 10, wantLen: 0, wantPages: 1},
		{name: "ExactFit", total: 4, page: 2, perPage: 2, wantLen: 2, wantPages: 2, wantHasPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]*Remittance, tt.total)
			for i := range items {
				items[i] = &Remittance{ID: i + 1}
			}

			got := paginate(items, tt.page, tt.perPage)

			require.NotNil(t, got)
			assert.Len(t, got.Items, tt.wantLen)
			assert.Equal(t, tt.total, got.Total)
			assert.Equal(t, tt.page, got.Page)
			assert.Equal(t, tt.perPage, got.PerPage)
			assert.Equal(t, tt.wantPages, got.Pages)
			assert.Equal(t, tt.wantHasNext, got.HasNext)
			assert.Equal(t, tt.wantHasPrev, got.HasPrev)
		})
	}
}

func TestValidatePageBounds(t *testing.T) {
	assert.NoError(t, validatePageBounds(1, 1))
	assert.NoError(t, validatePageBounds(99, 50))
	assert.Error(t, validatePageBounds(0, 10))
	assert.Error(t, validatePageBounds(-1, 10))
	assert.Error(t, validatePageBounds(1, 0))
	assert.Error(t, validatePageBounds(1, 51))
}
