package remittance

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/remesahq/remesa/internal/apperror"
)

// SortField is the closed set of fields the listing can sort on.
type SortField string

const (
	SortByAmount     SortField = "amount"
	SortByFee        SortField = "fee"
	SortByCreatedAt  SortField = "created_at"
	SortBySenderName SortField = "sender_name"
)

func ParseSortField(s string) (SortField, error) {
	switch f := SortField(s); f {
	case SortByAmount, SortByFee, SortByCreatedAt, SortBySenderName:
		return f, nil
	}

	return "", apperror.Validationf("invalid sort field '%s'", s)
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case OrderAsc, OrderDesc:
		return o, nil
	}

	return "", apperror.Validationf("invalid sort order '%s'", s)
}

// ListFilter combines optional predicates with AND; nil fields do not
// constrain. Amount bounds are inclusive. Search here only looks at the
// remittance's own fields; the corridor fallback belongs to Search.
type ListFilter struct {
	Search        *string
	CorridorID    *int
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	Status        *Status
	Currency      *Currency
	PaymentMethod *PaymentMethod
	IsExpress     *bool
}

func (f ListFilter) Validate() error {
	if f.Search != nil {
		if err := validateSearchQuery(*f.Search); err != nil {
			return err
		}
	}

	if f.CorridorID != nil && *f.CorridorID <= 0 {
		return apperror.Validationf("corridor_id must be a positive integer")
	}

	if f.MinAmount != nil && f.MinAmount.IsNegative() {
		return apperror.Validationf("min_amount must be at least 0")
	}

	if f.MaxAmount != nil && f.MaxAmount.IsNegative() {
		return apperror.Validationf("max_amount must be at least 0")
	}

	return nil
}

func validateSearchQuery(q string) error {
	if utf8.RuneCountInString(q) < 2 {
		return apperror.Validationf("search query must be at least 2 characters")
	}

	return nil
}

func (f ListFilter) matches(r *Remittance) bool {
	if f.Search != nil {
		q := strings.ToLower(*f.Search)
		if !strings.Contains(strings.ToLower(r.SenderName), q) &&
			!strings.Contains(strings.ToLower(r.RecipientName), q) &&
			!strings.Contains(strings.ToLower(r.ReferenceCode), q) {
			return false
		}
	}

	if f.CorridorID != nil && r.CorridorID != *f.CorridorID {
		return false
	}

	if f.MinAmount != nil && r.Amount.LessThan(*f.MinAmount) {
		return false
	}

	if f.MaxAmount != nil && r.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}

	if f.Status != nil && r.Status != *f.Status {
		return false
	}

	if f.Currency != nil && r.Currency != *f.Currency {
		return false
	}

	if f.PaymentMethod != nil && r.PaymentMethod != *f.PaymentMethod {
		return false
	}

	if f.IsExpress != nil && r.IsExpress != *f.IsExpress {
		return false
	}

	return true
}

func applyFilter(items []*Remittance, f ListFilter) []*Remittance {
	matched := make([]*Remittance, 0, len(items))

	for _, r := range items {
		if f.matches(r) {
			matched = append(matched, r)
		}
	}

	return matched
}

// matchesSearch implements the two-stage search: the remittance's own fields
// first, then the linked corridor's countries and code as a fallback.
func matchesSearch(r *Remittance, query string) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(r.SenderName), q) ||
		strings.Contains(strings.ToLower(r.RecipientName), q) ||
		strings.Contains(strings.ToLower(r.ReferenceCode), q) {
		return true
	}

	if r.Corridor == nil {
		return false
	}

	return strings.Contains(strings.ToLower(r.Corridor.OriginCountry), q) ||
		strings.Contains(strings.ToLower(r.Corridor.DestinationCountry), q) ||
		strings.Contains(strings.ToLower(r.Corridor.Code), q)
}

func comparator(field SortField) func(a, b *Remittance) int {
	switch field {
	case SortByAmount:
		return func(a, b *Remittance) int { return a.Amount.Cmp(b.Amount) }
	case SortByFee:
		return func(a, b *Remittance) int { return a.Fee.Cmp(b.Fee) }
	case SortBySenderName:
		return func(a, b *Remittance) int { return strings.Compare(a.SenderName, b.SenderName) }
	default:
		return func(a, b *Remittance) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
}

// sortItems sorts in place. The sort is stable, so records with equal keys
// keep their creation order.
func sortItems(items []*Remittance, field SortField, order SortOrder) {
	cmp := comparator(field)

	slices.SortStableFunc(items, func(a, b *Remittance) int {
		c := cmp(a, b)
		if order == OrderDesc {
			return -c
		}

		return c
	})
}

// Page is one window of a filtered listing.
type Page struct {
	Items   []*Remittance
	Total   int
	Page    int
	PerPage int
	Pages   int
	HasNext bool
	HasPrev bool
}

// paginate cuts one window out of the already filtered and sorted items.
// Pages past the end yield an empty window, not an error, and an empty
// result still reports one page.
func paginate(items []*Remittance, page, perPage int) *Page {
	total := len(items)

	pages := (total + perPage - 1) / perPage
	if pages == 0 {
		pages = 1
	}

	window := []*Remittance{}
	if start := (page - 1) * perPage; start < total {
		window = items[start:min(start+perPage, total)]
	}

	return &Page{
		Items:   window,
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

func validatePageBounds(page, perPage int) error {
	if page < 1 {
		return apperror.Validationf("page must be at least 1")
	}

	if perPage < 1 || perPage > 50 {
		return apperror.Validationf("per_page must be between 1 and 50")
	}

	return nil
}
