package remittance

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/remesahq/remesa/internal/apperror"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=remittance
type Repository interface {
	CreateRemittance(ctx context.Context, params CreateParams) (*Remittance, error)
	CreateRemittances(ctx context.Context, params []CreateParams) ([]*Remittance, error)
	GetRemittance(ctx context.Context, id int) (*Remittance, error)
	ListRemittances(ctx context.Context) ([]*Remittance, error)
	ReplaceRemittance(ctx context.Context, id int, params CreateParams) (*Remittance, error)
	UpdateRemittance(ctx context.Context, id int, params UpdateParams) (*Remittance, error)
	DeleteRemittance(ctx context.Context, id int) error
	Stats(ctx context.Context) (*Stats, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	SenderName    string
	RecipientName string
	CorridorID    int
	Amount        decimal.Decimal
	Currency      Currency
	ExchangeRate  decimal.Decimal
	PaymentMethod PaymentMethod
	IsExpress     bool
}

func (p CreateParams) Validate() error {
	if err := validateParty("sender_name", p.SenderName); err != nil {
		return err
	}

	if err := validateParty("recipient_name", p.RecipientName); err != nil {
		return err
	}

	if p.CorridorID <= 0 {
		return apperror.Validationf("corridor_id must be a positive integer")
	}

	if err := validateAmount(p.Amount); err != nil {
		return err
	}

	if _, err := ParseCurrency(string(p.Currency)); err != nil {
		return err
	}

	if err := validateExchangeRate(p.ExchangeRate); err != nil {
		return err
	}

	_, err := ParsePaymentMethod(string(p.PaymentMethod))

	return err
}

// UpdateParams carries a partial update; nil fields are left unchanged.
// Fee and reference code have no fields here on purpose: the fee is always
// derived and the reference code never changes.
type UpdateParams struct {
	SenderName    *string
	RecipientName *string
	CorridorID    *int
	Amount        *decimal.Decimal
	Currency      *Currency
	ExchangeRate  *decimal.Decimal
	PaymentMethod *PaymentMethod
	Status        *Status
	IsExpress     *bool
}

func (p UpdateParams) Validate() error {
	if p.SenderName != nil {
		if err := validateParty("sender_name", *p.SenderName); err != nil {
			return err
		}
	}

	if p.RecipientName != nil {
		if err := validateParty("recipient_name", *p.RecipientName); err != nil {
			return err
		}
	}

	if p.CorridorID != nil && *p.CorridorID <= 0 {
		return apperror.Validationf("corridor_id must be a positive integer")
	}

	if p.Amount != nil {
		if err := validateAmount(*p.Amount); err != nil {
			return err
		}
	}

	if p.Currency != nil {
		if _, err := ParseCurrency(string(*p.Currency)); err != nil {
			return err
		}
	}

	if p.ExchangeRate != nil {
		if err := validateExchangeRate(*p.ExchangeRate); err != nil {
			return err
		}
	}

	if p.PaymentMethod != nil {
		if _, err := ParsePaymentMethod(string(*p.PaymentMethod)); err != nil {
			return err
		}
	}

	if p.Status != nil {
		if _, err := ParseStatus(string(*p.Status)); err != nil {
			return err
		}
	}

	return nil
}

// TouchesFee reports whether the patch changes any fee input, in which case
// the store recomputes the fee.
func (p UpdateParams) TouchesFee() bool {
	return p.Amount != nil || p.CorridorID != nil || p.IsExpress != nil
}

type ListOptions struct {
	Filter  ListFilter
	SortBy  SortField
	Order   SortOrder
	Page    int
	PerPage int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Remittance, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return s.repo.CreateRemittance(ctx, params)
}

// CreateBatch validates every row up front and hands the whole batch to the
// repository, which inserts all of it or nothing.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Remittance, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for i, p := range params {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	return s.repo.CreateRemittances(ctx, params)
}

func (s *Service) Get(ctx context.Context, id int) (*Remittance, error) {
	return s.repo.GetRemittance(ctx, id)
}

// List runs the full listing pipeline over a snapshot: filter, sort,
// paginate. SortBy and Order default to created_at descending when empty.
func (s *Service) List(ctx context.Context, opts ListOptions) (*Page, error) {
	if err := opts.Filter.Validate(); err != nil {
		return nil, err
	}

	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = SortByCreatedAt
	} else if _, err := ParseSortField(string(sortBy)); err != nil {
		return nil, err
	}

	order := opts.Order
	if order == "" {
		order = OrderDesc
	} else if _, err := ParseSortOrder(string(order)); err != nil {
		return nil, err
	}

	if err := validatePageBounds(opts.Page, opts.PerPage); err != nil {
		return nil, err
	}

	items, err := s.repo.ListRemittances(ctx)
	if err != nil {
		return nil, err
	}

	matched := applyFilter(items, opts.Filter)
	sortItems(matched, sortBy, order)

	return paginate(matched, opts.Page, opts.PerPage), nil
}

// ListAll returns the complete filtered set in creation order, for export.
func (s *Service) ListAll(ctx context.Context, filter ListFilter) ([]*Remittance, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	items, err := s.repo.ListRemittances(ctx)
	if err != nil {
		return nil, err
	}

	return applyFilter(items, filter), nil
}

// ListByCorridor pages through one corridor's remittances in creation order.
func (s *Service) ListByCorridor(ctx context.Context, corridorID, page, perPage int) (*Page, error) {
	if err := validatePageBounds(page, perPage); err != nil {
		return nil, err
	}

	items, err := s.repo.ListRemittances(ctx)
	if err != nil {
		return nil, err
	}

	matched := applyFilter(items, ListFilter{CorridorID: &corridorID})

	return paginate(matched, page, perPage), nil
}

// Search matches the query against remittance fields with a corridor
// fallback, keeping creation order. Queries under 2 characters are rejected.
func (s *Service) Search(ctx context.Context, query string, page, perPage int) (*Page, error) {
	if err := validateSearchQuery(query); err != nil {
		return nil, err
	}

	if err := validatePageBounds(page, perPage); err != nil {
		return nil, err
	}

	items, err := s.repo.ListRemittances(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*Remittance, 0, len(items))

	for _, r := range items {
		if matchesSearch(r, query) {
			matched = append(matched, r)
		}
	}

	return paginate(matched, page, perPage), nil
}

func (s *Service) Replace(ctx context.Context, id int, params CreateParams) (*Remittance, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return s.repo.ReplaceRemittance(ctx, id, params)
}

func (s *Service) Update(ctx context.Context, id int, params UpdateParams) (*Remittance, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return s.repo.UpdateRemittance(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteRemittance(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}
