package corridor

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=corridor
type Repository interface {
	CreateCorridor(ctx context.Context, params CreateParams) (*Corridor, error)
	GetCorridor(ctx context.Context, id int) (*Corridor, error)
	ListCorridors(ctx context.Context, filter ListFilter) ([]*Corridor, error)
	ReplaceCorridor(ctx context.Context, id int, params CreateParams) (*Corridor, error)
	UpdateCorridor(ctx context.Context, id int, params UpdateParams) (*Corridor, error)
	DeleteCorridor(ctx context.Context, id int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name               string
	Code               string
	OriginCountry      string
	DestinationCountry string
	BaseFeePercentage  decimal.Decimal
	IsActive           bool
}

func (p CreateParams) Validate() error {
	if err := validateName(p.Name); err != nil {
		return err
	}

	if err := validateCode(p.Code); err != nil {
		return err
	}

	if err := validateCountry("origin_country", p.OriginCountry); err != nil {
		return err
	}

	if err := validateCountry("destination_country", p.DestinationCountry); err != nil {
		return err
	}

	return validateBaseFee(p.BaseFeePercentage)
}

// UpdateParams carries a partial update; nil fields are left unchanged.
type UpdateParams struct {
	Name               *string
	Code               *string
	OriginCountry      *string
	DestinationCountry *string
	BaseFeePercentage  *decimal.Decimal
	IsActive           *bool
}

func (p UpdateParams) Validate() error {
	if p.Name != nil {
		if err := validateName(*p.Name); err != nil {
			return err
		}
	}

	if p.Code != nil {
		if err := validateCode(*p.Code); err != nil {
			return err
		}
	}

	if p.OriginCountry != nil {
		if err := validateCountry("origin_country", *p.OriginCountry); err != nil {
			return err
		}
	}

	if p.DestinationCountry != nil {
		if err := validateCountry("destination_country", *p.DestinationCountry); err != nil {
			return err
		}
	}

	if p.BaseFeePercentage != nil {
		return validateBaseFee(*p.BaseFeePercentage)
	}

	return nil
}

type ListFilter struct {
	IsActive *bool
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Corridor, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return s.repo.CreateCorridor(ctx, params)
}

func (s *Service) Get(ctx context.Context, id int) (*Corridor, error) {
	return s.repo.GetCorridor(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Corridor, error) {
	return s.repo.ListCorridors(ctx, filter)
}

func (s *Service) Replace(ctx context.Context, id int, params CreateParams) (*Corridor, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return s.repo.ReplaceCorridor(ctx, id, params)
}

func (s *Service) Update(ctx context.Context, id int, params UpdateParams) (*Corridor, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return s.repo.UpdateCorridor(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteCorridor(ctx, id)
}
