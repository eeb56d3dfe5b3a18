package service

import (
	"context"

	"github.com/garagio/garagio/internal/api/dto"
	"github.com/garagio/garagio/internal/types"
)

type UnitService interface {
	CreateUnit(ctx context.Context, req dto.CreateUnitRequest) (*dto.UnitResponse, error)
	GetUnit(ctx context.Context, id string) (*dto.UnitResponse, error)
	ListUnits(ctx context.Context, filter *types.QueryFilter) (*dto.ListUnitsResponse, error)
	ListUnitsByProperty(ctx context.Context, propertyID string) (*dto.ListUnitsResponse, error)
	UpdateUnit(ctx context.Context, id string, req dto.UpdateUnitRequest) (*dto.UnitResponse, error)
	DeleteUnit(ctx context.Context, id string) error
}

type unitService struct {
	ServiceParams
}

func NewUnitService(params ServiceParams) UnitService {
	return &unitService{
		ServiceParams: params,
	}
}

func (s *unitService) CreateUnit(ctx context.Context, req dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	// The property must exist in the caller's tenant
	if _, err := s.PropertyRepo.Get(ctx, req.PropertyID); err != nil {
		return nil, err
	}

	u := req.ToUnit(ctx)

	if err := u.Validate(); err != nil {
		return nil, err
	}

	if err := s.UnitRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	return dto.NewUnitResponse(u), nil
}

func (s *unitService) GetUnit(ctx context.Context, id string) (*dto.UnitResponse, error) {
	u, err := s.UnitRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewUnitResponse(u), nil
}

func (s *unitService) ListUnits(ctx context.Context, filter *types.QueryFilter) (*dto.ListUnitsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	units, err := s.UnitRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.UnitRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.UnitResponse, len(units))
	for i, u := range units {
		items[i] = dto.NewUnitResponse(u)
	}

	return &dto.ListUnitsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *unitService) ListUnitsByProperty(ctx context.Context, propertyID string) (*dto.ListUnitsResponse, error) {
	units, err := s.UnitRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.UnitResponse, len(units))
	for i, u := range units {
		items[i] = dto.NewUnitResponse(u)
	}

	return &dto.ListUnitsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(len(items), len(items), 0),
	}, nil
}

func (s *unitService) UpdateUnit(ctx context.Context, id string, req dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	u, err := s.UnitRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.UnitNumber != nil {
		u.UnitNumber = *req.UnitNumber
	}
	if req.SizeSqm != nil {
		u.SizeSqm = *req.SizeSqm
	}
	if req.MonthlyRate != nil {
		u.MonthlyRate = *req.MonthlyRate
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	if err := s.UnitRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	return dto.NewUnitResponse(u), nil
}

// DeleteUnit removes the unit together with its contracts. Invoices and
// ledger entries survive for bookkeeping.
func (s *unitService) DeleteUnit(ctx context.Context, id string) error {
	if _, err := s.UnitRepo.Get(ctx, id); err != nil {
		return err
	}

	return s.DB.WithTx(ctx, func(txCtx context.Context) error {
		contracts, err := s.ContractRepo.ListByUnit(txCtx, id)
		if err != nil {
			return err
		}
		for _, c := range contracts {
			if err := s.ContractRepo.Delete(txCtx, c.ID); err != nil {
				return err
			}
		}
		return s.UnitRepo.Delete(txCtx, id)
	})
}
