package service

import (
	"context"

	"github.com/garagio/garagio/internal/api/dto"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/types"
)

type ContractService interface {
	CreateContract(ctx context.Context, req dto.CreateContractRequest) (*dto.ContractResponse, error)
	GetContract(ctx context.Context, id string) (*dto.ContractResponse, error)
	ListContracts(ctx context.Context, filter *types.QueryFilter) (*dto.ListContractsResponse, error)
	ListContractsByCustomer(ctx context.Context, customerID string) (*dto.ListContractsResponse, error)
	UpdateContractStatus(ctx context.Context, id string, req dto.UpdateContractStatusRequest) (*dto.ContractResponse, error)
	DeleteContract(ctx context.Context, id string) error
}

type contractService struct {
	ServiceParams
}

func NewContractService(params ServiceParams) ContractService {
	return &contractService{
		ServiceParams: params,
	}
}

// CreateContract creates an active lease and marks its unit occupied in the
// same transaction. A unit holds at most one active contract; a second
// create on the same unit is rejected with a conflict.
func (s *contractService) CreateContract(ctx context.Context, req dto.CreateContractRequest) (*dto.ContractResponse, error) {
	c := req.ToContract(ctx)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.UnitRepo.Get(ctx, c.UnitID); err != nil {
		return nil, err
	}
	if _, err := s.CustomerRepo.Get(ctx, c.CustomerID); err != nil {
		return nil, err
	}

	err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.ContractRepo.GetActiveByUnit(txCtx, c.UnitID)
		if err != nil && !ierr.IsNotFound(err) {
			return err
		}
		if existing != nil {
			return ierr.NewError("unit already has an active contract").
				WithHint("Terminate the existing contract before creating a new one").
				WithReportableDetails(map[string]any{
					"unit_id":     c.UnitID,
					"contract_id": existing.ID,
				}).
				Mark(ierr.ErrAlreadyExists)
		}

		if err := s.ContractRepo.Create(txCtx, c); err != nil {
			return err
		}

		return s.UnitRepo.SetOccupied(txCtx, c.UnitID, true)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("contract created",
		"contract_id", c.ID,
		"unit_id", c.UnitID,
		"customer_id", c.CustomerID,
	)

	return dto.NewContractResponse(c), nil
}

func (s *contractService) GetContract(ctx context.Context, id string) (*dto.ContractResponse, error) {
	c, err := s.ContractRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewContractResponse(c), nil
}

func (s *contractService) ListContracts(ctx context.Context, filter *types.QueryFilter) (*dto.ListContractsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	contracts, err := s.ContractRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.ContractRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ContractResponse, len(contracts))
	for i, c := range contracts {
		items[i] = dto.NewContractResponse(c)
	}

	return &dto.ListContractsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *contractService) ListContractsByCustomer(ctx context.Context, customerID string) (*dto.ListContractsResponse, error) {
	contracts, err := s.ContractRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ContractResponse, len(contracts))
	for i, c := range contracts {
		items[i] = dto.NewContractResponse(c)
	}

	return &dto.ListContractsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(len(items), len(items), 0),
	}, nil
}

// UpdateContractStatus moves the lease through its lifecycle. Transitions
// into a terminal state vacate the unit in the same transaction. Repeating
// the current status is a no-op, so terminating twice is safe.
func (s *contractService) UpdateContractStatus(ctx context.Context, id string, req dto.UpdateContractStatusRequest) (*dto.ContractResponse, error) {
	if err := req.Status.Validate(); err != nil {
		return nil, err
	}

	c, err := s.ContractRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.ContractStatus == req.Status {
		return dto.NewContractResponse(c), nil
	}

	if !c.ContractStatus.CanTransitionTo(req.Status) {
		return nil, ierr.NewError("invalid contract status transition").
			WithHintf("Cannot move a %s contract to %s", c.ContractStatus, req.Status).
			WithReportableDetails(map[string]any{
				"contract_id": c.ID,
				"from":        c.ContractStatus,
				"to":          req.Status,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	wasActive := c.ContractStatus == types.ContractStatusActive
	c.ContractStatus = req.Status

	err = s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.ContractRepo.Update(txCtx, c); err != nil {
			return err
		}
		if wasActive && req.Status.IsTerminal() {
			return s.UnitRepo.SetOccupied(txCtx, c.UnitID, false)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("contract status updated",
		"contract_id", c.ID,
		"status", c.ContractStatus,
	)

	return dto.NewContractResponse(c), nil
}

// DeleteContract removes the lease record. An active contract vacates its
// unit on the way out.
func (s *contractService) DeleteContract(ctx context.Context, id string) error {
	c, err := s.ContractRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	return s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.ContractRepo.Delete(txCtx, id); err != nil {
			return err
		}
		if c.ContractStatus == types.ContractStatusActive {
			return s.UnitRepo.SetOccupied(txCtx, c.UnitID, false)
		}
		return nil
	})
}
