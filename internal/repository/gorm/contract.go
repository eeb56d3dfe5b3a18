package gorm

import (
	"context"
	"time"

	domainContract "github.com/garagio/garagio/internal/domain/contract"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/postgres"
	"github.com/garagio/garagio/internal/types"
)

type contractRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewContractRepository(client postgres.IClient, log *logger.Logger) domainContract.Repository {
	return &contractRepository{client: client, log: log}
}

func (r *contractRepository) Create(ctx context.Context, c *domainContract.Contract) error {
	r.log.Debugw("creating contract",
		"contract_id", c.ID,
		"unit_id", c.UnitID,
		"customer_id", c.CustomerID,
		"tenant_id", c.TenantID,
	)

	if err := r.client.Querier(ctx).Create(c).Error; err != nil {
		return translateDBError(err, "failed to create contract")
	}
	return nil
}

func (r *contractRepository) Get(ctx context.Context, id string) (*domainContract.Contract, error) {
	var c domainContract.Contract
	err := r.client.Querier(ctx).
		Where("id = ? AND tenant_id = ? AND status != ?", id, types.GetTenantID(ctx), types.StatusDeleted).
		First(&c).Error
	if err != nil {
		return nil, translateDBError(err, "failed to get contract")
	}
	return &c, nil
}

func (r *contractRepository) Update(ctx context.Context, c *domainContract.Contract) error {
	c.UpdatedAt = time.Now().UTC()
	c.UpdatedBy = types.GetUserID(ctx)

	if err := r.client.Querier(ctx).Save(c).Error; err != nil {
		return translateDBError(err, "failed to update contract")
	}
	return nil
}

func (r *contractRepository) Delete(ctx context.Context, id string) error {
	res := r.client.Querier(ctx).
		Model(&domainContract.Contract{}).
		Where("id = ? AND tenant_id = ?", id, types.GetTenantID(ctx)).
		Updates(map[string]interface{}{
			"status":     types.StatusDeleted,
			"updated_at": time.Now().UTC(),
			"updated_by": types.GetUserID(ctx),
		})
	if res.Error != nil {
		return translateDBError(res.Error, "failed to delete contract")
	}
	return nil
}

func (r *contractRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainContract.Contract, error) {
	var contracts []*domainContract.Contract
	err := r.client.Querier(ctx).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Order("created_at DESC").
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Find(&contracts).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list contracts")
	}
	return contracts, nil
}

func (r *contractRepository) ListByUnit(ctx context.Context, unitID string) ([]*domainContract.Contract, error) {
	var contracts []*domainContract.Contract
	err := r.client.Querier(ctx).
		Where("unit_id = ? AND tenant_id = ? AND status != ?", unitID, types.GetTenantID(ctx), types.StatusDeleted).
		Order("created_at DESC").
		Find(&contracts).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list contracts by unit")
	}
	return contracts, nil
}

func (r *contractRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domainContract.Contract, error) {
	var contracts []*domainContract.Contract
	err := r.client.Querier(ctx).
		Where("customer_id = ? AND tenant_id = ? AND status != ?", customerID, types.GetTenantID(ctx), types.StatusDeleted).
		Order("created_at DESC").
		Find(&contracts).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list contracts by customer")
	}
	return contracts, nil
}

func (r *contractRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	var count int64
	err := r.client.Querier(ctx).
		Model(&domainContract.Contract{}).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Count(&count).Error
	if err != nil {
		return 0, translateDBError(err, "failed to count contracts")
	}
	return int(count), nil
}

func (r *contractRepository) GetActiveByUnit(ctx context.Context, unitID string) (*domainContract.Contract, error) {
	var c domainContract.Contract
	err := r.client.Querier(ctx).
		Where(
			"unit_id = ? AND contract_status = ? AND tenant_id = ? AND status != ?",
			unitID, types.ContractStatusActive, types.GetTenantID(ctx), types.StatusDeleted,
		).
		First(&c).Error
	if err != nil {
		return nil, translateDBError(err, "failed to get active contract for unit")
	}
	return &c, nil
}
