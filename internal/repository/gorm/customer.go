package gorm

import (
	"context"
	"time"

	domainCustomer "github.com/garagio/garagio/internal/domain/customer"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/postgres"
	"github.com/garagio/garagio/internal/types"
)

type customerRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewCustomerRepository(client postgres.IClient, log *logger.Logger) domainCustomer.Repository {
	return &customerRepository{client: client, log: log}
}

func (r *customerRepository) Create(ctx context.Context, c *domainCustomer.Customer) error {
	r.log.Debugw("creating customer", "customer_id", c.ID, "tenant_id", c.TenantID)

	if err := r.client.Querier(ctx).Create(c).Error; err != nil {
		return translateDBError(err, "failed to create customer")
	}
	return nil
}

func (r *customerRepository) Get(ctx context.Context, id string) (*domainCustomer.Customer, error) {
	var c domainCustomer.Customer
	err := r.client.Querier(ctx).
		Where("id = ? AND tenant_id = ? AND status != ?", id, types.GetTenantID(ctx), types.StatusDeleted).
		First(&c).Error
	if err != nil {
		return nil, translateDBError(err, "failed to get customer")
	}
	return &c, nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domainCustomer.Customer, error) {
	var c domainCustomer.Customer
	err := r.client.Querier(ctx).
		Where("email = ? AND tenant_id = ? AND status != ?", email, types.GetTenantID(ctx), types.StatusDeleted).
		First(&c).Error
	if err != nil {
		return nil, translateDBError(err, "failed to get customer by email")
	}
	return &c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domainCustomer.Customer) error {
	c.UpdatedAt = time.Now().UTC()
	c.UpdatedBy = types.GetUserID(ctx)

	if err := r.client.Querier(ctx).Save(c).Error; err != nil {
		return translateDBError(err, "failed to update customer")
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	res := r.client.Querier(ctx).
		Model(&domainCustomer.Customer{}).
		Where("id = ? AND tenant_id = ?", id, types.GetTenantID(ctx)).
		Updates(map[string]interface{}{
			"status":     types.StatusDeleted,
			"updated_at": time.Now().UTC(),
			"updated_by": types.GetUserID(ctx),
		})
	if res.Error != nil {
		return translateDBError(res.Error, "failed to delete customer")
	}
	return nil
}

func (r *customerRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainCustomer.Customer, error) {
	var customers []*domainCustomer.Customer
	err := r.client.Querier(ctx).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Order("created_at DESC").
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Find(&customers).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list customers")
	}
	return customers, nil
}

func (r *customerRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	var count int64
	err := r.client.Querier(ctx).
		Model(&domainCustomer.Customer{}).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Count(&count).Error
	if err != nil {
		return 0, translateDBError(err, "failed to count customers")
	}
	return int(count), nil
}
