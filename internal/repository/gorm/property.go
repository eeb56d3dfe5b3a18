package gorm

import (
	"context"
	"time"

	domainProperty "github.com/garagio/garagio/internal/domain/property"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/postgres"
	"github.com/garagio/garagio/internal/types"
)

type propertyRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewPropertyRepository(client postgres.IClient, log *logger.Logger) domainProperty.Repository {
	return &propertyRepository{client: client, log: log}
}

func (r *propertyRepository) Create(ctx context.Context, p *domainProperty.Property) error {
	r.log.Debugw("creating property", "property_id", p.ID, "tenant_id", p.TenantID)

	if err := r.client.Querier(ctx).Create(p).Error; err != nil {
		return translateDBError(err, "failed to create property")
	}
	return nil
}

func (r *propertyRepository) Get(ctx context.Context, id string) (*domainProperty.Property, error) {
	var p domainProperty.Property
	err := r.client.Querier(ctx).
		Where("id = ? AND tenant_id = ? AND status != ?", id, types.GetTenantID(ctx), types.StatusDeleted).
		First(&p).Error
	if err != nil {
		return nil, translateDBError(err, "failed to get property")
	}
	return &p, nil
}

func (r *propertyRepository) Update(ctx context.Context, p *domainProperty.Property) error {
	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = types.GetUserID(ctx)

	if err := r.client.Querier(ctx).Save(p).Error; err != nil {
		return translateDBError(err, "failed to update property")
	}
	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	res := r.client.Querier(ctx).
		Model(&domainProperty.Property{}).
		Where("id = ? AND tenant_id = ?", id, types.GetTenantID(ctx)).
		Updates(map[string]interface{}{
			"status":     types.StatusDeleted,
			"updated_at": time.Now().UTC(),
			"updated_by": types.GetUserID(ctx),
		})
	if res.Error != nil {
		return translateDBError(res.Error, "failed to delete property")
	}
	return nil
}

func (r *propertyRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainProperty.Property, error) {
	var properties []*domainProperty.Property
	err := r.client.Querier(ctx).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Order("created_at DESC").
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Find(&properties).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list properties")
	}
	return properties, nil
}

func (r *propertyRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	var count int64
	err := r.client.Querier(ctx).
		Model(&domainProperty.Property{}).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Count(&count).Error
	if err != nil {
		return 0, translateDBError(err, "failed to count properties")
	}
	return int(count), nil
}
