package gorm

import (
	"context"
	"time"

	domainMaintenance "github.com/garagio/garagio/internal/domain/maintenance"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/postgres"
	"github.com/garagio/garagio/internal/types"
)

type maintenanceRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewMaintenanceRepository(client postgres.IClient, log *logger.Logger) domainMaintenance.Repository {
	return &maintenanceRepository{client: client, log: log}
}

func (r *maintenanceRepository) Create(ctx context.Context, req *domainMaintenance.Request) error {
	if err := r.client.Querier(ctx).Create(req).Error; err != nil {
		return translateDBError(err, "failed to create maintenance request")
	}
	return nil
}

func (r *maintenanceRepository) Get(ctx context.Context, id string) (*domainMaintenance.Request, error) {
	var req domainMaintenance.Request
	err := r.client.Querier(ctx).
		Where("id = ? AND tenant_id = ? AND status != ?", id, types.GetTenantID(ctx), types.StatusDeleted).
		First(&req).Error
	if err != nil {
		return nil, translateDBError(err, "failed to get maintenance request")
	}
	return &req, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, req *domainMaintenance.Request) error {
	req.UpdatedAt = time.Now().UTC()
	req.UpdatedBy = types.GetUserID(ctx)

	if err := r.client.Querier(ctx).Save(req).Error; err != nil {
		return translateDBError(err, "failed to update maintenance request")
	}
	return nil
}

func (r *maintenanceRepository) Delete(ctx context.Context, id string) error {
	res := r.client.Querier(ctx).
		Model(&domainMaintenance.Request{}).
		Where("id = ? AND tenant_id = ?", id, types.GetTenantID(ctx)).
		Updates(map[string]interface{}{
			"status":     types.StatusDeleted,
			"updated_at": time.Now().UTC(),
			"updated_by": types.GetUserID(ctx),
		})
	if res.Error != nil {
		return translateDBError(res.Error, "failed to delete maintenance request")
	}
	return nil
}

func (r *maintenanceRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainMaintenance.Request, error) {
	var requests []*domainMaintenance.Request
	err := r.client.Querier(ctx).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Order("created_at DESC").
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Find(&requests).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list maintenance requests")
	}
	return requests, nil
}

func (r *maintenanceRepository) ListByUnit(ctx context.Context, unitID string) ([]*domainMaintenance.Request, error) {
	var requests []*domainMaintenance.Request
	err := r.client.Querier(ctx).
		Where("unit_id = ? AND tenant_id = ? AND status != ?", unitID, types.GetTenantID(ctx), types.StatusDeleted).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list maintenance requests by unit")
	}
	return requests, nil
}

func (r *maintenanceRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	var count int64
	err := r.client.Querier(ctx).
		Model(&domainMaintenance.Request{}).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Count(&count).Error
	if err != nil {
		return 0, translateDBError(err, "failed to count maintenance requests")
	}
	return int(count), nil
}
