package gorm

import (
	"context"
	"time"

	domainUnit "github.com/garagio/garagio/internal/domain/unit"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/postgres"
	"github.com/garagio/garagio/internal/types"
)

type unitRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewUnitRepository(client postgres.IClient, log *logger.Logger) domainUnit.Repository {
	return &unitRepository{client: client, log: log}
}

func (r *unitRepository) Create(ctx context.Context, u *domainUnit.Unit) error {
	r.log.Debugw("creating unit",
		"unit_id", u.ID,
		"property_id", u.PropertyID,
		"tenant_id", u.TenantID,
	)

	if err := r.client.Querier(ctx).Create(u).Error; err != nil {
		return translateDBError(err, "failed to create unit")
	}
	return nil
}

func (r *unitRepository) Get(ctx context.Context, id string) (*domainUnit.Unit, error) {
	var u domainUnit.Unit
	err := r.client.Querier(ctx).
		Where("id = ? AND tenant_id = ? AND status != ?", id, types.GetTenantID(ctx), types.StatusDeleted).
		First(&u).Error
	if err != nil {
		return nil, translateDBError(err, "failed to get unit")
	}
	return &u, nil
}

func (r *unitRepository) Update(ctx context.Context, u *domainUnit.Unit) error {
	u.UpdatedAt = time.Now().UTC()
	u.UpdatedBy = types.GetUserID(ctx)

	if err := r.client.Querier(ctx).Save(u).Error; err != nil {
		return translateDBError(err, "failed to update unit")
	}
	return nil
}

func (r *unitRepository) Delete(ctx context.Context, id string) error {
	res := r.client.Querier(ctx).
		Model(&domainUnit.Unit{}).
		Where("id = ? AND tenant_id = ?", id, types.GetTenantID(ctx)).
		Updates(map[string]interface{}{
			"status":     types.StatusDeleted,
			"updated_at": time.Now().UTC(),
			"updated_by": types.GetUserID(ctx),
		})
	if res.Error != nil {
		return translateDBError(res.Error, "failed to delete unit")
	}
	return nil
}

func (r *unitRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainUnit.Unit, error) {
	var units []*domainUnit.Unit
	err := r.client.Querier(ctx).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Order("created_at DESC").
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Find(&units).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list units")
	}
	return units, nil
}

func (r *unitRepository) ListByProperty(ctx context.Context, propertyID string) ([]*domainUnit.Unit, error) {
	var units []*domainUnit.Unit
	err := r.client.Querier(ctx).
		Where("property_id = ? AND tenant_id = ? AND status != ?", propertyID, types.GetTenantID(ctx), types.StatusDeleted).
		Order("unit_number ASC").
		Find(&units).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list units by property")
	}
	return units, nil
}

func (r *unitRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	var count int64
	err := r.client.Querier(ctx).
		Model(&domainUnit.Unit{}).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Count(&count).Error
	if err != nil {
		return 0, translateDBError(err, "failed to count units")
	}
	return int(count), nil
}

// SetOccupied flips the occupancy flag inside whatever transaction the
// context carries. A missing unit is a no-op: unit deletion cascade-deletes
// its contracts, so an occupancy write racing a delete has nothing to fix.
func (r *unitRepository) SetOccupied(ctx context.Context, id string, occupied bool) error {
	res := r.client.Querier(ctx).
		Model(&domainUnit.Unit{}).
		Where("id = ? AND tenant_id = ? AND status != ?", id, types.GetTenantID(ctx), types.StatusDeleted).
		Updates(map[string]interface{}{
			"occupied":   occupied,
			"updated_at": time.Now().UTC(),
			"updated_by": types.GetUserID(ctx),
		})
	if res.Error != nil {
		return translateDBError(res.Error, "failed to update unit occupancy")
	}
	if res.RowsAffected == 0 {
		r.log.Debugw("unit occupancy update skipped, unit gone", "unit_id", id)
	}
	return nil
}
