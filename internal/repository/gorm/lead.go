package gorm

import (
	"context"
	"time"

	domainLead "github.com/garagio/garagio/internal/domain/lead"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/postgres"
	"github.com/garagio/garagio/internal/types"
)

type leadRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewLeadRepository(client postgres.IClient, log *logger.Logger) domainLead.Repository {
	return &leadRepository{client: client, log: log}
}

func (r *leadRepository) Create(ctx context.Context, l *domainLead.Lead) error {
	if err := r.client.Querier(ctx).Create(l).Error; err != nil {
		return translateDBError(err, "failed to create lead")
	}
	return nil
}

func (r *leadRepository) Get(ctx context.Context, id string) (*domainLead.Lead, error) {
	var l domainLead.Lead
	err := r.client.Querier(ctx).
		Where("id = ? AND tenant_id = ? AND status != ?", id, types.GetTenantID(ctx), types.StatusDeleted).
		First(&l).Error
	if err != nil {
		return nil, translateDBError(err, "failed to get lead")
	}
	return &l, nil
}

func (r *leadRepository) Update(ctx context.Context, l *domainLead.Lead) error {
	l.UpdatedAt = time.Now().UTC()
	l.UpdatedBy = types.GetUserID(ctx)

	if err := r.client.Querier(ctx).Save(l).Error; err != nil {
		return translateDBError(err, "failed to update lead")
	}
	return nil
}

func (r *leadRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainLead.Lead, error) {
	var leads []*domainLead.Lead
	err := r.client.Querier(ctx).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Order("created_at DESC").
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Find(&leads).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list leads")
	}
	return leads, nil
}

func (r *leadRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	var count int64
	err := r.client.Querier(ctx).
		Model(&domainLead.Lead{}).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Count(&count).Error
	if err != nil {
		return 0, translateDBError(err, "failed to count leads")
	}
	return int(count), nil
}
