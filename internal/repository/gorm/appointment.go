package gorm

import (
	"context"
	"time"

	domainAppointment "github.com/garagio/garagio/internal/domain/appointment"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/postgres"
	"github.com/garagio/garagio/internal/types"
)

type appointmentRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewAppointmentRepository(client postgres.IClient, log *logger.Logger) domainAppointment.Repository {
	return &appointmentRepository{client: client, log: log}
}

func (r *appointmentRepository) Create(ctx context.Context, a *domainAppointment.Appointment) error {
	if err := r.client.Querier(ctx).Create(a).Error; err != nil {
		return translateDBError(err, "failed to create appointment")
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id string) (*domainAppointment.Appointment, error) {
	var a domainAppointment.Appointment
	err := r.client.Querier(ctx).
		Where("id = ? AND tenant_id = ? AND status != ?", id, types.GetTenantID(ctx), types.StatusDeleted).
		First(&a).Error
	if err != nil {
		return nil, translateDBError(err, "failed to get appointment")
	}
	return &a, nil
}

func (r *appointmentRepository) Update(ctx context.Context, a *domainAppointment.Appointment) error {
	a.UpdatedAt = time.Now().UTC()
	a.UpdatedBy = types.GetUserID(ctx)

	if err := r.client.Querier(ctx).Save(a).Error; err != nil {
		return translateDBError(err, "failed to update appointment")
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	res := r.client.Querier(ctx).
		Model(&domainAppointment.Appointment{}).
		Where("id = ? AND tenant_id = ?", id, types.GetTenantID(ctx)).
		Updates(map[string]interface{}{
			"status":     types.StatusDeleted,
			"updated_at": time.Now().UTC(),
			"updated_by": types.GetUserID(ctx),
		})
	if res.Error != nil {
		return translateDBError(res.Error, "failed to delete appointment")
	}
	return nil
}

func (r *appointmentRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainAppointment.Appointment, error) {
	var appointments []*domainAppointment.Appointment
	err := r.client.Querier(ctx).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Order("scheduled_at ASC").
		Limit(filter.GetLimit()).
		Offset(filter.GetOffset()).
		Find(&appointments).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list appointments")
	}
	return appointments, nil
}

func (r *appointmentRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domainAppointment.Appointment, error) {
	var appointments []*domainAppointment.Appointment
	err := r.client.Querier(ctx).
		Where("customer_id = ? AND tenant_id = ? AND status != ?", customerID, types.GetTenantID(ctx), types.StatusDeleted).
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, translateDBError(err, "failed to list appointments by customer")
	}
	return appointments, nil
}

func (r *appointmentRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	var count int64
	err := r.client.Querier(ctx).
		Model(&domainAppointment.Appointment{}).
		Where("tenant_id = ? AND status = ?", types.GetTenantID(ctx), filter.GetStatus()).
		Count(&count).Error
	if err != nil {
		return 0, translateDBError(err, "failed to count appointments")
	}
	return int(count), nil
}
