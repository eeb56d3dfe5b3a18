package service

import (
	"context"

	"github.com/garagio/garagio/internal/api/dto"
	"github.com/garagio/garagio/internal/types"
)

type PropertyService interface {
	CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*dto.PropertyResponse, error)
	GetProperty(ctx context.Context, id string) (*dto.PropertyResponse, error)
	ListProperties(ctx context.Context, filter *types.QueryFilter) (*dto.ListPropertiesResponse, error)
	UpdateProperty(ctx context.Context, id string, req dto.UpdatePropertyRequest) (*dto.PropertyResponse, error)
	DeleteProperty(ctx context.Context, id string) error
}

type propertyService struct {
	ServiceParams
}

func NewPropertyService(params ServiceParams) PropertyService {
	return &propertyService{
		ServiceParams: params,
	}
}

func (s *propertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	prop := req.ToProperty(ctx)

	if err := prop.Validate(); err != nil {
		return nil, err
	}

	if err := s.PropertyRepo.Create(ctx, prop); err != nil {
		return nil, err
	}

	return dto.NewPropertyResponse(prop), nil
}

func (s *propertyService) GetProperty(ctx context.Context, id string) (*dto.PropertyResponse, error) {
	prop, err := s.PropertyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewPropertyResponse(prop), nil
}

func (s *propertyService) ListProperties(ctx context.Context, filter *types.QueryFilter) (*dto.ListPropertiesResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	properties, err := s.PropertyRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.PropertyRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PropertyResponse, len(properties))
	for i, p := range properties {
		items[i] = dto.NewPropertyResponse(p)
	}

	return &dto.ListPropertiesResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, id string, req dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	prop, err := s.PropertyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		prop.Name = *req.Name
	}
	if req.Address != nil {
		prop.Address = *req.Address
	}
	if req.Description != nil {
		prop.Description = *req.Description
	}

	if err := prop.Validate(); err != nil {
		return nil, err
	}

	if err := s.PropertyRepo.Update(ctx, prop); err != nil {
		return nil, err
	}

	return dto.NewPropertyResponse(prop), nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, id string) error {
	if _, err := s.PropertyRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.PropertyRepo.Delete(ctx, id)
}
