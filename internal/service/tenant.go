package service

import (
	"context"

	"aris-backend/internal/domain"
	"aris-backend/internal/repository"
)

type tenantService struct {
	tenantRepo repository.TenantRepository
}

func NewTenantService(tenantRepo repository.TenantRepository) TenantService {
	return &tenantService{tenantRepo: tenantRepo}
}

func (s *tenantService) Resolve(ctx context.Context, slug string) (*domain.Tenant, error) {
	if slug == "" {
		return nil, invalid("tenant", "tenant slug is required")
	}
	t, err := s.tenantRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !t.Active {
		return nil, ErrTenantInactive
	}
	return t, nil
}

func (s *tenantService) List(ctx context.Context) ([]domain.Tenant, error) {
	return s.tenantRepo.ListActive(ctx)
}
