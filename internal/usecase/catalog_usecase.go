package usecase

import (
	"context"

	"giglance/internal/domain/entity"
	"giglance/internal/domain/repository"
	"giglance/pkg/errors"
	"giglance/pkg/logger"
)

type CatalogUseCase struct {
	serviceRepo repository.ServiceRepository
	profileRepo repository.ProfileRepository
}

func NewCatalogUseCase(
	serviceRepo repository.ServiceRepository,
	profileRepo repository.ProfileRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		serviceRepo: serviceRepo,
		profileRepo: profileRepo,
	}
}

// ListServices returns the catalog, featured listings first. A failed
// fetch is logged and degrades to an empty catalog rather than an error.
func (uc *CatalogUseCase) ListServices(ctx context.Context, limit, offset int) ([]*entity.Service, int64) {
	services, total, err := uc.serviceRepo.List(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to fetch catalog: %v", err)
		return []*entity.Service{}, 0
	}

	if services == nil {
		services = []*entity.Service{}
	}

	return services, total
}

// GetServiceDetail returns a service with its owning seller's profile
// joined in. A missing seller profile is logged, not fatal.
func (uc *CatalogUseCase) GetServiceDetail(ctx context.Context, id string) (*entity.ServiceDetail, error) {
	service, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &entity.ServiceDetail{Service: *service}

	seller, err := uc.profileRepo.GetByID(ctx, service.SellerID)
	if err != nil {
		logger.Warn("Seller profile %s missing for service %s: %v", service.SellerID, id, err)
	} else {
		detail.Seller = seller
	}

	return detail, nil
}

type CreateServiceInput struct {
	Title       string
	Description string
	Price       float64
	ImageURL    string
	Category    string
}

func (uc *CatalogUseCase) CreateService(ctx context.Context, sellerID string, input CreateServiceInput) (*entity.Service, error) {
	seller, err := uc.profileRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, errors.BadRequest("Invalid seller", err)
	}

	if !seller.IsSeller() {
		return nil, errors.Forbidden("Only sellers can create services", nil)
	}

	if input.Price <= 0 {
		return nil, errors.BadRequest("Price must be positive", nil)
	}

	service := &entity.Service{
		SellerID:    sellerID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Featured:    false,
	}

	if err := uc.serviceRepo.Create(ctx, service); err != nil {
		return nil, err
	}

	return service, nil
}

func (uc *CatalogUseCase) ListSellerServices(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Service, int64, error) {
	services, total, err := uc.serviceRepo.ListBySellerID(ctx, sellerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if services == nil {
		services = []*entity.Service{}
	}

	return services, total, nil
}

// DeleteService removes a listing. Existing orders keep their snapshotted
// product name and amount; only the catalog row goes away.
func (uc *CatalogUseCase) DeleteService(ctx context.Context, sellerID, id string) error {
	service, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if service.SellerID != sellerID {
		return errors.Forbidden("You don't have permission to delete this service", nil)
	}

	return uc.serviceRepo.Delete(ctx, id)
}

// SetFeatured toggles the featured flag on a listing. Admin only; the
// role gate sits in the HTTP middleware.
func (uc *CatalogUseCase) SetFeatured(ctx context.Context, id string, featured bool) (*entity.Service, error) {
	service, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	service.Featured = featured
	if err := uc.serviceRepo.Update(ctx, service); err != nil {
		return nil, err
	}

	return service, nil
}
