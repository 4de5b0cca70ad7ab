package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"giglance/internal/domain/entity"
	"giglance/internal/infrastructure/realtime"
)

func newCatalogFixture() (*CatalogUseCase, *fakeServiceRepo) {
	profiles := newFakeProfileRepo(
		&entity.Profile{ID: "buyer-1", Role: entity.RoleBuyer},
		&entity.Profile{ID: "seller-1", FullName: "Sam Seller", Role: entity.RoleSeller},
		&entity.Profile{ID: "seller-2", Role: entity.RoleSeller},
	)
	services := newFakeServiceRepo(
		&entity.Service{ID: "svc-logo", SellerID: "seller-1", Title: "Logo Design", Price: 195.00},
		&entity.Service{ID: "svc-copy", SellerID: "seller-2", Title: "Copywriting", Price: 99.50},
	)
	return NewCatalogUseCase(services, profiles), services
}

func TestListServicesDegradesToEmptyOnError(t *testing.T) {
	uc, services := newCatalogFixture()
	services.listErr = fmt.Errorf("backend unavailable")

	listed, total := uc.ListServices(context.Background(), 20, 0)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
	assert.Zero(t, total)
}

func TestGetServiceDetailJoinsSeller(t *testing.T) {
	uc, _ := newCatalogFixture()

	detail, err := uc.GetServiceDetail(context.Background(), "svc-logo")
	assert.NoError(t, err)
	assert.Equal(t, "Logo Design", detail.Title)
	if assert.NotNil(t, detail.Seller) {
		assert.Equal(t, "Sam Seller", detail.Seller.FullName)
	}
}

func TestCreateServiceRequiresSellerRole(t *testing.T) {
	uc, _ := newCatalogFixture()

	_, err := uc.CreateService(context.Background(), "buyer-1", CreateServiceInput{
		Title: "Not allowed", Price: 10,
	})
	assert.Error(t, err)

	svc, err := uc.CreateService(context.Background(), "seller-1", CreateServiceInput{
		Title: "Brand Kit", Price: 350,
	})
	assert.NoError(t, err)
	assert.False(t, svc.Featured)
	assert.NotEmpty(t, svc.ID)
}

func TestCreateServiceRejectsNonPositivePrice(t *testing.T) {
	uc, _ := newCatalogFixture()

	_, err := uc.CreateService(context.Background(), "seller-1", CreateServiceInput{
		Title: "Free stuff", Price: 0,
	})
	assert.Error(t, err)
}

func TestDeleteServiceChecksOwnership(t *testing.T) {
	uc, services := newCatalogFixture()

	err := uc.DeleteService(context.Background(), "seller-2", "svc-logo")
	assert.Error(t, err)
	_, stillThere := services.services["svc-logo"]
	assert.True(t, stillThere)

	err = uc.DeleteService(context.Background(), "seller-1", "svc-logo")
	assert.NoError(t, err)
	_, stillThere = services.services["svc-logo"]
	assert.False(t, stillThere)
}

func TestDeleteServiceKeepsOrderSnapshots(t *testing.T) {
	profiles := newFakeProfileRepo(
		&entity.Profile{ID: "buyer-1", Role: entity.RoleBuyer},
		&entity.Profile{ID: "seller-1", Role: entity.RoleSeller},
	)
	services := newFakeServiceRepo(
		&entity.Service{ID: "svc-logo", SellerID: "seller-1", Title: "Logo Design", Price: 195.00},
	)
	orders := newFakeOrderRepo()
	checkout := NewCheckoutUseCase(orders, services, profiles, &fakePaymentService{}, &fakeGiftNoteService{}, realtime.NewHub(), 0.08)
	catalog := NewCatalogUseCase(services, profiles)

	order, err := checkout.CheckoutService(context.Background(), "buyer-1", CheckoutServiceInput{
		ServiceID:      "svc-logo",
		Contact:        contact(),
		IdempotencyKey: "key-snapshot",
	})
	assert.NoError(t, err)

	err = catalog.DeleteService(context.Background(), "seller-1", "svc-logo")
	assert.NoError(t, err)

	listed, _, err := catalog.ListSellerServices(context.Background(), "seller-1", 20, 0)
	assert.NoError(t, err)
	assert.Empty(t, listed)

	// the order keeps its snapshotted name and amount
	kept, err := orders.GetByID(context.Background(), order.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Logo Design", kept.ProductName)
	assert.Equal(t, 195.00, kept.TotalAmount)
}

func TestSetFeatured(t *testing.T) {
	uc, services := newCatalogFixture()

	svc, err := uc.SetFeatured(context.Background(), "svc-copy", true)
	assert.NoError(t, err)
	assert.True(t, svc.Featured)
	assert.True(t, services.services["svc-copy"].Featured)
}
