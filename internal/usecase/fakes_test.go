package usecase

import (
	"context"
	"fmt"
	"time"

	"giglance/internal/domain/entity"
	"giglance/internal/domain/service"
	"giglance/pkg/errors"
)

// In-memory repositories for exercising use cases without Firestore.

type fakeProfileRepo struct {
	profiles map[string]*entity.Profile
}

func newFakeProfileRepo(profiles ...*entity.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: make(map[string]*entity.Profile)}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}
	return p, nil
}

func (r *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, errors.NotFound("Profile", nil)
}

func (r *fakeProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	r.profiles[profile.ID] = profile
	return nil
}

type fakeServiceRepo struct {
	services map[string]*entity.Service
	listErr  error
	nextID   int
}

func newFakeServiceRepo(services ...*entity.Service) *fakeServiceRepo {
	r := &fakeServiceRepo{services: make(map[string]*entity.Service)}
	for _, s := range services {
		r.services[s.ID] = s
	}
	return r
}

func (r *fakeServiceRepo) Create(ctx context.Context, svc *entity.Service) error {
	r.nextID++
	svc.ID = fmt.Sprintf("service-%d", r.nextID)
	svc.CreatedAt = time.Now()
	r.services[svc.ID] = svc
	return nil
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, errors.NotFound("Service", nil)
	}
	return s, nil
}

func (r *fakeServiceRepo) List(ctx context.Context, limit, offset int) ([]*entity.Service, int64, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	var out []*entity.Service
	for _, s := range r.services {
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeServiceRepo) ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Service, int64, error) {
	var out []*entity.Service
	for _, s := range r.services {
		if s.SellerID == sellerID {
			out = append(out, s)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, svc *entity.Service) error {
	if _, ok := r.services[svc.ID]; !ok {
		return errors.NotFound("Service", nil)
	}
	r.services[svc.ID] = svc
	return nil
}

func (r *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return errors.NotFound("Service", nil)
	}
	delete(r.services, id)
	return nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
	nextID int
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	return &fakeOrderRepo{orders: orders}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.nextID++
	order.ID = fmt.Sprintf("order-%d", r.nextID)
	order.CreatedAt = time.Now()
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *fakeOrderRepo) GetByIdempotencyKey(ctx context.Context, key string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.IdempotencyKey == key {
			return o, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *fakeOrderRepo) ListByField(ctx context.Context, field, value string, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		switch field {
		case "buyerId":
			if o.BuyerID == value {
				out = append(out, o)
			}
		case "sellerId":
			if o.SellerID == value {
				out = append(out, o)
			}
		}
	}
	return out, int64(len(out)), nil
}

type fakeMessageRepo struct {
	messages []*entity.Message
	nextID   int
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.nextID++
	message.ID = fmt.Sprintf("message-%d", r.nextID)
	message.CreatedAt = time.Now()
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) ListByOrderID(ctx context.Context, orderID string, limit, offset int) ([]*entity.Message, int64, error) {
	var out []*entity.Message
	for _, m := range r.messages {
		if m.OrderID == orderID {
			out = append(out, m)
		}
	}
	return out, int64(len(out)), nil
}

type fakePaymentService struct {
	declined bool
	charges  []service.PaymentRequest
}

func (s *fakePaymentService) Charge(ctx context.Context, req service.PaymentRequest) (*service.PaymentResponse, error) {
	s.charges = append(s.charges, req)
	if s.declined {
		return nil, fmt.Errorf("card declined")
	}
	return &service.PaymentResponse{
		Reference: "sim-ref-1",
		OrderID:   req.OrderID,
		Status:    "settled",
	}, nil
}

type fakeGiftNoteService struct {
	note  string
	calls int
}

func (s *fakeGiftNoteService) Generate(ctx context.Context, itemNames []string, recipientName string) string {
	s.calls++
	return s.note
}
