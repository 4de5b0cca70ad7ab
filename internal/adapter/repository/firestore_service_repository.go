package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"giglance/internal/domain/entity"
	"giglance/internal/domain/repository"
	"giglance/pkg/errors"
)

type firestoreServiceRepository struct {
	client *firestore.Client
}

func NewFirestoreServiceRepository(client *firestore.Client) repository.ServiceRepository {
	return &firestoreServiceRepository{
		client: client,
	}
}

func (r *firestoreServiceRepository) Create(ctx context.Context, service *entity.Service) error {
	if service.ID == "" {
		doc := r.client.Collection("services").NewDoc()
		service.ID = doc.ID
	}

	if service.CreatedAt.IsZero() {
		service.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("services").Doc(service.ID).Set(ctx, service)
	if err != nil {
		return errors.Internal("Failed to create service", err)
	}

	return nil
}

func (r *firestoreServiceRepository) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	doc, err := r.client.Collection("services").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Service", err)
		}
		return nil, errors.Internal("Failed to get service", err)
	}

	var service entity.Service
	if err := doc.DataTo(&service); err != nil {
		return nil, errors.Internal("Failed to parse service data", err)
	}

	return &service, nil
}

func (r *firestoreServiceRepository) List(ctx context.Context, limit, offset int) ([]*entity.Service, int64, error) {
	// Featured listings first, then newest first
	query := r.client.Collection("services").Query.
		OrderBy("featured", firestore.Desc).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count services", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var services []*entity.Service

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate services", err)
		}

		var service entity.Service
		if err := doc.DataTo(&service); err != nil {
			return nil, 0, errors.Internal("Failed to parse service data", err)
		}
		services = append(services, &service)
	}

	return services, total, nil
}

func (r *firestoreServiceRepository) ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Service, int64, error) {
	query := r.client.Collection("services").Query.
		Where("sellerId", "==", sellerID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count seller services", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var services []*entity.Service

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate seller services", err)
		}

		var service entity.Service
		if err := doc.DataTo(&service); err != nil {
			return nil, 0, errors.Internal("Failed to parse service data", err)
		}
		services = append(services, &service)
	}

	return services, total, nil
}

func (r *firestoreServiceRepository) Update(ctx context.Context, service *entity.Service) error {
	_, err := r.client.Collection("services").Doc(service.ID).Set(ctx, service)
	if err != nil {
		return errors.Internal("Failed to update service", err)
	}

	return nil
}

func (r *firestoreServiceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("services").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete service", err)
	}

	return nil
}
