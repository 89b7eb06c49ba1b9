package service

import (
	"context"
	"fmt"
	"time"

	"ecomia-be/internal/constant"
	"ecomia-be/internal/dto"
	"ecomia-be/internal/entity"
	"ecomia-be/internal/repository/specification"
	"ecomia-be/internal/repository/unitofwork"
	"ecomia-be/pkg/agent/workflow"
	"ecomia-be/pkg/events"

	"github.com/google/uuid"
)

type IStoreService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStoreRequest) (*dto.StoreResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.StoreResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.StoreResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateStoreRequest) (*dto.StoreResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type storeService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IActivityPublisher
}

func NewStoreService(uowFactory unitofwork.RepositoryFactory, publisher IActivityPublisher) IStoreService {
	return &storeService{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// uniqueStoreSlug slugifies the name, then appends the last four digits of the
// current unix-millis clock when the slug is already taken.
func uniqueStoreSlug(ctx context.Context, uow unitofwork.UnitOfWork, name string) (string, error) {
	slug := workflow.Slugify(name)
	if slug == "" {
		slug = "tienda"
	}
	existing, err := uow.StoreRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return "", err
	}
	if existing == nil {
		return slug, nil
	}
	millis := time.Now().UnixMilli()
	return fmt.Sprintf("%s-%04d", slug, millis%10000), nil
}

func (s *storeService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slug, err := uniqueStoreSlug(ctx, uow, req.Name)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = constant.StoreStatusDraft
	}

	store := entity.Store{
		UserId:      userId,
		SessionId:   req.SessionId,
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Status:      status,
		Meta:        req.Meta,
		CreatedAt:   time.Now(),
	}
	if err := uow.StoreRepository().Create(ctx, &store); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, &events.ActivityEvent{
		Kind:      events.KindStoreCreated,
		UserId:    userId,
		SubjectId: store.Id,
		Detail:    map[string]interface{}{"slug": store.Slug},
	})

	return storeToResponse(&store), nil
}

func (s *storeService) List(ctx context.Context, userId uuid.UUID) ([]*dto.StoreResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stores, err := uow.StoreRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StoreResponse, len(stores))
	for i, store := range stores {
		out[i] = storeToResponse(store)
	}
	return out, nil
}

func (s *storeService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.StoreResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	store, err := uow.StoreRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrNotFound
	}
	return storeToResponse(store), nil
}

func (s *storeService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	store, err := uow.StoreRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Description != nil {
		store.Description = *req.Description
	}
	if req.Status != nil {
		store.Status = *req.Status
	}
	if req.Meta != nil {
		store.Meta = req.Meta
	}
	now := time.Now()
	store.UpdatedAt = &now

	if err := uow.StoreRepository().Update(ctx, store); err != nil {
		return nil, err
	}
	return storeToResponse(store), nil
}

func (s *storeService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	store, err := uow.StoreRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if store == nil {
		return ErrNotFound
	}
	return uow.StoreRepository().Delete(ctx, store.Id)
}

func storeToResponse(store *entity.Store) *dto.StoreResponse {
	return &dto.StoreResponse{
		Id:          store.Id,
		SessionId:   store.SessionId,
		Name:        store.Name,
		Slug:        store.Slug,
		Description: store.Description,
		Status:      store.Status,
		Meta:        store.Meta,
		CreatedAt:   store.CreatedAt,
		UpdatedAt:   store.UpdatedAt,
	}
}
