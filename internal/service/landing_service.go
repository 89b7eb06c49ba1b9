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

type ILandingService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateLandingRequest) (*dto.LandingResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.LandingResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.LandingResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateLandingRequest) (*dto.LandingResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Publish(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.LandingResponse, error)
}

type landingService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IActivityPublisher
}

func NewLandingService(uowFactory unitofwork.RepositoryFactory, publisher IActivityPublisher) ILandingService {
	return &landingService{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func uniqueLandingSlug(ctx context.Context, uow unitofwork.UnitOfWork, title string) (string, error) {
	slug := workflow.Slugify(title)
	if slug == "" {
		slug = "landing"
	}
	existing, err := uow.LandingPageRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return "", err
	}
	if existing == nil {
		return slug, nil
	}
	millis := time.Now().UnixMilli()
	return fmt.Sprintf("%s-%04d", slug, millis%10000), nil
}

func (s *landingService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateLandingRequest) (*dto.LandingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slug, err := uniqueLandingSlug(ctx, uow, req.Title)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = constant.LandingStatusDraft
	}

	page := entity.LandingPage{
		UserId:    userId,
		SessionId: req.SessionId,
		StoreId:   req.StoreId,
		Title:     req.Title,
		Slug:      slug,
		Status:    status,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := uow.LandingPageRepository().Create(ctx, &page); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, &events.ActivityEvent{
		Kind:      events.KindLandingCreated,
		UserId:    userId,
		SubjectId: page.Id,
		Detail:    map[string]interface{}{"slug": page.Slug},
	})

	return landingToResponse(&page), nil
}

func (s *landingService) List(ctx context.Context, userId uuid.UUID) ([]*dto.LandingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pages, err := uow.LandingPageRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LandingResponse, len(pages))
	for i, page := range pages {
		out[i] = landingToResponse(page)
	}
	return out, nil
}

func (s *landingService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.LandingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	page, err := uow.LandingPageRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrNotFound
	}
	return landingToResponse(page), nil
}

func (s *landingService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateLandingRequest) (*dto.LandingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	page, err := uow.LandingPageRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Status != nil {
		page.Status = *req.Status
	}
	if req.Content != nil {
		page.Content = req.Content
	}
	now := time.Now()
	page.UpdatedAt = &now

	if err := uow.LandingPageRepository().Update(ctx, page); err != nil {
		return nil, err
	}
	return landingToResponse(page), nil
}

func (s *landingService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	page, err := uow.LandingPageRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if page == nil {
		return ErrNotFound
	}
	return uow.LandingPageRepository().Delete(ctx, page.Id)
}

func (s *landingService) Publish(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.LandingResponse, error) {
	status := constant.LandingStatusLive
	res, err := s.Update(ctx, userId, &dto.UpdateLandingRequest{Id: id, Status: &status})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, &events.ActivityEvent{
		Kind:      events.KindLandingPublished,
		UserId:    userId,
		SubjectId: id,
	})
	return res, nil
}

func landingToResponse(page *entity.LandingPage) *dto.LandingResponse {
	return &dto.LandingResponse{
		Id:        page.Id,
		SessionId: page.SessionId,
		StoreId:   page.StoreId,
		Title:     page.Title,
		Slug:      page.Slug,
		Status:    page.Status,
		Content:   page.Content,
		CreatedAt: page.CreatedAt,
		UpdatedAt: page.UpdatedAt,
	}
}
