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
	"ecomia-be/pkg/events"

	"github.com/google/uuid"
)

type IResearchService interface {
	CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error)
	ShowSession(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error)
	UpdateSession(ctx context.Context, userId uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, id uuid.UUID) error

	CreateCandidate(ctx context.Context, userId uuid.UUID, req *dto.CreateCandidateRequest) (*dto.CandidateResponse, error)
	ListCandidates(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.CandidateResponse, error)
	UpdateCandidate(ctx context.Context, userId uuid.UUID, req *dto.UpdateCandidateRequest) (*dto.CandidateResponse, error)
	DeleteCandidate(ctx context.Context, userId uuid.UUID, id uuid.UUID) error

	CreateSupplier(ctx context.Context, userId uuid.UUID, req *dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	ListSuppliers(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.SupplierResponse, error)
	DeleteSupplier(ctx context.Context, userId uuid.UUID, id uuid.UUID) error

	CreateSource(ctx context.Context, userId uuid.UUID, req *dto.CreateSourceRequest) (*dto.SourceResponse, error)
	ListSources(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.SourceResponse, error)
	DeleteSource(ctx context.Context, userId uuid.UUID, id uuid.UUID) error

	CreateAsset(ctx context.Context, userId uuid.UUID, req *dto.CreateAssetRequest) (*dto.AssetResponse, error)
	ListAssets(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.AssetResponse, error)
	DeleteAsset(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type researchService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IActivityPublisher
}

func NewResearchService(uowFactory unitofwork.RepositoryFactory, publisher IActivityPublisher) IResearchService {
	return &researchService{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

var ErrNotFound = fmt.Errorf("resource not found")

func (s *researchService) ownedSession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.ResearchSession, error) {
	session, err := uow.ResearchSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotFound
	}
	return session, nil
}

func (s *researchService) CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := entity.ResearchSession{
		UserId:    userId,
		Goal:      req.Goal,
		Status:    constant.SessionStatusResearching,
		CreatedAt: time.Now(),
	}
	if err := uow.ResearchSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, &events.ActivityEvent{
		Kind:      events.KindSessionCreated,
		UserId:    userId,
		SubjectId: session.Id,
		Detail:    map[string]interface{}{"goal": session.Goal},
	})

	return sessionToResponse(&session), nil
}

func (s *researchService) ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ResearchSessionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SessionResponse, len(sessions))
	for i, session := range sessions {
		out[i] = sessionToResponse(session)
	}
	return out, nil
}

func (s *researchService) ShowSession(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.ownedSession(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	return sessionToResponse(session), nil
}

func (s *researchService) UpdateSession(ctx context.Context, userId uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.ownedSession(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Goal != nil {
		session.Goal = *req.Goal
	}
	if req.Status != nil {
		session.Status = *req.Status
	}
	if req.SelectedCandidateId != nil {
		if *req.SelectedCandidateId == uuid.Nil {
			session.SelectedCandidateId = nil
		} else {
			candidate, err := uow.ProductCandidateRepository().FindOne(ctx,
				specification.ByID{ID: *req.SelectedCandidateId},
				specification.BySessionID{SessionID: session.Id},
			)
			if err != nil {
				return nil, err
			}
			if candidate == nil {
				return nil, ErrNotFound
			}
			session.SelectedCandidateId = req.SelectedCandidateId
		}
	}
	if req.Meta != nil {
		session.Meta = req.Meta
	}
	now := time.Now()
	session.UpdatedAt = &now

	if err := uow.ResearchSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if req.Status != nil && *req.Status == constant.SessionStatusCompleted {
		s.publisher.Publish(ctx, &events.ActivityEvent{
			Kind:      events.KindSessionCompleted,
			UserId:    userId,
			SubjectId: session.Id,
		})
	}

	return sessionToResponse(session), nil
}

func (s *researchService) DeleteSession(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.ownedSession(ctx, uow, userId, id)
	if err != nil {
		return err
	}
	return uow.ResearchSessionRepository().Delete(ctx, session.Id)
}

func (s *researchService) CreateCandidate(ctx context.Context, userId uuid.UUID, req *dto.CreateCandidateRequest) (*dto.CandidateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.ownedSession(ctx, uow, userId, req.SessionId); err != nil {
		return nil, err
	}

	candidate := entity.ProductCandidate{
		SessionId:        req.SessionId,
		Name:             req.Name,
		Summary:          req.Summary,
		Pros:             req.Pros,
		Cons:             req.Cons,
		DemandLevel:      req.DemandLevel,
		CompetitionLevel: req.CompetitionLevel,
		PriceRange:       req.PriceRange,
		Score:            req.Score,
		Meta:             req.Meta,
		CreatedAt:        time.Now(),
	}
	if err := uow.ProductCandidateRepository().Create(ctx, &candidate); err != nil {
		return nil, err
	}
	return candidateToResponse(&candidate), nil
}

func (s *researchService) ListCandidates(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.CandidateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	candidates, err := uow.ProductCandidateRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.SessionOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CandidateResponse, len(candidates))
	for i, candidate := range candidates {
		out[i] = candidateToResponse(candidate)
	}
	return out, nil
}

func (s *researchService) UpdateCandidate(ctx context.Context, userId uuid.UUID, req *dto.UpdateCandidateRequest) (*dto.CandidateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	candidate, err := uow.ProductCandidateRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.SessionOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		candidate.Name = *req.Name
	}
	if req.Summary != nil {
		candidate.Summary = *req.Summary
	}
	if req.Pros != nil {
		candidate.Pros = *req.Pros
	}
	if req.Cons != nil {
		candidate.Cons = *req.Cons
	}
	if req.DemandLevel != nil {
		candidate.DemandLevel = *req.DemandLevel
	}
	if req.CompetitionLevel != nil {
		candidate.CompetitionLevel = *req.CompetitionLevel
	}
	if req.PriceRange != nil {
		candidate.PriceRange = *req.PriceRange
	}
	if req.Score != nil {
		candidate.Score = req.Score
	}
	if req.Meta != nil {
		candidate.Meta = req.Meta
	}
	now := time.Now()
	candidate.UpdatedAt = &now

	if err := uow.ProductCandidateRepository().Update(ctx, candidate); err != nil {
		return nil, err
	}
	return candidateToResponse(candidate), nil
}

func (s *researchService) DeleteCandidate(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	candidate, err := uow.ProductCandidateRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.SessionOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if candidate == nil {
		return ErrNotFound
	}
	return uow.ProductCandidateRepository().Delete(ctx, candidate.Id)
}

func (s *researchService) CreateSupplier(ctx context.Context, userId uuid.UUID, req *dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.ownedSession(ctx, uow, userId, req.SessionId); err != nil {
		return nil, err
	}
	if req.CandidateId != nil {
		candidate, err := uow.ProductCandidateRepository().FindOne(ctx,
			specification.ByID{ID: *req.CandidateId},
			specification.BySessionID{SessionID: req.SessionId},
		)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			return nil, ErrNotFound
		}
	}

	supplier := entity.ProductSupplier{
		SessionId:   req.SessionId,
		CandidateId: req.CandidateId,
		Name:        req.Name,
		Website:     req.Website,
		Contact:     req.Contact,
		PriceRange:  req.PriceRange,
		Notes:       req.Notes,
		Meta:        req.Meta,
		CreatedAt:   time.Now(),
	}
	if err := uow.ProductSupplierRepository().Create(ctx, &supplier); err != nil {
		return nil, err
	}
	return supplierToResponse(&supplier), nil
}

func (s *researchService) ListSuppliers(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.SupplierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	suppliers, err := uow.ProductSupplierRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.SessionOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, len(suppliers))
	for i, supplier := range suppliers {
		out[i] = supplierToResponse(supplier)
	}
	return out, nil
}

func (s *researchService) DeleteSupplier(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	suppliers, err := uow.ProductSupplierRepository().FindAll(ctx,
		specification.ByID{ID: id},
		specification.SessionOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if len(suppliers) == 0 {
		return ErrNotFound
	}
	return uow.ProductSupplierRepository().Delete(ctx, id)
}

func (s *researchService) CreateSource(ctx context.Context, userId uuid.UUID, req *dto.CreateSourceRequest) (*dto.SourceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.ownedSession(ctx, uow, userId, req.SessionId); err != nil {
		return nil, err
	}

	source := entity.ResearchSource{
		SessionId: req.SessionId,
		Kind:      req.Kind,
		Url:       req.Url,
		Title:     req.Title,
		Summary:   req.Summary,
		Data:      req.Data,
		CreatedAt: time.Now(),
	}
	if err := uow.ResearchSourceRepository().Create(ctx, &source); err != nil {
		return nil, err
	}
	return sourceToResponse(&source), nil
}

func (s *researchService) ListSources(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.SourceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sources, err := uow.ResearchSourceRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.SessionOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SourceResponse, len(sources))
	for i, source := range sources {
		out[i] = sourceToResponse(source)
	}
	return out, nil
}

func (s *researchService) DeleteSource(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sources, err := uow.ResearchSourceRepository().FindAll(ctx,
		specification.ByID{ID: id},
		specification.SessionOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return ErrNotFound
	}
	return uow.ResearchSourceRepository().Delete(ctx, id)
}

func (s *researchService) CreateAsset(ctx context.Context, userId uuid.UUID, req *dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.ownedSession(ctx, uow, userId, req.SessionId); err != nil {
		return nil, err
	}

	asset := entity.ProductAsset{
		SessionId:   req.SessionId,
		CandidateId: req.CandidateId,
		AssetType:   req.AssetType,
		Content:     req.Content,
		CreatedAt:   time.Now(),
	}
	if err := uow.ProductAssetRepository().Create(ctx, &asset); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, &events.ActivityEvent{
		Kind:      events.KindAssetCreated,
		UserId:    userId,
		SubjectId: asset.Id,
		Detail:    map[string]interface{}{"asset_type": asset.AssetType},
	})

	return assetToResponse(&asset), nil
}

func (s *researchService) ListAssets(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.AssetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	assets, err := uow.ProductAssetRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.SessionOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AssetResponse, len(assets))
	for i, asset := range assets {
		out[i] = assetToResponse(asset)
	}
	return out, nil
}

func (s *researchService) DeleteAsset(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	asset, err := uow.ProductAssetRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.SessionOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if asset == nil {
		return ErrNotFound
	}
	return uow.ProductAssetRepository().Delete(ctx, asset.Id)
}

// DTO converters

func sessionToResponse(session *entity.ResearchSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:                  session.Id,
		Goal:                session.Goal,
		Status:              session.Status,
		SelectedCandidateId: session.SelectedCandidateId,
		Meta:                session.Meta,
		CreatedAt:           session.CreatedAt,
		UpdatedAt:           session.UpdatedAt,
	}
}

func candidateToResponse(candidate *entity.ProductCandidate) *dto.CandidateResponse {
	return &dto.CandidateResponse{
		Id:               candidate.Id,
		SessionId:        candidate.SessionId,
		Name:             candidate.Name,
		Summary:          candidate.Summary,
		Pros:             candidate.Pros,
		Cons:             candidate.Cons,
		DemandLevel:      candidate.DemandLevel,
		CompetitionLevel: candidate.CompetitionLevel,
		PriceRange:       candidate.PriceRange,
		Score:            candidate.Score,
		Meta:             candidate.Meta,
		CreatedAt:        candidate.CreatedAt,
	}
}

func supplierToResponse(supplier *entity.ProductSupplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		Id:          supplier.Id,
		SessionId:   supplier.SessionId,
		CandidateId: supplier.CandidateId,
		Name:        supplier.Name,
		Website:     supplier.Website,
		Contact:     supplier.Contact,
		PriceRange:  supplier.PriceRange,
		Notes:       supplier.Notes,
		Meta:        supplier.Meta,
		CreatedAt:   supplier.CreatedAt,
	}
}

func sourceToResponse(source *entity.ResearchSource) *dto.SourceResponse {
	return &dto.SourceResponse{
		Id:        source.Id,
		SessionId: source.SessionId,
		Kind:      source.Kind,
		Url:       source.Url,
		Title:     source.Title,
		Summary:   source.Summary,
		Data:      source.Data,
		CreatedAt: source.CreatedAt,
	}
}

func assetToResponse(asset *entity.ProductAsset) *dto.AssetResponse {
	return &dto.AssetResponse{
		Id:          asset.Id,
		SessionId:   asset.SessionId,
		CandidateId: asset.CandidateId,
		AssetType:   asset.AssetType,
		Content:     asset.Content,
		CreatedAt:   asset.CreatedAt,
	}
}
