package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecomia-be/internal/constant"
	"ecomia-be/internal/dto"
	"ecomia-be/internal/entity"
	"ecomia-be/internal/repository/contract"
	"ecomia-be/internal/repository/specification"
	"ecomia-be/internal/repository/unitofwork"
	"ecomia-be/pkg/events"
	"ecomia-be/pkg/llm"
	"ecomia-be/pkg/search/tavily"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test doubles ---

type stubLLM struct {
	chatReply     string
	generateReply string
	lastPrompt    string
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.chatReply, nil
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.lastPrompt = prompt
	return s.generateReply, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type capturePublisher struct {
	kinds []string
}

func (p *capturePublisher) Publish(ctx context.Context, event *events.ActivityEvent) {
	p.kinds = append(p.kinds, event.Kind)
}

func (p *capturePublisher) has(kind string) bool {
	for _, k := range p.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// In-memory repositories. FindOne approximates the newest-first ordering the
// queries ask for by scanning the backing slice in reverse insertion order.

type memSessionRepo struct {
	items     []*entity.ResearchSession
	createErr error
}

func (r *memSessionRepo) Create(ctx context.Context, session *entity.ResearchSession) error {
	if r.createErr != nil {
		return r.createErr
	}
	session.Id = uuid.New()
	r.items = append(r.items, session)
	return nil
}

func (r *memSessionRepo) Update(ctx context.Context, session *entity.ResearchSession) error {
	for i, item := range r.items {
		if item.Id == session.Id {
			r.items[i] = session
			return nil
		}
	}
	return nil
}

func (r *memSessionRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *memSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ResearchSession, error) {
	for i := len(r.items) - 1; i >= 0; i-- {
		if sessionMatches(r.items[i], specs) {
			return r.items[i], nil
		}
	}
	return nil, nil
}

func (r *memSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ResearchSession, error) {
	var out []*entity.ResearchSession
	for _, item := range r.items {
		if sessionMatches(item, specs) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	items, _ := r.FindAll(ctx, specs...)
	return int64(len(items)), nil
}

func sessionMatches(session *entity.ResearchSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if session.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if session.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

type memCandidateRepo struct {
	items []*entity.ProductCandidate
}

func (r *memCandidateRepo) Create(ctx context.Context, candidate *entity.ProductCandidate) error {
	candidate.Id = uuid.New()
	r.items = append(r.items, candidate)
	return nil
}

func (r *memCandidateRepo) Update(ctx context.Context, candidate *entity.ProductCandidate) error {
	return nil
}

func (r *memCandidateRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *memCandidateRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProductCandidate, error) {
	for i := len(r.items) - 1; i >= 0; i-- {
		if candidateMatches(r.items[i], specs) {
			return r.items[i], nil
		}
	}
	return nil, nil
}

func (r *memCandidateRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductCandidate, error) {
	limit := -1
	var out []*entity.ProductCandidate
	for _, spec := range specs {
		if l, ok := spec.(specification.Limit); ok {
			limit = l.Limit
		}
	}
	for _, item := range r.items {
		if candidateMatches(item, specs) {
			out = append(out, item)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (r *memCandidateRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	items, _ := r.FindAll(ctx, specs...)
	return int64(len(items)), nil
}

func candidateMatches(candidate *entity.ProductCandidate, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if candidate.Id != s.ID {
				return false
			}
		case specification.BySessionID:
			if candidate.SessionId != s.SessionID {
				return false
			}
		}
	}
	return true
}

type memSupplierRepo struct {
	items []*entity.ProductSupplier
}

func (r *memSupplierRepo) Create(ctx context.Context, supplier *entity.ProductSupplier) error {
	supplier.Id = uuid.New()
	r.items = append(r.items, supplier)
	return nil
}

func (r *memSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *memSupplierRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductSupplier, error) {
	return r.items, nil
}

type memSourceRepo struct {
	items []*entity.ResearchSource
}

func (r *memSourceRepo) Create(ctx context.Context, source *entity.ResearchSource) error {
	source.Id = uuid.New()
	r.items = append(r.items, source)
	return nil
}

func (r *memSourceRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *memSourceRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ResearchSource, error) {
	return r.items, nil
}

func (r *memSourceRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.items)), nil
}

type memAssetRepo struct {
	items []*entity.ProductAsset
}

func (r *memAssetRepo) Create(ctx context.Context, asset *entity.ProductAsset) error {
	asset.Id = uuid.New()
	r.items = append(r.items, asset)
	return nil
}

func (r *memAssetRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *memAssetRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProductAsset, error) {
	for i := len(r.items) - 1; i >= 0; i-- {
		if assetMatches(r.items[i], specs) {
			return r.items[i], nil
		}
	}
	return nil, nil
}

func (r *memAssetRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductAsset, error) {
	var out []*entity.ProductAsset
	for _, item := range r.items {
		if assetMatches(item, specs) {
			out = append(out, item)
		}
	}
	return out, nil
}

func assetMatches(asset *entity.ProductAsset, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.BySessionID:
			if asset.SessionId != s.SessionID {
				return false
			}
		case specification.ByAssetType:
			if asset.AssetType != s.AssetType {
				return false
			}
		}
	}
	return true
}

type memStoreRepo struct {
	items []*entity.Store
}

func (r *memStoreRepo) Create(ctx context.Context, store *entity.Store) error {
	store.Id = uuid.New()
	r.items = append(r.items, store)
	return nil
}

func (r *memStoreRepo) Update(ctx context.Context, store *entity.Store) error { return nil }
func (r *memStoreRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

func (r *memStoreRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Store, error) {
	for i := len(r.items) - 1; i >= 0; i-- {
		if storeMatches(r.items[i], specs) {
			return r.items[i], nil
		}
	}
	return nil, nil
}

func (r *memStoreRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Store, error) {
	return r.items, nil
}

func (r *memStoreRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.items)), nil
}

func storeMatches(store *entity.Store, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if store.Id != s.ID {
				return false
			}
		case specification.BySlug:
			if store.Slug != s.Slug {
				return false
			}
		case specification.OwnedBy:
			if store.UserId != s.UserID {
				return false
			}
		case specification.FilterBy:
			if s.Field == "name" && store.Name != s.Value {
				return false
			}
		}
	}
	return true
}

type memLandingRepo struct {
	items []*entity.LandingPage
}

func (r *memLandingRepo) Create(ctx context.Context, page *entity.LandingPage) error {
	page.Id = uuid.New()
	r.items = append(r.items, page)
	return nil
}

func (r *memLandingRepo) Update(ctx context.Context, page *entity.LandingPage) error { return nil }
func (r *memLandingRepo) Delete(ctx context.Context, id uuid.UUID) error             { return nil }

func (r *memLandingRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LandingPage, error) {
	for i := len(r.items) - 1; i >= 0; i-- {
		if landingMatches(r.items[i], specs) {
			return r.items[i], nil
		}
	}
	return nil, nil
}

func (r *memLandingRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LandingPage, error) {
	return r.items, nil
}

func (r *memLandingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.items)), nil
}

func landingMatches(page *entity.LandingPage, specs []specification.Specification) bool {
	for _, spec := range specs {
		if s, ok := spec.(specification.BySlug); ok && page.Slug != s.Slug {
			return false
		}
	}
	return true
}

type memAgentDefinitionRepo struct {
	items []*entity.AgentDefinition
}

func (r *memAgentDefinitionRepo) Upsert(ctx context.Context, definition *entity.AgentDefinition) error {
	r.items = append(r.items, definition)
	return nil
}

func (r *memAgentDefinitionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AgentDefinition, error) {
	for i := len(r.items) - 1; i >= 0; i-- {
		if definitionMatches(r.items[i], specs) {
			return r.items[i], nil
		}
	}
	return nil, nil
}

func (r *memAgentDefinitionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentDefinition, error) {
	var out []*entity.AgentDefinition
	for _, item := range r.items {
		if definitionMatches(item, specs) {
			out = append(out, item)
		}
	}
	return out, nil
}

func definitionMatches(definition *entity.AgentDefinition, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ActiveOnly:
			if !definition.Active {
				return false
			}
		case specification.ByAgentKey:
			if definition.AgentKey != s.AgentKey {
				return false
			}
		}
	}
	return true
}

type memAgentPromptRepo struct {
	items []*entity.AgentPrompt
}

func (r *memAgentPromptRepo) Upsert(ctx context.Context, prompt *entity.AgentPrompt) error {
	for _, item := range r.items {
		if item.UserId == prompt.UserId && item.AgentKey == prompt.AgentKey {
			item.CustomPrompt = prompt.CustomPrompt
			return nil
		}
	}
	prompt.Id = uuid.New()
	r.items = append(r.items, prompt)
	return nil
}

func (r *memAgentPromptRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *memAgentPromptRepo) DeleteByAgentKey(ctx context.Context, userId uuid.UUID, agentKey string) error {
	var kept []*entity.AgentPrompt
	for _, item := range r.items {
		if item.UserId == userId && item.AgentKey == agentKey {
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	return nil
}

func (r *memAgentPromptRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AgentPrompt, error) {
	for i := len(r.items) - 1; i >= 0; i-- {
		if promptMatches(r.items[i], specs) {
			return r.items[i], nil
		}
	}
	return nil, nil
}

func (r *memAgentPromptRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentPrompt, error) {
	var out []*entity.AgentPrompt
	for _, item := range r.items {
		if promptMatches(item, specs) {
			out = append(out, item)
		}
	}
	return out, nil
}

func promptMatches(prompt *entity.AgentPrompt, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OwnedBy:
			if prompt.UserId != s.UserID {
				return false
			}
		case specification.ByAgentKey:
			if prompt.AgentKey != s.AgentKey {
				return false
			}
		}
	}
	return true
}

type memUow struct {
	sessions    *memSessionRepo
	candidates  *memCandidateRepo
	suppliers   *memSupplierRepo
	sources     *memSourceRepo
	assets      *memAssetRepo
	stores      *memStoreRepo
	landings    *memLandingRepo
	definitions *memAgentDefinitionRepo
	prompts     *memAgentPromptRepo
}

func newMemUow() *memUow {
	return &memUow{
		sessions:    &memSessionRepo{},
		candidates:  &memCandidateRepo{},
		suppliers:   &memSupplierRepo{},
		sources:     &memSourceRepo{},
		assets:      &memAssetRepo{},
		stores:      &memStoreRepo{},
		landings:    &memLandingRepo{},
		definitions: &memAgentDefinitionRepo{},
		prompts:     &memAgentPromptRepo{},
	}
}

func (u *memUow) Begin(ctx context.Context) error { return nil }
func (u *memUow) Commit() error                   { return nil }
func (u *memUow) Rollback() error                 { return nil }

func (u *memUow) UserRepository() contract.UserRepository { return nil }

func (u *memUow) ResearchSessionRepository() contract.ResearchSessionRepository { return u.sessions }

func (u *memUow) ProductCandidateRepository() contract.ProductCandidateRepository {
	return u.candidates
}

func (u *memUow) ProductSupplierRepository() contract.ProductSupplierRepository { return u.suppliers }

func (u *memUow) ResearchSourceRepository() contract.ResearchSourceRepository { return u.sources }

func (u *memUow) ProductAssetRepository() contract.ProductAssetRepository { return u.assets }

func (u *memUow) StoreRepository() contract.StoreRepository { return u.stores }

func (u *memUow) LandingPageRepository() contract.LandingPageRepository { return u.landings }

func (u *memUow) AgentDefinitionRepository() contract.AgentDefinitionRepository {
	return u.definitions
}

func (u *memUow) AgentPromptRepository() contract.AgentPromptRepository { return u.prompts }

func (u *memUow) UserRoleRepository() contract.UserRoleRepository { return nil }

func (u *memUow) ActivityLogRepository() contract.ActivityLogRepository { return nil }

type memFactory struct {
	uow *memUow
}

func (f *memFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

// --- Helpers ---

func searchStub(t *testing.T) *tavily.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"title":"Tendencias botellas","url":"https://example.com/a","content":"demanda alta"}]}`))
	}))
	t.Cleanup(server.Close)
	return &tavily.Client{BaseURL: server.URL, APIKey: "test", Http: server.Client()}
}

func newTestChatService(uow *memUow, provider llm.LLMProvider, search *tavily.Client, publisher *capturePublisher) IChatService {
	return NewChatService(&memFactory{uow: uow}, provider, search, publisher, nopLogger{}, "https://app.example.com", "development")
}

func chatRequest(content string) *dto.ChatRequest {
	return &dto.ChatRequest{
		Messages: []dto.ChatMessage{{Role: constant.ChatMessageRoleUser, Content: content}},
	}
}

// seedSelectedCandidate stages a session with one candidate already chosen.
func seedSelectedCandidate(t *testing.T, uow *memUow, userId uuid.UUID, name, summary string) (*entity.ResearchSession, *entity.ProductCandidate) {
	t.Helper()
	session := &entity.ResearchSession{
		UserId: userId,
		Goal:   "vender " + name,
		Status: constant.SessionStatusProposed,
	}
	require.NoError(t, uow.sessions.Create(context.Background(), session))

	candidate := &entity.ProductCandidate{
		SessionId: session.Id,
		Name:      name,
		Summary:   summary,
	}
	require.NoError(t, uow.candidates.Create(context.Background(), candidate))

	session.SelectedCandidateId = &candidate.Id
	return session, candidate
}

const recommendationTable = `Estas son las mejores opciones:

| Producto | Demanda | Competencia | Margen | Proveedor | Recomendacion |
|---|---|---|---|---|---|
| Botella térmica | Alta | Media | $8-$15 | Proveedor MX | Lanzar con ads |
| Organizador de cables | Media | Baja | $3-$6 | AliExpress | Probar en nicho |

¿Quieres que prepare la tienda?`

// --- Tests ---

func TestChatConfirmStoreWithoutDraft(t *testing.T) {
	uow := newMemUow()
	publisher := &capturePublisher{}
	svc := newTestChatService(uow, &stubLLM{}, searchStub(t), publisher)
	userId := uuid.New()

	res, err := svc.Chat(context.Background(), userId, chatRequest("confirmo tienda"))
	require.NoError(t, err)

	assert.Contains(t, res.Content, "No hay un borrador de tienda")
	assert.Nil(t, res.Debug)
	assert.Empty(t, uow.stores.items)
}

func TestChatStoreDraftRequiresSelectedCandidate(t *testing.T) {
	uow := newMemUow()
	svc := newTestChatService(uow, &stubLLM{}, searchStub(t), &capturePublisher{})
	userId := uuid.New()

	res, err := svc.Chat(context.Background(), userId, chatRequest("crear tienda"))
	require.NoError(t, err)

	assert.Contains(t, res.Content, "Selecciona un producto primero")
	assert.Empty(t, uow.assets.items)
	assert.Empty(t, uow.stores.items)
}

func TestChatStoreDraftThenConfirm(t *testing.T) {
	uow := newMemUow()
	publisher := &capturePublisher{}
	svc := newTestChatService(uow, &stubLLM{}, searchStub(t), publisher)
	userId := uuid.New()
	seedSelectedCandidate(t, uow, userId, "Botellas Andinas", "Botellas reutilizables para exteriores")

	// Draft stage: name and description come from the selected candidate.
	res, err := svc.Chat(context.Background(), userId, chatRequest("quiero crear tienda"))
	require.NoError(t, err)
	assert.Contains(t, res.Content, "confirmo tienda")

	require.Len(t, uow.assets.items, 1)
	draft := uow.assets.items[0]
	assert.Equal(t, constant.AssetTypeStoreDraft, draft.AssetType)
	assert.Equal(t, "Tienda Botellas Andinas", draft.Content["name"])
	assert.Equal(t, "tienda-botellas-andinas", draft.Content["slug"])
	assert.Equal(t, "Botellas reutilizables para exteriores", draft.Content["description"])

	// Confirm stage: the store is built verbatim from the staged draft.
	res, err = svc.Chat(context.Background(), userId, chatRequest("confirmo tienda"))
	require.NoError(t, err)

	require.Len(t, uow.stores.items, 1)
	store := uow.stores.items[0]
	assert.Equal(t, "Tienda Botellas Andinas", store.Name)
	assert.Equal(t, "tienda-botellas-andinas", store.Slug)
	assert.Equal(t, "Botellas reutilizables para exteriores", store.Description)
	assert.Equal(t, constant.StoreStatusActive, store.Status)
	assert.Equal(t, userId, store.UserId)
	require.NotNil(t, store.SessionId)
	assert.Contains(t, res.Content, "/t/"+store.Slug)

	// The session closes with the store.
	require.Len(t, uow.sessions.items, 1)
	assert.Equal(t, constant.SessionStatusCompleted, uow.sessions.items[0].Status)
	assert.True(t, publisher.has(events.KindStoreCreated))
	assert.True(t, publisher.has(events.KindSessionCompleted))
}

func TestChatConfirmStoreRejectsIncompleteDraft(t *testing.T) {
	uow := newMemUow()
	svc := newTestChatService(uow, &stubLLM{}, searchStub(t), &capturePublisher{})
	userId := uuid.New()

	session := &entity.ResearchSession{UserId: userId, Goal: "botellas", Status: constant.SessionStatusProposed}
	require.NoError(t, uow.sessions.Create(context.Background(), session))
	uow.assets.items = append(uow.assets.items, &entity.ProductAsset{
		Id:        uuid.New(),
		SessionId: session.Id,
		AssetType: constant.AssetTypeStoreDraft,
		Content:   map[string]interface{}{"name": "Tienda Botellas"},
	})

	res, err := svc.Chat(context.Background(), userId, chatRequest("confirmo tienda"))
	require.NoError(t, err)

	assert.Contains(t, res.Content, "borrador de la tienda está incompleto")
	assert.Empty(t, uow.stores.items)
}

func TestChatLandingDraftThenConfirm(t *testing.T) {
	uow := newMemUow()
	publisher := &capturePublisher{}
	provider := &stubLLM{generateReply: "# Botellas Andinas\nCompra tu botella hoy."}
	svc := newTestChatService(uow, provider, searchStub(t), publisher)
	userId := uuid.New()
	seedSelectedCandidate(t, uow, userId, "Botellas Andinas", "Botellas reutilizables")

	store := &entity.Store{
		UserId: userId,
		Name:   "Tienda Botellas Andinas",
		Slug:   "tienda-botellas-andinas",
		Status: constant.StoreStatusActive,
	}
	require.NoError(t, uow.stores.Create(context.Background(), store))

	// Draft stage: the copy is generated and the slug reserved up front.
	res, err := svc.Chat(context.Background(), userId, chatRequest("crear landing"))
	require.NoError(t, err)
	assert.Contains(t, res.Content, "confirmo landing")
	assert.NotEmpty(t, provider.lastPrompt)

	require.Len(t, uow.assets.items, 1)
	draft := uow.assets.items[0]
	assert.Equal(t, constant.AssetTypeLandingDraft, draft.AssetType)
	assert.Equal(t, "Botellas Andinas", draft.Content["name"])
	assert.Equal(t, "botellas-andinas", draft.Content["slug"])
	assert.Equal(t, "# Botellas Andinas\nCompra tu botella hoy.", draft.Content["body"])

	// Confirm stage: the landing keeps the reserved slug and links the store.
	res, err = svc.Chat(context.Background(), userId, chatRequest("confirmo landing"))
	require.NoError(t, err)

	require.Len(t, uow.landings.items, 1)
	page := uow.landings.items[0]
	assert.Equal(t, "Botellas Andinas", page.Title)
	assert.Equal(t, "botellas-andinas", page.Slug)
	require.NotNil(t, page.StoreId)
	assert.Equal(t, store.Id, *page.StoreId)
	assert.Equal(t, constant.LandingStatusDraft, page.Status)
	assert.Equal(t, "# Botellas Andinas\nCompra tu botella hoy.", page.Content["body"])
	assert.Contains(t, res.Content, "/l/"+page.Slug)
	assert.True(t, publisher.has(events.KindLandingCreated))
}

func TestChatRecommendationPopulatesCandidates(t *testing.T) {
	uow := newMemUow()
	publisher := &capturePublisher{}
	provider := &stubLLM{chatReply: "research", generateReply: recommendationTable}
	svc := newTestChatService(uow, provider, searchStub(t), publisher)
	userId := uuid.New()

	res, err := svc.Chat(context.Background(), userId, chatRequest("quiero vender botellas termicas en colombia"))
	require.NoError(t, err)

	assert.Equal(t, recommendationTable, res.Content)
	require.NotNil(t, res.Debug)
	assert.Equal(t, 2, res.Debug.Candidates)

	require.Len(t, uow.candidates.items, 2)
	first := uow.candidates.items[0]
	assert.Equal(t, "Botella térmica", first.Name)
	assert.Equal(t, "Alta", first.DemandLevel)
	assert.Equal(t, "$8-$15", first.PriceRange)
	assert.Equal(t, "Lanzar con ads", first.Summary)
	assert.Equal(t, "Proveedor MX", first.Meta["proveedor"])

	// One supplier row per proveedor cell, tied to the session and candidate.
	require.Len(t, uow.suppliers.items, 2)
	supplier := uow.suppliers.items[0]
	assert.Equal(t, "Proveedor MX", supplier.Name)
	assert.Equal(t, first.SessionId, supplier.SessionId)
	require.NotNil(t, supplier.CandidateId)
	assert.Equal(t, first.Id, *supplier.CandidateId)

	// Search results landed as sources and the session moved forward.
	require.Len(t, uow.sources.items, 1)
	assert.Equal(t, "demanda alta", uow.sources.items[0].Summary)
	assert.Equal(t, constant.SessionStatusProposed, uow.sessions.items[0].Status)
	assert.True(t, publisher.has(events.KindSessionProposed))
}

func TestChatRecommendationSkipsWhenCandidatesExist(t *testing.T) {
	uow := newMemUow()
	publisher := &capturePublisher{}
	provider := &stubLLM{chatReply: "research", generateReply: recommendationTable}
	svc := newTestChatService(uow, provider, searchStub(t), publisher)
	userId := uuid.New()

	_, err := svc.Chat(context.Background(), userId, chatRequest("quiero vender botellas termicas en colombia"))
	require.NoError(t, err)
	require.Len(t, uow.candidates.items, 2)

	// A second recommendation turn must not duplicate the candidates.
	res, err := svc.Chat(context.Background(), userId, chatRequest("quiero vender botellas termicas en colombia"))
	require.NoError(t, err)

	assert.Len(t, uow.candidates.items, 2)
	require.NotNil(t, res.Debug)
	assert.Equal(t, 2, res.Debug.Candidates)
}

func TestChatSessionCreateFailureDegrades(t *testing.T) {
	uow := newMemUow()
	uow.sessions.createErr = errors.New("db down")
	provider := &stubLLM{generateReply: recommendationTable}
	svc := newTestChatService(uow, provider, searchStub(t), &capturePublisher{})

	res, err := svc.Chat(context.Background(), uuid.New(), chatRequest("quiero vender botellas termicas"))
	require.NoError(t, err)

	// The reply still goes out; only persistence is skipped.
	assert.Equal(t, recommendationTable, res.Content)
	require.NotNil(t, res.Debug)
	assert.Equal(t, "db down", res.Debug.SessionError)
	assert.Empty(t, uow.candidates.items)
	assert.Empty(t, uow.sources.items)
}

func TestChatCatalogFiltersActiveAndOwnOverrides(t *testing.T) {
	uow := newMemUow()
	userId := uuid.New()
	otherId := uuid.New()

	uow.definitions.items = []*entity.AgentDefinition{
		{Id: uuid.New(), AgentKey: "research", Name: "Investigador", DefaultPrompt: "Base investigacion.", Active: true},
		{Id: uuid.New(), AgentKey: "copy", Name: "Copywriter", DefaultPrompt: "Base copy.", Active: false},
	}
	uow.prompts.items = []*entity.AgentPrompt{
		{Id: uuid.New(), UserId: userId, AgentKey: "research", CustomPrompt: "Enfocate en LATAM."},
		{Id: uuid.New(), UserId: otherId, AgentKey: "research", CustomPrompt: "Usa ingles."},
	}

	svc := newTestChatService(uow, &stubLLM{}, searchStub(t), &capturePublisher{}).(*chatService)
	catalog := svc.loadCatalog(context.Background(), uow, userId)

	assert.NotContains(t, catalog.Keys(), "copy")
	got := catalog.Prompt("research")
	assert.Contains(t, got, "Base investigacion.")
	assert.Contains(t, got, "Enfocate en LATAM.")
	assert.NotContains(t, got, "Usa ingles.")
}

func TestChatDebugHiddenInProduction(t *testing.T) {
	uow := newMemUow()
	provider := &stubLLM{generateReply: recommendationTable}
	svc := NewChatService(&memFactory{uow: uow}, provider, searchStub(t), &capturePublisher{}, nopLogger{}, "https://app.example.com", "production")

	res, err := svc.Chat(context.Background(), uuid.New(), chatRequest("quiero vender botellas termicas"))
	require.NoError(t, err)

	assert.NotEmpty(t, res.Content)
	assert.Nil(t, res.Debug)
}

func TestUpdateResearchSessionToolSelectsCandidate(t *testing.T) {
	uow := newMemUow()
	userId := uuid.New()
	session := &entity.ResearchSession{UserId: userId, Goal: "botellas", Status: constant.SessionStatusProposed}
	require.NoError(t, uow.sessions.Create(context.Background(), session))
	candidate := &entity.ProductCandidate{SessionId: session.Id, Name: "Botella térmica"}
	require.NoError(t, uow.candidates.Create(context.Background(), candidate))

	svc := newTestChatService(uow, &stubLLM{}, searchStub(t), &capturePublisher{}).(*chatService)
	registry := svc.buildToolRegistry(uow, userId)

	args := fmt.Sprintf(`{"session_id":%q,"status":%q,"selected_candidate_id":%q}`,
		session.Id, constant.SessionStatusSelected, candidate.Id)
	out := registry.Invoke(context.Background(), "updateResearchSession", json.RawMessage(args))
	assert.Equal(t, "Sesion actualizada", out)

	require.NotNil(t, session.SelectedCandidateId)
	assert.Equal(t, candidate.Id, *session.SelectedCandidateId)
	assert.Equal(t, constant.SessionStatusSelected, session.Status)

	// No fields at all is rejected.
	out = registry.Invoke(context.Background(), "updateResearchSession",
		json.RawMessage(fmt.Sprintf(`{"session_id":%q}`, session.Id)))
	assert.Equal(t, "Error: No hay cambios.", out)

	// A candidate from another session cannot be selected.
	stray := &entity.ProductCandidate{SessionId: uuid.New(), Name: "Otro"}
	require.NoError(t, uow.candidates.Create(context.Background(), stray))
	out = registry.Invoke(context.Background(), "updateResearchSession",
		json.RawMessage(fmt.Sprintf(`{"session_id":%q,"selected_candidate_id":%q}`, session.Id, stray.Id)))
	assert.Equal(t, "Error: candidato no encontrado", out)
}

func TestUniqueStoreSlugAppendsSuffixOnCollision(t *testing.T) {
	uow := newMemUow()

	slug, err := uniqueStoreSlug(context.Background(), uow, "Botellas Andinas")
	require.NoError(t, err)
	assert.Equal(t, "botellas-andinas", slug)

	uow.stores.items = append(uow.stores.items, &entity.Store{
		Id:   uuid.New(),
		Name: "Botellas Andinas",
		Slug: "botellas-andinas",
	})

	slug, err = uniqueStoreSlug(context.Background(), uow, "Botellas Andinas")
	require.NoError(t, err)
	assert.Regexp(t, `^botellas-andinas-\d{4}$`, slug)
}

func TestUniqueLandingSlugAppendsSuffixOnCollision(t *testing.T) {
	uow := newMemUow()

	slug, err := uniqueLandingSlug(context.Background(), uow, "Botellas Andinas")
	require.NoError(t, err)
	assert.Equal(t, "botellas-andinas", slug)

	uow.landings.items = append(uow.landings.items, &entity.LandingPage{
		Id:    uuid.New(),
		Title: "Botellas Andinas",
		Slug:  "botellas-andinas",
	})

	slug, err = uniqueLandingSlug(context.Background(), uow, "Botellas Andinas")
	require.NoError(t, err)
	assert.Regexp(t, `^botellas-andinas-\d{4}$`, slug)
}

func TestChatEmptyMessagesRejected(t *testing.T) {
	uow := newMemUow()
	svc := newTestChatService(uow, &stubLLM{}, searchStub(t), &capturePublisher{})

	_, err := svc.Chat(context.Background(), uuid.New(), &dto.ChatRequest{})
	assert.Error(t, err)
}

func TestStreamChatWithoutToolSupportFallsBack(t *testing.T) {
	uow := newMemUow()
	provider := &stubLLM{chatReply: "Hola, soy tu asistente."}
	svc := newTestChatService(uow, provider, searchStub(t), &capturePublisher{})

	var chunks []string
	err := svc.StreamChat(context.Background(), uuid.New(), chatRequest("hola"), func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "Hola, soy tu asistente.", chunks[0])

	if strings.Contains(chunks[0], "Error") {
		t.Fatalf("unexpected error chunk: %q", chunks[0])
	}
}
