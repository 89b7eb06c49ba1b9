package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ecomia-be/internal/constant"
	"ecomia-be/internal/dto"
	"ecomia-be/internal/entity"
	"ecomia-be/internal/pkg/logger"
	"ecomia-be/internal/repository/specification"
	"ecomia-be/internal/repository/unitofwork"
	"ecomia-be/pkg/agent/intent"
	"ecomia-be/pkg/agent/markdown"
	"ecomia-be/pkg/agent/prompt"
	"ecomia-be/pkg/agent/tools"
	"ecomia-be/pkg/agent/workflow"
	"ecomia-be/pkg/events"
	"ecomia-be/pkg/llm"
	"ecomia-be/pkg/search/tavily"

	"github.com/google/uuid"
)

const (
	maxPersistedSources = 6
	maxToolRounds       = 8
	maxContextChars     = 4000
)

type IChatService interface {
	Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	StreamChat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest, emit func(chunk string) error) error
}

type chatService struct {
	uowFactory   unitofwork.RepositoryFactory
	provider     llm.LLMProvider
	router       *intent.Router
	search       *tavily.Client
	publisher    IActivityPublisher
	logger       logger.ILogger
	clientURL    string
	debugEnabled bool
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.LLMProvider,
	search *tavily.Client,
	publisher IActivityPublisher,
	log logger.ILogger,
	clientURL string,
	environment string,
) IChatService {
	return &chatService{
		uowFactory:   uowFactory,
		provider:     provider,
		router:       intent.NewRouter(provider),
		search:       search,
		publisher:    publisher,
		logger:       log,
		clientURL:    clientURL,
		debugEnabled: environment != "production",
	}
}

// lastUserMessage returns the newest message with the user role, or the last
// message when the client sends no explicit user turn.
func lastUserMessage(messages []dto.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == constant.ChatMessageRoleUser {
			return messages[i].Content
		}
	}
	return messages[len(messages)-1].Content
}

// loadCatalog assembles the three-tier prompt catalog from the database.
// Only active definitions and the requesting user's own overrides apply.
// Failures degrade to the static defaults: the chat must answer even when the
// prompt tables are unreachable.
func (s *chatService) loadCatalog(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) *prompt.Catalog {
	var configs []prompt.AgentConfig
	definitions, err := uow.AgentDefinitionRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		s.logger.Warn("chat", "Failed to load agent definitions, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		configs = definitionsToConfigs(definitions)
	}

	overrides := map[string]string{}
	rows, err := uow.AgentPromptRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		s.logger.Warn("chat", "Failed to load agent prompt overrides", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		for _, row := range rows {
			overrides[row.AgentKey] = row.CustomPrompt
		}
	}

	return prompt.NewCatalog(configs, overrides)
}

// findOrCreateSession reuses the user's most recent session unless it is
// completed, in which case a fresh one starts in the researching state.
func (s *chatService) findOrCreateSession(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, goal string) (*entity.ResearchSession, error) {
	session, err := uow.ResearchSessionRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if session != nil && session.Status != constant.SessionStatusCompleted {
		return session, nil
	}

	session = &entity.ResearchSession{
		UserId:    userId,
		Goal:      goal,
		Status:    constant.SessionStatusResearching,
		CreatedAt: time.Now(),
	}
	if err := uow.ResearchSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, &events.ActivityEvent{
		Kind:      events.KindSessionCreated,
		UserId:    userId,
		SubjectId: session.Id,
		Detail:    map[string]interface{}{"goal": goal},
	})
	return session, nil
}

// runSearch queries market trends and persists up to maxPersistedSources
// results. Search and persistence are both best-effort, and persistence is
// skipped entirely when there is no session to attach the sources to.
func (s *chatService) runSearch(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ResearchSession, seed string) string {
	query := fmt.Sprintf("tendencia %s LATAM", seed)
	resp, err := s.search.Search(ctx, query, 5)
	if err != nil {
		s.logger.Warn("chat", "Market search failed", map[string]interface{}{
			"error": err.Error(),
			"query": query,
		})
		return "sin datos de busqueda"
	}

	if session != nil {
		for i, result := range resp.Results {
			if i >= maxPersistedSources {
				break
			}
			source := entity.ResearchSource{
				SessionId: session.Id,
				Kind:      "tavily",
				Url:       result.Url,
				Title:     result.Title,
				Summary:   result.Content,
				Data:      result.Raw,
				CreatedAt: time.Now(),
			}
			if err := uow.ResearchSourceRepository().Create(ctx, &source); err != nil {
				s.logger.Warn("chat", "Failed to persist research source", map[string]interface{}{
					"error": err.Error(),
					"url":   result.Url,
				})
			}
		}
	}

	contextText := resp.RawJSON
	if len(contextText) > maxContextChars {
		contextText = contextText[:maxContextChars]
	}
	return contextText
}

func (s *chatService) Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("messages are required")
	}
	seed := lastUserMessage(req.Messages)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	catalog := s.loadCatalog(ctx, uow, userId)
	orchestratorPrompt := catalog.Prompt("orchestrator")

	debug := &dto.ChatDebug{}

	// A failed session lookup must not silence the chat: the reply still
	// goes out, only persistence is skipped.
	session, err := s.findOrCreateSession(ctx, uow, userId, seed)
	if err != nil {
		s.logger.Error("chat", "Session lookup failed", map[string]interface{}{"error": err.Error()})
		debug.SessionError = err.Error()
		session = nil
	} else {
		debug.SessionId = session.Id.String()
	}

	// Draft/confirm commands short-circuit intent classification.
	action := workflow.Detect(seed)
	if action != workflow.ActionNone {
		debug.Action = string(action)
		if session == nil {
			return s.reply("No pude preparar tu sesión de investigación. Intenta de nuevo en unos segundos.", debug), nil
		}
		return s.handleWorkflow(ctx, uow, userId, session, seed, catalog, action, debug)
	}

	agentKey := intent.Classify(seed)
	debug.Intent = string(agentKey)

	if refined, err := s.router.Refine(ctx, seed, orchestratorPrompt, catalog.Keys()); err == nil {
		if refined != "orchestrator" {
			agentKey = refined
			debug.RouterAgent = string(refined)
		}
	} else {
		s.logger.Debug("chat", "Router refinement skipped", map[string]interface{}{"error": err.Error()})
	}

	researchContext := s.runSearch(ctx, uow, session, seed)

	in := prompt.TaskInput{
		SeedQuery:          seed,
		ResearchContext:    researchContext,
		OrchestratorPrompt: orchestratorPrompt,
		AgentPrompt:        catalog.Prompt(string(agentKey)),
	}

	switch agentKey {
	case intent.KeyCopy:
		return s.generateAsset(ctx, uow, userId, session, prompt.CopyPrompt(in), constant.AssetTypeCopy, debug)
	case intent.KeyLandingBuilder:
		return s.generateAsset(ctx, uow, userId, session, prompt.LandingPrompt(in), constant.AssetTypeLanding, debug)
	case intent.KeyMediaCreator:
		return s.generateAsset(ctx, uow, userId, session, prompt.MediaPrompt(in), constant.AssetTypeMedia, debug)
	case intent.KeyFallbackMonitor:
		content, err := s.provider.Generate(ctx, prompt.FallbackPrompt(in))
		if err != nil {
			s.logger.Error("chat", "Fallback generation failed", map[string]interface{}{"error": err.Error()})
			return guidance("No pude diagnosticar el problema ahora. Cuéntame qué estabas haciendo y qué mensaje viste."), nil
		}
		return s.reply(content, debug), nil
	default:
		// research and recommendation both land here: the recommendation
		// table is the product of the research flow.
		return s.recommend(ctx, uow, userId, session, prompt.RecommendationPrompt(in), debug)
	}
}

func (s *chatService) generateAsset(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, session *entity.ResearchSession, systemPrompt, assetType string, debug *dto.ChatDebug) (*dto.ChatResponse, error) {
	content, err := s.provider.Generate(ctx, systemPrompt)
	if err != nil {
		s.logger.Error("chat", "Content generation failed", map[string]interface{}{
			"error":      err.Error(),
			"asset_type": assetType,
		})
		return guidance("No pude generar el contenido ahora. Intenta de nuevo o dame más contexto de tu producto."), nil
	}
	if session == nil {
		return s.reply(content, debug), nil
	}

	asset := entity.ProductAsset{
		SessionId:   session.Id,
		CandidateId: session.SelectedCandidateId,
		AssetType:   assetType,
		Content: map[string]interface{}{
			"raw":  content,
			"kind": assetType,
		},
		CreatedAt: time.Now(),
	}
	if err := uow.ProductAssetRepository().Create(ctx, &asset); err != nil {
		s.logger.Warn("chat", "Failed to persist generated asset", map[string]interface{}{
			"error":      err.Error(),
			"asset_type": assetType,
		})
	} else {
		s.publisher.Publish(ctx, &events.ActivityEvent{
			Kind:      events.KindAssetCreated,
			UserId:    userId,
			SubjectId: asset.Id,
			Detail:    map[string]interface{}{"asset_type": assetType},
		})
	}

	return s.reply(content, debug), nil
}

// recommend generates the recommendation reply and, when the session has no
// candidates yet, parses the markdown table to populate candidates and
// suppliers, moving the session to the proposed state.
func (s *chatService) recommend(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, session *entity.ResearchSession, systemPrompt string, debug *dto.ChatDebug) (*dto.ChatResponse, error) {
	content, err := s.provider.Generate(ctx, systemPrompt)
	if err != nil {
		s.logger.Error("chat", "Recommendation generation failed", map[string]interface{}{"error": err.Error()})
		return guidance("No pude completar la investigación ahora. Intenta de nuevo en unos minutos o dame más detalles de tu idea."), nil
	}
	if session == nil {
		return s.reply(content, debug), nil
	}

	count, err := uow.ProductCandidateRepository().Count(ctx, specification.BySessionID{SessionID: session.Id})
	if err != nil {
		s.logger.Warn("chat", "Candidate count failed, skipping auto-population", map[string]interface{}{"error": err.Error()})
		return s.reply(content, debug), nil
	}
	if count > 0 {
		debug.Candidates = int(count)
		return s.reply(content, debug), nil
	}

	table := markdown.ParseTable(content)
	if table == nil {
		return s.reply(content, debug), nil
	}

	inserted := 0
	for _, row := range table.Rows {
		candidate := candidateFromRow(session.Id, row)
		if candidate == nil {
			continue
		}
		if err := uow.ProductCandidateRepository().Create(ctx, candidate); err != nil {
			s.logger.Warn("chat", "Failed to insert product candidate", map[string]interface{}{
				"error": err.Error(),
				"name":  candidate.Name,
			})
			continue
		}
		inserted++

		if supplier, _ := candidate.Meta["proveedor"].(string); supplier != "" {
			row := entity.ProductSupplier{
				SessionId:   session.Id,
				CandidateId: &candidate.Id,
				Name:        supplier,
				CreatedAt:   time.Now(),
			}
			if err := uow.ProductSupplierRepository().Create(ctx, &row); err != nil {
				s.logger.Warn("chat", "Failed to insert product supplier", map[string]interface{}{
					"error": err.Error(),
					"name":  supplier,
				})
			}
		}
	}

	if inserted > 0 {
		session.Status = constant.SessionStatusProposed
		now := time.Now()
		session.UpdatedAt = &now
		if err := uow.ResearchSessionRepository().Update(ctx, session); err != nil {
			s.logger.Warn("chat", "Failed to mark session proposed", map[string]interface{}{"error": err.Error()})
		} else {
			s.publisher.Publish(ctx, &events.ActivityEvent{
				Kind:      events.KindSessionProposed,
				UserId:    userId,
				SubjectId: session.Id,
				Detail:    map[string]interface{}{"candidates": inserted},
			})
		}
	}

	debug.Candidates = inserted
	return s.reply(content, debug), nil
}

// candidateFromRow maps table cells by position: producto, demanda,
// competencia, margen, proveedor, recomendacion. Models that reorder columns
// end up with shifted values; the column contract lives in the prompt.
func candidateFromRow(sessionId uuid.UUID, row []string) *entity.ProductCandidate {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	name := cell(0)
	if name == "" {
		return nil
	}
	return &entity.ProductCandidate{
		SessionId:        sessionId,
		Name:             name,
		DemandLevel:      cell(1),
		CompetitionLevel: cell(2),
		PriceRange:       cell(3),
		Summary:          cell(5),
		Meta: map[string]interface{}{
			"proveedor":     cell(4),
			"recomendacion": cell(5),
		},
		CreatedAt: time.Now(),
	}
}

// --- Draft / confirm workflows ---

func (s *chatService) handleWorkflow(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, session *entity.ResearchSession, seed string, catalog *prompt.Catalog, action workflow.Action, debug *dto.ChatDebug) (*dto.ChatResponse, error) {
	switch action {
	case workflow.ActionStoreDraft:
		return s.draftStore(ctx, uow, session, debug)
	case workflow.ActionStoreConfirm:
		return s.confirmStore(ctx, uow, userId, session, debug)
	case workflow.ActionLandingDraft:
		return s.draftLanding(ctx, uow, session, seed, catalog, debug)
	case workflow.ActionLandingConfirm:
		return s.confirmLanding(ctx, uow, userId, session, debug)
	}
	return guidance("No entendí el comando. Puedes pedirme crear una tienda o una landing."), nil
}

// draftStore stages a store draft built from the session's selected candidate.
// Without a selection there is nothing worth staging.
func (s *chatService) draftStore(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ResearchSession, debug *dto.ChatDebug) (*dto.ChatResponse, error) {
	if session.SelectedCandidateId == nil {
		return s.reply("Selecciona un producto primero. Pídeme investigar ideas y dime cuál de los candidatos quieres para tu tienda.", debug), nil
	}
	candidate, err := uow.ProductCandidateRepository().FindOne(ctx,
		specification.ByID{ID: *session.SelectedCandidateId},
		specification.BySessionID{SessionID: session.Id},
	)
	if err != nil {
		s.logger.Error("chat", "Candidate lookup failed", map[string]interface{}{"error": err.Error()})
		return guidance("No pude revisar tu producto seleccionado. Intenta de nuevo."), nil
	}
	if candidate == nil {
		return s.reply("Selecciona un producto primero. Pídeme investigar ideas y dime cuál de los candidatos quieres para tu tienda.", debug), nil
	}

	name := "Tienda " + candidate.Name
	slug := workflow.Slugify(name)
	description := candidate.Summary
	if description == "" {
		description = "Tienda especializada en " + candidate.Name
	}

	asset := entity.ProductAsset{
		SessionId:   session.Id,
		CandidateId: &candidate.Id,
		AssetType:   constant.AssetTypeStoreDraft,
		Content: map[string]interface{}{
			"name":        name,
			"slug":        slug,
			"description": description,
		},
		CreatedAt: time.Now(),
	}
	if err := uow.ProductAssetRepository().Create(ctx, &asset); err != nil {
		s.logger.Error("chat", "Failed to stage store draft", map[string]interface{}{"error": err.Error()})
		return guidance("No pude guardar el borrador. Intenta de nuevo."), nil
	}

	return s.reply(fmt.Sprintf("Listo. Preparé el borrador de tu tienda \"%s\" (slug: %s). Escribe \"confirmo tienda\" para crearla.", name, slug), debug), nil
}

// landingName prefers the selected candidate, then the session's first
// proposed candidate, then the raw message.
func (s *chatService) landingName(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ResearchSession, seed string) string {
	if session.SelectedCandidateId != nil {
		candidate, err := uow.ProductCandidateRepository().FindOne(ctx,
			specification.ByID{ID: *session.SelectedCandidateId},
		)
		if err == nil && candidate != nil {
			return candidate.Name
		}
	}
	candidates, err := uow.ProductCandidateRepository().FindAll(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
		specification.Limit{Limit: 1},
	)
	if err == nil && len(candidates) > 0 {
		return candidates[0].Name
	}
	return seed
}

// draftLanding generates the landing copy up front and reserves the slug, so
// the confirm step only inserts the row.
func (s *chatService) draftLanding(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ResearchSession, seed string, catalog *prompt.Catalog, debug *dto.ChatDebug) (*dto.ChatResponse, error) {
	name := s.landingName(ctx, uow, session, seed)
	slug, err := uniqueLandingSlug(ctx, uow, name)
	if err != nil {
		s.logger.Error("chat", "Slug resolution failed", map[string]interface{}{"error": err.Error()})
		return guidance("No pude preparar el borrador de la landing. Intenta de nuevo."), nil
	}

	in := prompt.TaskInput{
		SeedQuery:          name,
		OrchestratorPrompt: catalog.Prompt("orchestrator"),
		AgentPrompt:        catalog.Prompt("landing_builder"),
	}
	body, err := s.provider.Generate(ctx, prompt.LandingPrompt(in))
	if err != nil {
		s.logger.Error("chat", "Landing copy generation failed", map[string]interface{}{"error": err.Error()})
		return guidance("No pude generar el contenido de la landing ahora. Intenta de nuevo."), nil
	}

	asset := entity.ProductAsset{
		SessionId:   session.Id,
		CandidateId: session.SelectedCandidateId,
		AssetType:   constant.AssetTypeLandingDraft,
		Content: map[string]interface{}{
			"name": name,
			"slug": slug,
			"body": body,
		},
		CreatedAt: time.Now(),
	}
	if err := uow.ProductAssetRepository().Create(ctx, &asset); err != nil {
		s.logger.Error("chat", "Failed to stage landing draft", map[string]interface{}{"error": err.Error()})
		return guidance("No pude guardar el borrador. Intenta de nuevo."), nil
	}

	return s.reply(fmt.Sprintf("Listo. Preparé el borrador de tu landing \"%s\" (slug: %s). Escribe \"confirmo landing\" para publicarla.", name, slug), debug), nil
}

// latestDraft returns the newest staged draft of the given type for the
// session, or nil.
func (s *chatService) latestDraft(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID, assetType string) (*entity.ProductAsset, error) {
	return uow.ProductAssetRepository().FindOne(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.ByAssetType{AssetType: assetType},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (s *chatService) confirmStore(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, session *entity.ResearchSession, debug *dto.ChatDebug) (*dto.ChatResponse, error) {
	draft, err := s.latestDraft(ctx, uow, session.Id, constant.AssetTypeStoreDraft)
	if err != nil {
		s.logger.Error("chat", "Draft lookup failed", map[string]interface{}{"error": err.Error()})
		return guidance("No pude revisar tus borradores. Intenta de nuevo."), nil
	}
	if draft == nil {
		return guidance("No hay un borrador de tienda. Primero dime \"crear tienda\" para prepararlo."), nil
	}

	name, _ := draft.Content["name"].(string)
	slug, _ := draft.Content["slug"].(string)
	description, _ := draft.Content["description"].(string)
	if name == "" || slug == "" || description == "" {
		return s.reply("El borrador de la tienda está incompleto. Dime \"crear tienda\" para prepararlo de nuevo.", debug), nil
	}

	store := entity.Store{
		UserId:      userId,
		SessionId:   &session.Id,
		Name:        name,
		Slug:        slug,
		Description: description,
		Status:      constant.StoreStatusActive,
		Meta: map[string]interface{}{
			"origin": "chat",
		},
		CreatedAt: time.Now(),
	}
	if err := uow.StoreRepository().Create(ctx, &store); err != nil {
		s.logger.Error("chat", "Store creation failed", map[string]interface{}{"error": err.Error()})
		return guidance("No pude crear la tienda ahora. Intenta de nuevo."), nil
	}

	session.Status = constant.SessionStatusCompleted
	now := time.Now()
	session.UpdatedAt = &now
	if err := uow.ResearchSessionRepository().Update(ctx, session); err != nil {
		s.logger.Warn("chat", "Failed to complete session", map[string]interface{}{"error": err.Error()})
	}

	s.publisher.Publish(ctx, &events.ActivityEvent{
		Kind:      events.KindStoreCreated,
		UserId:    userId,
		SubjectId: store.Id,
		Detail:    map[string]interface{}{"slug": store.Slug},
	})
	s.publisher.Publish(ctx, &events.ActivityEvent{
		Kind:      events.KindSessionCompleted,
		UserId:    userId,
		SubjectId: session.Id,
	})

	return s.reply(fmt.Sprintf("¡Tu tienda \"%s\" está lista! La encuentras en %s/t/%s", store.Name, s.clientURL, store.Slug), debug), nil
}

// resolveLandingStoreId links a landing to the store it belongs to: the store
// created from the session's store draft (matched by slug, then name), falling
// back to the user's newest store.
func (s *chatService) resolveLandingStoreId(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, session *entity.ResearchSession) *uuid.UUID {
	if draft, err := s.latestDraft(ctx, uow, session.Id, constant.AssetTypeStoreDraft); err == nil && draft != nil {
		if slug, _ := draft.Content["slug"].(string); slug != "" {
			store, err := uow.StoreRepository().FindOne(ctx,
				specification.BySlug{Slug: slug},
				specification.OwnedBy{UserID: userId},
			)
			if err == nil && store != nil {
				return &store.Id
			}
		}
		if name, _ := draft.Content["name"].(string); name != "" {
			store, err := uow.StoreRepository().FindOne(ctx,
				specification.FilterBy{Field: "name", Value: name},
				specification.OwnedBy{UserID: userId},
			)
			if err == nil && store != nil {
				return &store.Id
			}
		}
	}
	store, err := uow.StoreRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err == nil && store != nil {
		return &store.Id
	}
	return nil
}

func (s *chatService) confirmLanding(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, session *entity.ResearchSession, debug *dto.ChatDebug) (*dto.ChatResponse, error) {
	draft, err := s.latestDraft(ctx, uow, session.Id, constant.AssetTypeLandingDraft)
	if err != nil {
		s.logger.Error("chat", "Draft lookup failed", map[string]interface{}{"error": err.Error()})
		return guidance("No pude revisar tus borradores. Intenta de nuevo."), nil
	}
	if draft == nil {
		return guidance("No hay un borrador de landing. Primero dime \"crear landing\" para prepararlo."), nil
	}

	title, _ := draft.Content["name"].(string)
	slug, _ := draft.Content["slug"].(string)
	body, _ := draft.Content["body"].(string)
	if title == "" || slug == "" {
		return s.reply("El borrador de la landing está incompleto. Dime \"crear landing\" para prepararlo de nuevo.", debug), nil
	}

	page := entity.LandingPage{
		UserId:    userId,
		SessionId: &session.Id,
		StoreId:   s.resolveLandingStoreId(ctx, uow, userId, session),
		Title:     title,
		Slug:      slug,
		Status:    constant.LandingStatusDraft,
		Content: map[string]interface{}{
			"body":   body,
			"origin": "chat",
		},
		CreatedAt: time.Now(),
	}
	if err := uow.LandingPageRepository().Create(ctx, &page); err != nil {
		s.logger.Error("chat", "Landing creation failed", map[string]interface{}{"error": err.Error()})
		return guidance("No pude crear la landing ahora. Intenta de nuevo."), nil
	}

	s.publisher.Publish(ctx, &events.ActivityEvent{
		Kind:      events.KindLandingCreated,
		UserId:    userId,
		SubjectId: page.Id,
		Detail:    map[string]interface{}{"slug": page.Slug},
	})

	return s.reply(fmt.Sprintf("¡Tu landing \"%s\" está lista! La encuentras en %s/l/%s", page.Title, s.clientURL, page.Slug), debug), nil
}

func guidance(message string) *dto.ChatResponse {
	return &dto.ChatResponse{Content: message}
}

// reply attaches the debug block outside production only.
func (s *chatService) reply(content string, debug *dto.ChatDebug) *dto.ChatResponse {
	if !s.debugEnabled {
		debug = nil
	}
	return &dto.ChatResponse{Content: content, Debug: debug}
}

// --- Streaming tool-calling mode ---

// StreamChat drives the tool-calling loop: the model calls persistence tools
// itself, and only the final text reaches the client. Providers without tool
// support degrade to a single plain completion.
func (s *chatService) StreamChat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest, emit func(chunk string) error) error {
	if len(req.Messages) == 0 {
		return fmt.Errorf("messages are required")
	}

	toolProvider, ok := s.provider.(llm.ToolCallingProvider)
	if !ok {
		content, err := s.provider.Chat(ctx, toLLMMessages(prompt.OrchestratorSystemPrompt, req.Messages))
		if err != nil {
			return err
		}
		return emit(content)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	registry := s.buildToolRegistry(uow, userId)
	history := toLLMMessages(prompt.OrchestratorSystemPrompt, req.Messages)

	for round := 0; round < maxToolRounds; round++ {
		result, err := toolProvider.ChatWithTools(ctx, history, registry.Definitions())
		if err != nil {
			return err
		}

		if len(result.ToolCalls) == 0 {
			return emit(result.Text)
		}

		assistant := llm.Message{Role: "assistant", Content: result.Text, ToolCalls: result.ToolCalls}
		history = append(history, assistant)

		for _, call := range result.ToolCalls {
			output := registry.Invoke(ctx, call.Name, call.Arguments)
			history = append(history, llm.Message{
				Role:       "tool",
				Content:    output,
				ToolCallId: call.Id,
			})
		}
	}

	return emit("Llegué al límite de pasos de esta conversación. Pídeme continuar y retomo donde quedamos.")
}

func toLLMMessages(systemPrompt string, messages []dto.ChatMessage) []llm.Message {
	out := make([]llm.Message, 0, len(messages)+1)
	out = append(out, llm.Message{Role: "system", Content: systemPrompt})
	for _, msg := range messages {
		out = append(out, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	return out
}

func (s *chatService) buildToolRegistry(uow unitofwork.UnitOfWork, userId uuid.UUID) *tools.Registry {
	registry := tools.NewRegistry()

	registry.Register(llm.ToolDefinition{
		Name:        "searchMarket",
		Description: "Busca tendencias y datos de mercado para una idea de producto.",
		Parameters:  tools.ObjectSchema(map[string]interface{}{"query": tools.StringProp("Consulta de busqueda")}, "query"),
	}, func(ctx context.Context, args json.RawMessage) string {
		var in struct {
			Query string `json:"query"`
		}
		if err := json.Unmarshal(args, &in); err != nil || in.Query == "" {
			return "Error: falta el parametro query"
		}
		resp, err := s.search.Search(ctx, in.Query, 5)
		if err != nil {
			return fmt.Sprintf("Error al buscar: %v", err)
		}
		out := resp.RawJSON
		if len(out) > maxContextChars {
			out = out[:maxContextChars]
		}
		return out
	})

	registry.Register(llm.ToolDefinition{
		Name:        "createResearchSession",
		Description: "Crea una sesion de investigacion y devuelve su session_id.",
		Parameters:  tools.ObjectSchema(map[string]interface{}{"goal": tools.StringProp("Objetivo del usuario")}, "goal"),
	}, func(ctx context.Context, args json.RawMessage) string {
		var in struct {
			Goal string `json:"goal"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return "Error: argumentos invalidos"
		}
		session := entity.ResearchSession{
			UserId:    userId,
			Goal:      in.Goal,
			Status:    constant.SessionStatusResearching,
			CreatedAt: time.Now(),
		}
		if err := uow.ResearchSessionRepository().Create(ctx, &session); err != nil {
			return fmt.Sprintf("Error al crear la sesion: %v", err)
		}
		s.publisher.Publish(ctx, &events.ActivityEvent{
			Kind:      events.KindSessionCreated,
			UserId:    userId,
			SubjectId: session.Id,
			Detail:    map[string]interface{}{"goal": in.Goal},
		})
		return fmt.Sprintf("session_id: %s", session.Id)
	})

	registry.Register(llm.ToolDefinition{
		Name:        "createResearchSource",
		Description: "Guarda una fuente de investigacion en la sesion.",
		Parameters: tools.ObjectSchema(map[string]interface{}{
			"session_id": tools.StringProp("Id de la sesion"),
			"url":        tools.StringProp("URL de la fuente"),
			"title":      tools.StringProp("Titulo de la fuente"),
			"summary":    tools.StringProp("Resumen del contenido"),
		}, "session_id"),
	}, func(ctx context.Context, args json.RawMessage) string {
		var in struct {
			SessionId string `json:"session_id"`
			Url       string `json:"url"`
			Title     string `json:"title"`
			Summary   string `json:"summary"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return "Error: argumentos invalidos"
		}
		sessionId, err := s.ownedSessionId(ctx, uow, userId, in.SessionId)
		if err != nil {
			return err.Error()
		}
		source := entity.ResearchSource{
			SessionId: sessionId,
			Kind:      "tavily",
			Url:       in.Url,
			Title:     in.Title,
			Summary:   in.Summary,
			CreatedAt: time.Now(),
		}
		if err := uow.ResearchSourceRepository().Create(ctx, &source); err != nil {
			return fmt.Sprintf("Error al guardar la fuente: %v", err)
		}
		return "Fuente guardada"
	})

	registry.Register(llm.ToolDefinition{
		Name:        "createProductCandidate",
		Description: "Guarda un producto candidato en la sesion.",
		Parameters: tools.ObjectSchema(map[string]interface{}{
			"session_id":        tools.StringProp("Id de la sesion"),
			"name":              tools.StringProp("Nombre del producto"),
			"summary":           tools.StringProp("Resumen o recomendacion"),
			"pros":              tools.StringProp("Puntos a favor"),
			"cons":              tools.StringProp("Puntos en contra"),
			"demand_level":      tools.StringProp("Nivel de demanda"),
			"competition_level": tools.StringProp("Nivel de competencia"),
			"price_range":       tools.StringProp("Rango de precio o margen"),
			"score":             tools.NumberProp("Puntaje del candidato"),
		}, "session_id", "name"),
	}, func(ctx context.Context, args json.RawMessage) string {
		var in struct {
			SessionId        string   `json:"session_id"`
			Name             string   `json:"name"`
			Summary          string   `json:"summary"`
			Pros             string   `json:"pros"`
			Cons             string   `json:"cons"`
			DemandLevel      string   `json:"demand_level"`
			CompetitionLevel string   `json:"competition_level"`
			PriceRange       string   `json:"price_range"`
			Score            *float64 `json:"score"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return "Error: argumentos invalidos"
		}
		sessionId, err := s.ownedSessionId(ctx, uow, userId, in.SessionId)
		if err != nil {
			return err.Error()
		}
		candidate := entity.ProductCandidate{
			SessionId:        sessionId,
			Name:             in.Name,
			Summary:          in.Summary,
			Pros:             in.Pros,
			Cons:             in.Cons,
			DemandLevel:      in.DemandLevel,
			CompetitionLevel: in.CompetitionLevel,
			PriceRange:       in.PriceRange,
			Score:            in.Score,
			CreatedAt:        time.Now(),
		}
		if err := uow.ProductCandidateRepository().Create(ctx, &candidate); err != nil {
			return fmt.Sprintf("Error al guardar el candidato: %v", err)
		}
		return fmt.Sprintf("candidate_id: %s", candidate.Id)
	})

	registry.Register(llm.ToolDefinition{
		Name:        "createProductSupplier",
		Description: "Guarda un proveedor en la sesion, opcionalmente ligado a un candidato.",
		Parameters: tools.ObjectSchema(map[string]interface{}{
			"session_id":   tools.StringProp("Id de la sesion"),
			"candidate_id": tools.StringProp("Id del candidato (opcional)"),
			"name":         tools.StringProp("Nombre del proveedor"),
			"website":      tools.StringProp("Sitio web del proveedor"),
			"contact":      tools.StringProp("Datos de contacto"),
			"price_range":  tools.StringProp("Rango de precios"),
			"notes":        tools.StringProp("Notas adicionales"),
		}, "session_id", "name"),
	}, func(ctx context.Context, args json.RawMessage) string {
		var in struct {
			SessionId   string `json:"session_id"`
			CandidateId string `json:"candidate_id"`
			Name        string `json:"name"`
			Website     string `json:"website"`
			Contact     string `json:"contact"`
			PriceRange  string `json:"price_range"`
			Notes       string `json:"notes"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return "Error: argumentos invalidos"
		}
		sessionId, err := s.ownedSessionId(ctx, uow, userId, in.SessionId)
		if err != nil {
			return err.Error()
		}
		supplier := entity.ProductSupplier{
			SessionId:  sessionId,
			Name:       in.Name,
			Website:    in.Website,
			Contact:    in.Contact,
			PriceRange: in.PriceRange,
			Notes:      in.Notes,
			CreatedAt:  time.Now(),
		}
		if in.CandidateId != "" {
			candidateId, err := uuid.Parse(in.CandidateId)
			if err != nil {
				return "Error: candidate_id invalido"
			}
			candidate, err := uow.ProductCandidateRepository().FindOne(ctx,
				specification.ByID{ID: candidateId},
				specification.BySessionID{SessionID: sessionId},
			)
			if err != nil || candidate == nil {
				return "Error: candidato no encontrado"
			}
			supplier.CandidateId = &candidateId
		}
		if err := uow.ProductSupplierRepository().Create(ctx, &supplier); err != nil {
			return fmt.Sprintf("Error al guardar el proveedor: %v", err)
		}
		return "Proveedor guardado"
	})

	registry.Register(llm.ToolDefinition{
		Name:        "updateResearchSession",
		Description: "Actualiza la sesion: estado (researching, proposed, selected, completed), producto seleccionado o notas.",
		Parameters: tools.ObjectSchema(map[string]interface{}{
			"session_id":            tools.StringProp("Id de la sesion"),
			"status":                tools.StringProp("Nuevo estado"),
			"selected_candidate_id": tools.StringProp("Id del candidato elegido por el usuario"),
			"notes":                 tools.StringProp("Notas de la sesion"),
		}, "session_id"),
	}, func(ctx context.Context, args json.RawMessage) string {
		var in struct {
			SessionId           string `json:"session_id"`
			Status              string `json:"status"`
			SelectedCandidateId string `json:"selected_candidate_id"`
			Notes               string `json:"notes"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return "Error: argumentos invalidos"
		}
		if in.Status == "" && in.SelectedCandidateId == "" && in.Notes == "" {
			return "Error: No hay cambios."
		}
		sessionId, err := s.ownedSessionId(ctx, uow, userId, in.SessionId)
		if err != nil {
			return err.Error()
		}
		session, err := uow.ResearchSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
		if err != nil || session == nil {
			return "Error: sesion no encontrada"
		}
		if in.Status != "" {
			session.Status = in.Status
		}
		if in.SelectedCandidateId != "" {
			candidateId, err := uuid.Parse(in.SelectedCandidateId)
			if err != nil {
				return "Error: selected_candidate_id invalido"
			}
			candidate, err := uow.ProductCandidateRepository().FindOne(ctx,
				specification.ByID{ID: candidateId},
				specification.BySessionID{SessionID: session.Id},
			)
			if err != nil || candidate == nil {
				return "Error: candidato no encontrado"
			}
			session.SelectedCandidateId = &candidateId
		}
		if in.Notes != "" {
			if session.Meta == nil {
				session.Meta = map[string]interface{}{}
			}
			session.Meta["notes"] = in.Notes
		}
		now := time.Now()
		session.UpdatedAt = &now
		if err := uow.ResearchSessionRepository().Update(ctx, session); err != nil {
			return fmt.Sprintf("Error al actualizar la sesion: %v", err)
		}
		return "Sesion actualizada"
	})

	registry.Register(llm.ToolDefinition{
		Name:        "createProductAsset",
		Description: "Guarda un asset generado (copy, landing, media) en la sesion.",
		Parameters: tools.ObjectSchema(map[string]interface{}{
			"session_id":   tools.StringProp("Id de la sesion"),
			"candidate_id": tools.StringProp("Id del candidato (opcional)"),
			"asset_type":   tools.StringProp("Tipo: copy, landing o media"),
			"content":      tools.StringProp("Contenido generado"),
		}, "session_id", "asset_type", "content"),
	}, func(ctx context.Context, args json.RawMessage) string {
		var in struct {
			SessionId   string `json:"session_id"`
			CandidateId string `json:"candidate_id"`
			AssetType   string `json:"asset_type"`
			Content     string `json:"content"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return "Error: argumentos invalidos"
		}
		sessionId, err := s.ownedSessionId(ctx, uow, userId, in.SessionId)
		if err != nil {
			return err.Error()
		}
		asset := entity.ProductAsset{
			SessionId: sessionId,
			AssetType: in.AssetType,
			Content: map[string]interface{}{
				"raw":  in.Content,
				"kind": in.AssetType,
			},
			CreatedAt: time.Now(),
		}
		if in.CandidateId != "" {
			if candidateId, err := uuid.Parse(in.CandidateId); err == nil {
				asset.CandidateId = &candidateId
			}
		}
		if err := uow.ProductAssetRepository().Create(ctx, &asset); err != nil {
			return fmt.Sprintf("Error al guardar el asset: %v", err)
		}
		return "Asset guardado"
	})

	registry.Register(llm.ToolDefinition{
		Name:        "createStore",
		Description: "Crea la tienda del usuario y devuelve su URL.",
		Parameters: tools.ObjectSchema(map[string]interface{}{
			"session_id":  tools.StringProp("Id de la sesion"),
			"name":        tools.StringProp("Nombre de la tienda"),
			"description": tools.StringProp("Descripcion de la tienda"),
		}, "name"),
	}, func(ctx context.Context, args json.RawMessage) string {
		var in struct {
			SessionId   string `json:"session_id"`
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		if err := json.Unmarshal(args, &in); err != nil || in.Name == "" {
			return "Error: falta el nombre de la tienda"
		}
		slug, err := uniqueStoreSlug(ctx, uow, in.Name)
		if err != nil {
			return fmt.Sprintf("Error al preparar el slug: %v", err)
		}
		store := entity.Store{
			UserId:      userId,
			Name:        in.Name,
			Slug:        slug,
			Description: in.Description,
			Status:      constant.StoreStatusActive,
			Meta:        map[string]interface{}{"origin": "chat"},
			CreatedAt:   time.Now(),
		}
		if in.SessionId != "" {
			if sessionId, err := s.ownedSessionId(ctx, uow, userId, in.SessionId); err == nil {
				store.SessionId = &sessionId
			}
		}
		if err := uow.StoreRepository().Create(ctx, &store); err != nil {
			return fmt.Sprintf("Error al crear la tienda: %v", err)
		}
		s.publisher.Publish(ctx, &events.ActivityEvent{
			Kind:      events.KindStoreCreated,
			UserId:    userId,
			SubjectId: store.Id,
			Detail:    map[string]interface{}{"slug": store.Slug},
		})
		return fmt.Sprintf("Tienda creada: %s/t/%s", s.clientURL, store.Slug)
	})

	return registry
}

// ownedSessionId parses and authorizes a session id coming from model output.
func (s *chatService) ownedSessionId(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, raw string) (uuid.UUID, error) {
	sessionId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("Error: session_id invalido")
	}
	session, err := uow.ResearchSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil || session == nil {
		return uuid.Nil, fmt.Errorf("Error: sesion no encontrada")
	}
	return sessionId, nil
}
