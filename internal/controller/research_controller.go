package controller

import (
	"errors"

	"ecomia-be/internal/dto"
	"ecomia-be/internal/pkg/serverutils"
	"ecomia-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IResearchController interface {
	RegisterRoutes(r fiber.Router)
}

type researchController struct {
	researchService service.IResearchService
}

func NewResearchController(researchService service.IResearchService) IResearchController {
	return &researchController{
		researchService: researchService,
	}
}

func (c *researchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/research/v1")
	h.Use(serverutils.JwtMiddleware)

	h.Post("sessions", c.CreateSession)
	h.Get("sessions", c.ListSessions)
	h.Get("sessions/:id", c.ShowSession)
	h.Put("sessions/:id", c.UpdateSession)
	h.Delete("sessions/:id", c.DeleteSession)

	h.Post("candidates", c.CreateCandidate)
	h.Get("sessions/:id/candidates", c.ListCandidates)
	h.Put("candidates/:id", c.UpdateCandidate)
	h.Delete("candidates/:id", c.DeleteCandidate)

	h.Post("suppliers", c.CreateSupplier)
	h.Get("sessions/:id/suppliers", c.ListSuppliers)
	h.Delete("suppliers/:id", c.DeleteSupplier)

	h.Post("sources", c.CreateSource)
	h.Get("sessions/:id/sources", c.ListSources)
	h.Delete("sources/:id", c.DeleteSource)

	h.Post("assets", c.CreateAsset)
	h.Get("sessions/:id/assets", c.ListAssets)
	h.Delete("assets/:id", c.DeleteAsset)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func mapServiceError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Resource not found"))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
}

func (c *researchController) CreateSession(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.researchService.CreateSession(ctx.Context(), userId, &req)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *researchController) ListSessions(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	res, err := c.researchService.ListSessions(ctx.Context(), userId)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Session list", res))
}

func (c *researchController) ShowSession(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.researchService.ShowSession(ctx.Context(), userId, id)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Session detail", res))
}

func (c *researchController) UpdateSession(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Id = id

	res, err := c.researchService.UpdateSession(ctx.Context(), userId, &req)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update session", res))
}

func (c *researchController) DeleteSession(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.researchService.DeleteSession(ctx.Context(), userId, id); err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}

func (c *researchController) CreateCandidate(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateCandidateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.researchService.CreateCandidate(ctx.Context(), userId, &req)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create candidate", res))
}

func (c *researchController) ListCandidates(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	sessionId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.researchService.ListCandidates(ctx.Context(), userId, sessionId)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Candidate list", res))
}

func (c *researchController) UpdateCandidate(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateCandidateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Id = id

	res, err := c.researchService.UpdateCandidate(ctx.Context(), userId, &req)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update candidate", res))
}

func (c *researchController) DeleteCandidate(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.researchService.DeleteCandidate(ctx.Context(), userId, id); err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete candidate", nil))
}

func (c *researchController) CreateSupplier(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateSupplierRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.researchService.CreateSupplier(ctx.Context(), userId, &req)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create supplier", res))
}

func (c *researchController) ListSuppliers(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	sessionId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.researchService.ListSuppliers(ctx.Context(), userId, sessionId)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Supplier list", res))
}

func (c *researchController) DeleteSupplier(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.researchService.DeleteSupplier(ctx.Context(), userId, id); err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete supplier", nil))
}

func (c *researchController) CreateSource(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateSourceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.researchService.CreateSource(ctx.Context(), userId, &req)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create source", res))
}

func (c *researchController) ListSources(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	sessionId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.researchService.ListSources(ctx.Context(), userId, sessionId)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Source list", res))
}

func (c *researchController) DeleteSource(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.researchService.DeleteSource(ctx.Context(), userId, id); err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete source", nil))
}

func (c *researchController) CreateAsset(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateAssetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.researchService.CreateAsset(ctx.Context(), userId, &req)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create asset", res))
}

func (c *researchController) ListAssets(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	sessionId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.researchService.ListAssets(ctx.Context(), userId, sessionId)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Asset list", res))
}

func (c *researchController) DeleteAsset(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.researchService.DeleteAsset(ctx.Context(), userId, id); err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete asset", nil))
}
