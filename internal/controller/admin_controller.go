package controller

import (
	"ecomia-be/internal/dto"
	"ecomia-be/internal/pkg/serverutils"
	"ecomia-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(c.requireAdmin)

	h.Get("agents", c.ListAgents)
	h.Put("agents", c.UpsertAgentDefinition)
	h.Put("agents/prompt", c.UpsertAgentPrompt)
	h.Delete("agents/prompt/:key", c.DeleteAgentPrompt)

	h.Post("roles", c.CreateUserRole)
	h.Get("roles", c.ListUserRoles)
	h.Delete("roles/:id", c.DeleteUserRole)

	h.Get("activity", c.ListActivity)
}

// requireAdmin runs after JwtMiddleware; the claims are already in Locals.
func (c *adminController) requireAdmin(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	email, _ := ctx.Locals("email").(string)

	isAdmin, err := c.adminService.IsAdmin(ctx.Context(), userId, email)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	if !isAdmin {
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Access denied: Admins only"))
	}
	return ctx.Next()
}

func (c *adminController) ListAgents(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.adminService.ListAgents(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Agent list", res))
}

func (c *adminController) UpsertAgentDefinition(ctx *fiber.Ctx) error {
	var req dto.UpsertAgentDefinitionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.adminService.UpsertAgentDefinition(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Agent definition saved", res))
}

func (c *adminController) UpsertAgentPrompt(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.UpsertAgentPromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.adminService.UpsertAgentPrompt(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Agent prompt saved", res))
}

func (c *adminController) DeleteAgentPrompt(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	key := ctx.Params("key")

	if err := c.adminService.DeleteAgentPrompt(ctx.Context(), userId, key); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Agent prompt removed", nil))
}

func (c *adminController) CreateUserRole(ctx *fiber.Ctx) error {
	var req dto.CreateUserRoleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.adminService.CreateUserRole(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Role created", res))
}

func (c *adminController) ListUserRoles(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListUserRoles(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Role list", res))
}

func (c *adminController) DeleteUserRole(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))
	if err := c.adminService.DeleteUserRole(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Role removed", nil))
}

func (c *adminController) ListActivity(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.adminService.ListActivity(ctx.Context(), limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Activity log", res))
}
