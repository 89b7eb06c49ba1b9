package controller

import (
	"bufio"
	"context"

	"ecomia-be/internal/dto"
	"ecomia-be/internal/pkg/serverutils"
	"ecomia-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Chat)
}

// Chat handles both modes: ?sync=true returns one JSON payload, anything else
// streams plain text chunks while the model works through its tools.
func (c *chatController) Chat(ctx *fiber.Ctx) error {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "No autorizado"))
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "No autorizado"))
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if len(req.Messages) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Se requiere al menos un mensaje"))
	}

	if ctx.Query("sync") == "true" {
		res, err := c.chatService.Chat(ctx.Context(), userId, &req)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
		return ctx.JSON(serverutils.SuccessResponse("Chat response", res))
	}

	ctx.Set("Content-Type", "text/plain; charset=utf-8")
	ctx.Set("Transfer-Encoding", "chunked")

	streamCtx := context.Background()
	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		err := c.chatService.StreamChat(streamCtx, userId, &req, func(chunk string) error {
			if _, werr := w.WriteString(chunk); werr != nil {
				return werr
			}
			return w.Flush()
		})
		if err != nil {
			w.WriteString("Hubo un problema procesando tu mensaje. Intenta de nuevo.") //nolint:errcheck
			w.Flush()                                                                  //nolint:errcheck
		}
	}))
	return nil
}
