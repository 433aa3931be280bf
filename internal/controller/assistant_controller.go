package controller

import (
	"ai-ordering-be/internal/dto"
	"ai-ordering-be/internal/pkg/serverutils"
	"ai-ordering-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Command(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Use(serverutils.InternalAuthMiddleware)
	h.Post("command", c.Command)
}

// Command executes one function call on behalf of a customer turn. The
// response is always 200 with the command envelope; success=false is a
// normal outcome the workflow relays to the customer.
func (c *assistantController) Command(ctx *fiber.Ctx) error {
	var req dto.CommandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.Execute(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
