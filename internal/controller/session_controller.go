package controller

import (
	"ai-ordering-be/internal/dto"
	"ai-ordering-be/internal/pkg/serverutils"
	"ai-ordering-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Lock(ctx *fiber.Ctx) error
	Unlock(ctx *fiber.Ctx) error
	Assign(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/console/v1/sessions")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post(":id/lock", c.Lock)
	h.Post(":id/unlock", c.Unlock)
	h.Post(":id/assign", c.Assign)
}

// businessIdFromToken reads the tenant scope the JWT middleware stored.
func businessIdFromToken(ctx *fiber.Ctx) uuid.UUID {
	businessIdStr, _ := ctx.Locals("business_id").(string)
	businessId, _ := uuid.Parse(businessIdStr)
	return businessId
}

func (c *sessionController) List(ctx *fiber.Ctx) error {
	businessId := businessIdFromToken(ctx)

	res, err := c.sessionService.List(ctx.Context(), businessId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *sessionController) Lock(ctx *fiber.Ctx) error {
	businessId := businessIdFromToken(ctx)
	sessionId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.sessionService.Lock(ctx.Context(), businessId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session locked", res))
}

func (c *sessionController) Unlock(ctx *fiber.Ctx) error {
	businessId := businessIdFromToken(ctx)
	sessionId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.sessionService.Unlock(ctx.Context(), businessId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session unlocked", res))
}

func (c *sessionController) Assign(ctx *fiber.Ctx) error {
	businessId := businessIdFromToken(ctx)
	sessionId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.AssignEmployeeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.AssignEmployee(ctx.Context(), businessId, sessionId, req.EmployeeId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session assigned", res))
}
