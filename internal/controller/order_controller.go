package controller

import (
	"ai-ordering-be/internal/pkg/serverutils"
	"ai-ordering-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	SetStatus(ctx *fiber.Ctx) error
}

type orderController struct {
	orderService service.IOrderService
}

func NewOrderController(orderService service.IOrderService) IOrderController {
	return &orderController{
		orderService: orderService,
	}
}

func (c *orderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/console/v1/orders")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get(":id/history", c.History)
	h.Put(":id/status", c.SetStatus)
}

func (c *orderController) List(ctx *fiber.Ctx) error {
	businessId := businessIdFromToken(ctx)
	status := ctx.Query("status")

	res, err := c.orderService.List(ctx.Context(), businessId, status)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list orders", res))
}

func (c *orderController) History(ctx *fiber.Ctx) error {
	businessId := businessIdFromToken(ctx)
	orderId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.orderService.History(ctx.Context(), businessId, orderId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show order history", res))
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (c *orderController) SetStatus(ctx *fiber.Ctx) error {
	businessId := businessIdFromToken(ctx)
	orderId, _ := uuid.Parse(ctx.Params("id"))

	var req setStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.orderService.SetStatus(ctx.Context(), businessId, orderId, req.Status)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Order status updated", res))
}
