package controller

import (
	"matchfeed-be/internal/pkg/serverutils"
	"matchfeed-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICompatibilityController interface {
	RegisterRoutes(r fiber.Router)
	GetPair(ctx *fiber.Ctx) error
}

type compatibilityController struct {
	service service.ICompatibilityService
}

func NewCompatibilityController(service service.ICompatibilityService) ICompatibilityController {
	return &compatibilityController{service: service}
}

func (c *compatibilityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/compatibility/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":targetId", c.GetPair)
}

func (c *compatibilityController) GetPair(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	targetId, err := uuid.Parse(ctx.Params("targetId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid target id")
	}

	res, err := c.service.GetPair(ctx.Context(), userId, targetId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get compatibility", res))
}
