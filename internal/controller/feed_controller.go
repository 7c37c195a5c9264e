package controller

import (
	"matchfeed-be/internal/dto"
	"matchfeed-be/internal/pkg/serverutils"
	"matchfeed-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFeedController interface {
	RegisterRoutes(r fiber.Router)
	GetFeed(ctx *fiber.Ctx) error
}

type feedController struct {
	service service.IFeedService
}

func NewFeedController(service service.IFeedService) IFeedController {
	return &feedController{service: service}
}

func (c *feedController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/feed/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetFeed)
}

func (c *feedController) GetFeed(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GetFeedRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GetFeed(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get feed", res))
}
