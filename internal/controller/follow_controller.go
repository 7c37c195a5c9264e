package controller

import (
	"matchfeed-be/internal/pkg/serverutils"
	"matchfeed-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFollowController interface {
	RegisterRoutes(r fiber.Router)
	Request(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Deny(ctx *fiber.Ctx) error
	Revoke(ctx *fiber.Ctx) error
}

type followController struct {
	service service.IFollowService
}

func NewFollowController(service service.IFollowService) IFollowController {
	return &followController{service: service}
}

func (c *followController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/follow/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post(":targetId", c.Request)
	h.Put(":targetId/approve", c.Approve)
	h.Put(":targetId/deny", c.Deny)
	h.Delete(":targetId", c.Revoke)
}

func (c *followController) Request(ctx *fiber.Ctx) error {
	userId, targetId, err := parseActorPair(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Request(ctx.Context(), userId, targetId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success request follow", res))
}

// Approve and Deny act on a request sent TO the authenticated user, so
// the path parameter names the requesting follower.
func (c *followController) Approve(ctx *fiber.Ctx) error {
	userId, followerId, err := parseActorPair(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Approve(ctx.Context(), userId, followerId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success approve follow", res))
}

func (c *followController) Deny(ctx *fiber.Ctx) error {
	userId, followerId, err := parseActorPair(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Deny(ctx.Context(), userId, followerId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success deny follow", nil))
}

func (c *followController) Revoke(ctx *fiber.Ctx) error {
	userId, targetId, err := parseActorPair(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Revoke(ctx.Context(), userId, targetId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success revoke follow", nil))
}

func parseActorPair(ctx *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	targetId, err := uuid.Parse(ctx.Params("targetId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid target id")
	}
	return userId, targetId, nil
}
