package controller

import (
	"matchfeed-be/internal/dto"
	"matchfeed-be/internal/pkg/serverutils"
	"matchfeed-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPostController interface {
	RegisterRoutes(r fiber.Router)
	UpdateVisibility(ctx *fiber.Ctx) error
}

type postController struct {
	service service.IPostService
}

func NewPostController(service service.IPostService) IPostController {
	return &postController{service: service}
}

func (c *postController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/post/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Put(":id/visibility", c.UpdateVisibility)
}

func (c *postController) UpdateVisibility(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid post id")
	}

	var req dto.UpdatePostVisibilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateVisibility(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update post visibility", res))
}
