package controller

import (
	"time"

	"matchfeed-be/internal/dto"
	"matchfeed-be/internal/pkg/serverutils"
	"matchfeed-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	RecomputeMatches(ctx *fiber.Ctx) error
}

type adminController struct {
	matchService service.IMatchService
}

func NewAdminController(matchService service.IMatchService) IAdminController {
	return &adminController{matchService: matchService}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("recompute-matches", c.RecomputeMatches)
}

func (c *adminController) RecomputeMatches(ctx *fiber.Ctx) error {
	var req dto.RecomputeMatchesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	opts := service.RecomputeOptions{
		BatchSize: req.BatchSize,
		Pause:     time.Duration(req.PauseMs) * time.Millisecond,
		Version:   req.Version,
	}

	res := &dto.RecomputeMatchesResponse{}
	if req.UserId != nil {
		if _, err := c.matchService.RecomputeForViewer(ctx.Context(), *req.UserId, opts); err != nil {
			return err
		}
		res.UsersProcessed = 1
	} else {
		processed, skipped, err := c.matchService.RecomputeAll(ctx.Context(), opts)
		if err != nil {
			return err
		}
		res.UsersProcessed = processed
		res.UsersSkipped = skipped
	}

	return ctx.JSON(serverutils.SuccessResponse("Success recompute matches", res))
}
