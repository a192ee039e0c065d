package controller

import (
	"errors"

	"ichibetsu-be/internal/constant"
	"ichibetsu-be/internal/dto"
	"ichibetsu-be/internal/pkg/apperror"
	"ichibetsu-be/internal/pkg/session"
	"ichibetsu-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFavoriteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
}

type favoriteController struct {
	favoriteService   service.IFavoriteService
	sessionMiddleware fiber.Handler
}

func NewFavoriteController(favoriteService service.IFavoriteService, sessionMiddleware fiber.Handler) IFavoriteController {
	return &favoriteController{
		favoriteService:   favoriteService,
		sessionMiddleware: sessionMiddleware,
	}
}

func (c *favoriteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/favorites")
	h.Use(c.sessionMiddleware)
	h.Get("", c.List)
	h.Post("", c.Add)
	h.Delete(":id", c.Remove)
}

// flatError renders the favorites error shape, a bare {"error": message}
// object. Unexpected errors still propagate to the enveloped handler.
func flatError(ctx *fiber.Ctx, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return ctx.Status(appErr.Status).JSON(fiber.Map{"error": appErr.Message})
	}
	return err
}

func (c *favoriteController) List(ctx *fiber.Ctx) error {
	res, err := c.favoriteService.List(ctx.Context(), session.FromLocals(ctx))
	if err != nil {
		return flatError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *favoriteController) Add(ctx *fiber.Ctx) error {
	var req dto.AddFavoriteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return flatError(ctx, apperror.NewBadRequest(constant.ErrMsgRestaurantIDRequired))
	}

	res, err := c.favoriteService.Add(ctx.Context(), session.FromLocals(ctx), &req)
	if err != nil {
		return flatError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *favoriteController) Remove(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return flatError(ctx, apperror.NewNotFound("", constant.ErrMsgFavoriteNotFound))
	}

	res, err := c.favoriteService.Remove(ctx.Context(), session.FromLocals(ctx), id)
	if err != nil {
		return flatError(ctx, err)
	}
	return ctx.JSON(res)
}
