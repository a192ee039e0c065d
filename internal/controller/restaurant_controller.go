package controller

import (
	"ichibetsu-be/internal/constant"
	"ichibetsu-be/internal/dto"
	"ichibetsu-be/internal/pkg/apperror"
	"ichibetsu-be/internal/pkg/serverutils"
	"ichibetsu-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRestaurantController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type restaurantController struct {
	restaurantService service.IRestaurantService
}

func NewRestaurantController(restaurantService service.IRestaurantService) IRestaurantController {
	return &restaurantController{
		restaurantService: restaurantService,
	}
}

func (c *restaurantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/restaurants")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
}

func (c *restaurantController) List(ctx *fiber.Ctx) error {
	res, err := c.restaurantService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *restaurantController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewNotFound(constant.CodeRestaurantNotFound, constant.ErrMsgRestaurantNotFound)
	}

	res, err := c.restaurantService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *restaurantController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateRestaurantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation(constant.CodeValidationError, constant.ErrMsgValidationRequired, nil)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.restaurantService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
