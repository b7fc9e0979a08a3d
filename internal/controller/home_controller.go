package controller

import (
	"bulletin-board-be/internal/constant"

	"github.com/gofiber/fiber/v2"
)

type IHomeController interface {
	RegisterRoutes(r fiber.Router)
	Welcome(ctx *fiber.Ctx) error
}

type homeController struct{}

func NewHomeController() IHomeController {
	return &homeController{}
}

func (c *homeController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Welcome)
}

func (c *homeController) Welcome(ctx *fiber.Ctx) error {
	return ctx.SendString(constant.MessageWelcome)
}
