package controller

import (
	"errors"

	"bulletin-board-be/internal/constant"
	"bulletin-board-be/internal/dto"
	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/pkg/serverutils"
	"bulletin-board-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFormatController interface {
	RegisterRoutes(r fiber.Router)
	Format(ctx *fiber.Ctx) error
}

type formatController struct {
	service service.IFormatService
}

func NewFormatController(service service.IFormatService) IFormatController {
	return &formatController{service: service}
}

func (c *formatController) RegisterRoutes(r fiber.Router) {
	r.Put("/format", c.Format)
}

func (c *formatController) Format(ctx *fiber.Ctx) error {
	var req dto.FormatNoteRequest
	if _, err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.BadRequest(constant.MessageMissingFormatInput)
	}

	res, err := c.service.Format(ctx.UserContext(), &req)
	if err != nil {
		// Generation failures are reported in a 200 body, not as an HTTP error.
		if errors.Is(err, entity.ErrGenerationFailed) {
			return ctx.JSON(serverutils.ErrorResponse(constant.MessageFormatFailed))
		}
		return err
	}

	return ctx.JSON(res)
}
