package controller

import (
	"bulletin-board-be/internal/constant"
	"bulletin-board-be/internal/dto"
	"bulletin-board-be/internal/pkg/serverutils"
	"bulletin-board-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBoardController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Rename(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type boardController struct {
	service service.IBoardService
}

func NewBoardController(service service.IBoardService) IBoardController {
	return &boardController{service: service}
}

func (c *boardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/boards")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Rename)
	h.Delete(":id", c.Delete)
}

func (c *boardController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *boardController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBoardRequest
	if _, err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *boardController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamsID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *boardController) Rename(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamsID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.RenameBoardRequest
	if _, err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.BadRequest(constant.MessageMissingName)
	}

	res, err := c.service.Rename(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *boardController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamsID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.JSON(dto.MessageResponse{Message: constant.MessageBoardDeleted})
}
