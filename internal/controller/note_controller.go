package controller

import (
	"strconv"

	"bulletin-board-be/internal/constant"
	"bulletin-board-be/internal/dto"
	"bulletin-board-be/internal/pkg/serverutils"
	"bulletin-board-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	GetByBoard(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	service service.INoteService
}

func NewNoteController(service service.INoteService) INoteController {
	return &noteController{service: service}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.GetByBoard)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *noteController) GetByBoard(ctx *fiber.Ctx) error {
	boardId, err := strconv.ParseInt(ctx.Query("board_id"), 10, 64)
	if err != nil {
		return serverutils.BadRequest(constant.MessageMissingBoardID)
	}

	res, err := c.service.GetByBoard(ctx.UserContext(), boardId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	body, err := serverutils.ParseBody(ctx, &req)
	if err != nil {
		return err
	}
	req.Body = body

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.BadRequest(constant.MessageMissingBoardID)
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamsID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	body, err := serverutils.ParseBody(ctx, &req)
	if err != nil {
		return err
	}
	req.Id = id
	req.Body = body

	res, err := c.service.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamsID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.JSON(dto.MessageResponse{Message: constant.MessageNoteDeleted})
}
