package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mantra-gor/BillSane-Admin/internal/middleware"
	"github.com/mantra-gor/BillSane-Admin/internal/model"
	"github.com/mantra-gor/BillSane-Admin/internal/service"
)

func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	input := new(model.LoginInput)
	if err := h.bind(c, input); err != nil {
		return h.fail(c, err)
	}

	res, err := h.Operators.Login(c.UserContext(), input.Username, input.Password, c.IP(), c.Get(fiber.HeaderUserAgent))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(res)
}

// HandleMe returns the authenticated operator.
func (h *Handler) HandleMe(c *fiber.Ctx) error {
	op, err := h.Operators.Get(c.UserContext(), middleware.OperatorID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(op)
}

func (h *Handler) HandleChangePassword(c *fiber.Ctx) error {
	input := new(model.ChangePasswordInput)
	if err := h.bind(c, input); err != nil {
		return h.fail(c, err)
	}

	err := h.Operators.ChangePassword(c.UserContext(), middleware.OperatorID(c), input.CurrentPassword, input.NewPassword)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Password updated"})
}

// HandleGetLoginLogs pages through the caller's own login attempts.
func (h *Handler) HandleGetLoginLogs(c *fiber.Ctx) error {
	page, pageSize := service.NormalizePage(c.QueryInt("page"), c.QueryInt("page_size"))

	logs, total, err := h.Operators.LoginLogs(c.UserContext(), middleware.OperatorID(c), page, pageSize)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"logs":  logs,
		"total": total,
		"page":  page,
		"size":  pageSize,
	})
}
