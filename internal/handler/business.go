package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mantra-gor/BillSane-Admin/internal/model"
)

// HandleCreateBusiness registers a firm together with its admin user.
func (h *Handler) HandleCreateBusiness(c *fiber.Ctx) error {
	input := new(model.BusinessInput)
	if err := h.bind(c, input); err != nil {
		return h.fail(c, err)
	}

	business, admin, err := h.Businesses.Create(c.UserContext(), *input)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"business": business,
		"admin":    admin,
	})
}

func (h *Handler) HandleGetBusiness(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}

	business, err := h.Businesses.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"business": business})
}
