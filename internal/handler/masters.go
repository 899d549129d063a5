package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mantra-gor/BillSane-Admin/internal/service"
)

func (h *Handler) HandleCountryList(c *fiber.Ctx) error {
	countries, err := h.Masters.Countries(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"countryList": countries})
}

// HandleStateList lists all states, or one country's with ?countryId=.
func (h *Handler) HandleStateList(c *fiber.Ctx) error {
	countryID, err := optionalID(c, "countryId")
	if err != nil {
		return h.fail(c, err)
	}

	states, err := h.Masters.States(c.UserContext(), countryID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"stateList": states})
}

func (h *Handler) HandleCategoryList(c *fiber.Ctx) error {
	categories, err := h.Masters.Categories(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"categoryList": categories})
}

func (h *Handler) HandleCurrencyList(c *fiber.Ctx) error {
	currencies, err := h.Masters.Currencies(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"currency": currencies})
}

// HandlePlanList returns every plan, or just one with ?planId=.
func (h *Handler) HandlePlanList(c *fiber.Ctx) error {
	planID, err := optionalID(c, "planId")
	if err != nil {
		return h.fail(c, err)
	}

	if planID != 0 {
		plan, err := h.Masters.Plan(c.UserContext(), planID)
		if err != nil {
			return h.fail(c, err)
		}
		return c.JSON(fiber.Map{"plan": plan})
	}

	plans, err := h.Masters.Plans(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"planList": plans})
}

// optionalID parses an id query parameter; absent or zero means no filter.
func optionalID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &service.FieldError{Field: name, Message: "must be a non-negative integer"}
	}
	return uint(id), nil
}
