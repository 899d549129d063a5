package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mantra-gor/BillSane-Admin/internal/middleware"
	"github.com/mantra-gor/BillSane-Admin/internal/model"
	"github.com/mantra-gor/BillSane-Admin/internal/service"
)

// HandleGenerateLicense issues a license and returns its key. The key is
// not retrievable afterwards.
func (h *Handler) HandleGenerateLicense(c *fiber.Ctx) error {
	input := new(model.GenerateLicenseInput)
	if err := h.bind(c, input); err != nil {
		return h.fail(c, err)
	}

	key, err := h.Licenses.Generate(c.UserContext(), uint(input.BusinessID), *input.StaffLimit)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"license": key,
	})
}

// HandleValidateLicense checks a key and consumes one seat on success.
func (h *Handler) HandleValidateLicense(c *fiber.Ctx) error {
	input := new(model.ValidateLicenseInput)
	if err := c.BodyParser(input); err != nil {
		return h.fail(c, errBadBody)
	}

	res, err := h.Licenses.Validate(c.UserContext(), service.ValidationRequest{
		BusinessID: uint(input.BusinessID),
		Key:        input.Key,
		IP:         c.IP(),
		UserAgent:  c.Get(fiber.HeaderUserAgent),
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"business":  res.Business,
		"status":    res.Status,
		"createdAt": res.CreatedAt,
	})
}

func (h *Handler) HandleListLicenses(c *fiber.Ctx) error {
	query := new(model.LicenseQuery)
	if err := c.QueryParser(query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid query parameters",
		})
	}

	query.Page, query.PageSize = service.NormalizePage(query.Page, query.PageSize)
	licenses, total, err := h.Licenses.List(c.UserContext(), *query)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"licenses": licenses,
		"total":    total,
		"page":     query.Page,
		"size":     query.PageSize,
	})
}

func (h *Handler) HandleSetLicenseStatus(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}

	input := new(model.LicenseStatusInput)
	if err := h.bind(c, input); err != nil {
		return h.fail(c, err)
	}

	license, err := h.Licenses.SetStatus(c.UserContext(), id, input.Status, middleware.OperatorID(c))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"license": license})
}

// HandleGetLicense returns one license's metadata. Key material is never
// part of the view.
func (h *Handler) HandleGetLicense(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}

	license, err := h.Licenses.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"license": license})
}

// HandleLicenseUsage lists recent validation attempts for one license.
func (h *Handler) HandleLicenseUsage(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err)
	}

	usage, err := h.Licenses.Usage(c.UserContext(), id, c.QueryInt("limit", 20))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"usage": usage})
}

func pathID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, &service.FieldError{Field: "id", Message: "must be a positive integer"}
	}
	return uint(id), nil
}
