package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mantra-gor/BillSane-Admin/internal/service"
)

var errBadBody = errors.New("invalid request body")

// errorResponses maps service errors to status codes and client messages.
// License messages are the ones existing clients match on.
var errorResponses = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrMissingKey, fiber.StatusBadRequest, "License key is required"},
	{service.ErrUnregisteredBusiness, fiber.StatusBadRequest, "Your firm is not registered with BillSane."},
	{service.ErrLicenseNotFound, fiber.StatusNotFound, "Invalid license key"},
	{service.ErrInvalidLicense, fiber.StatusNotFound, "Invalid license key"},
	{service.ErrLicenseInactive, fiber.StatusForbidden, "License is not active"},
	{service.ErrActiveStatusMissing, fiber.StatusInternalServerError, "Active status not found"},
	{service.ErrBusinessNotFound, fiber.StatusNotFound, "Business not found"},
	{service.ErrLicenseExists, fiber.StatusConflict, "Business already has an active license"},
	{service.ErrStatusUnknown, fiber.StatusBadRequest, "Unknown license status"},
	{service.ErrPlanNotFound, fiber.StatusNotFound, "Plan not found"},
	{service.ErrInvalidCredentials, fiber.StatusUnauthorized, "Invalid username or password"},
	{service.ErrOperatorDisabled, fiber.StatusForbidden, "Operator account is disabled"},
	{service.ErrOperatorNotFound, fiber.StatusNotFound, "Operator not found"},
	{errBadBody, fiber.StatusBadRequest, "Invalid request body"},
}

// fail writes the JSON error response for err. Unknown errors are logged and
// reported as a generic 500.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var fe *service.FieldError
	if errors.As(err, &fe) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fe.Error(),
			"field": fe.Field,
		})
	}

	for _, r := range errorResponses {
		if errors.Is(err, r.err) {
			return c.Status(r.status).JSON(fiber.Map{"error": r.message})
		}
	}

	h.Log.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal Server Error",
	})
}

// ErrorHandler renders errors that escape handlers, such as unknown routes,
// in the same JSON shape.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}
}

// fieldError turns the first validator failure into a FieldError named by
// its JSON path.
func fieldError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}

	e := errs[0]
	field := e.Field()
	if _, path, ok := strings.Cut(e.Namespace(), "."); ok {
		field = path
	}

	var msg string
	switch e.Tag() {
	case "required":
		msg = "is required"
	case "email":
		msg = "must be a valid email address"
	case "gstin":
		msg = "must be a valid GST number"
	case "phone":
		msg = "must be a valid phone number"
	case "gte":
		msg = "must be " + e.Param() + " or greater"
	case "min":
		msg = fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		msg = fmt.Sprintf("must be at most %s characters", e.Param())
	case "oneof":
		msg = "must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	default:
		msg = "is invalid"
	}
	return &service.FieldError{Field: field, Message: msg}
}
