package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mantra-gor/BillSane-Admin/internal/model"
	"github.com/mantra-gor/BillSane-Admin/internal/service"
)

// HandleGetLogs pages through the operation log, optionally for one
// operator with ?operator_id=.
func (h *Handler) HandleGetLogs(c *fiber.Ctx) error {
	page, pageSize := service.NormalizePage(c.QueryInt("page"), c.QueryInt("page_size"))

	operatorID, err := optionalID(c, "operator_id")
	if err != nil {
		return h.fail(c, err)
	}

	var (
		logs  []model.OperationLog
		total int64
	)
	if operatorID != 0 {
		logs, total, err = h.Logs.GetOperatorLogs(c.UserContext(), operatorID, page, pageSize)
	} else {
		logs, total, err = h.Logs.GetOperationLogs(c.UserContext(), page, pageSize)
	}
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
