package service

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/mantra-gor/BillSane-Admin/internal/model"
)

// OperationLogService keeps the audit trail of operator actions.
type OperationLogService struct {
	db *gorm.DB
}

func NewOperationLogService(db *gorm.DB) *OperationLogService {
	return &OperationLogService{db: db}
}

// LogOperation records one operator action with JSON-encoded details.
func (s *OperationLogService) LogOperation(ctx context.Context, operatorID uint, action, target, targetID string, details interface{}) error {
	return writeOperationLog(s.db.WithContext(ctx), operatorID, action, target, targetID, details)
}

// writeOperationLog lets callers record inside their own transaction.
func writeOperationLog(db *gorm.DB, operatorID uint, action, target, targetID string, details interface{}) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return err
	}

	log := &model.OperationLog{
		OperatorID: operatorID,
		Action:     action,
		Target:     target,
		TargetID:   targetID,
		Details:    string(detailsJSON),
		CreatedAt:  time.Now(),
	}

	return db.Create(log).Error
}

// GetOperationLogs returns one page of all operation logs, newest first.
func (s *OperationLogService) GetOperationLogs(ctx context.Context, page, pageSize int) ([]model.OperationLog, int64, error) {
	return s.page(s.db.WithContext(ctx).Model(&model.OperationLog{}), page, pageSize)
}

// GetOperatorLogs returns one page of logs for a single operator.
func (s *OperationLogService) GetOperatorLogs(ctx context.Context, operatorID uint, page, pageSize int) ([]model.OperationLog, int64, error) {
	q := s.db.WithContext(ctx).Model(&model.OperationLog{}).Where("operator_id = ?", operatorID)
	return s.page(q, page, pageSize)
}

func (s *OperationLogService) page(q *gorm.DB, page, pageSize int) ([]model.OperationLog, int64, error) {
	var logs []model.OperationLog
	var total int64

	q = q.Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize = NormalizePage(page, pageSize)
	offset := (page - 1) * pageSize
	if err := q.Order("created_at DESC").Order("id DESC").Offset(offset).Limit(pageSize).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// NormalizePage clamps paging input to page >= 1 and 1..100 rows.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
