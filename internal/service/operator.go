package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mantra-gor/BillSane-Admin/internal/config"
	"github.com/mantra-gor/BillSane-Admin/internal/model"
	"github.com/mantra-gor/BillSane-Admin/internal/util"
)

const minPasswordLength = 8

// LoginResult is a signed console token plus the operator it belongs to.
type LoginResult struct {
	Token    string         `json:"token"`
	Operator model.Operator `json:"operator"`
}

// OperatorService authenticates console staff.
type OperatorService struct {
	db     *gorm.DB
	tokens *util.TokenManager
	log    *zap.Logger
	cost   int
}

func NewOperatorService(db *gorm.DB, tokens *util.TokenManager, log *zap.Logger) *OperatorService {
	return &OperatorService{db: db, tokens: tokens, log: log.Named("operator"), cost: bcrypt.DefaultCost}
}

// Login checks credentials and records the attempt in the login log whether
// or not it succeeds.
func (s *OperatorService) Login(ctx context.Context, username, password, ip, userAgent string) (*LoginResult, error) {
	db := s.db.WithContext(ctx)
	entry := model.LoginLog{
		Username:  username,
		IP:        ip,
		UserAgent: userAgent,
		Status:    "failed",
		CreatedAt: time.Now(),
	}

	var op model.Operator
	err := db.Where("username = ?", username).First(&op).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s.writeLoginLog(db, &entry)
		return nil, ErrInvalidCredentials
	case err != nil:
		return nil, fmt.Errorf("find operator: %w", err)
	}
	entry.OperatorID = op.ID

	if err := bcrypt.CompareHashAndPassword([]byte(op.Password), []byte(password)); err != nil {
		s.writeLoginLog(db, &entry)
		return nil, ErrInvalidCredentials
	}
	if op.Status != model.OperatorActive {
		s.writeLoginLog(db, &entry)
		return nil, ErrOperatorDisabled
	}

	token, err := s.tokens.GenerateToken(op.ID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	entry.Status = "success"
	s.writeLoginLog(db, &entry)

	op.LastLogin = time.Now()
	if err := db.Model(&op).Update("last_login", op.LastLogin).Error; err != nil {
		s.log.Warn("update last login", zap.Uint("operator_id", op.ID), zap.Error(err))
	}

	s.log.Info("operator logged in", zap.Uint("operator_id", op.ID), zap.String("ip", ip))
	return &LoginResult{Token: token, Operator: op}, nil
}

// Get returns the operator with id.
func (s *OperatorService) Get(ctx context.Context, id uint) (*model.Operator, error) {
	var op model.Operator
	if err := s.db.WithContext(ctx).First(&op, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperatorNotFound
		}
		return nil, fmt.Errorf("find operator: %w", err)
	}
	return &op, nil
}

// ChangePassword replaces the password after checking the current one.
func (s *OperatorService) ChangePassword(ctx context.Context, id uint, current, next string) error {
	if len(next) < minPasswordLength {
		return &FieldError{Field: "newPassword", Message: fmt.Sprintf("must be at least %d characters", minPasswordLength)}
	}

	op, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.Password), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(op).Update("password", string(hash)).Error; err != nil {
			return err
		}
		return writeOperationLog(tx, op.ID, "operator.password", "operator", fmt.Sprint(op.ID), nil)
	})
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

// LoginLogs returns one page of an operator's login attempts, newest first.
func (s *OperatorService) LoginLogs(ctx context.Context, operatorID uint, page, pageSize int) ([]model.LoginLog, int64, error) {
	q := s.db.WithContext(ctx).Model(&model.LoginLog{}).Where("operator_id = ?", operatorID)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count login logs: %w", err)
	}

	page, pageSize = NormalizePage(page, pageSize)
	logs := make([]model.LoginLog, 0)
	if err := q.Order("created_at DESC").Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("list login logs: %w", err)
	}
	return logs, total, nil
}

// EnsureDefault creates the bootstrap admin from cfg when no operator exists.
// With no configured password a random one is generated and returned; it is
// never written to the log.
func (s *OperatorService) EnsureDefault(ctx context.Context, cfg config.OperatorConfig) (bool, string, error) {
	db := s.db.WithContext(ctx)

	var n int64
	if err := db.Model(&model.Operator{}).Count(&n).Error; err != nil {
		return false, "", fmt.Errorf("count operators: %w", err)
	}
	if n > 0 {
		return false, "", nil
	}

	password := cfg.Password
	generated := password == ""
	if generated {
		password = uuid.NewString()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return false, "", fmt.Errorf("hash password: %w", err)
	}

	op := model.Operator{
		Username: cfg.Username,
		Password: string(hash),
		Email:    cfg.Email,
		Role:     model.RoleAdmin,
		Status:   model.OperatorActive,
	}
	if err := db.Create(&op).Error; err != nil {
		return false, "", fmt.Errorf("create default operator: %w", err)
	}

	s.log.Warn("default operator created",
		zap.String("username", op.Username),
		zap.Bool("password_generated", generated),
	)
	if !generated {
		password = ""
	}
	return true, password, nil
}

func (s *OperatorService) writeLoginLog(db *gorm.DB, entry *model.LoginLog) {
	if err := db.Create(entry).Error; err != nil {
		s.log.Error("write login log", zap.String("username", entry.Username), zap.Error(err))
	}
}
