package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mantra-gor/BillSane-Admin/internal/keycipher"
	"github.com/mantra-gor/BillSane-Admin/internal/model"
)

// LicenseMirror receives license metadata after every change.
type LicenseMirror interface {
	SyncLicense(ctx context.Context, row LicenseRow) error
}

// LicenseRow is the metadata copy of a license handed to mirrors. It never
// carries key material.
type LicenseRow struct {
	ID         uint
	BusinessID uint
	Status     string
	StaffLimit int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidationRequest is one validate call plus the caller details kept in
// the usage log.
type ValidationRequest struct {
	BusinessID uint
	Key        string
	IP         string
	UserAgent  string
}

type ValidationResult struct {
	Business       model.Business
	Status         string
	CreatedAt      time.Time
	RemainingSeats int
}

// LicenseService issues and validates license keys.
type LicenseService struct {
	db            *gorm.DB
	cipher        *keycipher.Cipher
	log           *zap.Logger
	mirror        LicenseMirror
	mirrorTimeout time.Duration
	newKey        func() string
}

func NewLicenseService(db *gorm.DB, cipher *keycipher.Cipher, log *zap.Logger) *LicenseService {
	return &LicenseService{
		db:            db,
		cipher:        cipher,
		log:           log.Named("license"),
		mirrorTimeout: 15 * time.Second,
		newKey:        newLicenseKey,
	}
}

// SetMirror installs an optional mirror. Call before serving requests.
func (s *LicenseService) SetMirror(m LicenseMirror) {
	s.mirror = m
}

// newLicenseKey returns a random (v4) UUID in uppercase, 36 characters.
func newLicenseKey() string {
	return strings.ToUpper(uuid.NewString())
}

// Generate creates an Active license for businessID and returns the
// plaintext key. The key is not recoverable after this call returns.
func (s *LicenseService) Generate(ctx context.Context, businessID uint, staffLimit int) (string, error) {
	if staffLimit < 0 {
		return "", &FieldError{Field: "staffLimit", Message: "must be zero or greater"}
	}

	db := s.db.WithContext(ctx)
	active, err := activeStatus(db)
	if err != nil {
		return "", err
	}

	key := s.newKey()
	sealed, err := s.cipher.Encrypt(key)
	if err != nil {
		return "", fmt.Errorf("encrypt license key: %w", err)
	}

	license := model.License{
		BusinessID:   businessID,
		KeyEncrypted: sealed.Data,
		IV:           sealed.IV,
		StatusID:     active.ID,
		StaffLimit:   staffLimit,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Business{}).Where("id = ?", businessID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrBusinessNotFound
		}

		if err := tx.Model(&model.License{}).
			Where("business_id = ? AND status_id = ?", businessID, active.ID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrLicenseExists
		}

		return tx.Create(&license).Error
	})
	if err != nil {
		return "", fmt.Errorf("create license: %w", err)
	}

	s.log.Info("license generated",
		zap.Uint("license_id", license.ID),
		zap.Uint("business_id", businessID),
		zap.Int("staff_limit", staffLimit),
	)
	s.sync(license, active.Name)

	return key, nil
}

// Validate checks candidate key against the business's license and, when it
// matches an Active license with seats left, consumes one seat.
func (s *LicenseService) Validate(ctx context.Context, req ValidationRequest) (*ValidationResult, error) {
	if req.Key == "" {
		return nil, ErrMissingKey
	}
	if req.BusinessID == 0 {
		return nil, ErrUnregisteredBusiness
	}

	db := s.db.WithContext(ctx)
	usage := model.LicenseUsage{
		BusinessID: req.BusinessID,
		Action:     model.ActionValidate,
		IPAddress:  req.IP,
		UserAgent:  req.UserAgent,
	}

	result, err := s.validate(db, req, &usage)

	usage.Success = err == nil
	if err != nil {
		usage.Reason = err.Error()
	}
	s.recordUsage(db, &usage)

	if err != nil {
		s.log.Debug("license validation rejected",
			zap.Uint("business_id", req.BusinessID),
			zap.Uint("license_id", usage.LicenseID),
			zap.Error(err),
		)
		return nil, err
	}
	return result, nil
}

func (s *LicenseService) validate(db *gorm.DB, req ValidationRequest, usage *model.LicenseUsage) (*ValidationResult, error) {
	active, err := activeStatus(db)
	if err != nil {
		return nil, err
	}

	license, err := governingLicense(db, req.BusinessID, active.ID)
	if err != nil {
		return nil, err
	}
	usage.LicenseID = license.ID

	// Malformed ciphertext and wrong keys are reported the same way.
	if !s.cipher.Matches(license.KeyEncrypted, license.IV, req.Key) {
		return nil, ErrInvalidLicense
	}

	if license.StatusID != active.ID || license.StaffLimit <= 0 {
		return nil, ErrLicenseInactive
	}

	var business model.Business
	if err := db.First(&business, license.BusinessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("find business: %w", err)
	}

	// Conditional decrement: concurrent validations cannot both take the
	// last seat, and the counter cannot go below zero.
	res := db.Model(&model.License{}).
		Where("id = ? AND status_id = ? AND staff_limit > 0", license.ID, active.ID).
		Updates(map[string]interface{}{
			"staff_limit": gorm.Expr("staff_limit - ?", 1),
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("consume seat: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrLicenseInactive
	}

	if err := db.First(&license, license.ID).Error; err != nil {
		return nil, fmt.Errorf("reload license: %w", err)
	}

	s.log.Info("license validated",
		zap.Uint("license_id", license.ID),
		zap.Uint("business_id", license.BusinessID),
		zap.Int("remaining_seats", license.StaffLimit),
	)
	s.sync(license, active.Name)

	return &ValidationResult{
		Business:       business,
		Status:         active.Name,
		CreatedAt:      license.CreatedAt,
		RemainingSeats: license.StaffLimit,
	}, nil
}

// SetStatus moves a license to the named status on behalf of an operator.
func (s *LicenseService) SetStatus(ctx context.Context, licenseID uint, statusName string, operatorID uint) (*model.LicenseView, error) {
	db := s.db.WithContext(ctx)

	status, err := statusByName(db, statusName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStatusUnknown
	}
	if err != nil {
		return nil, fmt.Errorf("find status: %w", err)
	}

	var license model.License
	var previous model.Status
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&license, licenseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLicenseNotFound
			}
			return err
		}
		if license.StatusID == status.ID {
			return nil
		}

		if status.Name == model.StatusActive {
			var n int64
			if err := tx.Model(&model.License{}).
				Where("business_id = ? AND status_id = ? AND id <> ?", license.BusinessID, status.ID, license.ID).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return ErrLicenseExists
			}
		}

		if err := tx.First(&previous, license.StatusID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Model(&model.License{}).Where("id = ?", license.ID).Update("status_id", status.ID).Error; err != nil {
			return err
		}
		license.StatusID = status.ID

		return writeOperationLog(tx, operatorID, "license.status", "license",
			strconv.FormatUint(uint64(license.ID), 10),
			map[string]string{"from": previous.Name, "to": status.Name},
		)
	})
	if err != nil {
		return nil, fmt.Errorf("set license status: %w", err)
	}

	view, err := s.view(db, license.ID)
	if err != nil {
		return nil, err
	}

	if previous.ID != 0 {
		s.log.Info("license status changed",
			zap.Uint("license_id", license.ID),
			zap.String("from", previous.Name),
			zap.String("to", status.Name),
			zap.Uint("operator_id", operatorID),
		)
		s.sync(view.License, status.Name)
	}
	return view, nil
}

// List returns one page of license metadata for the console.
func (s *LicenseService) List(ctx context.Context, q model.LicenseQuery) ([]model.LicenseView, int64, error) {
	db := s.db.WithContext(ctx)
	filter := func(tx *gorm.DB) *gorm.DB {
		if q.BusinessID != 0 {
			tx = tx.Where("licenses.business_id = ?", q.BusinessID)
		}
		if q.Status != "" {
			tx = tx.Where("statuses.name = ?", q.Status)
		}
		return tx
	}

	var total int64
	if err := db.Model(&model.License{}).
		Joins("LEFT JOIN statuses ON statuses.id = licenses.status_id").
		Scopes(filter).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count licenses: %w", err)
	}

	page, pageSize := NormalizePage(q.Page, q.PageSize)
	views := make([]model.LicenseView, 0)
	if err := viewQuery(db).
		Scopes(filter).
		Order("licenses.id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Scan(&views).Error; err != nil {
		return nil, 0, fmt.Errorf("list licenses: %w", err)
	}

	return views, total, nil
}

// Get returns one license's metadata.
func (s *LicenseService) Get(ctx context.Context, licenseID uint) (*model.LicenseView, error) {
	return s.view(s.db.WithContext(ctx), licenseID)
}

// Usage returns the newest validation attempts against a license.
func (s *LicenseService) Usage(ctx context.Context, licenseID uint, limit int) ([]model.LicenseUsage, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	db := s.db.WithContext(ctx)
	var n int64
	if err := db.Model(&model.License{}).Where("id = ?", licenseID).Count(&n).Error; err != nil {
		return nil, fmt.Errorf("find license: %w", err)
	}
	if n == 0 {
		return nil, ErrLicenseNotFound
	}

	usages := make([]model.LicenseUsage, 0)
	if err := db.Where("license_id = ?", licenseID).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&usages).Error; err != nil {
		return nil, fmt.Errorf("list usage: %w", err)
	}
	return usages, nil
}

func (s *LicenseService) view(db *gorm.DB, licenseID uint) (*model.LicenseView, error) {
	var view model.LicenseView
	res := viewQuery(db).Where("licenses.id = ?", licenseID).Limit(1).Scan(&view)
	if res.Error != nil {
		return nil, fmt.Errorf("find license: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrLicenseNotFound
	}
	return &view, nil
}

func (s *LicenseService) recordUsage(db *gorm.DB, usage *model.LicenseUsage) {
	usage.Timestamp = time.Now().UTC()
	if err := db.Create(usage).Error; err != nil {
		s.log.Error("record license usage", zap.Uint("business_id", usage.BusinessID), zap.Error(err))
	}
}

// sync pushes metadata to the mirror in the background; mirror failures
// never fail the request.
func (s *LicenseService) sync(license model.License, status string) {
	if s.mirror == nil {
		return
	}

	row := LicenseRow{
		ID:         license.ID,
		BusinessID: license.BusinessID,
		Status:     status,
		StaffLimit: license.StaffLimit,
		CreatedAt:  license.CreatedAt,
		UpdatedAt:  license.UpdatedAt,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.mirrorTimeout)
		defer cancel()

		if err := s.mirror.SyncLicense(ctx, row); err != nil {
			s.log.Warn("license mirror sync failed", zap.Uint("license_id", row.ID), zap.Error(err))
		}
	}()
}

// governingLicense returns the business's Active license, or its newest one
// when none is Active.
func governingLicense(db *gorm.DB, businessID, activeID uint) (model.License, error) {
	var license model.License
	err := db.Where("business_id = ? AND status_id = ?", businessID, activeID).
		Order("created_at DESC").
		Order("id DESC").
		First(&license).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.Where("business_id = ?", businessID).
			Order("created_at DESC").
			Order("id DESC").
			First(&license).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return license, ErrLicenseNotFound
	}
	if err != nil {
		return license, fmt.Errorf("find license: %w", err)
	}
	return license, nil
}

func viewQuery(db *gorm.DB) *gorm.DB {
	return db.Table("licenses").
		Select("licenses.*, statuses.name AS status, businesses.name AS business_name").
		Joins("LEFT JOIN statuses ON statuses.id = licenses.status_id").
		Joins("LEFT JOIN businesses ON businesses.id = licenses.business_id")
}

func statusByName(db *gorm.DB, name string) (model.Status, error) {
	var status model.Status
	err := db.Where("name = ?", name).First(&status).Error
	return status, err
}

// activeStatus resolves Active by name; its id is never assumed.
func activeStatus(db *gorm.DB) (model.Status, error) {
	status, err := statusByName(db, model.StatusActive)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Status{}, ErrActiveStatusMissing
	}
	if err != nil {
		return model.Status{}, fmt.Errorf("find active status: %w", err)
	}
	return status, nil
}
