package service

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/mantra-gor/BillSane-Admin/internal/config"
)

// SheetSyncService mirrors license metadata into a Google Sheet, one row per
// license keyed by id in column A. A nil *SheetSyncService is a no-op.
type SheetSyncService struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
	log           *zap.Logger

	// mu keeps lookup-then-append atomic so one license never gets two rows.
	mu sync.Mutex
}

// NewSheetSyncService returns nil, nil when sync is disabled.
func NewSheetSyncService(ctx context.Context, cfg config.SheetsConfig, log *zap.Logger) (*SheetSyncService, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	b, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read sheets credentials: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, b, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("load sheets credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}

	return newSheetSync(srv, cfg, log), nil
}

// NewSheetSyncServiceWithClient talks to endpoint through client instead of
// the public API with service account credentials.
func NewSheetSyncServiceWithClient(ctx context.Context, client *http.Client, endpoint string, cfg config.SheetsConfig, log *zap.Logger) (*SheetSyncService, error) {
	srv, err := sheets.NewService(ctx,
		option.WithHTTPClient(client),
		option.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return newSheetSync(srv, cfg, log), nil
}

func newSheetSync(srv *sheets.Service, cfg config.SheetsConfig, log *zap.Logger) *SheetSyncService {
	return &SheetSyncService{
		service:       srv,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
		log:           log.Named("sheets"),
	}
}

// SyncLicense updates the row for row.ID, or appends one when the sheet has
// none yet.
func (s *SheetSyncService) SyncLicense(ctx context.Context, row LicenseRow) error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.FormatUint(uint64(row.ID), 10)
	resp, err := s.service.Spreadsheets.Values.
		Get(s.spreadsheetID, s.sheetName+"!A2:A").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("read sheet ids: %w", err)
	}

	rowIndex := 0
	for i, cells := range resp.Values {
		if len(cells) > 0 && fmt.Sprint(cells[0]) == id {
			// A2 is the first data row.
			rowIndex = i + 2
			break
		}
	}

	values := &sheets.ValueRange{Values: [][]interface{}{{
		id,
		strconv.FormatUint(uint64(row.BusinessID), 10),
		row.Status,
		row.StaffLimit,
		row.CreatedAt.UTC().Format(time.RFC3339),
		row.UpdatedAt.UTC().Format(time.RFC3339),
	}}}

	if rowIndex > 0 {
		rng := fmt.Sprintf("%s!A%d:F%d", s.sheetName, rowIndex, rowIndex)
		_, err = s.service.Spreadsheets.Values.
			Update(s.spreadsheetID, rng, values).
			ValueInputOption("RAW").
			Context(ctx).
			Do()
	} else {
		_, err = s.service.Spreadsheets.Values.
			Append(s.spreadsheetID, s.sheetName+"!A2:F", values).
			ValueInputOption("RAW").
			Context(ctx).
			Do()
	}
	if err != nil {
		return fmt.Errorf("write sheet row: %w", err)
	}

	s.log.Debug("license mirrored", zap.Uint("license_id", row.ID), zap.Bool("updated", rowIndex > 0))
	return nil
}
