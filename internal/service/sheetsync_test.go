package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"

	"github.com/mantra-gor/BillSane-Admin/internal/config"
)

// fakeSheet serves the handful of Values endpoints the mirror uses.
type fakeSheet struct {
	mu       sync.Mutex
	ids      [][]interface{}
	updates  map[string][][]interface{}
	appended [][]interface{}
}

func (f *fakeSheet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := r.URL.Path
	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(path, "/values/Licenses!A2:A"):
		_ = json.NewEncoder(w).Encode(sheets.ValueRange{Range: "Licenses!A2:A", Values: f.ids})
	case r.Method == http.MethodPut:
		var vr sheets.ValueRange
		_ = json.NewDecoder(r.Body).Decode(&vr)
		rng := path[strings.LastIndex(path, "/")+1:]
		f.updates[rng] = vr.Values
		_ = json.NewEncoder(w).Encode(sheets.UpdateValuesResponse{UpdatedRange: rng})
	case r.Method == http.MethodPost && strings.HasSuffix(path, ":append"):
		var vr sheets.ValueRange
		_ = json.NewDecoder(r.Body).Decode(&vr)
		f.appended = append(f.appended, vr.Values...)
		_ = json.NewEncoder(w).Encode(sheets.AppendValuesResponse{})
	default:
		http.Error(w, `{"error":{"code":404,"message":"not found"}}`, http.StatusNotFound)
	}
}

func newFakeSheetSync(t *testing.T, fake http.Handler) *SheetSyncService {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	cfg := config.SheetsConfig{Enabled: true, SpreadsheetID: "sheet-1", SheetName: "Licenses"}
	s, err := NewSheetSyncServiceWithClient(context.Background(), srv.Client(), srv.URL+"/", cfg, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestSheetSyncAppendsNewLicense(t *testing.T) {
	fake := &fakeSheet{ids: [][]interface{}{{"1"}, {"2"}}, updates: map[string][][]interface{}{}}
	s := newFakeSheetSync(t, fake)

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	err := s.SyncLicense(context.Background(), LicenseRow{
		ID: 3, BusinessID: 42, Status: "Active", StaffLimit: 5, CreatedAt: created, UpdatedAt: created,
	})
	require.NoError(t, err)

	require.Len(t, fake.appended, 1)
	row := fake.appended[0]
	assert.Equal(t, "3", row[0])
	assert.Equal(t, "42", row[1])
	assert.Equal(t, "Active", row[2])
	assert.EqualValues(t, 5, row[3])
	assert.Equal(t, "2024-05-01T10:00:00Z", row[4])
	assert.Empty(t, fake.updates)
}

func TestSheetSyncUpdatesExistingRow(t *testing.T) {
	fake := &fakeSheet{ids: [][]interface{}{{"1"}, {"7"}, {"9"}}, updates: map[string][][]interface{}{}}
	s := newFakeSheetSync(t, fake)

	err := s.SyncLicense(context.Background(), LicenseRow{ID: 7, BusinessID: 1, Status: "Revoked"})
	require.NoError(t, err)

	assert.Empty(t, fake.appended)
	require.Contains(t, fake.updates, "Licenses!A3:F3")
	assert.Equal(t, "Revoked", fake.updates["Licenses!A3:F3"][0][2])
}

func TestSheetSyncReportsAPIErrors(t *testing.T) {
	s := newFakeSheetSync(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"denied"}}`, http.StatusForbidden)
	}))

	err := s.SyncLicense(context.Background(), LicenseRow{ID: 1})
	assert.Error(t, err)
}

func TestSheetSyncDisabled(t *testing.T) {
	s, err := NewSheetSyncService(context.Background(), config.SheetsConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.NoError(t, s.SyncLicense(context.Background(), LicenseRow{ID: 1}))
}
