package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mantra-gor/BillSane-Admin/internal/model"
)

const dateLayout = "2006-01-02"

// StatisticsService aggregates license and validation counts for the console.
type StatisticsService struct {
	db *gorm.DB
}

func NewStatisticsService(db *gorm.DB) *StatisticsService {
	return &StatisticsService{db: db}
}

// LicenseStatistics summarizes all licenses, plus validation traffic between
// start and end. Daily buckets are UTC days and include days with no traffic.
func (s *StatisticsService) LicenseStatistics(ctx context.Context, start, end time.Time) (*model.LicenseStatistics, error) {
	db := s.db.WithContext(ctx)
	stats := &model.LicenseStatistics{
		LicensesByStatus: make(map[string]int64),
		DailyUsage:       make([]model.DailyUsage, 0),
	}

	if err := db.Model(&model.License{}).Count(&stats.TotalLicenses).Error; err != nil {
		return nil, fmt.Errorf("count licenses: %w", err)
	}

	var byStatus []struct {
		Name  string
		Count int64
	}
	if err := db.Model(&model.License{}).
		Select("statuses.name AS name, COUNT(*) AS count").
		Joins("JOIN statuses ON statuses.id = licenses.status_id").
		Group("statuses.name").
		Scan(&byStatus).Error; err != nil {
		return nil, fmt.Errorf("count licenses by status: %w", err)
	}
	for _, name := range model.Statuses {
		stats.LicensesByStatus[name] = 0
	}
	for _, row := range byStatus {
		stats.LicensesByStatus[row.Name] = row.Count
	}

	if err := db.Model(&model.License{}).
		Select("COALESCE(SUM(licenses.staff_limit), 0)").
		Joins("JOIN statuses ON statuses.id = licenses.status_id").
		Where("statuses.name = ?", model.StatusActive).
		Row().Scan(&stats.RemainingSeats); err != nil {
		return nil, fmt.Errorf("sum remaining seats: %w", err)
	}

	var usages []model.LicenseUsage
	if err := db.Select("timestamp", "success").
		Where("timestamp BETWEEN ? AND ?", start.UTC(), end.UTC()).
		Find(&usages).Error; err != nil {
		return nil, fmt.Errorf("load usage: %w", err)
	}

	buckets := make(map[string]*model.DailyUsage)
	for day := truncateDay(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		stats.DailyUsage = append(stats.DailyUsage, model.DailyUsage{Date: day.Format(dateLayout)})
	}
	for i := range stats.DailyUsage {
		buckets[stats.DailyUsage[i].Date] = &stats.DailyUsage[i]
	}

	for _, u := range usages {
		stats.TotalValidations++
		if !u.Success {
			stats.FailedValidations++
		}
		if b, ok := buckets[u.Timestamp.UTC().Format(dateLayout)]; ok {
			b.TotalChecks++
			if !u.Success {
				b.FailedChecks++
			}
		}
	}

	return stats, nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
