package model

// DailyUsage holds validation counts for one calendar day (UTC).
type DailyUsage struct {
	Date         string `json:"date"`
	TotalChecks  int    `json:"total_checks"`
	FailedChecks int    `json:"failed_checks"`
}

// LicenseStatistics summarizes licenses and validation traffic.
type LicenseStatistics struct {
	TotalLicenses     int64            `json:"total_licenses"`
	LicensesByStatus  map[string]int64 `json:"licenses_by_status"`
	RemainingSeats    int64            `json:"remaining_seats"`
	TotalValidations  int64            `json:"total_validations"`
	FailedValidations int64            `json:"failed_validations"`
	DailyUsage        []DailyUsage     `json:"daily_usage"`
}

// GetSuccessRate returns the share of validations that succeeded.
func (ls *LicenseStatistics) GetSuccessRate() float64 {
	if ls.TotalValidations == 0 {
		return 0
	}
	return float64(ls.TotalValidations-ls.FailedValidations) / float64(ls.TotalValidations)
}

// GetLicensesByStatus returns the license count for one status name.
func (ls *LicenseStatistics) GetLicensesByStatus(status string) int64 {
	if count, ok := ls.LicensesByStatus[status]; ok {
		return count
	}
	return 0
}

// GetDailyUsageByDate returns the bucket for date (YYYY-MM-DD), or nil.
func (ls *LicenseStatistics) GetDailyUsageByDate(date string) *DailyUsage {
	for i := range ls.DailyUsage {
		if ls.DailyUsage[i].Date == date {
			return &ls.DailyUsage[i]
		}
	}
	return nil
}
