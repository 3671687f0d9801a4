package models

import (
	"time"

	"assetman/db"
)

type CountRow struct {
	Label string
	Count int64
}

type MonthCount struct {
	Month string // "Jan 2006"
	Count int64
}

func AssetCountsByStatus() (result []CountRow, err error) {
	err = db.Instance.Model(&Asset{}).
		Select("status as label, count(*) as count").
		Group("status").
		Order("count DESC").
		Scan(&result).Error
	return
}

func AssetCountsByType() (result []CountRow, err error) {
	err = db.Instance.Model(&Asset{}).
		Select("asset_type as label, count(*) as count").
		Where("asset_type != ''").
		Group("asset_type").
		Order("count DESC").
		Scan(&result).Error
	return
}

func AssetCountsByAssignee() (result []CountRow, err error) {
	err = db.Instance.Table("assets").
		Select("employees.full_name as label, count(*) as count").
		Joins("join employees on employees.id = assets.assigned_to_id").
		Group("employees.full_name").
		Order("count DESC").
		Scan(&result).Error
	return
}

// MonthlyIntake returns asset registration counts for the 12 months
// up to now. Bucketing happens here rather than in SQL so the same
// query works on both MySQL and SQLite.
func MonthlyIntake(now time.Time) ([]MonthCount, error) {
	since := now.AddDate(-1, 0, 0).Unix()
	var createdAt []int64
	err := db.Instance.Model(&Asset{}).
		Where("created_at >= ?", since).
		Pluck("created_at", &createdAt).Error
	if err != nil {
		return nil, err
	}
	return bucketByMonth(createdAt, now), nil
}

func bucketByMonth(createdAt []int64, now time.Time) []MonthCount {
	counts := map[string]int64{}
	for _, ts := range createdAt {
		counts[time.Unix(ts, 0).Format("Jan 2006")]++
	}
	// Anchor to the first of the month - AddDate on day 29+ would
	// otherwise skip short months
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	// Oldest month first
	result := make([]MonthCount, 0, 12)
	for i := 11; i >= 0; i-- {
		month := anchor.AddDate(0, -i, 0).Format("Jan 2006")
		result = append(result, MonthCount{Month: month, Count: counts[month]})
	}
	return result
}
