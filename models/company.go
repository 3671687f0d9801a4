package models

import "assetman/db"

// CompanySettings is a single-row table edited from the settings page.
type CompanySettings struct {
	ID          uint64 `gorm:"primaryKey"`
	UpdatedAt   int64
	CompanyName string `gorm:"type:varchar(200)"`
	Address     string `gorm:"type:varchar(300)"`
	Phone       string `gorm:"type:varchar(20)"`
	Email       string `gorm:"type:varchar(100)"`
	Logo        string `gorm:"type:varchar(255)"`
}

func GetCompanySettings() (s CompanySettings) {
	// Missing row is fine - the settings page starts out empty
	_ = db.Instance.First(&s).Error
	return
}

func SaveCompanySettings(s *CompanySettings) error {
	current := GetCompanySettings()
	s.ID = current.ID
	return db.Instance.Save(s).Error
}
