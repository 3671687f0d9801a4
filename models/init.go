package models

import (
	"assetman/config"
	"assetman/db"
)

func Init() {
	db.Instance.AutoMigrate(&Employee{})
	db.Instance.AutoMigrate(&Asset{})
	db.Instance.AutoMigrate(&CompanySettings{})

	ensureAdmin(config.ADMIN_PASSWORD)
}
