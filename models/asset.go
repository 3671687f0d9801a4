package models

import (
	"errors"
	"time"

	"assetman/db"
	"assetman/utils"

	"gorm.io/gorm"
)

const (
	AssetStatusInUse     = "In Use"
	AssetStatusRelocated = "Relocated"
	AssetStatusRenewed   = "Renewed"
	AssetStatusClosed    = "Closed"
	AssetStatusReversed  = "Reversed"
)

var (
	ErrUnknownAssignee = errors.New("assigned employee does not exist")
	ErrDuplicateSerial = errors.New("an asset with this serial number already exists")
	ErrAssetNameEmpty  = errors.New("asset name is required")
)

type Asset struct {
	ID            uint64 `gorm:"primaryKey"`
	CreatedAt     int64
	UpdatedAt     int64
	Name          string `gorm:"type:varchar(200);not null"`
	AssetType     string `gorm:"type:varchar(100)"`
	// Uniqueness is enforced in AssetSave - a DB unique index would
	// also forbid multiple assets with no serial at all
	SerialNumber  string `gorm:"type:varchar(100);index"`
	Status        string `gorm:"type:varchar(20);default:'In Use'"`
	AssignedToID  *uint64
	AssignedTo    *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	PurchaseDate  *time.Time
	PurchasePrice float64 `gorm:"type:decimal(10,2)"`
	Location      string  `gorm:"type:varchar(100)"`
	Description   string  `gorm:"type:text"`
}

func ValidAssetStatus(s string) bool {
	switch s {
	case AssetStatusInUse, AssetStatusRelocated, AssetStatusRenewed, AssetStatusClosed, AssetStatusReversed:
		return true
	}
	return false
}

// BeforeSave normalizes the serial number so that scanned and typed
// variants of the same serial collide on the unique index.
func (a *Asset) BeforeSave(tx *gorm.DB) (err error) {
	a.SerialNumber = utils.NormalizeSerial(a.SerialNumber)
	if a.Status == "" {
		a.Status = AssetStatusInUse
	}
	return
}

// AssetSave validates and creates/updates an asset. The referenced
// employee must exist - the FK alone doesn't cover SQLite setups where
// foreign keys are off by default.
func AssetSave(a *Asset) error {
	if a.Name == "" {
		return ErrAssetNameEmpty
	}
	if a.AssignedToID != nil && !EmployeeExists(*a.AssignedToID) {
		return ErrUnknownAssignee
	}
	serial := utils.NormalizeSerial(a.SerialNumber)
	if serial != "" {
		var count int64
		if err := db.Instance.Model(&Asset{}).Where("serial_number = ? AND id != ?", serial, a.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateSerial
		}
	}
	return db.Instance.Save(a).Error
}

func AssetByID(id uint64) (a Asset, err error) {
	err = db.Instance.Preload("AssignedTo").First(&a, id).Error
	return
}

// AssetBySerial looks up by normalized serial number.
func AssetBySerial(serial string) (a Asset, err error) {
	err = db.Instance.Preload("AssignedTo").First(&a, "serial_number = ?", utils.NormalizeSerial(serial)).Error
	return
}

// AssetClose moves an asset to the Closed state. Assets are never
// hard-deleted, they only change lifecycle state.
func AssetClose(id uint64) error {
	result := db.Instance.Model(&Asset{}).Where("id = ?", id).Update("status", AssetStatusClosed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
