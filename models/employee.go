package models

import (
	"errors"
	"strconv"

	"assetman/db"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	StatusActive    = "Active"
	StatusPending   = "Pending"
	StatusSuspended = "Suspended"

	RoleAdmin      = "Admin"
	RoleManager    = "Manager"
	RoleDispatcher = "Dispatcher"
	RoleTechnician = "Technician"
	RoleAccounts   = "Accounts"
	RoleITSupport  = "IT Support"
	RoleEmployee   = "Employee"
)

var (
	// Deliberately the same message for unknown user and wrong password
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountPending     = errors.New("account is pending approval")
	ErrAccountSuspended   = errors.New("account has been suspended")
	ErrAccountInactive    = errors.New("account is not active")
)

type Employee struct {
	ID               uint64 `gorm:"primaryKey"`
	CreatedAt        int64
	UpdatedAt        int64
	Username         string `gorm:"type:varchar(50);index:uniq_username,unique;not null"`
	Password         string `gorm:"type:varchar(255);not null"` // bcrypt hash
	FullName         string `gorm:"type:varchar(100);not null"`
	Email            string `gorm:"type:varchar(100);index:uniq_email,unique"`
	PhoneNumber      string `gorm:"type:varchar(20)"`
	ProfilePicture   string `gorm:"type:varchar(255)"`
	Status           string `gorm:"type:varchar(20);default:Pending"`
	Role             string `gorm:"type:varchar(20);default:Employee"`
	VerificationCode string `gorm:"type:varchar(6)"`
}

func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusPending || s == StatusSuspended
}

func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleDispatcher, RoleTechnician, RoleAccounts, RoleITSupport, RoleEmployee:
		return true
	}
	return false
}

func EmployeeCreate(e *Employee, plainTextPassword string) error {
	if err := e.SetPassword(plainTextPassword); err != nil {
		return err
	}
	if e.Status == "" {
		e.Status = StatusPending
	}
	if e.Role == "" {
		e.Role = RoleEmployee
	}
	return db.Instance.Create(e).Error
}

func (e *Employee) SetPassword(plainTextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.Password = string(hash)
	return nil
}

func (e *Employee) CheckPassword(plainTextPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(plainTextPassword)) == nil
}

// EmployeeLogin authenticates by username. Non-Active accounts are
// refused even with correct credentials.
func EmployeeLogin(username, plainTextPassword string) (e Employee, err error) {
	result := db.Instance.First(&e, "username = ?", username)
	if result.Error != nil {
		return Employee{}, ErrInvalidCredentials
	}
	if !e.CheckPassword(plainTextPassword) {
		return Employee{}, ErrInvalidCredentials
	}
	switch e.Status {
	case StatusActive:
		return e, nil
	case StatusPending:
		return Employee{}, ErrAccountPending
	case StatusSuspended:
		return Employee{}, ErrAccountSuspended
	}
	return Employee{}, ErrAccountInactive
}

func (e *Employee) HasAnyRole(required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, role := range required {
		if e.Role == role {
			return true
		}
	}
	return false
}

// UniqueUsername returns base, or base1, base2, ... if taken.
func UniqueUsername(base string) (string, error) {
	username := base
	for counter := 1; ; counter++ {
		var count int64
		if err := db.Instance.Model(&Employee{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return username, nil
		}
		if counter > 999 {
			return "", errors.New("unable to generate unique username")
		}
		username = base + strconv.Itoa(counter)
	}
}

func EmployeeByID(id uint64) (e Employee, err error) {
	err = db.Instance.First(&e, id).Error
	return
}

func EmployeeExists(id uint64) bool {
	var count int64
	if db.Instance.Model(&Employee{}).Where("id = ? AND status != ?", id, StatusSuspended).Count(&count).Error != nil {
		return false
	}
	return count > 0
}

// ensureAdmin creates the bootstrap Active Admin account on first run.
func ensureAdmin(password string) {
	if password == "" {
		return
	}
	var count int64
	if db.Instance.Model(&Employee{}).Where("username = ?", "admin").Count(&count).Error != nil || count > 0 {
		return
	}
	admin := Employee{
		Username: "admin",
		FullName: "Administrator",
		Email:    "admin@localhost",
		Status:   StatusActive,
		Role:     RoleAdmin,
	}
	if err := EmployeeCreate(&admin, password); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		panic(err)
	}
}
