package handlers

import (
	"log"
	"net/http"

	"assetman/auth"
	"assetman/db"
	"assetman/models"
	"assetman/storage"
	"assetman/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type SignupRequest struct {
	FullName         string `form:"full_name" binding:"required"`
	PhoneNumber      string `form:"phone_number" binding:"required"`
	Email            string `form:"email" binding:"required"`
	VerificationCode string `form:"verification_code" binding:"required"`
	Password         string `form:"password" binding:"required"`
	ConfirmPassword  string `form:"confirm_password" binding:"required"`
}

type EmployeeUpdateRequest struct {
	EmployeeID uint64 `form:"employee_id" binding:"required"`
	Status     string `form:"status"`
	Role       string `form:"role"`
}

type EmployeeInfo struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

func Login(c *gin.Context) {
	req := LoginRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"Error": "Please enter both username and password"})
		return
	}
	employee, err := models.EmployeeLogin(req.Username, req.Password)
	if err != nil {
		log.Printf("Failed login attempt for username: %s", req.Username)
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"Error": err.Error()})
		return
	}
	session := auth.LoadSession(c)
	session.LoginEmployee(&employee)
	log.Printf("Employee %s (role: %s) logged in", employee.Username, employee.Role)
	c.Redirect(http.StatusFound, "/dashboard")
}

func Logout(c *gin.Context) {
	session := auth.LoadSession(c)
	session.LogoutEmployee()
	c.Redirect(http.StatusFound, "/login")
}

func Signup(c *gin.Context) {
	req := SignupRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		signupError(c, &req, "All fields are required")
		return
	}
	if !utils.ValidPhone(req.PhoneNumber) {
		signupError(c, &req, "Invalid phone number format")
		return
	}
	if !utils.ValidEmail(req.Email) {
		signupError(c, &req, "Invalid email format")
		return
	}
	if !utils.ValidVerificationCode(req.VerificationCode) {
		signupError(c, &req, "Verification code must be exactly 6 digits")
		return
	}
	if len(req.Password) < 6 {
		signupError(c, &req, "Password must be at least 6 characters long")
		return
	}
	if req.Password != req.ConfirmPassword {
		signupError(c, &req, "Passwords do not match")
		return
	}
	var count int64
	if err := db.Instance.Model(&models.Employee{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		ErrorPage(c, "Registration error. Please try again.")
		return
	}
	if count > 0 {
		signupError(c, &req, "An account with this email already exists")
		return
	}
	username, err := models.UniqueUsername(utils.UsernameFromEmail(req.Email))
	if err != nil {
		signupError(c, &req, "Unable to generate unique username. Please contact support.")
		return
	}

	profilePicture := ""
	if file, err := c.FormFile("profile_picture"); err == nil && file != nil {
		src, err := file.Open()
		if err == nil {
			profilePicture, err = storage.Instance.Save(file.Filename, src)
			src.Close()
			if err != nil {
				signupError(c, &req, err.Error())
				return
			}
		}
	}

	employee := models.Employee{
		Username:         username,
		FullName:         req.FullName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		ProfilePicture:   profilePicture,
		VerificationCode: req.VerificationCode,
		Status:           models.StatusPending,
		Role:             models.RoleEmployee,
	}
	if err := models.EmployeeCreate(&employee, req.Password); err != nil {
		log.Printf("Signup error: %v", err)
		signupError(c, &req, "Registration error. Please try again.")
		return
	}
	log.Printf("New employee signup: %s (pending approval)", req.Email)
	c.HTML(http.StatusOK, "login.tmpl", gin.H{
		"Message": "Registration successful! Your account is pending approval.",
	})
}

func signupError(c *gin.Context, req *SignupRequest, message string) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{
		"Error":    message,
		"FullName": req.FullName,
		"Phone":    req.PhoneNumber,
		"Email":    req.Email,
	})
}

// EmployeeUpdate changes status and/or role - this is how Pending
// signups get approved.
func EmployeeUpdate(c *gin.Context, employee *models.Employee) {
	req := EmployeeUpdateRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		ErrorPage(c, "Invalid request")
		return
	}
	target, err := models.EmployeeByID(req.EmployeeID)
	if err != nil {
		ErrorPage(c, "Employee not found")
		return
	}
	updates := map[string]interface{}{}
	if req.Status != "" {
		if !models.ValidStatus(req.Status) {
			ErrorPage(c, "Invalid status")
			return
		}
		updates["status"] = req.Status
	}
	if req.Role != "" {
		if !models.ValidRole(req.Role) {
			ErrorPage(c, "Invalid role")
			return
		}
		updates["role"] = req.Role
	}
	if len(updates) > 0 {
		if err := db.Instance.Model(&target).Updates(updates).Error; err != nil {
			log.Printf("Employee update error: %v", err)
			ErrorPage(c, "Could not update employee")
			return
		}
		log.Printf("Employee %s updated by %s: %v", target.Username, employee.Username, updates)
	}
	c.Redirect(http.StatusFound, "/employees")
}

type ProfileRequest struct {
	FullName        string `form:"full_name" binding:"required"`
	PhoneNumber     string `form:"phone_number"`
	Email           string `form:"email"`
	CurrentPassword string `form:"current_password"`
	NewPassword     string `form:"new_password"`
}

func ProfileSave(c *gin.Context, employee *models.Employee) {
	req := ProfileRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		profilePage(c, employee, "Full name is required", "")
		return
	}
	if req.Email != "" && !utils.ValidEmail(req.Email) {
		profilePage(c, employee, "Invalid email format", "")
		return
	}
	if req.PhoneNumber != "" && !utils.ValidPhone(req.PhoneNumber) {
		profilePage(c, employee, "Invalid phone number format", "")
		return
	}
	// Password change requires the current one
	if req.NewPassword != "" {
		if !employee.CheckPassword(req.CurrentPassword) {
			profilePage(c, employee, "Current password is incorrect", "")
			return
		}
		if len(req.NewPassword) < 6 {
			profilePage(c, employee, "Password must be at least 6 characters long", "")
			return
		}
		if err := employee.SetPassword(req.NewPassword); err != nil {
			profilePage(c, employee, "Could not update password", "")
			return
		}
	}
	employee.FullName = req.FullName
	if req.Email != "" {
		employee.Email = req.Email
	}
	if req.PhoneNumber != "" {
		employee.PhoneNumber = req.PhoneNumber
	}
	if file, err := c.FormFile("profile_picture"); err == nil && file != nil {
		src, err := file.Open()
		if err == nil {
			name, err := storage.Instance.Save(file.Filename, src)
			src.Close()
			if err != nil {
				profilePage(c, employee, err.Error(), "")
				return
			}
			if employee.ProfilePicture != "" {
				_ = storage.Instance.Delete(employee.ProfilePicture)
			}
			employee.ProfilePicture = name
		}
	}
	if err := db.Instance.Save(employee).Error; err != nil {
		log.Printf("Profile save error: %v", err)
		profilePage(c, employee, "Could not save profile", "")
		return
	}
	profilePage(c, employee, "", "Profile updated")
}

func profilePage(c *gin.Context, employee *models.Employee, errMsg, okMsg string) {
	c.HTML(http.StatusOK, "profile.tmpl", gin.H{
		"Employee": employee,
		"Error":    errMsg,
		"Message":  okMsg,
	})
}

// SearchEmployees backs the asset assignment picker.
func SearchEmployees(c *gin.Context, employee *models.Employee) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusOK, []EmployeeInfo{})
		return
	}
	rows, err := db.Instance.Table("employees").
		Select("id, username, full_name").
		Where("status = ? AND (full_name LIKE ? OR username LIKE ?)", models.StatusActive, "%"+q+"%", "%"+q+"%").
		Order("full_name").
		Limit(20).
		Rows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	defer rows.Close()
	result := []EmployeeInfo{}
	for rows.Next() {
		info := EmployeeInfo{}
		if err = rows.Scan(&info.ID, &info.Username, &info.FullName); err != nil {
			c.JSON(http.StatusInternalServerError, DBError2Response)
			return
		}
		result = append(result, info)
	}
	c.JSON(http.StatusOK, result)
}

// CheckUsername is used by the signup page to probe availability of
// the username that would be derived from the entered email.
func CheckUsername(c *gin.Context) {
	email := c.Query("email")
	if !utils.ValidEmail(email) {
		c.JSON(http.StatusBadRequest, Response{"invalid email"})
		return
	}
	username, err := models.UniqueUsername(utils.UsernameFromEmail(email))
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "username": username})
}
