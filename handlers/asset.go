package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"assetman/models"
	"assetman/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type AssetSaveRequest struct {
	ID            uint64  `form:"id"`
	Name          string  `form:"name" binding:"required"`
	AssetType     string  `form:"asset_type"`
	SerialNumber  string  `form:"serial_number"`
	Status        string  `form:"status"`
	AssignedToID  uint64  `form:"assigned_to"`
	PurchaseDate  string  `form:"purchase_date"` // 2006-01-02
	PurchasePrice float64 `form:"purchase_price"`
	Location      string  `form:"location"`
	Description   string  `form:"description"`
}

type AssetCloseRequest struct {
	ID uint64 `form:"id" binding:"required"`
}

type SerialLookupResponse struct {
	Error      string `json:"error"`
	Serial     string `json:"serial"`
	Found      bool   `json:"found"`
	AssetID    uint64 `json:"asset_id,omitempty"`
	AssetName  string `json:"asset_name,omitempty"`
	Status     string `json:"status,omitempty"`
	AssignedTo string `json:"assigned_to,omitempty"`
}

func AssetSave(c *gin.Context, employee *models.Employee) {
	req := AssetSaveRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		assetFormError(c, &req, "Asset name is required")
		return
	}
	if req.Status != "" && !models.ValidAssetStatus(req.Status) {
		assetFormError(c, &req, "Invalid asset status")
		return
	}

	asset := models.Asset{}
	if req.ID != 0 {
		var err error
		asset, err = models.AssetByID(req.ID)
		if err != nil {
			ErrorPage(c, "Asset not found")
			return
		}
	}
	asset.Name = req.Name
	asset.AssetType = req.AssetType
	asset.SerialNumber = req.SerialNumber
	asset.Status = req.Status
	asset.Location = req.Location
	asset.Description = req.Description
	asset.PurchasePrice = req.PurchasePrice
	if req.AssignedToID != 0 {
		asset.AssignedToID = &req.AssignedToID
	} else {
		asset.AssignedToID = nil
	}
	asset.AssignedTo = nil
	if req.PurchaseDate != "" {
		date, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			assetFormError(c, &req, "Invalid purchase date, expected YYYY-MM-DD")
			return
		}
		asset.PurchaseDate = &date
	} else {
		asset.PurchaseDate = nil
	}

	if err := models.AssetSave(&asset); err != nil {
		if errors.Is(err, models.ErrUnknownAssignee) || errors.Is(err, models.ErrDuplicateSerial) || errors.Is(err, models.ErrAssetNameEmpty) {
			assetFormError(c, &req, err.Error())
			return
		}
		log.Printf("Asset save error: %v", err)
		ErrorPage(c, "Could not save asset")
		return
	}
	c.Redirect(http.StatusFound, "/assets")
}

func assetFormError(c *gin.Context, req *AssetSaveRequest, message string) {
	status := req.Status
	if status == "" {
		status = models.AssetStatusInUse
	}
	c.HTML(http.StatusOK, "asset_form.tmpl", gin.H{
		"Error":         message,
		"ID":            req.ID,
		"Name":          req.Name,
		"AssetType":     req.AssetType,
		"SerialNumber":  req.SerialNumber,
		"Status":        status,
		"AssignedToID":  req.AssignedToID,
		"PurchaseDate":  req.PurchaseDate,
		"PurchasePrice": req.PurchasePrice,
		"Location":      req.Location,
		"Description":   req.Description,
		"Statuses":      assetStatuses,
	})
}

var assetStatuses = []string{
	models.AssetStatusInUse,
	models.AssetStatusRelocated,
	models.AssetStatusRenewed,
	models.AssetStatusClosed,
	models.AssetStatusReversed,
}

// AssetStatuses is shared with the page handlers.
func AssetStatuses() []string {
	return assetStatuses
}

func AssetClose(c *gin.Context, employee *models.Employee) {
	req := AssetCloseRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		ErrorPage(c, "Invalid request")
		return
	}
	if err := models.AssetClose(req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ErrorPage(c, "Asset not found")
			return
		}
		log.Printf("Asset close error: %v", err)
		ErrorPage(c, "Could not close asset")
		return
	}
	log.Printf("Asset %d closed by %s", req.ID, employee.Username)
	c.Redirect(http.StatusFound, "/assets")
}

// SerialLookup answers whether a scanned serial is already registered.
func SerialLookup(c *gin.Context, employee *models.Employee) {
	serial := utils.NormalizeSerial(c.Query("serial"))
	if serial == "" {
		c.JSON(http.StatusBadRequest, SerialLookupResponse{Error: "serial is required"})
		return
	}
	asset, err := models.AssetBySerial(serial)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, SerialLookupResponse{Serial: serial, Found: false})
			return
		}
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	resp := SerialLookupResponse{
		Serial:    serial,
		Found:     true,
		AssetID:   asset.ID,
		AssetName: asset.Name,
		Status:    asset.Status,
	}
	if asset.AssignedTo != nil {
		resp.AssignedTo = asset.AssignedTo.FullName
	}
	c.JSON(http.StatusOK, resp)
}
