package web

import (
	"net/http"

	"assetman/db"
	"assetman/handlers"
	"assetman/models"

	"github.com/gin-gonic/gin"
)

// AssetList renders the asset table. Optional filters: status, type
// and a free-text q over name/serial/location.
func AssetList(c *gin.Context, employee *models.Employee) {
	tx := db.Instance.Preload("AssignedTo").Order("created_at DESC")
	if status := c.Query("status"); status != "" && models.ValidAssetStatus(status) {
		tx = tx.Where("status = ?", status)
	}
	if assetType := c.Query("type"); assetType != "" {
		tx = tx.Where("asset_type = ?", assetType)
	}
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("name LIKE ? OR serial_number LIKE ? OR location LIKE ?", like, like, like)
	}
	assets := []models.Asset{}
	if err := tx.Find(&assets).Error; err != nil {
		handlers.ErrorPage(c, "Could not load assets")
		return
	}
	c.HTML(http.StatusOK, "assets.tmpl", gin.H{
		"Employee": employee,
		"Assets":   assets,
		"Statuses": handlers.AssetStatuses(),
		"Status":   c.Query("status"),
		"Type":     c.Query("type"),
		"Query":    c.Query("q"),
	})
}

// AssetForm renders the add/edit form. With ?id= it edits.
func AssetForm(c *gin.Context, employee *models.Employee) {
	data := gin.H{
		"Employee":     employee,
		"Statuses":     handlers.AssetStatuses(),
		"Status":       models.AssetStatusInUse,
		"AssignedToID": uint64(0),
	}
	if id := handlers.ParseID(c.Query("id")); id != 0 {
		asset, err := models.AssetByID(id)
		if err != nil {
			handlers.ErrorPage(c, "Asset not found")
			return
		}
		data["ID"] = asset.ID
		data["Name"] = asset.Name
		data["AssetType"] = asset.AssetType
		data["SerialNumber"] = asset.SerialNumber
		data["Status"] = asset.Status
		data["PurchasePrice"] = asset.PurchasePrice
		data["Location"] = asset.Location
		data["Description"] = asset.Description
		if asset.AssignedToID != nil {
			data["AssignedToID"] = *asset.AssignedToID
		}
		if asset.PurchaseDate != nil {
			data["PurchaseDate"] = asset.PurchaseDate.Format("2006-01-02")
		}
	}
	// Assignment picker needs the active employees
	active := []models.Employee{}
	if err := db.Instance.Where("status = ?", models.StatusActive).Order("full_name").Find(&active).Error; err != nil {
		handlers.ErrorPage(c, "Could not load employees")
		return
	}
	data["Employees"] = active
	c.HTML(http.StatusOK, "asset_form.tmpl", data)
}
