package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/srinitha06/Water-monitoring-system/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AlertSender delivers the new-dispenser operational alert. Failures are
// logged and swallowed at the call site.
type AlertSender interface {
	SendDispenserAlert(location, status string, createdAt time.Time) error
}

// DispenserController handles the dispenser registry endpoints.
type DispenserController struct {
	DB     *gorm.DB
	Alerts AlertSender
}

func NewDispenserController(db *gorm.DB, alerts AlertSender) *DispenserController {
	return &DispenserController{DB: db, Alerts: alerts}
}

type createDispenserRequest struct {
	Location string `json:"location"`
	Status   string `json:"status"`
}

// Create registers a dispenser. The alert mail is fired without awaiting it;
// its outcome never changes the HTTP response.
func (d *DispenserController) Create(c *gin.Context) {
	var req createDispenserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	dispenser := models.Dispenser{
		Location:  req.Location,
		Status:    req.Status,
		CreatedAt: time.Now(),
	}
	if dispenser.Status == "" {
		dispenser.Status = models.StatusActive
	}

	if err := d.DB.Create(&dispenser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding dispenser", "error": err.Error()})
		return
	}

	go func(dsp models.Dispenser) {
		if err := d.Alerts.SendDispenserAlert(dsp.Location, dsp.Status, dsp.CreatedAt); err != nil {
			log.Printf("Error sending alert email: %v", err)
			return
		}
		log.Println("Alert email sent successfully for new dispenser.")
	}(dispenser)

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Dispenser added and alert email sent",
		"dispenser": dispenser,
	})
}

// List returns every dispenser in store order.
func (d *DispenserController) List(c *gin.Context) {
	dispensers := []models.Dispenser{}
	if err := d.DB.Find(&dispensers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching dispensers", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dispensers)
}

// Delete removes a dispenser by id.
func (d *DispenserController) Delete(c *gin.Context) {
	id := c.Param("id")

	result := d.DB.Delete(&models.Dispenser{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Dispenser not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dispenser deleted successfully"})
}
