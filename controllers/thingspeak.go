package controllers

import (
	"log"
	"net/http"

	"github.com/srinitha06/Water-monitoring-system/utils"

	"github.com/gin-gonic/gin"
)

// ThingSpeakController proxies the latest channel sample to the frontend.
type ThingSpeakController struct {
	Feed *utils.ThingSpeakClient
}

func NewThingSpeakController(feed *utils.ThingSpeakClient) *ThingSpeakController {
	return &ThingSpeakController{Feed: feed}
}

// Latest fetches and decodes the most recent sensor reading.
func (t *ThingSpeakController) Latest(c *gin.Context) {
	reading, err := t.Feed.LatestReading(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching ThingSpeak data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch ThingSpeak data",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, reading)
}
