package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oushodcloud-web/models"
	"oushodcloud-web/services"
)

func GetPricingData(pricingService *services.PricingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, pricingService.GetPricingData())
	}
}

// UpdatePricingData wholesale-replaces the tier list from the admin settings
// form.
func UpdatePricingData(pricingService *services.PricingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			PricingTiers []models.PricingTier `json:"pricingTiers"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ok := pricingService.UpdatePricingData(body.PricingTiers)
		c.JSON(http.StatusOK, gin.H{"updated": ok})
	}
}
