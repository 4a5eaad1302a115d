package routes

import (
	"github.com/gin-gonic/gin"

	"oushodcloud-web/controllers"
	"oushodcloud-web/services"
)

func PricingRoutes(incomingRoutes *gin.Engine, pricingService *services.PricingService) {
	incomingRoutes.GET("/api/pricing", controllers.GetPricingData(pricingService))
	incomingRoutes.PUT("/api/pricing", controllers.UpdatePricingData(pricingService))
}
