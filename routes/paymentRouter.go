package routes

import (
	"github.com/gin-gonic/gin"

	"oushodcloud-web/controllers"
	"oushodcloud-web/services"
)

func PaymentRoutes(incomingRoutes *gin.Engine, paymentService *services.PaymentService) {
	incomingRoutes.POST("/api/payments", controllers.CreatePayment(paymentService))
}
