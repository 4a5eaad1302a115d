package routes

import (
	"github.com/gin-gonic/gin"

	"oushodcloud-web/controllers"
	"oushodcloud-web/services"
)

func OrderRoutes(incomingRoutes *gin.Engine, orderService *services.OrderService, hub *controllers.Hub) {
	incomingRoutes.POST("/api/orders", controllers.SubmitOrder(orderService, hub))
	incomingRoutes.GET("/api/orders", controllers.GetOrders(orderService))
	incomingRoutes.PATCH("/api/orders/:order_id/status", controllers.UpdateOrderStatus(orderService))
	incomingRoutes.DELETE("/api/orders/:order_id", controllers.DeleteOrder(orderService))
	incomingRoutes.POST("/api/orders/:order_id/payment-sms", controllers.SendPaymentLinkSMS(orderService))
}
