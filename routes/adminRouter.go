package routes

import (
	"github.com/gin-gonic/gin"

	"oushodcloud-web/controllers"
	"oushodcloud-web/services"
)

func AdminRoutes(incomingRoutes *gin.Engine, orderService *services.OrderService, demoService *services.DemoRequestService, hub *controllers.Hub) {
	incomingRoutes.GET("/api/admin/dashboard", controllers.GetDashboard(orderService, demoService))
	incomingRoutes.GET("/ws", hub.HandleWebSocket())
}
