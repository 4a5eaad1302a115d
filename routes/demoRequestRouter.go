package routes

import (
	"github.com/gin-gonic/gin"

	"oushodcloud-web/controllers"
	"oushodcloud-web/services"
)

func DemoRequestRoutes(incomingRoutes *gin.Engine, demoService *services.DemoRequestService, hub *controllers.Hub) {
	incomingRoutes.POST("/api/demo-requests", controllers.SubmitDemoRequest(demoService, hub))
	incomingRoutes.GET("/api/demo-requests", controllers.GetDemoRequests(demoService))
	incomingRoutes.PATCH("/api/demo-requests/:request_id/status", controllers.UpdateDemoRequestStatus(demoService))
}
