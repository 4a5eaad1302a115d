package controllers

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"oushodcloud-web/models"
	"oushodcloud-web/services"
)

// GetDashboard feeds the admin landing page: orders and demo requests are
// fetched concurrently, the only fan-out in the system.
func GetDashboard(orderService *services.OrderService, demoService *services.DemoRequestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var (
			wg         sync.WaitGroup
			orders     []models.Order
			requests   []models.DemoRequest
			ordersErr  error
			requestErr error
		)

		wg.Add(2)
		go func() {
			defer wg.Done()
			orders, ordersErr = orderService.GetOrders(ctx)
		}()
		go func() {
			defer wg.Done()
			requests, requestErr = demoService.GetDemoRequests(ctx)
		}()
		wg.Wait()

		if ordersErr != nil {
			abortWithError(c, ordersErr)
			return
		}
		if requestErr != nil {
			abortWithError(c, requestErr)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"orders":       orders,
			"demoRequests": requests,
		})
	}
}
