package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"oushodcloud-web/models"
	"oushodcloud-web/services"
)

const requestTimeout = 30 * time.Second

// SubmitOrder handles the checkout form. The client drives the rest of the
// sequence (payment link, SMS, redirect); an order left in "Pending Payment"
// after a later step fails is picked up manually from the admin panel.
func SubmitOrder(orderService *services.OrderService, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var input models.OrderInput
		if err := c.BindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := orderService.SubmitOrder(ctx, input)
		if err != nil {
			abortWithError(c, err)
			return
		}

		hub.NotifyNewOrder(order)
		c.JSON(http.StatusOK, order)
	}
}

func GetOrders(orderService *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		orders, err := orderService.GetOrders(ctx)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func UpdateOrderStatus(orderService *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		orderId := c.Param("order_id")
		var body struct {
			Status string `json:"status"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := orderService.UpdateOrderStatus(ctx, orderId, body.Status)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if !updated {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": true})
	}
}

func DeleteOrder(orderService *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		orderId := c.Param("order_id")
		deleted, err := orderService.DeleteOrder(ctx, orderId)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

// SendPaymentLinkSMS texts the payment URL for an existing order. The mobile
// number defaults to the one on the order. Always responds 200 with the
// delivery outcome; SMS problems never fail the request.
func SendPaymentLinkSMS(orderService *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		orderId := c.Param("order_id")
		var body struct {
			Mobile     string `json:"mobile"`
			PaymentURL string `json:"paymentUrl"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if body.PaymentURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "paymentUrl is required"})
			return
		}

		order, found, err := orderService.GetOrder(ctx, orderId)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}

		mobile := body.Mobile
		if mobile == "" {
			mobile = order.Mobile
		}

		outcome := orderService.SendPaymentLinkSMS(ctx, mobile, order.Order_id, body.PaymentURL)
		c.JSON(http.StatusOK, gin.H{"outcome": outcome})
	}
}
