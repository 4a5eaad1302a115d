package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"oushodcloud-web/services"
)

// CreatePayment returns a hosted checkout URL for the checkout page to
// redirect to. Gateway misconfiguration and gateway failures surface as 502
// so the form can show an error and stay on "Pending Payment".
func CreatePayment(paymentService *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var input services.CreatePaymentInput
		if err := c.BindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		paymentURL, err := paymentService.CreatePayment(ctx, input)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"payment_url": paymentURL})
	}
}
