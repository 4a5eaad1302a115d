package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"oushodcloud-web/models"
	"oushodcloud-web/services"
)

func SubmitDemoRequest(demoService *services.DemoRequestService, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var input models.DemoRequestInput
		if err := c.BindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		request, err := demoService.SubmitDemoRequest(ctx, input)
		if err != nil {
			abortWithError(c, err)
			return
		}

		hub.NotifyNewDemoRequest(request)
		c.JSON(http.StatusOK, request)
	}
}

func GetDemoRequests(demoService *services.DemoRequestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		requests, err := demoService.GetDemoRequests(ctx)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

func UpdateDemoRequestStatus(demoService *services.DemoRequestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		requestId := c.Param("request_id")
		var body struct {
			Status string `json:"status"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := demoService.UpdateDemoRequestStatus(ctx, requestId, body.Status)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if !updated {
			c.JSON(http.StatusNotFound, gin.H{"error": "demo request was not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": true})
	}
}
