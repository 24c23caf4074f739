package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prepforge/testbank/internal/dto"
)

// RegisterRoutes wires every API endpoint plus the static client entry page.
func RegisterRoutes(
	router *gin.Engine,
	testCtrl *TestController,
	resultCtrl *ResultController,
	healthCtrl *HealthController,
) {
	api := router.Group("/api")
	{
		api.GET("/tests", testCtrl.ListTests)
		api.POST("/tests", testCtrl.CreateTest)
		api.GET("/tests/:id", testCtrl.GetTest)
		api.PUT("/tests/:id", testCtrl.UpdateTest)
		api.DELETE("/tests/:id", testCtrl.DeleteTest)

		api.POST("/results", resultCtrl.SubmitResult)
		api.GET("/results/history", resultCtrl.History)
		api.GET("/results/test/:testId", resultCtrl.ListResultsByTest)
		api.GET("/results/:attemptId", resultCtrl.GetResult)

		api.POST("/init-data", testCtrl.InitData)
		api.GET("/health", healthCtrl.Health)
	}

	router.StaticFile("/", "./web/static/index.html")
	router.Static("/static", "./web/static")

	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Route not found"})
	})
}
