package app

import (
	"net/http"

	"go-employees/internal/employee"
	"go-employees/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires the store, service, handler, and routes. The store is an
// explicit instance handed to the service at construction; nothing here is
// package-global state.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	employeeRepo := employee.NewRepository()
	employeeService := employee.NewService(employeeRepo, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)

	router.Use(middleware.RequestID())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"employees": employeeRepo.Count(c.Request.Context()),
		})
	})

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
	}

	return nil
}
