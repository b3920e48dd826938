package employee

import (
	"go-employees/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", handler.GetAll)
		employees.GET("/search", handler.Search)
		employees.GET("/high-performers", handler.HighPerformers)
		employees.GET("/:id", handler.GetByID)

		employees.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByIP(1, 5),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Delete,
		)

		employees.POST("/:id/raise",
			middleware.RateLimitByIP(0.5, 2),
			handler.GiveRaise,
		)

		employees.POST("/:id/standard-raise",
			middleware.RateLimitByIP(0.5, 2),
			handler.GiveStandardRaise,
		)

		employees.POST("/:id/transfer",
			middleware.RateLimitByIP(0.5, 2),
			handler.Transfer,
		)
	}

	departments := r.Group("/departments")
	departments.Use(middleware.ContextLogger(logger))
	{
		departments.GET("/:department/expense", handler.DepartmentExpense)
	}
}
