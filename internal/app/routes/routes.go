package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/coursehub/backend/internal/app/controllers"
	"github.com/coursehub/backend/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// healthCheckTimeout bounds the dependency probe of /health
const healthCheckTimeout = 2 * time.Second

// HealthCheck probes a dependency, typically the database pool
type HealthCheck func(ctx context.Context) error

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseAdminController *controllers.CourseAdminController,
	courseCatalogController *controllers.CourseCatalogController,
	healthCheck HealthCheck,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Course administration ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseAdminController.GetManyCourse)
		courses.POST("", courseAdminController.CreateCourse)
		courses.GET("/:id", courseAdminController.GetOneCourse)
		courses.PUT("/:id", courseAdminController.UpdateCourse)
		courses.DELETE("/:id", courseAdminController.DeleteCourse)
	}

	// --- Public catalog ---
	home := v1.Group("/home")
	{
		home.GET("/:pages", courseCatalogController.GetHomeCourse)
		home.GET("/course/:id", courseCatalogController.GetOneCourse)
		home.POST("/course", courseCatalogController.CreateCourse)
		home.PUT("/course/:id", courseCatalogController.UpdateCourse)
		home.DELETE("/course/:id", courseCatalogController.DeleteCourse)
	}
	v1.GET("/search/:pages", courseCatalogController.SearchCourse)
	v1.GET("/category/:cat/:pages", courseCatalogController.GetCategoryCourse)

	v1.GET("/health", func(c *gin.Context) {
		if healthCheck != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
			defer cancel()

			if err := healthCheck(ctx); err != nil {
				logger.FromContext(c.Request.Context()).Warn().Err(err).Msg("Health check failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
