package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"adboard-backend/internal/shared/middleware"
	"adboard-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupHeadingRoutes(v1, c)
		setupAnnouncementRoutes(v1, c)
		setupSuitableAdRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.AuthorHandler.Register)
		auth.POST("/login", c.AuthorHandler.Login)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
// Authors only ever operate on their own profile; the id comes from
// the access token, never from the path.
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	authors.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		authors.GET("/me", c.AuthorHandler.GetProfile)
		authors.PUT("/me", c.AuthorHandler.UpdateProfile)
		authors.DELETE("/me", c.AuthorHandler.DeleteProfile)
		authors.DELETE("/me/announcements", c.AuthorHandler.DeleteAnnouncements)
	}

	// Listing every author is admin-only
	adminAuthors := v1.Group("/authors")
	adminAuthors.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		adminAuthors.GET("", c.AuthorHandler.List)
	}
}

// ========================================
// HEADING ROUTES
// ========================================
func setupHeadingRoutes(v1 *gin.RouterGroup, c *container.Container) {
	headings := v1.Group("/headings")
	{
		headings.GET("", c.HeadingHandler.GetAll)
		headings.GET("/:id", c.HeadingHandler.GetByID)
	}

	// Mutations are admin-only
	adminHeadings := v1.Group("/headings")
	adminHeadings.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		adminHeadings.POST("", c.HeadingHandler.Create)
		adminHeadings.PUT("/:id", c.HeadingHandler.Update)
		adminHeadings.DELETE("/:id", c.HeadingHandler.Delete)
		adminHeadings.DELETE("/:id/announcements", c.AnnouncementHandler.DeleteByHeading)
	}
}

// ========================================
// ANNOUNCEMENT ROUTES
// ========================================
func setupAnnouncementRoutes(v1 *gin.RouterGroup, c *container.Container) {
	announcements := v1.Group("/announcements")
	{
		announcements.GET("", c.AnnouncementHandler.List)
		announcements.GET("/:id", c.AnnouncementHandler.GetByID)
	}

	authed := v1.Group("/announcements")
	authed.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		authed.POST("", c.AnnouncementHandler.Create)
		authed.PUT("/:id", c.AnnouncementHandler.Update)
		authed.DELETE("/:id", c.AnnouncementHandler.Delete)
	}

	// Housekeeping endpoint mirrors the scheduled purge job
	admin := v1.Group("/announcements")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.DELETE("/inactive", c.AnnouncementHandler.PurgeInactive)
	}
}

// ========================================
// SUITABLE AD ROUTES
// ========================================
func setupSuitableAdRoutes(v1 *gin.RouterGroup, c *container.Container) {
	suitableAds := v1.Group("/suitable-ads")
	suitableAds.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		suitableAds.POST("", c.SuitableAdHandler.Create)
		suitableAds.GET("", c.SuitableAdHandler.List)
		suitableAds.PUT("/:id", c.SuitableAdHandler.Update)
		suitableAds.DELETE("/:id", c.SuitableAdHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "up"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus == "down" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":   dbStatus,
			"database": dbStatus,
			"cache":    cacheStatus,
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	}
}
