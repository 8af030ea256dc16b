package handlers

import (
	"net/http"

	"github.com/aithreya/learning-service/internal/middleware"
	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/services"
	"github.com/aithreya/learning-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	auth     *middleware.AuthMiddleware
	authH    *AuthHandler
	contentH *ContentHandler
	progress *ProgressHandler
}

func NewHandlerManager(
	authService services.AuthService,
	tokenService services.TokenService,
	contentService services.ContentService,
	progressService services.ProgressService,
	importExportService services.ImportExportService,
	logger utils.Logger,
) *HandlerManager {
	base := NewBaseHandler(logger)
	return &HandlerManager{
		auth:     middleware.NewAuthMiddleware(tokenService, authService),
		authH:    NewAuthHandler(authService, base),
		contentH: NewContentHandler(contentService, importExportService, base),
		progress: NewProgressHandler(progressService, base),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", hm.authH.Register)
			auth.POST("/login", hm.authH.Login)
			auth.POST("/refresh", hm.authH.Refresh)

			authed := auth.Group("", hm.auth.RequireAuth())
			{
				authed.POST("/logout", hm.authH.Logout)
				authed.GET("/me", hm.authH.Me)
				authed.PUT("/profile", hm.authH.UpdateProfile)
				authed.PUT("/preferences", hm.authH.UpdatePreferences)
				authed.PUT("/password", hm.authH.ChangePassword)
				authed.DELETE("/account", hm.authH.Deactivate)
			}
		}

		// Content routes are public; a valid token only refines language
		// resolution, so failures degrade to anonymous
		content := v1.Group("/content", hm.auth.OptionalAuth())
		{
			content.GET("", hm.contentH.List)
			content.GET("/search", hm.contentH.Search)
			content.GET("/preamble", hm.contentH.GetPreamble)
			content.GET("/articles/:number", hm.contentH.GetArticle)
			content.GET("/fundamental-rights", hm.contentH.ListByType(models.ContentFundamentalRight))
			content.GET("/directive-principles", hm.contentH.ListByType(models.ContentDirectivePrinciple))
			content.GET("/fundamental-duties", hm.contentH.ListByType(models.ContentFundamentalDuty))
			content.GET("/amendments", hm.contentH.ListByType(models.ContentAmendment))
			content.GET("/schedules", hm.contentH.ListByType(models.ContentSchedule))
			content.GET("/case-studies", hm.contentH.ListCaseStudies)
			content.GET("/case-studies/:id", hm.contentH.GetCaseStudy)
			content.GET("/:slug", hm.contentH.GetBySlug)

			// Catalog management is restricted to educators and admins
			managed := content.Group("", hm.auth.RequireAuth(), hm.auth.RequireRole(models.RoleEducator, models.RoleAdmin))
			{
				managed.POST("", hm.contentH.Create)
				managed.PUT("/:id", hm.contentH.Update)
				managed.DELETE("/:id", hm.contentH.Delete)
				managed.POST("/import", hm.contentH.Import)
				managed.GET("/export", hm.contentH.Export)
			}
		}

		// Progress routes always require authentication
		progress := v1.Group("/progress", hm.auth.RequireAuth())
		{
			progress.GET("", hm.progress.Overview)
			progress.GET("/records", hm.progress.List)
			progress.GET("/bookmarks", hm.progress.Bookmarks)
			progress.GET("/:contentId", hm.progress.GetForContent)
			progress.PUT("/:contentId", hm.progress.Update)
			progress.POST("/:contentId/start", hm.progress.Start)
			progress.POST("/:contentId/complete", hm.progress.Complete)
			progress.POST("/:contentId/quiz", hm.progress.QuizAttempt)
			progress.POST("/:contentId/bookmark", hm.progress.ToggleBookmark)
			progress.POST("/:contentId/notes", hm.progress.AddNote)
			progress.POST("/:contentId/highlights", hm.progress.AddHighlight)
			progress.POST("/:contentId/rating", hm.progress.Rate)
		}
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "learning-service",
	})
}
