package router

import (
	"net/http"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/config"
	"github.com/devakalpa1/DeckOracle/internal/handlers"
	"github.com/devakalpa1/DeckOracle/internal/models"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Try again later."})
}

func Setup(log *zap.Logger, catalog *models.AchievementCatalog) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("deckoracle_session", store))

	// --- Now that sessions are initialized, other middleware can use them ---
	router.Use(CSRFProtection())
	router.Use(UserLoaderMiddleware(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and routes
	authHandler := handlers.NewAuthHandler(log)
	folderHandler := handlers.NewFolderHandler(log)
	deckHandler := handlers.NewDeckHandler(log)
	cardHandler := handlers.NewCardHandler(log)
	studyHandler := handlers.NewStudyHandler(log)
	progressHandler := handlers.NewProgressHandler(log)
	chartsHandler := handlers.NewChartsHandler(log)
	importExportHandler := handlers.NewImportExportHandler(log)
	achievementsHandler := handlers.NewAchievementsHandler(log, catalog)
	searchHandler := handlers.NewSearchHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	api.GET("/csrf", CSRFToken)
	api.POST("/register", limiter, authHandler.Register)
	api.POST("/login", limiter, authHandler.Login)
	api.POST("/logout", authHandler.Logout)

	authorized := api.Group("/")
	authorized.Use(AuthRequired())
	{
		authorized.GET("/me", authHandler.Me)
		authorized.PUT("/me", authHandler.UpdateMe)
		authorized.PUT("/me/password", authHandler.ChangePassword)
		authorized.PUT("/me/reminders", authHandler.UpdateReminders)
		authorized.DELETE("/me", authHandler.DeleteMe)

		folderRoutes := authorized.Group("/folders")
		{
			folderRoutes.GET("", folderHandler.List)
			folderRoutes.POST("", folderHandler.Create)
			folderRoutes.GET("/:id", folderHandler.Get)
			folderRoutes.PUT("/:id", folderHandler.Update)
			folderRoutes.DELETE("/:id", folderHandler.Delete)
		}

		deckRoutes := authorized.Group("/decks")
		{
			deckRoutes.GET("", deckHandler.List)
			deckRoutes.POST("", deckHandler.Create)
			deckRoutes.GET("/:id", deckHandler.Get)
			deckRoutes.PUT("/:id", deckHandler.Update)
			deckRoutes.DELETE("/:id", deckHandler.Delete)

			deckRoutes.GET("/:id/cards", cardHandler.List)
			deckRoutes.POST("/:id/cards", cardHandler.Create)
			deckRoutes.PUT("/:id/cards/:cardId", cardHandler.Update)
			deckRoutes.DELETE("/:id/cards/:cardId", cardHandler.Delete)

			deckRoutes.GET("/:id/export", importExportHandler.ExportDeck)
			deckRoutes.POST("/:id/import", importExportHandler.ImportDeck)
		}

		studyRoutes := authorized.Group("/study/sessions")
		{
			studyRoutes.GET("", studyHandler.ListSessions)
			studyRoutes.POST("", studyHandler.CreateSession)
			studyRoutes.GET("/:id", studyHandler.GetSession)
			studyRoutes.GET("/:id/card", studyHandler.CurrentCard)
			studyRoutes.POST("/:id/flip", studyHandler.Flip)
			studyRoutes.POST("/:id/answer", studyHandler.Answer)
			studyRoutes.POST("/:id/skip", studyHandler.Skip)
			studyRoutes.POST("/:id/complete", studyHandler.Complete)
			studyRoutes.GET("/:id/summary", studyHandler.Summary)
		}

		progressRoutes := authorized.Group("/progress")
		{
			progressRoutes.GET("/overview", progressHandler.Overview)
			progressRoutes.GET("/decks", progressHandler.DeckProgress)
			progressRoutes.GET("/decks/:deckId", progressHandler.SingleDeckProgress)
			progressRoutes.GET("/cards/performance", progressHandler.CardPerformance)
			progressRoutes.GET("/learning-curve", progressHandler.LearningCurve)
			progressRoutes.GET("/streaks", progressHandler.Streaks)
			progressRoutes.GET("/weekly", progressHandler.Weekly)

			progressRoutes.GET("/charts/learning-curve", chartsHandler.LearningCurve)
			progressRoutes.GET("/charts/accuracy-timeline", chartsHandler.AccuracyTimeline)
		}

		searchRoutes := authorized.Group("/search")
		{
			searchRoutes.GET("", searchHandler.Search)
			searchRoutes.GET("/decks", searchHandler.SearchDecks)
			searchRoutes.GET("/cards", searchHandler.SearchCards)
		}

		authorized.GET("/achievements", achievementsHandler.List)
	}

	return router
}
