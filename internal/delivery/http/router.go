package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emberapp/ember-backend/internal/delivery/http/handler"
	"github.com/emberapp/ember-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	discoveryHandler  *handler.DiscoveryHandler
	likesHandler      *handler.LikesHandler
	walletHandler     *handler.WalletHandler
	chatHandler       *handler.ChatHandler
	sessionMiddleware *middleware.SessionMiddleware
	logger            *zap.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	discoveryHandler *handler.DiscoveryHandler,
	likesHandler *handler.LikesHandler,
	walletHandler *handler.WalletHandler,
	chatHandler *handler.ChatHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	logger *zap.Logger,
) *Router {
	return &Router{
		authHandler:       authHandler,
		profileHandler:    profileHandler,
		discoveryHandler:  discoveryHandler,
		likesHandler:      likesHandler,
		walletHandler:     walletHandler,
		chatHandler:       chatHandler,
		sessionMiddleware: sessionMiddleware,
		logger:            logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(r.logger), gin.Recovery())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Signup is the only public route: it creates the session everything
		// else requires.
		v1.POST("/auth/signup", r.authHandler.Signup)

		protected := v1.Group("")
		protected.Use(r.sessionMiddleware.RequireSession())
		{
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.GET("/me/completion", r.profileHandler.GetCompletion)
				profile.GET("/:profile_id", r.profileHandler.GetProfileByID)
			}

			protected.GET("/people", r.profileHandler.GetPeople)
			protected.GET("/options", r.profileHandler.GetOptions)

			discover := protected.Group("/discover")
			{
				discover.GET("", r.discoveryHandler.GetFeed)
				discover.POST("/swipe", r.discoveryHandler.Swipe)
				discover.POST("/reset", r.discoveryHandler.Reset)
			}

			likes := protected.Group("/likes")
			{
				likes.GET("", r.likesHandler.List)
				likes.POST("/:profile_id/unlock", r.likesHandler.Unlock)
			}

			wallet := protected.Group("/wallet")
			{
				wallet.GET("", r.walletHandler.GetWallet)
				wallet.GET("/transactions", r.walletHandler.GetTransactions)
				wallet.POST("/topup", r.walletHandler.TopUp)
			}

			chats := protected.Group("/chats")
			{
				chats.GET("", r.chatHandler.ListChats)
				chats.GET("/:id", r.chatHandler.OpenChat)
				chats.POST("/:id/messages", r.chatHandler.SendMessage)
				chats.POST("/:id/gifts", r.chatHandler.SendGift)
			}

			protected.GET("/gifts", r.chatHandler.ListGifts)
		}
	}

	return router
}
