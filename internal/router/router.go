package router

import (
	"pubfeed/internal/auth"
	"pubfeed/internal/config"
	"pubfeed/internal/handlers"
	"pubfeed/internal/middleware"
	"pubfeed/internal/services"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the routes need; bootstrap owns construction
// and lifecycle of all of it.
type Deps struct {
	Users        *services.UserService
	Publications *services.PublicationService
	Votes        *services.VoteService
	Tokens       *auth.TokenManager
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) {
	// Handlers
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Tokens)
	publicationHandler := handlers.NewPublicationHandler(deps.Publications, deps.Votes)
	voteHandler := handlers.NewVoteHandler(deps.Votes)

	authRequired := middleware.AuthRequired(deps.Tokens, deps.Users)

	api := r.Group(cfg.APIPrefix + cfg.APIV1Prefix)

	// 公共路由 (Public Routes)
	api.POST("/auth/registration", authHandler.Register)
	api.POST("/auth/token", authHandler.Token)
	api.GET("/publication", publicationHandler.List)   // rating-sorted feed
	api.GET("/publication/:id", publicationHandler.Get) // cached read

	// 受保护路由 (Protected Routes)
	authorized := api.Group("/")
	authorized.Use(authRequired)
	{
		authorized.GET("/auth/users/me", authHandler.Me)

		authorized.POST("/publication", publicationHandler.Create)
		authorized.PUT("/publication/:id", publicationHandler.Update)
		authorized.DELETE("/publication/:id", publicationHandler.Delete)
		authorized.PUT("/publication/:id/vote", publicationHandler.Vote)

		authorized.PUT("/vote", voteHandler.Vote)
		authorized.DELETE("/vote", voteHandler.Delete)
	}
}
