package router

import (
	"inkwell/internal/db"
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Services
	feedService := services.NewFeedService(db.DB)
	socialService := services.NewSocialService(db.DB)
	commentService := services.NewCommentService(db.DB)
	postService := services.NewPostService(db.DB)

	// Handlers
	authHandler := handlers.NewAuthHandler()
	feedHandler := handlers.NewFeedHandler(feedService)
	postHandler := handlers.NewPostHandler(postService, commentService)
	profileHandler := handlers.NewProfileHandler(feedService, socialService)
	pageHandler := handlers.NewPageHandler()

	// Public Routes
	r.GET("/", feedHandler.Index)                // global feed
	r.GET("/group/:slug", feedHandler.Group)     // posts of one group
	r.GET("/search", feedHandler.Search)         // keyword search
	r.GET("/p/:pid", postHandler.Detail)         // post detail with comments
	r.GET("/u/:username", profileHandler.Profile) // author page

	r.GET("/about", pageHandler.About)
	r.GET("/about-author", pageHandler.AboutAuthor)

	r.GET("/signup", authHandler.ShowRegister)
	r.POST("/signup", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/new", postHandler.ShowCreate)
		authorized.POST("/new", postHandler.Create)
		authorized.GET("/p/:pid/edit", postHandler.ShowEdit)
		authorized.POST("/p/:pid/edit", postHandler.Update)
		authorized.POST("/p/:pid/comment", postHandler.CreateComment)

		authorized.GET("/follow", feedHandler.Following)
		authorized.POST("/u/:username/follow", profileHandler.Follow)
		authorized.POST("/u/:username/unfollow", profileHandler.Unfollow)
	}

	r.NoRoute(pageHandler.NotFound)
}
