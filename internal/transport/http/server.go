package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "goblog-api/internal/app"
	"goblog-api/internal/bootstrap"
	"goblog-api/internal/repository"
	"goblog-api/internal/transport/http/handler"
	"goblog-api/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	postRepo := repository.NewPostRepository(app.MySQL)
	commentRepo := repository.NewCommentRepository(app.MySQL)

	// Typed-nil guards: the optional collaborators must stay nil interfaces
	// when disabled so the services skip them.
	var publisher appsvc.ActivityPublisher
	if app.ActivityPublisher != nil {
		publisher = app.ActivityPublisher
	}
	var relationCache appsvc.RelationCache
	if app.RelationCache != nil {
		relationCache = app.RelationCache
	}

	jwtExpiration := time.Duration(app.Config.Auth.JWTExpireDays) * 24 * time.Hour
	userService := appsvc.NewUserService(userRepo, publisher, relationCache, app.Config.Auth.JWTSecret, jwtExpiration)
	postService := appsvc.NewPostService(postRepo, userRepo, publisher, relationCache)
	commentService := appsvc.NewCommentService(commentRepo, postRepo, userRepo, publisher, relationCache)

	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)

	v1 := router.Group("/api/v1")
	v1.POST("/users", userHandler.SignUp)
	v1.GET("/users", userHandler.ListUsers)
	v1.GET("/users/:userId/posts", userHandler.GetUserPosts)

	v1.POST("/posts", middleware.AuthToken(app.Config.Auth.JWTSecret), postHandler.CreatePost)
	v1.GET("/posts/:postId/comments", postHandler.GetPostComments)

	v1.POST("/comments", commentHandler.AddComment)

	return router
}
