package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ForumLoop/controllers"
	"github.com/ForumLoop/initializers"
	"github.com/ForumLoop/middlewares"
	"github.com/ForumLoop/repositories"
	"github.com/ForumLoop/usecases"
)

func main() {
	initializers.LoadEnv()
	db, sqlDB := initializers.ConnectDB()
	defer sqlDB.Close()

	threadRepo := repositories.NewThreadRepositoryPostgres(db, repositories.NewID)
	commentRepo := repositories.NewCommentRepositoryPostgres(db, repositories.NewID)
	replyRepo := repositories.NewReplyRepositoryPostgres(db, repositories.NewID)
	likeRepo := repositories.NewCommentLikeRepositoryPostgres(db)
	userRepo := repositories.NewUserRepositoryPostgres(db, repositories.NewID)
	authRepo := repositories.NewAuthenticationRepositoryPostgres(db)

	threadController := controllers.NewThreadController(
		usecases.NewAddThreadUseCase(threadRepo),
		usecases.NewGetThreadUseCase(threadRepo, commentRepo, replyRepo),
	)
	commentController := controllers.NewCommentController(
		usecases.NewAddCommentUseCase(threadRepo, commentRepo),
		usecases.NewDeleteCommentUseCase(commentRepo),
		usecases.NewLikeDislikeCommentUseCase(commentRepo, likeRepo),
	)
	replyController := controllers.NewReplyController(
		usecases.NewAddReplyUseCase(commentRepo, replyRepo),
		usecases.NewDeleteReplyUseCase(replyRepo),
	)
	userController := controllers.NewUserController(userRepo, authRepo)

	router := gin.Default()

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	router.GET("/ping", controllers.Ping)

	router.POST("/users", middlewares.RateLimitMiddleware(2, 2, getKey), userController.UserSignup)
	router.POST("/authentications", middlewares.RateLimitMiddleware(2, 2, getKey), userController.UserLogin)
	router.PUT("/authentications", middlewares.RateLimitMiddleware(5, 5, getKey), userController.RefreshToken)
	router.DELETE("/authentications", middlewares.RateLimitMiddleware(5, 5, getKey), userController.UserLogout)

	router.GET("/threads/:thread_id", threadController.GetThreadDetail)

	auth := router.Group("/")
	auth.Use(middlewares.CheckAuth(userRepo))
	auth.Use(middlewares.RateLimitMiddleware(10, 10, getKey))
	{
		auth.POST("/threads", threadController.CreateThread)

		auth.POST("/threads/:thread_id/comments", commentController.CreateComment)
		auth.DELETE("/threads/:thread_id/comments/:comment_id", commentController.DeleteComment)
		auth.PUT("/threads/:thread_id/comments/:comment_id/likes", commentController.ToggleCommentLike)

		auth.POST("/threads/:thread_id/comments/:comment_id/replies", replyController.CreateReply)
		auth.DELETE("/threads/:thread_id/comments/:comment_id/replies/:reply_id", replyController.DeleteReply)
	}

	if err := router.Run(); err != nil {
		log.Fatal(err)
	}
}
