package api

import (
	"Socials/internal/api/middleware"
	"Socials/internal/pkg/logger"
	"Socials/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			response.Success(c, "pong")
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/signup", group.UserHandler.Signup)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.PUT("/password", group.UserHandler.ChangePassword)
			}
		}

		authGroup := apiGroup.Group("")
		authGroup.Use(middleware.AuthMiddleware())
		{
			authGroup.GET("/feed/home", group.FeedHandler.Home)

			profileGroup := authGroup.Group("/profile")
			{
				profileGroup.GET("", group.ProfileHandler.GetMyProfile)
				profileGroup.GET("/friends", group.ProfileHandler.Friends)
				profileGroup.GET("/:profile_id", group.ProfileHandler.GetProfilePage)
				profileGroup.POST("", group.ProfileHandler.CreateProfile)
				profileGroup.PUT("", group.ProfileHandler.UpdateProfile)
				profileGroup.POST("/avatar", group.ProfileHandler.UploadAvatar)
			}

			postGroup := authGroup.Group("/posts")
			{
				postGroup.POST("", group.PostHandler.CreatePost)
				postGroup.GET("/:post_id", group.PostHandler.GetPost)
				postGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				postGroup.DELETE("/:post_id", group.PostHandler.DeletePost)

				postGroup.POST("/:post_id/like", group.PostActionHandler.LikePost)
				postGroup.GET("/:post_id/comments", group.PostActionHandler.GetComments)
				postGroup.POST("/:post_id/comments", group.PostActionHandler.CreateComment)
			}
			authGroup.DELETE("/comments/:comment_id", group.PostActionHandler.DeleteComment)

			authGroup.GET("/search", group.SearchHandler.SearchPage)
			authGroup.POST("/search", group.SearchHandler.Search)

			followGroup := authGroup.Group("/follow")
			{
				followGroup.POST("", group.FollowHandler.Follow)
				followGroup.GET("/followers/:profile_id", group.FollowHandler.GetFollowers)
				followGroup.GET("/followings/:profile_id", group.FollowHandler.GetFollowings)
			}

			sysbox := authGroup.Group("/sysbox")
			{
				sysbox.GET("/list", group.SysBoxHandler.GetNotificationList)
				sysbox.GET("/unread", group.SysBoxHandler.GetUnreadCount)
				sysbox.POST("/read", group.SysBoxHandler.MarkRead)
				sysbox.POST("/read/all", group.SysBoxHandler.MarkAllRead)
			}
		}
	}

	return r
}
