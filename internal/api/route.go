package api

import (
	"Ripple/internal/api/middleware"
	"Ripple/internal/pkg/logger"
	"net/http"

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
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/feed", group.FeedHandler.GetFeed)
				authOptGroup.GET("/leaderboard", group.FeedHandler.GetLeaderboard)
				authOptGroup.GET("/detail/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/list/:user_id", group.PostHandler.GetPostByUserId)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
			}
		}

		actionGroup := apiGroup.Group("/post/action")
		{
			actionGroup.GET("/comments/:post_id", group.EngagementHandler.GetComments)

			authOptGroup := actionGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/state/:post_id", group.EngagementHandler.GetEngagementState)
			}

			authActionGroup := actionGroup.Group("")
			authActionGroup.Use(middleware.AuthMiddleware())
			{
				authActionGroup.POST("/likes/:post_id", group.EngagementHandler.ToggleLike)
				authActionGroup.POST("/views/:post_id", group.EngagementHandler.RecordView)
				authActionGroup.POST("/comments", group.EngagementHandler.CreateComment)
			}
		}
	}

	return r
}
