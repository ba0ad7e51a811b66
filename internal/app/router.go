package app

import (
	"campus_circle_backend/docs"
	"campus_circle_backend/internal/config"
	"campus_circle_backend/internal/middleware"

	"campus_circle_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerRelationshipRoutes(authGroup, c)
		a.registerPostRoutes(authGroup, c)
		a.registerAccountRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	router.GET("/health", c.health.HealthCheck)

	public := router.Group("/api")
	{
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 帖子列表对游客开放，登录用户可看"我的"
		public.GET("/posts", middleware.TryAuthMiddleware(a.Config), c.post.GetPosts)
		public.GET("/posts/:id", middleware.TryAuthMiddleware(a.Config), c.post.GetPost)
		public.GET("/posts/:id/endorsements", c.post.GetEndorsements)

		public.GET("/users", c.user.SearchUsers)
		public.GET("/users/:username", c.user.GetUser)
	}
}

// registerRelationshipRoutes 好友申请、好友、信任关系
func (a *App) registerRelationshipRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/friend-requests", c.friend.SendFriendRequest)
	rg.GET("/friend-requests", c.friend.GetFriendRequests)
	rg.DELETE("/friend-requests", c.friend.WithdrawFriendRequest)
	rg.DELETE("/friend-requests/:id", c.friend.CancelFriendRequest)
	rg.POST("/friend-requests/:id/confirm", c.friend.ConfirmFriendRequest)

	rg.GET("/friends", c.friend.GetFriends)
	rg.GET("/friends/ids", c.friend.GetFriendIDs)
	rg.DELETE("/friends/:id", c.friend.DeleteFriend)

	rg.POST("/trusts", c.trust.EstablishTrust)
	rg.DELETE("/trusts/:username", c.trust.RevokeTrust)
	rg.GET("/trusts", c.trust.GetTrusts)
}

func (a *App) registerPostRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/posts", c.post.CreatePost)
	rg.PUT("/posts/:id", c.post.UpdatePost)
	rg.DELETE("/posts/:id", c.post.DeletePost)

	rg.POST("/posts/:id/endorsements", c.post.EndorsePost)
	rg.DELETE("/posts/:id/endorsements", c.post.UnendorsePost)

	rg.GET("/level", c.level.GetMyLevel)
}

func (a *App) registerAccountRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/user/profile", c.user.UpdateProfile)
	rg.POST("/user/avatar/upload", c.user.UploadAvatar)
	rg.DELETE("/users/me", c.user.DeleteAccount)
}