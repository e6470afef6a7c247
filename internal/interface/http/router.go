package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/response"
)

// NewRouter 创建并配置Gin引擎
// 设计说明：
// 1. 路由集中注册，main与wire共用同一份路由表
// 2. 前台浏览（首页、详情）无需登录；购物车、结算、订单需登录；
//    后台在登录之上再加管理员门禁
// 3. 中间件顺序：Recovery → Logger → CORS → Metrics → 业务路由
func NewRouter(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Metrics())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	// 访问 http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 商城前台（公开）
	r.GET("/", bookHandler.Home)
	r.GET("/book/:id", bookHandler.Detail)

	// 用户（公开）
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	// 需要登录的路由
	authorized := r.Group("")
	authorized.Use(authMiddleware.RequireAuth())
	{
		authorized.POST("/logout", userHandler.Logout)

		// 购物车
		authorized.POST("/add-to-cart/:id", cartHandler.AddToCart)
		authorized.GET("/cart", cartHandler.ViewCart)
		authorized.POST("/remove-from-cart/:id", cartHandler.RemoveFromCart)

		// 结算与订单
		authorized.POST("/checkout", orderHandler.Checkout)
		authorized.GET("/order/:id", orderHandler.GetOrder)
	}

	// 后台（登录+管理员双重门禁）
	admin := r.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
	{
		// 后台入口跳转到图书管理列表
		admin.GET("/", adminHandler.Redirect)

		books := admin.Group("/books")
		{
			books.GET("/", adminHandler.ListBooks)
			books.POST("/add/", adminHandler.CreateBook)
			books.POST("/edit/:id/", adminHandler.UpdateBook)
			books.POST("/delete/:id/", adminHandler.DeleteBook)
		}
	}

	return r
}
