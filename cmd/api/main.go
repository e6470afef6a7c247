package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	appadmin "github.com/xiebiao/bookshop/internal/application/admin"
	appbook "github.com/xiebiao/bookshop/internal/application/book"
	appcart "github.com/xiebiao/bookshop/internal/application/cart"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	appuser "github.com/xiebiao/bookshop/internal/application/user"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	httpiface "github.com/xiebiao/bookshop/internal/interface/http"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/logger"
)

// main 主程序入口
// 依赖注入链：Repository ← Service ← UseCase ← Handler ← Router
// 手动组装；cmd/api/wire.go提供等价的Wire注入器定义
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	if err := logger.Init(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		EnableCaller: cfg.Log.EnableCaller,
	}); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Sync()

	logger.L().Info("配置加载成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("database", fmt.Sprintf("%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
	)

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		logger.L().Fatal("初始化数据库失败", zap.Error(err))
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logger.L().Fatal("初始化Redis失败", zap.Error(err))
	}

	// 5. 依赖注入（手动组装）

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	cartStore := redis.NewCartStore(redisClient, cfg.Cart.TTL)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(jwtManager, sessionStore)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	getBookUseCase := appbook.NewGetBookUseCase(bookService)
	addItemUseCase := appcart.NewAddItemUseCase(bookRepo, cartStore)
	removeItemUseCase := appcart.NewRemoveItemUseCase(cartStore)
	viewCartUseCase := appcart.NewViewCartUseCase(bookRepo, cartStore)
	checkoutUseCase := apporder.NewCheckoutUseCase(orderRepo, bookRepo, cartStore, txManager)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo, bookRepo)
	manageBooksUseCase := appadmin.NewManageBooksUseCase(bookService)

	// 接口层
	bookHandler := handler.NewBookHandler(listBooksUseCase, getBookUseCase)
	cartHandler := handler.NewCartHandler(addItemUseCase, removeItemUseCase, viewCartUseCase)
	orderHandler := handler.NewOrderHandler(checkoutUseCase, getOrderUseCase)
	adminHandler := handler.NewAdminHandler(manageBooksUseCase)
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 6. 初始化路由
	r := httpiface.NewRouter(cfg, bookHandler, cartHandler, orderHandler, adminHandler, userHandler, authMiddleware)

	// 7. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.L().Info("服务启动",
		zap.String("addr", addr),
		zap.String("swagger", fmt.Sprintf("http://localhost%s/swagger/index.html", addr)),
	)

	if err := r.Run(addr); err != nil {
		logger.L().Fatal("启动服务失败", zap.Error(err))
	}
}
