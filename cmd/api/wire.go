//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 运行 `wire gen ./cmd/api` 生成wire_gen.go；
// 生成代码与main.go中的手动组装等价
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appadmin "github.com/xiebiao/bookshop/internal/application/admin"
	appbook "github.com/xiebiao/bookshop/internal/application/book"
	appcart "github.com/xiebiao/bookshop/internal/application/cart"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	appuser "github.com/xiebiao/bookshop/internal/application/user"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	httpiface "github.com/xiebiao/bookshop/internal/interface/http"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/jwt"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewBookRepository,
	mysql.NewOrderRepository,
	mysql.NewTxManager,
	// 应用层依赖TxManager接口，由mysql.TxManager实现
	wire.Bind(new(apporder.TxManager), new(*mysql.TxManager)),
)

// storeSet 会话与购物车存储依赖
var storeSet = wire.NewSet(
	provideSessionStore,
	provideCartStore,
	// 认证中间件依赖黑名单接口，由SessionStore实现
	wire.Bind(new(middleware.TokenBlacklist), new(*redis.SessionStore)),
	// 购物车存储接口由Redis实现
	wire.Bind(new(cart.Store), new(*redis.CartStore)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appcart.NewAddItemUseCase,
	appcart.NewRemoveItemUseCase,
	appcart.NewViewCartUseCase,
	apporder.NewCheckoutUseCase,
	apporder.NewGetOrderUseCase,
	appadmin.NewManageBooksUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewCartHandler,
	handler.NewOrderHandler,
	handler.NewAdminHandler,
	handler.NewUserHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建会话存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideCartStore 从Redis客户端与配置创建购物车存储
func provideCartStore(client *goredis.Client, cfg *config.Config) *redis.CartStore {
	return redis.NewCartStore(client, cfg.Cart.TTL)
}

// InitializeApp 初始化整个应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		storeSet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		httpiface.NewRouter,
	)
	return nil, nil
}
