package order

import (
	"context"
)

// Repository 订单仓储接口（依赖倒置原则）
// 支持事务操作（通过context传递事务）
type Repository interface {
	// Create 创建订单（包含订单明细）
	// 订单和明细必须在同一事务中创建
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单（包含订单明细）
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindByOrderNo 根据订单号查找订单
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)

	// ListByUserID 分页查询用户的订单列表
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Order, int64, error)
}
