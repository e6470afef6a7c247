package book

import (
	"context"
)

// Repository 图书仓储接口（依赖倒置原则）
// 设计说明：
// 1. 由domain层定义接口，infrastructure层实现
// 2. 便于Mock测试，不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书
	// 删除无条件执行，并级联删除订单明细中对该图书的引用
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// LockByID 悲观锁查询图书（结算时锁定库存行）
	// 使用SELECT FOR UPDATE锁定行，防止并发超卖；必须在事务内调用
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateStock 更新库存（原子操作）
	// delta为正数表示增加，负数表示减少；不足时返回ErrInsufficientStock
	UpdateStock(ctx context.Context, id uint, delta int) error
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码（从1开始）
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词（搜索标题、作者）
	SortBy   string // 排序字段（price_asc, price_desc, created_at_desc）
}
