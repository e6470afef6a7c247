package book

import (
	"time"
)

// Book 图书实体（聚合根）
// 设计说明：
// 1. 价格使用int64存储"分"为单位（两位小数定点，避免浮点数精度问题）
// 2. 库存只允许非负；扣减由结算流程在事务内完成
// 3. 图书由管理员维护，前台只读
type Book struct {
	ID          uint
	Title       string // 书名
	Author      string // 作者
	Description string // 图书描述
	Price       int64  // 价格（单位：分，1元=100分）
	Stock       int    // 库存数量
	CoverURL    string // 封面图片URL（可选）
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书（工厂方法）
// 调用方需先通过Service完成字段校验
func NewBook(title, author, description string, price int64, stock int, coverURL string) *Book {
	now := time.Now()
	return &Book{
		Title:       title,
		Author:      author,
		Description: description,
		Price:       price,
		Stock:       stock,
		CoverURL:    coverURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Update 更新图书信息（领域行为）
func (b *Book) Update(title, author, description string, price int64, stock int, coverURL string) {
	b.Title = title
	b.Author = author
	b.Description = description
	b.Price = price
	b.Stock = stock
	b.CoverURL = coverURL
	b.UpdatedAt = time.Now()
}

// HasStock 库存是否足够本次购买
func (b *Book) HasStock(quantity int) bool {
	return quantity > 0 && b.Stock >= quantity
}

// DecrStock 扣减库存（结算时使用）
// 业务规则：扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.Stock < quantity {
		return ErrInsufficientStock
	}
	b.Stock -= quantity
	b.UpdatedAt = time.Now()
	return nil
}
