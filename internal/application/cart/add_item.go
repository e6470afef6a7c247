package cart

import (
	"context"
	"fmt"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
)

// AddItemUseCase 加入购物车用例
// 设计说明:
// 1. 先校验图书存在(不存在返回404),再写入会话购物车
// 2. 同一图书重复加入时叠加数量
// 3. 加入时不校验库存,库存只在结算时检查
type AddItemUseCase struct {
	bookRepo  book.Repository
	cartStore cart.Store
}

// NewAddItemUseCase 创建加入购物车用例
func NewAddItemUseCase(bookRepo book.Repository, cartStore cart.Store) *AddItemUseCase {
	return &AddItemUseCase{
		bookRepo:  bookRepo,
		cartStore: cartStore,
	}
}

// AddItemRequest 加入购物车请求DTO
type AddItemRequest struct {
	UserID   uint
	BookID   uint
	Quantity int // 省略或非法时按1处理
}

// AddItemResponse 加入购物车响应DTO
type AddItemResponse struct {
	BookID   uint   `json:"book_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"` // 该条目叠加后的数量
	CartSize int    `json:"cart_size"`
}

// Execute 执行加入购物车
func (uc *AddItemUseCase) Execute(ctx context.Context, req AddItemRequest) (*AddItemResponse, error) {
	// 1. 校验图书存在
	b, err := uc.bookRepo.FindByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}

	// 2. 读取购物车并叠加
	c, err := uc.cartStore.Get(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	c.Add(b.ID, b.Title, formatPrice(b.Price), req.Quantity)

	// 3. 写回
	if err := uc.cartStore.Save(ctx, req.UserID, c); err != nil {
		return nil, err
	}

	return &AddItemResponse{
		BookID:   b.ID,
		Title:    b.Title,
		Quantity: c.Quantity(b.ID),
		CartSize: c.Len(),
	}, nil
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
