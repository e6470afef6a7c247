package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// GetBookUseCase 图书详情查询用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// BookDetail 图书详情DTO
type BookDetail struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	PriceYuan   string `json:"price_yuan"`
	Stock       int    `json:"stock"`
	InStock     bool   `json:"in_stock"` // 库存是否大于0(详情页"加入购物车"按钮状态)
	CoverURL    string `json:"cover_url"`
	CreatedAt   string `json:"created_at"`
}

// Execute 执行详情查询
// 图书不存在时返回book.ErrBookNotFound(404)
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookDetail, error) {
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &BookDetail{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
		PriceYuan:   formatPrice(b.Price),
		Stock:       b.Stock,
		InStock:     b.Stock > 0,
		CoverURL:    b.CoverURL,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
