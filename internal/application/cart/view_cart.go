package cart

import (
	"context"
	"sort"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
)

// ViewCartUseCase 查看购物车用例
// 设计说明:
// 1. 展示使用实时价格,购物车内的快照价仅作兜底记录
// 2. 车内图书已被下架时返回404(与结算行为一致)
// 3. 按图书ID升序输出,保证展示顺序稳定
type ViewCartUseCase struct {
	bookRepo  book.Repository
	cartStore cart.Store
}

// NewViewCartUseCase 创建查看购物车用例
func NewViewCartUseCase(bookRepo book.Repository, cartStore cart.Store) *ViewCartUseCase {
	return &ViewCartUseCase{
		bookRepo:  bookRepo,
		cartStore: cartStore,
	}
}

// CartLine 购物车展示行DTO
type CartLine struct {
	BookID       uint   `json:"book_id"`
	Title        string `json:"title"`
	Price        int64  `json:"price"`      // 实时单价(分)
	PriceYuan    string `json:"price_yuan"` // 实时单价(元)
	Quantity     int    `json:"quantity"`
	Subtotal     int64  `json:"subtotal"` // 行小计(分)
	SubtotalYuan string `json:"subtotal_yuan"`
}

// ViewCartResponse 查看购物车响应DTO
type ViewCartResponse struct {
	Lines     []CartLine `json:"lines"`
	Total     int64      `json:"total"` // 全车总计(分)
	TotalYuan string     `json:"total_yuan"`
	IsEmpty   bool       `json:"is_empty"`
}

// Execute 执行查看购物车
func (uc *ViewCartUseCase) Execute(ctx context.Context, userID uint) (*ViewCartResponse, error) {
	c, err := uc.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := c.BookIDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	lines := make([]CartLine, 0, len(ids))
	var total int64
	for _, id := range ids {
		b, err := uc.bookRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err // 图书已下架 → ErrBookNotFound
		}

		qty := c.Quantity(id)
		subtotal := b.Price * int64(qty)
		total += subtotal

		lines = append(lines, CartLine{
			BookID:       b.ID,
			Title:        b.Title,
			Price:        b.Price,
			PriceYuan:    formatPrice(b.Price),
			Quantity:     qty,
			Subtotal:     subtotal,
			SubtotalYuan: formatPrice(subtotal),
		})
	}

	return &ViewCartResponse{
		Lines:     lines,
		Total:     total,
		TotalYuan: formatPrice(total),
		IsEmpty:   c.IsEmpty(),
	}, nil
}
