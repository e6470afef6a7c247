package order

import (
	"context"
	"errors"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// GetOrderUseCase 订单详情查询用例
// 设计说明:
// 1. 只允许买家本人查看;他人订单一律返回404,不暴露订单是否存在
// 2. 明细标题实时查询图书表;下架图书的明细引用已被级联删除,
//    这里仍兜底处理查不到的情况
type GetOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
}

// NewGetOrderUseCase 创建订单详情用例
func NewGetOrderUseCase(orderRepo order.Repository, bookRepo book.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
	}
}

// OrderItemDetail 订单明细DTO
type OrderItemDetail struct {
	BookID       uint   `json:"book_id"`
	Title        string `json:"title"`
	Price        int64  `json:"price"` // 下单时单价(分)
	PriceYuan    string `json:"price_yuan"`
	Quantity     int    `json:"quantity"`
	Subtotal     int64  `json:"subtotal"`
	SubtotalYuan string `json:"subtotal_yuan"`
}

// OrderDetail 订单详情DTO
type OrderDetail struct {
	OrderID     uint              `json:"order_id"`
	OrderNo     string            `json:"order_no"`
	Total       int64             `json:"total"`
	TotalYuan   string            `json:"total_yuan"`
	IsCompleted bool              `json:"is_completed"`
	Items       []OrderItemDetail `json:"items"`
	CreatedAt   string            `json:"created_at"`
}

// Execute 执行订单详情查询
func (uc *GetOrderUseCase) Execute(ctx context.Context, userID, orderID uint) (*OrderDetail, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// 属主校验:他人订单与不存在的订单返回同一错误
	if !o.IsOwnedBy(userID) {
		return nil, order.ErrOrderNotFound
	}

	items := make([]OrderItemDetail, len(o.Items))
	for i, item := range o.Items {
		title := "(已下架)"
		b, err := uc.bookRepo.FindByID(ctx, item.BookID)
		if err == nil {
			title = b.Title
		} else if !errors.Is(err, book.ErrBookNotFound) {
			return nil, err
		}

		subtotal := item.Price * int64(item.Quantity)
		items[i] = OrderItemDetail{
			BookID:       item.BookID,
			Title:        title,
			Price:        item.Price,
			PriceYuan:    formatPrice(item.Price),
			Quantity:     item.Quantity,
			Subtotal:     subtotal,
			SubtotalYuan: formatPrice(subtotal),
		}
	}

	return &OrderDetail{
		OrderID:     o.ID,
		OrderNo:     o.OrderNo,
		Total:       o.Total,
		TotalYuan:   formatPrice(o.Total),
		IsCompleted: o.IsCompleted,
		Items:       items,
		CreatedAt:   o.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
