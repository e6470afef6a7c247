package cart

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/cart"
)

// RemoveItemUseCase 移除购物车条目用例
// 幂等:条目不存在时静默成功,不校验图书是否仍在架
type RemoveItemUseCase struct {
	cartStore cart.Store
}

// NewRemoveItemUseCase 创建移除条目用例
func NewRemoveItemUseCase(cartStore cart.Store) *RemoveItemUseCase {
	return &RemoveItemUseCase{cartStore: cartStore}
}

// RemoveItemResponse 移除条目响应DTO
type RemoveItemResponse struct {
	BookID   uint `json:"book_id"`
	CartSize int  `json:"cart_size"`
}

// Execute 执行移除
func (uc *RemoveItemUseCase) Execute(ctx context.Context, userID, bookID uint) (*RemoveItemResponse, error) {
	c, err := uc.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.Remove(bookID)

	if err := uc.cartStore.Save(ctx, userID, c); err != nil {
		return nil, err
	}

	return &RemoveItemResponse{
		BookID:   bookID,
		CartSize: c.Len(),
	}, nil
}
