package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// TestGetOrder 测试订单详情查询
func TestGetOrder(t *testing.T) {
	ctx := context.Background()

	bookRepo := newFakeBookRepo(
		&book.Book{ID: 1, Title: "书A", Price: 1200, Stock: 5}, // 下单后已改价
	)
	orderRepo := &fakeOrderRepo{}

	o := order.NewOrder("ORD123", 1, []order.OrderItem{
		{BookID: 1, Quantity: 2, Price: 1000}, // 下单时单价10.00
	}, 2000)
	o.Complete()
	require.NoError(t, orderRepo.Create(ctx, o))

	uc := NewGetOrderUseCase(orderRepo, bookRepo)

	t.Run("本人可查看,单价为下单时快照", func(t *testing.T) {
		detail, err := uc.Execute(ctx, 1, o.ID)
		require.NoError(t, err)

		assert.Equal(t, "ORD123", detail.OrderNo)
		assert.True(t, detail.IsCompleted)
		assert.Equal(t, int64(2000), detail.Total)
		assert.Equal(t, "20.00", detail.TotalYuan)

		require.Len(t, detail.Items, 1)
		assert.Equal(t, "书A", detail.Items[0].Title, "标题实时解析")
		assert.Equal(t, int64(1000), detail.Items[0].Price, "单价是历史快照,不受改价影响")
		assert.Equal(t, "20.00", detail.Items[0].SubtotalYuan)
	})

	t.Run("他人订单返回404", func(t *testing.T) {
		_, err := uc.Execute(ctx, 2, o.ID)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeOrderNotFound, apperrors.CodeOf(err), "不暴露订单是否存在")
	})

	t.Run("不存在的订单返回404", func(t *testing.T) {
		_, err := uc.Execute(ctx, 1, 999)
		assert.Equal(t, apperrors.ErrCodeOrderNotFound, apperrors.CodeOf(err))
	})
}

// TestGetOrder_DeletedBook 测试明细图书已被删除时的兜底
func TestGetOrder_DeletedBook(t *testing.T) {
	ctx := context.Background()

	bookRepo := newFakeBookRepo() // 对应图书不存在
	orderRepo := &fakeOrderRepo{}

	o := order.NewOrder("ORD456", 1, []order.OrderItem{
		{BookID: 42, Quantity: 1, Price: 500},
	}, 500)
	require.NoError(t, orderRepo.Create(ctx, o))

	uc := NewGetOrderUseCase(orderRepo, bookRepo)
	detail, err := uc.Execute(ctx, 1, o.ID)
	require.NoError(t, err, "图书缺失不应让整个详情失败")

	assert.Equal(t, "(已下架)", detail.Items[0].Title)
	assert.Equal(t, int64(500), detail.Items[0].Price)
}
