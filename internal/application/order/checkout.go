package order

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// TxManager 事务管理器接口
// 由infrastructure/persistence/mysql.TxManager实现;
// 定义在应用层便于单元测试中替换为直通实现
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CheckoutUseCase 购物车结算用例
// 设计说明:这是整个系统最核心的用例
// 涉及:事务处理、并发控制(悲观锁防超卖)、购物车清理
type CheckoutUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	cartStore cart.Store
	txManager TxManager
}

// NewCheckoutUseCase 创建结算用例
func NewCheckoutUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	cartStore cart.Store,
	txManager TxManager,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		cartStore: cartStore,
		txManager: txManager,
	}
}

// CheckoutResponse 结算响应DTO
type CheckoutResponse struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	Total     int64  `json:"total"` // 总金额(分)
	TotalYuan string `json:"total_yuan"`
	CreatedAt string `json:"created_at"`
}

// Execute 执行结算
// 业务规则:
// 1. 空购物车直接拒绝,不产生订单
// 2. 整车结算是原子操作:任何一本书库存不足,整单失败,
//    不留部分订单、不扣任何库存
// 3. 结算价取锁定行时的实时价格,而非购物车里的快照价
// 4. 购物车只在事务提交成功后清空;失败时购物车原样保留
//
// 防超卖:SELECT FOR UPDATE锁定库存行后再检查、再扣减;
// 多本书按图书ID升序加锁,避免并发结算互相死锁
func (uc *CheckoutUseCase) Execute(ctx context.Context, userID uint) (*CheckoutResponse, error) {
	// 1. 读取购物车
	c, err := uc.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if c.IsEmpty() {
		metrics.CheckoutFailures.WithLabelValues(metrics.ReasonEmptyCart).Inc()
		return nil, apperrors.ErrEmptyCart
	}

	// 2. 固定加锁顺序:图书ID升序
	ids := c.BookIDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result *order.Order
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// ========================================
		// 步骤1:锁定全部库存行并检查库存
		// ========================================
		bookMap := make(map[uint]*book.Book, len(ids))
		for _, id := range ids {
			qty := c.Quantity(id)
			if qty <= 0 {
				return order.ErrInvalidQuantity
			}

			// SELECT * FROM books WHERE id = ? FOR UPDATE
			b, err := uc.bookRepo.LockByID(txCtx, id)
			if err != nil {
				return err // 车内图书已下架 → ErrBookNotFound
			}

			// 必须在锁定后检查,否则并发扣减会导致超卖
			if b.Stock < qty {
				return apperrors.Newf(apperrors.ErrCodeInsufficientStock,
					"图书《%s》库存不足,仅剩%d件", b.Title, b.Stock)
			}

			bookMap[id] = b
		}

		// ========================================
		// 步骤2:按实时价格计算金额
		// ========================================
		// 使用锁定行的当前价格,防止改价攻击与快照价陈旧
		var total int64
		orderItems := make([]order.OrderItem, len(ids))
		for i, id := range ids {
			b := bookMap[id]
			qty := c.Quantity(id)
			orderItems[i] = order.OrderItem{
				BookID:   id,
				Quantity: qty,
				Price:    b.Price,
			}
			total += b.Price * int64(qty)
		}

		// ========================================
		// 步骤3:创建订单(含明细)
		// ========================================
		orderNo := order.GenerateOrderNo()
		newOrder := order.NewOrder(orderNo, userID, orderItems, total)
		newOrder.Complete() // 库存已校验,订单落库即完成

		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// ========================================
		// 步骤4:扣减库存(全部成功才提交)
		// ========================================
		for _, id := range ids {
			if err := uc.bookRepo.UpdateStock(txCtx, id, -c.Quantity(id)); err != nil {
				return err // 回滚:订单与库存都不变
			}
		}

		result = newOrder
		return nil
	})

	if err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrCodeInsufficientStock {
			metrics.CheckoutFailures.WithLabelValues(metrics.ReasonInsufficientStock).Inc()
		} else {
			metrics.CheckoutFailures.WithLabelValues(metrics.ReasonInternal).Inc()
		}
		return nil, err
	}

	// 3. 事务提交成功后清空购物车
	// 清空失败不影响已成单,记录日志便于排查
	if err := uc.cartStore.Clear(ctx, userID); err != nil {
		logger.L().Warn("结算后清空购物车失败",
			zap.Uint("user_id", userID),
			zap.String("order_no", result.OrderNo),
			zap.Error(err))
	}

	metrics.OrdersCreated.Inc()

	return &CheckoutResponse{
		OrderID:   result.ID,
		OrderNo:   result.OrderNo,
		Total:     result.Total,
		TotalYuan: formatPrice(result.Total),
		CreatedAt: result.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
