package order

import (
	"time"
)

// Order 订单实体（聚合根）
// 设计说明：
// 1. Order是聚合根，OrderItem是子实体
// 2. OrderNo是业务主键（全局唯一，时间有序）
// 3. Total冗余存储下单时的总金额，此后不再变化
// 4. IsCompleted在结算事务成功时置位；库存只被完成的订单扣减
type Order struct {
	ID          uint
	OrderNo     string      // 订单号（业务主键，全局唯一）
	UserID      uint        // 买家用户ID
	Total       int64       // 订单总金额（分），创建后不变
	IsCompleted bool        // 是否已完成
	Items       []OrderItem // 订单明细（聚合内的子实体）
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem 订单明细项
// 设计说明：
// 1. 不是独立聚合根，必须通过Order访问
// 2. Price记录下单时的实时单价（历史价格快照），商家改价不影响历史订单
// 3. 不直接关联Book对象，只保存BookID
type OrderItem struct {
	ID       uint
	OrderID  uint  // 所属订单ID
	BookID   uint  // 图书ID
	Quantity int   // 购买数量（≥1）
	Price    int64 // 下单时的单价（分）
}

// NewOrder 创建新订单（工厂方法）
func NewOrder(orderNo string, userID uint, items []OrderItem, total int64) *Order {
	now := time.Now()
	return &Order{
		OrderNo:   orderNo,
		UserID:    userID,
		Total:     total,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Complete 标记订单完成（结算事务内调用）
func (o *Order) Complete() {
	o.IsCompleted = true
	o.UpdatedAt = time.Now()
}

// CalculateTotal 根据明细计算订单总金额
// 用于校验Total与明细的一致性
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// IsOwnedBy 检查订单是否属于指定用户
// 权限校验：防止用户访问他人订单
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
